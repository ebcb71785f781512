package service

import "techblog/internal/model"

// DecideDeletion maps the actor's relation to a comment onto a deletion mode.
// Authors always hard delete, admins tombstone other people's comments.
func DecideDeletion(isAuthor bool, role model.Role) model.DeletionMode {
	switch {
	case isAuthor:
		return model.DeletionHard
	case role == model.RoleAdmin:
		return model.DeletionSoft
	default:
		return model.DeletionDeny
	}
}
