package service

import (
	"testing"

	"techblog/internal/model"

	"github.com/stretchr/testify/require"
)

func TestDecideDeletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isAuthor bool
		role     model.Role
		want     model.DeletionMode
	}{
		{name: "author user", isAuthor: true, role: model.RoleUser, want: model.DeletionHard},
		{name: "author admin", isAuthor: true, role: model.RoleAdmin, want: model.DeletionHard},
		{name: "admin on other", isAuthor: false, role: model.RoleAdmin, want: model.DeletionSoft},
		{name: "user on other", isAuthor: false, role: model.RoleUser, want: model.DeletionDeny},
		{name: "unknown role", isAuthor: false, role: model.Role("GUEST"), want: model.DeletionDeny},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, DecideDeletion(tt.isAuthor, tt.role))
		})
	}
}
