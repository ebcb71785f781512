package model

import "time"

type DisplayReason string

const (
	ReasonCommentCreated DisplayReason = "comment_created"
	ReasonCommentEdited  DisplayReason = "comment_edited"
	ReasonCommentDeleted DisplayReason = "comment_deleted"
	ReasonLikeToggled    DisplayReason = "like_toggled"
	ReasonPostDeleted    DisplayReason = "post_deleted"
)

// DisplayChanged tells listeners that the rendered page of a post is stale.
type DisplayChanged struct {
	PostID int64         `json:"post_id"`
	Reason DisplayReason `json:"reason"`
	At     time.Time     `json:"at"`
}
