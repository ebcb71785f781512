package model

import "time"

type Post struct {
	ID        int64
	AuthorID  int64
	Title     string
	Category  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostActivity is the slice of a post the activity calendar needs.
type PostActivity struct {
	PostID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
