package model

import "time"

type Like struct {
	ID        int64
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

type LikeState struct {
	Liked bool
	Count int
}
