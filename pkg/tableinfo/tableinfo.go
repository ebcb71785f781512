package tableinfo

const (
	PostsTableName = "posts"

	PostIDColumn        = "id"
	PostAuthorIDColumn  = "author_id"
	PostTitleColumn     = "title"
	PostCategoryColumn  = "category"
	PostContentColumn   = "content"
	PostCreatedAtColumn = "created_at"
	PostUpdatedAtColumn = "updated_at"
)

const (
	CommentsTableName = "comments"

	CommentIDColumn        = "id"
	CommentPostIDColumn    = "post_id"
	CommentAuthorIDColumn  = "author_id"
	CommentParentIDColumn  = "parent_id"
	CommentContentColumn   = "content"
	CommentCreatedAtColumn = "created_at"
	CommentUpdatedAtColumn = "updated_at"
)

const (
	LikesTableName = "likes"

	LikeIDColumn        = "id"
	LikePostIDColumn    = "post_id"
	LikeUserIDColumn    = "user_id"
	LikeCreatedAtColumn = "created_at"
)
