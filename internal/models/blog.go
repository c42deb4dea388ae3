package models

// BlogPost is stored at blogs/{authorId}/{postId}. Timestamp is assigned by the store.
type BlogPost struct {
	ID         string `json:"id,omitempty"`
	AuthorID   string `json:"authorId" validate:"required"`
	AuthorName string `json:"authorName"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Timestamp  int64  `json:"timestamp"`
}
