package models

import (
	"time"

	"github.com/lib/pq"
)

// Post categories accepted by the community board.
const (
	CategoryDiscussion   = "discussion"
	CategoryQuestion     = "question"
	CategoryAnnouncement = "announcement"
)

// CommunityPost is a board entry. author_name is a snapshot of the author's
// name at posting time.
type CommunityPost struct {
	ID         string         `db:"id" json:"id"`
	AuthorID   string         `db:"author_id" json:"author_id"`
	AuthorName string         `db:"author_name" json:"author_name"`
	Title      string         `db:"title" json:"title"`
	Content    string         `db:"content" json:"content"`
	Category   string         `db:"category" json:"category"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	Likes      int            `db:"likes" json:"likes"`
	Replies    pq.StringArray `db:"replies" json:"replies"`
}

// CreatePostRequest is the payload for creating a community post.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required,oneof=discussion question announcement"`
}
