package models

import "time"

// Article is a published piece under a topic. Votes move by relative
// increments and may go negative; nothing clamps them.
//
// CommentCount is not a column: list and detail queries compute it with a
// LEFT JOIN against comments and return it as text, so an article with no
// comments carries "0". Body and CommentCount are omitted from JSON when a
// query did not select them (listing drops body, the vote update drops the
// count). Body is a pointer so a selected-but-empty body still serializes.
type Article struct {
	ArticleID     uint      `gorm:"column:article_id;primaryKey" json:"article_id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Topic         string    `gorm:"size:64;not null;index" json:"topic"`
	Author        string    `gorm:"size:64;not null;index" json:"author"`
	Body          *string   `gorm:"type:text" json:"body,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	Votes         int       `gorm:"not null;default:100" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url;size:1024" json:"article_img_url"`
	CommentCount  string    `gorm:"->" json:"comment_count,omitempty"`
}
