package models

import "time"

// Comment is a reply to an article. The store assigns comment_id and
// created_at on insert; votes start at 0.
type Comment struct {
	CommentID uint      `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ArticleID uint      `gorm:"column:article_id;not null;index" json:"article_id"`
	Author    string    `gorm:"size:64;not null;index" json:"author"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}
