package models

// User is keyed by username, which articles and comments reference as
// their author. Users are read-only through this API.
type User struct {
	Username  string `gorm:"primaryKey;size:64" json:"username"`
	Name      string `gorm:"size:128" json:"name"`
	AvatarURL string `gorm:"column:avatar_url;size:512" json:"avatar_url"`
}
