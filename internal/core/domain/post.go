package domain

import "time"

// Post is a blog entry owned by exactly one user. Title and content are the
// only mutable fields; CreatorID and Timestamp are fixed at creation.
type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatorID int64     `json:"creator_id" gorm:"not null;index"`
	Creator   *User     `json:"-" gorm:"foreignKey:CreatorID"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

// TableName keeps the table name aligned with the existing schema.
func (Post) TableName() string { return "posts" }
