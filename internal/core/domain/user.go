package domain

// User models a registered account. The password is kept only as a bcrypt
// hash; within this system a user is immutable after registration.
type User struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"size:255;not null"`
}

// TableName keeps the table name aligned with the existing schema.
func (User) TableName() string { return "users" }
