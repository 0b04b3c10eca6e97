package models

// User is a staff account able to sign in to the relief desk.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never exposed in JSON
	// Role is free text ("admin", "volunteer", ...); nothing enforces a closed set.
	Role string `gorm:"size:50" json:"role"`
}

func (User) TableName() string { return "users" }
