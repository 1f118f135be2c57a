package auth

import "time"

// User is an account that can sign in and host or join events.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `gorm:"not null" json:"firstName"`
	LastName     string `gorm:"not null" json:"lastName"`
	GroupID      uint   `gorm:"index" json:"groupId"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName is the "First Last" form used in notifications and event host labels.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
