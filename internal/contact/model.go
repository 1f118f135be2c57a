package contact

import "time"

// ContactMessage is a support request sent from the contact form.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
