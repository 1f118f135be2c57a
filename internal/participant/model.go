package participant

// Participant links a user to an event they were invited to.
type Participant struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	EventID uint `gorm:"index;not null" json:"eventId"`
	UserID  uint `gorm:"index;not null" json:"userId"`
}

func (Participant) TableName() string {
	return "participants"
}
