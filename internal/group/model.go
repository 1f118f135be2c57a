package group

// Group is a team whose members share a calendar.
type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Group) TableName() string {
	return "groups"
}
