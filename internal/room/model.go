package room

// Room is a bookable meeting room.
type Room struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Room) TableName() string {
	return "rooms"
}
