package event

import (
	"time"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	DateStart   time.Time `gorm:"not null;index" json:"dateStart"`
	DateEnd     time.Time `gorm:"not null" json:"dateEnd"`
	RoomID      uint      `gorm:"not null;index" json:"roomId"`
	GroupID     uint      `gorm:"not null;index" json:"groupId"`
	StatusID    uint      `gorm:"not null;default:4;index" json:"statusId"`
	HostID      uint      `gorm:"not null;index" json:"hostId"`
	// HostName is denormalized so event cards render without a user lookup
	HostName  string    `gorm:"type:varchar(255);not null" json:"hostName"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Event) TableName() string {
	return "events"
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	DateStart   string `json:"dateStart" binding:"required"` // 🛠 RFC3339
	DateEnd     string `json:"dateEnd" binding:"required"`   // 🛠 RFC3339
	RoomID      uint   `json:"roomId"`
	RoomName    string `json:"roomName"`
	GroupID     uint   `json:"groupId"`
	// Participants are invited by email. Unknown addresses are skipped.
	ParticipantEmails []string `json:"participantEmails"`
}

// ============================
// 🟠 Update Status Request
type UpdateStatusRequest struct {
	StatusID uint `json:"statusId" binding:"required"`
}

// ============================
// 🔍 Listing filters
type Filters struct {
	GroupID  *uint
	StatusID *uint
	RoomID   *uint
	From     *time.Time
	To       *time.Time
}

// ============================
// 📄 Paginated event list
type PaginatedEvents struct {
	Data       []Event `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
