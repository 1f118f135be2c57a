package event

import (
	"time"

	"gorm.io/gorm"

	"github.com/uniteam/uniteam-backend/internal/pagination"
)

type Repository interface {
	CreateEvent(e *Event) error
	GetEventByID(id uint) (*Event, error)
	ListEvents(f Filters) ([]Event, error)
	ListEventsPaginated(f Filters, page, limit int) ([]Event, int64, error)
	ListEventsBetween(from, to time.Time, groupID *uint) ([]Event, error)
	ListEventsStartingBetween(from, to time.Time) ([]Event, error)
	UpdateEvent(e *Event) error
	DeleteEvent(id uint) error
	CountByStatus() (map[uint]int64, error)
}

type repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{DB: db}
}

// ===========================
// 🎯 Create Event
func (r *repository) CreateEvent(e *Event) error {
	return r.DB.Create(e).Error
}

// ===========================
// 🔍 Get Event By ID
func (r *repository) GetEventByID(id uint) (*Event, error) {
	var e Event
	err := r.DB.First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 📄 List Events with optional filters
func (r *repository) ListEvents(f Filters) ([]Event, error) {
	var events []Event

	query := r.DB.Model(&Event{})
	if f.GroupID != nil {
		query = query.Where("group_id = ?", *f.GroupID)
	}
	if f.StatusID != nil {
		query = query.Where("status_id = ?", *f.StatusID)
	}
	if f.RoomID != nil {
		query = query.Where("room_id = ?", *f.RoomID)
	}
	if f.From != nil {
		query = query.Where("date_end >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("date_start <= ?", *f.To)
	}

	err := query.Order("date_start ASC").Find(&events).Error
	return events, err
}

// ===========================
// 📄 List Events paginated
func (r *repository) ListEventsPaginated(f Filters, page, limit int) ([]Event, int64, error) {
	var events []Event
	var total int64

	query := r.DB.Model(&Event{})
	if f.GroupID != nil {
		query = query.Where("group_id = ?", *f.GroupID)
	}
	if f.StatusID != nil {
		query = query.Where("status_id = ?", *f.StatusID)
	}
	if f.RoomID != nil {
		query = query.Where("room_id = ?", *f.RoomID)
	}
	if f.From != nil {
		query = query.Where("date_end >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("date_start <= ?", *f.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date_start ASC").
		Scopes(pagination.Paginate(page, limit)).
		Find(&events).Error
	return events, total, err
}

// ===========================
// 📆 Events overlapping a time window (calendar month view)
func (r *repository) ListEventsBetween(from, to time.Time, groupID *uint) ([]Event, error) {
	var events []Event

	query := r.DB.Where("date_start <= ? AND date_end >= ?", to, from)
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}

	err := query.Order("date_start ASC").Find(&events).Error
	return events, err
}

// ===========================
// 📆 Events starting inside a window (daily reminders)
func (r *repository) ListEventsStartingBetween(from, to time.Time) ([]Event, error) {
	var events []Event
	err := r.DB.Where("date_start >= ? AND date_start < ?", from, to).
		Order("date_start ASC").
		Find(&events).Error
	return events, err
}

// ===========================
// ✏️ Update Event
func (r *repository) UpdateEvent(e *Event) error {
	return r.DB.Save(e).Error
}

// ===========================
// 🗑 Delete Event
func (r *repository) DeleteEvent(id uint) error {
	return r.DB.Delete(&Event{}, id).Error
}

// ===========================
// 📊 Count events per status (reports)
func (r *repository) CountByStatus() (map[uint]int64, error) {
	type row struct {
		StatusID uint
		Count    int64
	}
	var rows []row
	err := r.DB.Model(&Event{}).
		Select("status_id, COUNT(*) as count").
		Group("status_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.StatusID] = r.Count
	}
	return counts, nil
}
