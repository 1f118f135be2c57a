package participant

import "gorm.io/gorm"

type Repository interface {
	Create(p *Participant) error
	FindAll() ([]Participant, error)
	FindByEventID(eventID uint) ([]Participant, error)
	FindByUserID(userID uint) ([]Participant, error)
	DeleteByEventID(eventID uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(p *Participant) error {
	return r.db.Create(p).Error
}

func (r *repository) FindAll() ([]Participant, error) {
	var links []Participant
	err := r.db.Find(&links).Error
	return links, err
}

func (r *repository) FindByEventID(eventID uint) ([]Participant, error) {
	var links []Participant
	err := r.db.Where("event_id = ?", eventID).Find(&links).Error
	return links, err
}

func (r *repository) FindByUserID(userID uint) ([]Participant, error) {
	var links []Participant
	err := r.db.Where("user_id = ?", userID).Find(&links).Error
	return links, err
}

func (r *repository) DeleteByEventID(eventID uint) error {
	return r.db.Where("event_id = ?", eventID).Delete(&Participant{}).Error
}
