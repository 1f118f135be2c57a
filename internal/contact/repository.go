package contact

import "gorm.io/gorm"

type Repository interface {
	Create(m *ContactMessage) error
	FindAll() ([]ContactMessage, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(m *ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *repository) FindAll() ([]ContactMessage, error) {
	var messages []ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
