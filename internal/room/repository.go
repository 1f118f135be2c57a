package room

import "gorm.io/gorm"

type Repository interface {
	Create(room *Room) error
	FindAll() ([]Room, error)
	FindByID(id uint) (*Room, error)
	FindByName(name string) (*Room, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(room *Room) error {
	return r.db.Create(room).Error
}

func (r *repository) FindAll() ([]Room, error) {
	var rooms []Room
	err := r.db.Order("name ASC").Find(&rooms).Error
	return rooms, err
}

func (r *repository) FindByID(id uint) (*Room, error) {
	var room Room
	err := r.db.First(&room, id).Error
	return &room, err
}

func (r *repository) FindByName(name string) (*Room, error) {
	var room Room
	err := r.db.Where("name = ?", name).First(&room).Error
	return &room, err
}
