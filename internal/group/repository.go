package group

import "gorm.io/gorm"

type Repository interface {
	Create(g *Group) error
	FindAll() ([]Group, error)
	FindByID(id uint) (*Group, error)
	FindByName(name string) (*Group, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(g *Group) error {
	return r.db.Create(g).Error
}

func (r *repository) FindAll() ([]Group, error) {
	var groups []Group
	err := r.db.Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *repository) FindByID(id uint) (*Group, error) {
	var g Group
	err := r.db.First(&g, id).Error
	return &g, err
}

func (r *repository) FindByName(name string) (*Group, error) {
	var g Group
	err := r.db.Where("name = ?", name).First(&g).Error
	return &g, err
}
