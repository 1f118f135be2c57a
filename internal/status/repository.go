package status

import "gorm.io/gorm"

type Repository interface {
	FindAll() ([]Status, error)
	FindByID(id uint) (*Status, error)
	FindByName(name string) (*Status, error)
	Seed(statuses []Status) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) FindAll() ([]Status, error) {
	var statuses []Status
	err := r.db.Order("id ASC").Find(&statuses).Error
	return statuses, err
}

func (r *repository) FindByID(id uint) (*Status, error) {
	var s Status
	err := r.db.First(&s, id).Error
	return &s, err
}

func (r *repository) FindByName(name string) (*Status, error) {
	var s Status
	err := r.db.Where("name = ?", name).First(&s).Error
	return &s, err
}

// Seed inserts the catalog rows if they are missing, keeping fixed IDs.
func (r *repository) Seed(statuses []Status) error {
	for _, s := range statuses {
		if err := r.db.FirstOrCreate(&Status{}, s).Error; err != nil {
			return err
		}
	}
	return nil
}
