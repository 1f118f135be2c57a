package auth

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(userID uint) (User, error)
	FindByGroupID(groupID uint) ([]User, error)
	FindAll() ([]User, error)
	FindByIDs(ids []uint) ([]User, error)
	Update(user *User) error
	CountAdmins() (int64, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Create a new user
func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

// Find user by email (used in login & participant resolution)
func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.Where("email = ?", email).First(&u).Error
	return &u, err
}

// Find user by ID
func (r *repository) FindByID(userID uint) (User, error) {
	var user User
	err := r.db.First(&user, userID).Error
	return user, err
}

// Find all members of a group
func (r *repository) FindByGroupID(groupID uint) ([]User, error) {
	var users []User
	err := r.db.Where("group_id = ?", groupID).Order("last_name ASC").Find(&users).Error
	return users, err
}

// Find all users
func (r *repository) FindAll() ([]User, error) {
	var users []User
	err := r.db.Order("last_name ASC").Find(&users).Error
	return users, err
}

// Find users by a set of IDs
func (r *repository) FindByIDs(ids []uint) ([]User, error) {
	var users []User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// Update an existing user
func (r *repository) Update(user *User) error {
	return r.db.Save(user).Error
}

// CountAdmins counts accounts carrying the admin flag
func (r *repository) CountAdmins() (int64, error) {
	var count int64
	err := r.db.Model(&User{}).Where("is_admin = ?", true).Count(&count).Error
	return count, err
}
