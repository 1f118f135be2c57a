package room

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Service interface {
	Create(name string) (*Room, error)
	List() ([]Room, error)
	GetByID(id uint) (*Room, error)
	ResolveIDByName(name string) (uint, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service {
	return &service{r}
}

func (s *service) Create(name string) (*Room, error) {
	if name == "" {
		return nil, errors.New("room name is required")
	}
	room := &Room{Name: name}
	if err := s.repo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *service) List() ([]Room, error) {
	return s.repo.FindAll()
}

func (s *service) GetByID(id uint) (*Room, error) {
	return s.repo.FindByID(id)
}

// ResolveIDByName maps a room name to its ID. An unknown name is an error,
// never a silent default.
func (s *service) ResolveIDByName(name string) (uint, error) {
	room, err := s.repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("unknown room %q", name)
		}
		return 0, err
	}
	return room.ID, nil
}
