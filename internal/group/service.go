package group

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Service interface {
	Create(name string) (*Group, error)
	List() ([]Group, error)
	GetByID(id uint) (*Group, error)
	ResolveIDByName(name string) (uint, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service {
	return &service{r}
}

func (s *service) Create(name string) (*Group, error) {
	if name == "" {
		return nil, errors.New("group name is required")
	}
	g := &Group{Name: name}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) List() ([]Group, error) {
	return s.repo.FindAll()
}

func (s *service) GetByID(id uint) (*Group, error) {
	return s.repo.FindByID(id)
}

// ResolveIDByName maps a group name to its ID. An unknown name is an error,
// never a silent default.
func (s *service) ResolveIDByName(name string) (uint, error) {
	g, err := s.repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("unknown group %q", name)
		}
		return 0, err
	}
	return g.ID, nil
}
