package participant

type Service interface {
	Add(eventID, userID uint) (*Participant, error)
	List() ([]Participant, error)
	ListByEvent(eventID uint) ([]Participant, error)
	ListByUser(userID uint) ([]Participant, error)
	RemoveByEvent(eventID uint) error
}

type service struct{ repo Repository }

func NewService(r Repository) Service {
	return &service{r}
}

func (s *service) Add(eventID, userID uint) (*Participant, error) {
	p := &Participant{EventID: eventID, UserID: userID}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) List() ([]Participant, error) {
	return s.repo.FindAll()
}

func (s *service) ListByEvent(eventID uint) ([]Participant, error) {
	return s.repo.FindByEventID(eventID)
}

func (s *service) ListByUser(userID uint) ([]Participant, error) {
	return s.repo.FindByUserID(userID)
}

// RemoveByEvent clears the links of a deleted event.
func (s *service) RemoveByEvent(eventID uint) error {
	return s.repo.DeleteByEventID(eventID)
}
