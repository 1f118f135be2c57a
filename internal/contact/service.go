package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/uniteam/uniteam-backend/internal/notification"
)

type Service interface {
	Submit(ctx context.Context, email, subject, message string) (*ContactMessage, error)
	List() ([]ContactMessage, error)
}

type service struct {
	repo         Repository
	notifSvc     notification.Service
	supportEmail string
}

func NewService(repo Repository, notifSvc notification.Service, supportEmail string) Service {
	return &service{repo: repo, notifSvc: notifSvc, supportEmail: supportEmail}
}

// Submit stores the message under a unique reference and forwards it to
// the support inbox. The reference goes back to the sender for follow-up.
func (s *service) Submit(ctx context.Context, email, subject, message string) (*ContactMessage, error) {
	if subject == "" || message == "" {
		return nil, errors.New("subject and message are required")
	}

	m := &ContactMessage{
		Reference: uuid.NewString(),
		Email:     email,
		Subject:   subject,
		Message:   message,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}

	if s.supportEmail != "" {
		body := fmt.Sprintf("Référence : %s\nDe : %s\n\n%s", m.Reference, email, message)
		if err := s.notifSvc.SendEmail(ctx, []string{s.supportEmail}, "[Contact] "+subject, body); err != nil {
			fmt.Printf("❌ Failed to forward contact message %s: %v\n", m.Reference, err)
		}
	}

	return m, nil
}

func (s *service) List() ([]ContactMessage, error) {
	return s.repo.FindAll()
}
