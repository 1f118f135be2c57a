package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/uniteam/uniteam-backend/internal/auth"
	"github.com/uniteam/uniteam-backend/internal/event"
	"github.com/uniteam/uniteam-backend/internal/notification"
	"github.com/uniteam/uniteam-backend/internal/participant"
)

// Scheduler emails hosts and participants about events starting in the
// next 24 hours. One pass per day, at 07:00.
type Scheduler struct {
	EventRepo      event.Repository
	AuthRepo       auth.Repository
	ParticipantSvc participant.Service
	NotifSvc       notification.Service

	cron *cron.Cron
}

func NewScheduler(
	eventRepo event.Repository,
	authRepo auth.Repository,
	participantSvc participant.Service,
	notifSvc notification.Service,
) *Scheduler {
	return &Scheduler{
		EventRepo:      eventRepo,
		AuthRepo:       authRepo,
		ParticipantSvc: participantSvc,
		NotifSvc:       notifSvc,
		cron:           cron.New(),
	}
}

// Start registers the daily job and launches the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 7 * * *", func() {
		if err := s.RunOnce(context.Background()); err != nil {
			log.Printf("❌ Reminder pass failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Println("⏰ Reminder scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce sends reminders for events starting within the next 24 hours.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	now := time.Now().UTC()
	events, err := s.EventRepo.ListEventsStartingBetween(now, now.Add(24*time.Hour))
	if err != nil {
		return err
	}

	for _, e := range events {
		// Cancelled and rejected bookings get no reminder
		if e.StatusID == 2 || e.StatusID == 3 {
			continue
		}

		recipients := s.collectEmails(e)
		if len(recipients) == 0 {
			continue
		}

		subject := fmt.Sprintf("Rappel : %s", e.Name)
		body := fmt.Sprintf(
			"Bonjour,\n\nL'événement \"%s\" commence le %s.\n\nÀ bientôt sur UniTeam !",
			e.Name, e.DateStart.Format("02/01/2006 à 15:04"),
		)
		if err := s.NotifSvc.SendEmail(ctx, recipients, subject, body); err != nil {
			log.Printf("❌ Reminder email failed for event %d: %v", e.ID, err)
		}
	}

	return nil
}

func (s *Scheduler) collectEmails(e event.Event) []string {
	ids := []uint{e.HostID}
	if links, err := s.ParticipantSvc.ListByEvent(e.ID); err == nil {
		for _, link := range links {
			if link.UserID != e.HostID {
				ids = append(ids, link.UserID)
			}
		}
	}

	users, err := s.AuthRepo.FindByIDs(ids)
	if err != nil {
		return nil
	}
	emails := make([]string, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
	}
	return emails
}
