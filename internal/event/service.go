package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uniteam/uniteam-backend/internal/auditlog"
	"github.com/uniteam/uniteam-backend/internal/auth"
	"github.com/uniteam/uniteam-backend/internal/notification"
	"github.com/uniteam/uniteam-backend/internal/pagination"
	"github.com/uniteam/uniteam-backend/internal/participant"
	"github.com/uniteam/uniteam-backend/internal/room"
	"github.com/uniteam/uniteam-backend/internal/status"
	"github.com/uniteam/uniteam-backend/middleware"
)

// Service wraps the booking workflow: creating events, status decisions and
// the notification fan-out that follows each change.
type Service struct {
	Repo           Repository
	AuthRepo       auth.Repository
	ParticipantSvc participant.Service
	NotifSvc       notification.Service
	StatusSvc      status.Service
	RoomSvc        room.Service
	AuditSvc       auditlog.Service
}

func NewService(
	r Repository,
	authRepo auth.Repository,
	participantSvc participant.Service,
	notifSvc notification.Service,
	statusSvc status.Service,
	roomSvc room.Service,
	auditSvc auditlog.Service,
) *Service {
	return &Service{
		Repo:           r,
		AuthRepo:       authRepo,
		ParticipantSvc: participantSvc,
		NotifSvc:       notifSvc,
		StatusSvc:      statusSvc,
		RoomSvc:        roomSvc,
		AuditSvc:       auditSvc,
	}
}

// ===========================
// 🎯 Create Event
//
// Validation happens before anything is written. Once the event row exists,
// the fan-out below proceeds one recipient at a time and a failure leaves
// the earlier effects in place: there is no rollback of a booked event
// because an invitation could not be recorded.
func (s *Service) CreateEvent(ctx context.Context, session middleware.Session, req *CreateEventRequest, ip string) (*Event, error) {
	dateStart, err := time.Parse(time.RFC3339, req.DateStart)
	if err != nil {
		return nil, errors.New("invalid dateStart format, use RFC3339")
	}
	dateEnd, err := time.Parse(time.RFC3339, req.DateEnd)
	if err != nil {
		return nil, errors.New("invalid dateEnd format, use RFC3339")
	}
	if !dateStart.Before(dateEnd) {
		return nil, errors.New("event must end after it starts")
	}

	// Room comes either as an ID or a name to resolve. An unknown name is
	// a hard error, never a silent default.
	roomID := req.RoomID
	if roomID == 0 {
		if req.RoomName == "" {
			return nil, errors.New("roomId or roomName is required")
		}
		roomID, err = s.RoomSvc.ResolveIDByName(req.RoomName)
		if err != nil {
			return nil, err
		}
	}

	groupID := req.GroupID
	if groupID == 0 {
		groupID = session.GroupID
	}

	// Admin bookings are validated immediately, member bookings wait for
	// an admin decision.
	var statusID uint
	if session.IsAdmin {
		statusID = s.StatusSvc.ResolveValidatedID(ctx)
	} else {
		statusID = s.StatusSvc.ResolvePendingID(ctx)
	}

	event := &Event{
		Name:        req.Name,
		Description: req.Description,
		DateStart:   dateStart,
		DateEnd:     dateEnd,
		RoomID:      roomID,
		GroupID:     groupID,
		StatusID:    statusID,
		HostID:      session.UserID,
		HostName:    session.DisplayName,
	}

	if err := s.Repo.CreateEvent(event); err != nil {
		s.AuditSvc.LogAction(ctx, &session.UserID, nil, "EVENT_CREATED",
			map[string]interface{}{
				"name":  req.Name,
				"error": err.Error(),
			}, ip, "failure")
		return nil, errors.New("failed to create event")
	}

	// Invite participants one by one, in the order given. Unknown emails
	// are skipped without failing the booking.
	var invited []string
	for _, email := range req.ParticipantEmails {
		user, err := s.AuthRepo.FindByEmail(email)
		if err != nil {
			continue
		}
		if _, err := s.ParticipantSvc.Add(event.ID, user.ID); err != nil {
			fmt.Printf("❌ Failed to add participant %s to event %d: %v\n", email, event.ID, err)
			continue
		}
		if _, err := s.NotifSvc.Notify(ctx, user.ID, participantInvitedMessage(event.Name)); err != nil {
			fmt.Printf("❌ Participant notification failed for event %d: %v\n", event.ID, err)
		}
		invited = append(invited, user.Email)
	}

	if len(invited) > 0 {
		subject := fmt.Sprintf("Invitation : %s", event.Name)
		body := fmt.Sprintf(
			"Bonjour,\n\n%s vous invite à l'événement \"%s\" du %s au %s.\n\nConnectez-vous à UniTeam pour plus de détails.",
			event.HostName, event.Name,
			event.DateStart.Format("02/01/2006 15:04"),
			event.DateEnd.Format("02/01/2006 15:04"),
		)
		if err := s.NotifSvc.SendEmail(ctx, invited, subject, body); err != nil {
			fmt.Printf("❌ Invitation email failed for event %d: %v\n", event.ID, err)
		}
	}

	// The host hears last, once everyone is invited, so their summary
	// reflects the booking as it now stands.
	if _, err := s.NotifSvc.Notify(ctx, event.HostID, hostStatusMessage(event.StatusID, event.Name)); err != nil {
		fmt.Printf("❌ Host notification failed for event %d: %v\n", event.ID, err)
	}

	s.AuditSvc.LogAction(ctx, &session.UserID, &event.ID, "EVENT_CREATED",
		map[string]interface{}{
			"name":         event.Name,
			"room_id":      event.RoomID,
			"status_id":    event.StatusID,
			"participants": len(invited),
		}, ip, "success")

	return event, nil
}

// ===========================
// 📄 List Events
//
// Members never see rejected or cancelled bookings, admins see everything.
func (s *Service) ListEvents(session middleware.Session, f Filters) ([]Event, error) {
	events, err := s.Repo.ListEvents(f)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin {
		events = MemberVisible(events)
	}
	return events, nil
}

// ListEventsPaged pages the filtered list. Admins page at the database;
// members page over the visible list in memory because the hidden statuses
// are a view rule applied after the query.
func (s *Service) ListEventsPaged(session middleware.Session, f Filters, page, limit int) (*PaginatedEvents, error) {
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}

	if !session.IsAdmin {
		events, err := s.Repo.ListEvents(f)
		if err != nil {
			return nil, err
		}
		events = MemberVisible(events)

		total := int64(len(events))
		totalPages := pagination.TotalPages(total, limit)
		page = pagination.Clamp(page, totalPages)
		start, end := pagination.Bounds(page, limit, len(events))
		return &PaginatedEvents{
			Data:       events[start:end],
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		}, nil
	}

	events, total, err := s.Repo.ListEventsPaginated(f, page, limit)
	if err != nil {
		return nil, err
	}
	totalPages := pagination.TotalPages(total, limit)
	if clamped := pagination.Clamp(page, totalPages); clamped != page {
		// Past the end, serve the last page instead of an empty one
		page = clamped
		if events, total, err = s.Repo.ListEventsPaginated(f, page, limit); err != nil {
			return nil, err
		}
	}
	return &PaginatedEvents{
		Data:       events,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) GetEvent(id uint) (*Event, error) {
	return s.Repo.GetEventByID(id)
}

// ===========================
// 📊 Bookings per status (admin dashboard)
//
// Counts are keyed by the catalog name so the dashboard renders them
// without a second lookup.
func (s *Service) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := s.Repo.CountByStatus()
	if err != nil {
		return nil, err
	}

	statuses, err := s.StatusSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(statuses))
	for _, st := range statuses {
		out[st.Name] = counts[st.ID]
		delete(counts, st.ID)
	}
	// Rows with a status missing from the catalog stay visible
	for id, n := range counts {
		out[fmt.Sprintf("status-%d", id)] = n
	}
	return out, nil
}

// ===========================
// ✅ Update Status (admin decision)
func (s *Service) UpdateStatus(ctx context.Context, session middleware.Session, eventID uint, statusID uint, ip string) (*Event, error) {
	if _, err := s.StatusSvc.GetByID(ctx, statusID); err != nil {
		return nil, err
	}

	event, err := s.Repo.GetEventByID(eventID)
	if err != nil {
		return nil, errors.New("event not found")
	}

	event.StatusID = statusID
	if err := s.Repo.UpdateEvent(event); err != nil {
		s.AuditSvc.LogAction(ctx, &session.UserID, &eventID, "EVENT_STATUS_UPDATED",
			map[string]interface{}{
				"status_id": statusID,
				"error":     err.Error(),
			}, ip, "failure")
		return nil, errors.New("failed to update event status")
	}

	// Fan-out, host first, then each participant in stored order. The
	// host is skipped in the participant pass so they are told once.
	if _, err := s.NotifSvc.Notify(ctx, event.HostID, hostStatusMessage(statusID, event.Name)); err != nil {
		fmt.Printf("❌ Host notification failed for event %d: %v\n", event.ID, err)
	}
	if err := s.NotifSvc.PushStatusChange(ctx, event.HostID, hostStatusMessage(statusID, event.Name)); err != nil {
		fmt.Printf("❌ Status feed push failed for event %d: %v\n", event.ID, err)
	}

	links, err := s.ParticipantSvc.ListByEvent(event.ID)
	if err != nil {
		fmt.Printf("❌ Failed to load participants of event %d: %v\n", event.ID, err)
		links = nil
	}
	for _, link := range links {
		if link.UserID == event.HostID {
			continue
		}
		if _, err := s.NotifSvc.Notify(ctx, link.UserID, participantStatusMessage(statusID, event.Name)); err != nil {
			fmt.Printf("❌ Participant notification failed for event %d: %v\n", event.ID, err)
		}
		if err := s.NotifSvc.PushStatusChange(ctx, link.UserID, participantStatusMessage(statusID, event.Name)); err != nil {
			fmt.Printf("❌ Status feed push failed for event %d: %v\n", event.ID, err)
		}
	}

	s.AuditSvc.LogAction(ctx, &session.UserID, &event.ID, "EVENT_STATUS_UPDATED",
		map[string]interface{}{
			"name":      event.Name,
			"status_id": statusID,
		}, ip, "success")

	return event, nil
}

// ===========================
// 🗑 Delete Event
//
// Only an admin or the host may delete. Participants are read before the
// row disappears so the goodbye notices still know who to reach.
func (s *Service) DeleteEvent(ctx context.Context, session middleware.Session, eventID uint, ip string) error {
	event, err := s.Repo.GetEventByID(eventID)
	if err != nil {
		return errors.New("event not found")
	}

	if !session.CanManageEvent(event.HostID) {
		s.AuditSvc.LogAction(ctx, &session.UserID, &eventID, "EVENT_DELETED",
			map[string]interface{}{
				"name":  event.Name,
				"error": "not host or admin",
			}, ip, "failure")
		return errors.New("only the host or an admin can delete this event")
	}

	links, err := s.ParticipantSvc.ListByEvent(event.ID)
	if err != nil {
		fmt.Printf("❌ Failed to load participants of event %d: %v\n", event.ID, err)
		links = nil
	}

	if err := s.Repo.DeleteEvent(event.ID); err != nil {
		s.AuditSvc.LogAction(ctx, &session.UserID, &eventID, "EVENT_DELETED",
			map[string]interface{}{
				"name":  event.Name,
				"error": err.Error(),
			}, ip, "failure")
		return errors.New("failed to delete event")
	}

	if err := s.ParticipantSvc.RemoveByEvent(event.ID); err != nil {
		fmt.Printf("❌ Failed to remove participant links of event %d: %v\n", event.ID, err)
	}

	if _, err := s.NotifSvc.Notify(ctx, event.HostID, hostDeletedMessage(event.Name)); err != nil {
		fmt.Printf("❌ Host notification failed for event %d: %v\n", event.ID, err)
	}
	for _, link := range links {
		if link.UserID == event.HostID {
			continue
		}
		if _, err := s.NotifSvc.Notify(ctx, link.UserID, participantDeletedMessage(event.Name)); err != nil {
			fmt.Printf("❌ Participant notification failed for event %d: %v\n", event.ID, err)
		}
	}

	s.AuditSvc.LogAction(ctx, &session.UserID, &eventID, "EVENT_DELETED",
		map[string]interface{}{
			"name":         event.Name,
			"participants": len(links),
		}, ip, "success")

	return nil
}
