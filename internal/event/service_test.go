package event

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uniteam/uniteam-backend/internal/auditlog"
	"github.com/uniteam/uniteam-backend/internal/auth"
	"github.com/uniteam/uniteam-backend/internal/notification"
	"github.com/uniteam/uniteam-backend/internal/pagination"
	"github.com/uniteam/uniteam-backend/internal/participant"
	"github.com/uniteam/uniteam-backend/internal/room"
	"github.com/uniteam/uniteam-backend/internal/status"
	"github.com/uniteam/uniteam-backend/middleware"
)

// ===========================
// 🧪 In-memory fakes

type fakeEventRepo struct {
	events  map[uint]*Event
	nextID  uint
	created []*Event
	deleted []uint
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uint]*Event{}, nextID: 1}
}

func (r *fakeEventRepo) CreateEvent(e *Event) error {
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.events[e.ID] = &cp
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeEventRepo) GetEventByID(id uint) (*Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEventRepo) ListEvents(f Filters) ([]Event, error) {
	var out []Event
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return ApplyFilters(out, f), nil
}

func (r *fakeEventRepo) ListEventsPaginated(f Filters, page, limit int) ([]Event, int64, error) {
	out, err := r.ListEvents(f)
	if err != nil {
		return nil, 0, err
	}
	// plain offset/limit, a page past the end comes back empty
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start > len(out) {
		start = len(out)
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], int64(len(out)), nil
}

func (r *fakeEventRepo) ListEventsBetween(from, to time.Time, groupID *uint) ([]Event, error) {
	return r.ListEvents(Filters{From: &from, To: &to, GroupID: groupID})
}

func (r *fakeEventRepo) ListEventsStartingBetween(from, to time.Time) ([]Event, error) {
	var out []Event
	for _, e := range r.events {
		if !e.DateStart.Before(from) && e.DateStart.Before(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) UpdateEvent(e *Event) error {
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) DeleteEvent(id uint) error {
	delete(r.events, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeEventRepo) CountByStatus() (map[uint]int64, error) {
	out := map[uint]int64{}
	for _, e := range r.events {
		out[e.StatusID]++
	}
	return out, nil
}

type fakeAuthRepo struct {
	usersByEmail map[string]*auth.User
}

func (r *fakeAuthRepo) Create(user *auth.User) error { return nil }
func (r *fakeAuthRepo) FindByEmail(email string) (*auth.User, error) {
	u, ok := r.usersByEmail[email]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}
func (r *fakeAuthRepo) FindByID(userID uint) (auth.User, error)       { return auth.User{}, errors.New("record not found") }
func (r *fakeAuthRepo) FindByGroupID(groupID uint) ([]auth.User, error) { return nil, nil }
func (r *fakeAuthRepo) FindAll() ([]auth.User, error)                 { return nil, nil }
func (r *fakeAuthRepo) FindByIDs(ids []uint) ([]auth.User, error)     { return nil, nil }
func (r *fakeAuthRepo) Update(user *auth.User) error                  { return nil }
func (r *fakeAuthRepo) CountAdmins() (int64, error)                   { return 0, nil }

type fakeParticipantSvc struct {
	links  []participant.Participant
	addErr error
}

func (s *fakeParticipantSvc) Add(eventID, userID uint) (*participant.Participant, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	p := participant.Participant{ID: uint(len(s.links) + 1), EventID: eventID, UserID: userID}
	s.links = append(s.links, p)
	return &p, nil
}
func (s *fakeParticipantSvc) List() ([]participant.Participant, error) { return s.links, nil }
func (s *fakeParticipantSvc) ListByEvent(eventID uint) ([]participant.Participant, error) {
	var out []participant.Participant
	for _, l := range s.links {
		if l.EventID == eventID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (s *fakeParticipantSvc) ListByUser(userID uint) ([]participant.Participant, error) {
	return nil, nil
}
func (s *fakeParticipantSvc) RemoveByEvent(eventID uint) error {
	kept := s.links[:0]
	for _, l := range s.links {
		if l.EventID != eventID {
			kept = append(kept, l)
		}
	}
	s.links = kept
	return nil
}

type sentNotif struct {
	UserID  uint
	Message string
}

type fakeNotifSvc struct {
	notified []sentNotif
	pushed   []sentNotif
	emails   []notification.EmailMessage
}

func (s *fakeNotifSvc) Notify(ctx context.Context, userID uint, message string) (*notification.Notification, error) {
	s.notified = append(s.notified, sentNotif{userID, message})
	return &notification.Notification{UserID: userID, Message: message}, nil
}
func (s *fakeNotifSvc) ListByUser(ctx context.Context, userID uint) ([]notification.Notification, error) {
	return nil, nil
}
func (s *fakeNotifSvc) Delete(ctx context.Context, id uint, userID uint) error { return nil }
func (s *fakeNotifSvc) ClearByUser(ctx context.Context, userID uint) error     { return nil }
func (s *fakeNotifSvc) SendEmail(ctx context.Context, to []string, subject, body string) error {
	s.emails = append(s.emails, notification.EmailMessage{To: to, Subject: subject, Body: body})
	return nil
}
func (s *fakeNotifSvc) PushStatusChange(ctx context.Context, userID uint, message string) error {
	s.pushed = append(s.pushed, sentNotif{userID, message})
	return nil
}
func (s *fakeNotifSvc) ListStatusFeed(ctx context.Context, userID uint) ([]string, error) {
	return nil, nil
}
func (s *fakeNotifSvc) ClearStatusFeed(ctx context.Context, userID uint) error { return nil }

type fakeStatusSvc struct{}

func (s *fakeStatusSvc) List(ctx context.Context) ([]status.Status, error) {
	return []status.Status{
		{ID: 1, Name: status.NameValidated},
		{ID: 2, Name: status.NameRejected},
		{ID: 3, Name: status.NameCancelled},
		{ID: 4, Name: status.NamePending},
	}, nil
}
func (s *fakeStatusSvc) GetByID(ctx context.Context, id uint) (*status.Status, error) {
	all, _ := s.List(ctx)
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, errors.New("status not found")
}
func (s *fakeStatusSvc) ResolveValidatedID(ctx context.Context) uint { return 1 }
func (s *fakeStatusSvc) ResolvePendingID(ctx context.Context) uint   { return 4 }
func (s *fakeStatusSvc) Seed() error                                 { return nil }

type fakeRoomSvc struct {
	rooms map[string]uint
}

func (s *fakeRoomSvc) Create(name string) (*room.Room, error) { return nil, nil }
func (s *fakeRoomSvc) List() ([]room.Room, error)             { return nil, nil }
func (s *fakeRoomSvc) GetByID(id uint) (*room.Room, error)    { return nil, nil }
func (s *fakeRoomSvc) ResolveIDByName(name string) (uint, error) {
	id, ok := s.rooms[name]
	if !ok {
		return 0, errors.New("unknown room \"" + name + "\"")
	}
	return id, nil
}

type auditEntry struct {
	Action string
	Status string
}

type fakeAuditSvc struct {
	entries []auditEntry
}

func (s *fakeAuditSvc) LogAction(ctx context.Context, userID *uint, eventID *uint, action string, details map[string]interface{}, ip string, st string) error {
	s.entries = append(s.entries, auditEntry{Action: action, Status: st})
	return nil
}
func (s *fakeAuditSvc) GetAuditLogs(ctx context.Context, filter auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}
func (s *fakeAuditSvc) GetAuditLogByID(ctx context.Context, id uint) (*auditlog.AuditLogResponse, error) {
	return nil, nil
}

type fixture struct {
	svc    *Service
	repo   *fakeEventRepo
	auth   *fakeAuthRepo
	parts  *fakeParticipantSvc
	notifs *fakeNotifSvc
	audit  *fakeAuditSvc
}

func newFixture() *fixture {
	f := &fixture{
		repo:   newFakeEventRepo(),
		auth:   &fakeAuthRepo{usersByEmail: map[string]*auth.User{}},
		parts:  &fakeParticipantSvc{},
		notifs: &fakeNotifSvc{},
		audit:  &fakeAuditSvc{},
	}
	f.svc = NewService(f.repo, f.auth, f.parts, f.notifs, &fakeStatusSvc{},
		&fakeRoomSvc{rooms: map[string]uint{"Salle B12": 3}}, f.audit)
	return f
}

func memberSession() middleware.Session {
	return middleware.Session{UserID: 10, Email: "alice@uniteam.fr", DisplayName: "Alice Martin", GroupID: 1}
}

func adminSession() middleware.Session {
	return middleware.Session{UserID: 1, Email: "admin@uniteam.fr", DisplayName: "Admin UniTeam", GroupID: 1, IsAdmin: true}
}

func validRequest() *CreateEventRequest {
	return &CreateEventRequest{
		Name:      "Réunion équipe",
		DateStart: "2025-09-01T09:00:00Z",
		DateEnd:   "2025-09-01T10:00:00Z",
		RoomID:    3,
	}
}

// ===========================
// 🎯 Create Event

func TestCreateEvent_RejectsEndBeforeStart(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.DateStart = "2025-09-01T10:00:00Z"
	req.DateEnd = "2025-09-01T09:00:00Z"

	_, err := f.svc.CreateEvent(context.Background(), memberSession(), req, "127.0.0.1")
	assert.EqualError(t, err, "event must end after it starts")
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.notifs.notified)
}

func TestCreateEvent_RejectsZeroDuration(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.DateEnd = req.DateStart

	_, err := f.svc.CreateEvent(context.Background(), memberSession(), req, "127.0.0.1")
	assert.Error(t, err)
	assert.Empty(t, f.repo.created)
}

func TestCreateEvent_RejectsBadDateFormat(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.DateStart = "01/09/2025 09:00"

	_, err := f.svc.CreateEvent(context.Background(), memberSession(), req, "127.0.0.1")
	assert.EqualError(t, err, "invalid dateStart format, use RFC3339")
}

func TestCreateEvent_ResolvesRoomByName(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.RoomID = 0
	req.RoomName = "Salle B12"

	e, err := f.svc.CreateEvent(context.Background(), memberSession(), req, "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, uint(3), e.RoomID)
}

func TestCreateEvent_UnknownRoomNameFails(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.RoomID = 0
	req.RoomName = "Salle fantôme"

	_, err := f.svc.CreateEvent(context.Background(), memberSession(), req, "127.0.0.1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Salle fantôme")
	assert.Empty(t, f.repo.created)
}

func TestCreateEvent_AdminBookingIsValidated(t *testing.T) {
	f := newFixture()

	e, err := f.svc.CreateEvent(context.Background(), adminSession(), validRequest(), "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), e.StatusID)
	assert.Equal(t, uint(1), e.HostID)
	assert.Equal(t, "Admin UniTeam", e.HostName)
}

func TestCreateEvent_MemberBookingIsPending(t *testing.T) {
	f := newFixture()

	e, err := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, uint(4), e.StatusID)

	// the host is told where the booking stands
	assert.Len(t, f.notifs.notified, 1)
	assert.Equal(t, uint(10), f.notifs.notified[0].UserID)
	assert.Contains(t, f.notifs.notified[0].Message, "en cours de traitement")
}

func TestCreateEvent_DefaultsGroupToSession(t *testing.T) {
	f := newFixture()
	session := memberSession()
	session.GroupID = 7

	e, err := f.svc.CreateEvent(context.Background(), session, validRequest(), "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), e.GroupID)
}

func TestCreateEvent_SkipsUnknownParticipantEmails(t *testing.T) {
	f := newFixture()
	f.auth.usersByEmail["bob@uniteam.fr"] = &auth.User{ID: 20, Email: "bob@uniteam.fr"}
	f.auth.usersByEmail["carol@uniteam.fr"] = &auth.User{ID: 30, Email: "carol@uniteam.fr"}

	req := validRequest()
	req.ParticipantEmails = []string{"bob@uniteam.fr", "nobody@uniteam.fr", "carol@uniteam.fr"}

	e, err := f.svc.CreateEvent(context.Background(), memberSession(), req, "127.0.0.1")
	assert.NoError(t, err)

	links, _ := f.parts.ListByEvent(e.ID)
	assert.Len(t, links, 2)
	assert.Equal(t, uint(20), links[0].UserID)
	assert.Equal(t, uint(30), links[1].UserID)

	// one invitation email batched to the resolved addresses only
	assert.Len(t, f.notifs.emails, 1)
	assert.Equal(t, []string{"bob@uniteam.fr", "carol@uniteam.fr"}, f.notifs.emails[0].To)
	assert.Contains(t, f.notifs.emails[0].Subject, "Invitation")
}

func TestCreateEvent_NoEmailWithoutParticipants(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")
	assert.NoError(t, err)
	assert.Empty(t, f.notifs.emails)
}

func TestCreateEvent_WritesAuditTrail(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")
	assert.NoError(t, err)
	assert.Len(t, f.audit.entries, 1)
	assert.Equal(t, "EVENT_CREATED", f.audit.entries[0].Action)
	assert.Equal(t, "success", f.audit.entries[0].Status)
}

// ===========================
// 📄 List Events

func TestListEvents_MemberViewHidesFinalDecisions(t *testing.T) {
	f := newFixture()
	for statusID := uint(1); statusID <= 4; statusID++ {
		f.repo.CreateEvent(&Event{Name: "e", StatusID: statusID,
			DateStart: time.Now(), DateEnd: time.Now().Add(time.Hour)})
	}

	events, err := f.svc.ListEvents(memberSession(), Filters{})
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.NotContains(t, []uint{2, 3}, e.StatusID)
	}

	events, err = f.svc.ListEvents(adminSession(), Filters{})
	assert.NoError(t, err)
	assert.Len(t, events, 4)
}

// ===========================
// ✅ Update Status

func TestUpdateStatus_NotifiesHostOnceAndEachParticipant(t *testing.T) {
	f := newFixture()
	e, _ := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")
	// the host also appears as a participant link; they must not be told twice
	f.parts.Add(e.ID, 10)
	f.parts.Add(e.ID, 20)
	f.parts.Add(e.ID, 30)
	f.notifs.notified = nil

	updated, err := f.svc.UpdateStatus(context.Background(), adminSession(), e.ID, 1, "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), updated.StatusID)

	assert.Len(t, f.notifs.notified, 3)
	assert.Equal(t, uint(10), f.notifs.notified[0].UserID)
	assert.Contains(t, f.notifs.notified[0].Message, "a été validé")
	assert.Equal(t, uint(20), f.notifs.notified[1].UserID)
	assert.Equal(t, uint(30), f.notifs.notified[2].UserID)

	// the expiring feed mirrors the persisted notifications
	assert.Len(t, f.notifs.pushed, 3)
}

func TestUpdateStatus_RejectionMessage(t *testing.T) {
	f := newFixture()
	e, _ := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")
	f.notifs.notified = nil

	_, err := f.svc.UpdateStatus(context.Background(), adminSession(), e.ID, 2, "127.0.0.1")
	assert.NoError(t, err)
	assert.Contains(t, f.notifs.notified[0].Message, "a été refusé")
}

func TestUpdateStatus_UnknownStatusFails(t *testing.T) {
	f := newFixture()
	e, _ := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")

	_, err := f.svc.UpdateStatus(context.Background(), adminSession(), e.ID, 99, "127.0.0.1")
	assert.Error(t, err)

	stored, _ := f.repo.GetEventByID(e.ID)
	assert.Equal(t, uint(4), stored.StatusID)
}

func TestUpdateStatus_UnknownEventFails(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), adminSession(), 999, 1, "127.0.0.1")
	assert.EqualError(t, err, "event not found")
}

// ===========================
// 🗑 Delete Event

func TestDeleteEvent_HostCanDelete(t *testing.T) {
	f := newFixture()
	e, _ := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")
	f.parts.Add(e.ID, 20)
	f.notifs.notified = nil

	err := f.svc.DeleteEvent(context.Background(), memberSession(), e.ID, "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, []uint{e.ID}, f.repo.deleted)

	// participants were read before the row disappeared, so goodbye
	// notices still reach them
	assert.Len(t, f.notifs.notified, 2)
	assert.Contains(t, f.notifs.notified[0].Message, "a été supprimé")
	assert.Equal(t, uint(20), f.notifs.notified[1].UserID)

	links, _ := f.parts.ListByEvent(e.ID)
	assert.Empty(t, links)
}

func TestDeleteEvent_AdminCanDelete(t *testing.T) {
	f := newFixture()
	e, _ := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")

	err := f.svc.DeleteEvent(context.Background(), adminSession(), e.ID, "127.0.0.1")
	assert.NoError(t, err)
	assert.Len(t, f.repo.deleted, 1)
}

func TestDeleteEvent_StrangerIsRefused(t *testing.T) {
	f := newFixture()
	e, _ := f.svc.CreateEvent(context.Background(), memberSession(), validRequest(), "127.0.0.1")

	stranger := middleware.Session{UserID: 99, GroupID: 1}
	err := f.svc.DeleteEvent(context.Background(), stranger, e.ID, "127.0.0.1")
	assert.EqualError(t, err, "only the host or an admin can delete this event")
	assert.Empty(t, f.repo.deleted)

	// the refusal is on the audit trail
	last := f.audit.entries[len(f.audit.entries)-1]
	assert.Equal(t, "EVENT_DELETED", last.Action)
	assert.Equal(t, "failure", last.Status)
}

func TestDeleteEvent_UnknownEventFails(t *testing.T) {
	f := newFixture()

	err := f.svc.DeleteEvent(context.Background(), adminSession(), 42, "127.0.0.1")
	assert.EqualError(t, err, "event not found")
}

func TestCreateEvent_HostNotifiedAfterParticipants(t *testing.T) {
	f := newFixture()
	f.auth.usersByEmail["bob@uniteam.fr"] = &auth.User{ID: 20, Email: "bob@uniteam.fr"}
	f.auth.usersByEmail["carol@uniteam.fr"] = &auth.User{ID: 30, Email: "carol@uniteam.fr"}

	req := validRequest()
	req.ParticipantEmails = []string{"bob@uniteam.fr", "carol@uniteam.fr"}

	_, err := f.svc.CreateEvent(context.Background(), memberSession(), req, "127.0.0.1")
	assert.NoError(t, err)

	// participants in invitation order first, the host's summary last
	assert.Len(t, f.notifs.notified, 3)
	assert.Equal(t, uint(20), f.notifs.notified[0].UserID)
	assert.Equal(t, uint(30), f.notifs.notified[1].UserID)
	assert.Equal(t, uint(10), f.notifs.notified[2].UserID)
	assert.Contains(t, f.notifs.notified[2].Message, "Votre événement")
}

// ===========================
// 📄 Paged listing

func pagedFixture(t *testing.T, count int) *fixture {
	t.Helper()
	f := newFixture()
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		// alternate visible and hidden statuses
		statusID := uint(1)
		if i%2 == 1 {
			statusID = 2
		}
		assert.NoError(t, f.repo.CreateEvent(&Event{
			Name: "e", StatusID: statusID, GroupID: 1,
			DateStart: day.Add(time.Duration(i) * time.Hour),
			DateEnd:   day.Add(time.Duration(i+1) * time.Hour),
		}))
	}
	return f
}

func TestListEventsPaged_Admin(t *testing.T) {
	f := pagedFixture(t, 25)

	paged, err := f.svc.ListEventsPaged(adminSession(), Filters{}, 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), paged.Total)
	assert.Equal(t, 2, paged.Page)
	assert.Equal(t, 3, paged.TotalPages)
	assert.Len(t, paged.Data, 10)
	assert.Equal(t, uint(11), paged.Data[0].ID)
}

func TestListEventsPaged_ClampsPastTheEnd(t *testing.T) {
	f := pagedFixture(t, 25)

	// page 9 of 3: serve the last page, never an empty one
	paged, err := f.svc.ListEventsPaged(adminSession(), Filters{}, 9, 10)
	assert.NoError(t, err)
	assert.Equal(t, 3, paged.Page)
	assert.Len(t, paged.Data, 5)
	assert.Equal(t, uint(21), paged.Data[0].ID)
}

func TestListEventsPaged_MemberSeesOnlyVisible(t *testing.T) {
	f := pagedFixture(t, 25) // 13 visible, 12 hidden

	paged, err := f.svc.ListEventsPaged(memberSession(), Filters{}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(13), paged.Total)
	assert.Equal(t, 2, paged.TotalPages)
	assert.Len(t, paged.Data, 10)
	for _, e := range paged.Data {
		assert.Equal(t, uint(1), e.StatusID)
	}

	// member clamp: page 5 lands on the last visible page
	paged, err = f.svc.ListEventsPaged(memberSession(), Filters{}, 5, 10)
	assert.NoError(t, err)
	assert.Equal(t, 2, paged.Page)
	assert.Len(t, paged.Data, 3)
}

func TestListEventsPaged_DefaultLimit(t *testing.T) {
	f := pagedFixture(t, 25)

	paged, err := f.svc.ListEventsPaged(adminSession(), Filters{}, 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, pagination.DefaultLimit, paged.Limit)
	assert.Len(t, paged.Data, pagination.DefaultLimit)
}

// ===========================
// 📊 Stats

func TestCountByStatus_LabelsByCatalogName(t *testing.T) {
	f := newFixture()
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, statusID := range []uint{1, 1, 2, 4, 4, 4} {
		assert.NoError(t, f.repo.CreateEvent(&Event{
			Name: "e", StatusID: statusID, DateStart: day, DateEnd: day.Add(time.Hour),
		}))
	}

	counts, err := f.svc.CountByStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{
		status.NameValidated: 2,
		status.NameRejected:  1,
		status.NameCancelled: 0,
		status.NamePending:   3,
	}, counts)
}
