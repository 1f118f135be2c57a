package status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStatusRepo struct {
	statuses []Status
	err      error
	calls    int
	seeded   []Status
}

func (r *fakeStatusRepo) FindAll() ([]Status, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.statuses, nil
}

func (r *fakeStatusRepo) FindByID(id uint) (*Status, error) {
	for i := range r.statuses {
		if r.statuses[i].ID == id {
			return &r.statuses[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeStatusRepo) FindByName(name string) (*Status, error) {
	for i := range r.statuses {
		if r.statuses[i].Name == name {
			return &r.statuses[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeStatusRepo) Seed(statuses []Status) error {
	r.seeded = statuses
	return nil
}

func fullCatalog() []Status {
	return []Status{
		{ID: 1, Name: NameValidated},
		{ID: 2, Name: NameRejected},
		{ID: 3, Name: NameCancelled},
		{ID: 4, Name: NamePending},
	}
}

func TestList_WithoutRedisHitsRepo(t *testing.T) {
	repo := &fakeStatusRepo{statuses: fullCatalog()}
	svc := NewService(repo, nil)

	statuses, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, statuses, 4)
	assert.Equal(t, 1, repo.calls)
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeStatusRepo{statuses: fullCatalog()}, nil)

	st, err := svc.GetByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, NameRejected, st.Name)

	_, err = svc.GetByID(context.Background(), 99)
	assert.EqualError(t, err, "unknown status 99")
}

func TestResolveIDs_FromCatalog(t *testing.T) {
	// non-standard IDs prove the names drive the lookup
	repo := &fakeStatusRepo{statuses: []Status{
		{ID: 11, Name: NameValidated},
		{ID: 44, Name: NamePending},
	}}
	svc := NewService(repo, nil)

	assert.Equal(t, uint(11), svc.ResolveValidatedID(context.Background()))
	assert.Equal(t, uint(44), svc.ResolvePendingID(context.Background()))
}

func TestResolveIDs_FallBackWhenCatalogUnreachable(t *testing.T) {
	svc := NewService(&fakeStatusRepo{err: errors.New("connection refused")}, nil)

	assert.Equal(t, FallbackValidatedID, svc.ResolveValidatedID(context.Background()))
	assert.Equal(t, FallbackPendingID, svc.ResolvePendingID(context.Background()))
}

func TestResolveIDs_FallBackWhenRowMissing(t *testing.T) {
	// catalog reachable but the expected rows were never seeded
	svc := NewService(&fakeStatusRepo{statuses: []Status{{ID: 2, Name: NameRejected}}}, nil)

	assert.Equal(t, uint(1), svc.ResolveValidatedID(context.Background()))
	assert.Equal(t, uint(4), svc.ResolvePendingID(context.Background()))
}

func TestSeed_WritesTheFourCatalogRows(t *testing.T) {
	repo := &fakeStatusRepo{}
	svc := NewService(repo, nil)

	assert.NoError(t, svc.Seed())
	assert.Equal(t, fullCatalog(), repo.seeded)
}
