package travel_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggyparcel/backend/modules/travel"
)

type fakeRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*travel.Plan
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[int64]*travel.Plan)}
}

func (f *fakeRepo) Create(_ context.Context, p *travel.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*travel.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, travel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter travel.ListFilter) ([]travel.Plan, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []travel.Plan
	for _, p := range f.items {
		if filter.Mode != "" && string(p.TransportMode) != filter.Mode {
			continue
		}
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, p *travel.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[p.ID]; !ok {
		return travel.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return travel.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) MatchLane(_ context.Context, origin, destination string) ([]travel.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []travel.Plan
	for _, p := range f.items {
		if strings.EqualFold(p.Origin, origin) &&
			strings.EqualFold(p.Destination, destination) &&
			p.DepartureTime.After(time.Now()) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureTime.Before(out[j].DepartureTime) })
	return out, nil
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	svc := travel.NewService(newFakeRepo(), nil)

	t.Run("valid plan", func(t *testing.T) {
		t.Parallel()

		p, err := svc.Create(context.Background(), uuid.New(), travel.CreateRequest{
			Origin:        "Dhaka",
			Destination:   "Sylhet",
			DepartureTime: time.Now().Add(48 * time.Hour),
			TransportMode: travel.ModeTrain,
		})
		require.NoError(t, err)
		assert.NotZero(t, p.ID)
	})

	t.Run("departure must be in the future", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Create(context.Background(), uuid.New(), travel.CreateRequest{
			Origin:        "Dhaka",
			Destination:   "Sylhet",
			DepartureTime: time.Now().Add(-time.Hour),
			TransportMode: travel.ModeTrain,
		})
		require.Error(t, err)
	})

	t.Run("unknown transport mode", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Create(context.Background(), uuid.New(), travel.CreateRequest{
			Origin:        "Dhaka",
			Destination:   "Sylhet",
			DepartureTime: time.Now().Add(time.Hour),
			TransportMode: "teleport",
		})
		require.Error(t, err)
	})
}

func TestService_Ownership(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := travel.NewService(repo, nil)

	owner := uuid.New()
	p, err := svc.Create(context.Background(), owner, travel.CreateRequest{
		Origin:        "Dhaka",
		Destination:   "Sylhet",
		DepartureTime: time.Now().Add(48 * time.Hour),
		TransportMode: travel.ModeBus,
	})
	require.NoError(t, err)

	newDest := "Khulna"
	_, err = svc.Update(context.Background(), p.ID, uuid.New(), travel.UpdateRequest{Destination: &newDest})
	require.ErrorIs(t, err, travel.ErrNotOwner)

	updated, err := svc.Update(context.Background(), p.ID, owner, travel.UpdateRequest{Destination: &newDest})
	require.NoError(t, err)
	assert.Equal(t, "Khulna", updated.Destination)

	require.ErrorIs(t, svc.Delete(context.Background(), p.ID, uuid.New()), travel.ErrNotOwner)
	require.NoError(t, svc.Delete(context.Background(), p.ID, owner))

	_, err = svc.Get(context.Background(), p.ID)
	require.ErrorIs(t, err, travel.ErrNotFound)
}

func TestService_Match(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := travel.NewService(repo, nil)

	traveler := uuid.New()
	later, err := svc.Create(context.Background(), traveler, travel.CreateRequest{
		Origin:        "Dhaka",
		Destination:   "Chittagong",
		DepartureTime: time.Now().Add(72 * time.Hour),
		TransportMode: travel.ModeCar,
	})
	require.NoError(t, err)

	sooner, err := svc.Create(context.Background(), traveler, travel.CreateRequest{
		Origin:        "Dhaka",
		Destination:   "Chittagong",
		DepartureTime: time.Now().Add(24 * time.Hour),
		TransportMode: travel.ModeTrain,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), traveler, travel.CreateRequest{
		Origin:        "Dhaka",
		Destination:   "Sylhet",
		DepartureTime: time.Now().Add(24 * time.Hour),
		TransportMode: travel.ModeBus,
	})
	require.NoError(t, err)

	plans, err := svc.Match(context.Background(), travel.MatchQuery{
		Origin:      "Dhaka",
		Destination: "Chittagong",
	})
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, sooner.ID, plans[0].ID)
	assert.Equal(t, later.ID, plans[1].ID)

	_, err = svc.Match(context.Background(), travel.MatchQuery{Origin: "Dhaka"})
	require.Error(t, err)
}
