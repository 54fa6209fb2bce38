package zone

import (
	"context"
	"sort"
	"testing"
	"time"

	"shiprate/internal/models"
	"shiprate/internal/utils/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeZoneRepo struct {
	zones map[string]*models.Zone
}

func newFakeZoneRepo() *fakeZoneRepo {
	return &fakeZoneRepo{zones: make(map[string]*models.Zone)}
}

func (f *fakeZoneRepo) Create(zone *models.Zone) error {
	zone.CreatedAt = time.Now()
	zone.UpdatedAt = zone.CreatedAt
	clone := *zone
	f.zones[zone.ID] = &clone
	return nil
}

func (f *fakeZoneRepo) GetOwned(userID, id string) (*models.Zone, error) {
	z, ok := f.zones[id]
	if !ok || z.UserID != userID {
		return nil, nil
	}
	clone := *z
	return &clone, nil
}

func (f *fakeZoneRepo) ListByUser(userID string) ([]models.Zone, error) {
	var out []models.Zone
	for _, z := range f.zones {
		if z.UserID == userID {
			out = append(out, *z)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeZoneRepo) ListPaginated(userID string, p *pagination.Pagination) ([]models.Zone, error) {
	out, _ := f.ListByUser(userID)
	p.Total = int64(len(out))
	return out, nil
}

func (f *fakeZoneRepo) Update(zone *models.Zone) error {
	zone.UpdatedAt = time.Now()
	clone := *zone
	f.zones[zone.ID] = &clone
	return nil
}

func (f *fakeZoneRepo) Delete(userID, id string) error {
	z, ok := f.zones[id]
	if ok && z.UserID == userID {
		delete(f.zones, id)
	}
	return nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCreateZone_Validation(t *testing.T) {
	svc := NewService(newFakeZoneRepo())

	tests := []struct {
		name    string
		data    models.CreateZone
		wantErr error
	}{
		{
			name:    "empty name",
			data:    models.CreateZone{Regions: models.StringList{"Europe"}, Price: 1},
			wantErr: ErrNameRequired,
		},
		{
			name:    "no regions",
			data:    models.CreateZone{Name: "EU", Price: 1},
			wantErr: ErrRegionsRequired,
		},
		{
			name:    "negative price",
			data:    models.CreateZone{Name: "EU", Regions: models.StringList{"Europe"}, Price: -1},
			wantErr: ErrNegativePrice,
		},
		{
			name: "threshold without per-gram price",
			data: models.CreateZone{
				Name: "EU", Regions: models.StringList{"Europe"}, Price: 1,
				WeightThreshold: intPtr(100),
			},
			wantErr: ErrPartialSurcharge,
		},
		{
			name: "per-gram price without threshold",
			data: models.CreateZone{
				Name: "EU", Regions: models.StringList{"Europe"}, Price: 1,
				PricePerGram: floatPtr(0.5),
			},
			wantErr: ErrPartialSurcharge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "alice", tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateZone_RejectsOverlap(t *testing.T) {
	svc := NewService(newFakeZoneRepo())

	_, err := svc.Create(context.Background(), "alice", models.CreateZone{
		Name: "EU", Regions: models.StringList{"Europe", "Asia"}, Price: 100,
	})
	require.NoError(t, err)

	// One rule per region per user.
	_, err = svc.Create(context.Background(), "alice", models.CreateZone{
		Name: "Asia", Regions: models.StringList{"Asia"}, Price: 50,
	})
	assert.ErrorIs(t, err, ErrRegionAssigned)

	// A different user may cover the same region.
	_, err = svc.Create(context.Background(), "bob", models.CreateZone{
		Name: "Asia", Regions: models.StringList{"Asia"}, Price: 50,
	})
	assert.NoError(t, err)
}

func TestUpdateZone(t *testing.T) {
	repo := newFakeZoneRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "alice", models.CreateZone{
		Name: "EU", Regions: models.StringList{"Europe"}, Price: 100,
	})
	require.NoError(t, err)

	t.Run("applies fields and preserves identity", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), "alice", created.ID, models.CreateZone{
			Name: "EU+", Regions: models.StringList{"Europe", "UK/Ireland"}, Price: 120,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "alice", updated.UserID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, 120.0, updated.Price)
	})

	t.Run("keeping own regions is not an overlap", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "alice", created.ID, models.CreateZone{
			Name: "EU", Regions: models.StringList{"Europe"}, Price: 90,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "alice", "missing", models.CreateZone{
			Name: "EU", Regions: models.StringList{"Oceania"}, Price: 90,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign zone looks missing", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "bob", created.ID, models.CreateZone{
			Name: "EU", Regions: models.StringList{"Oceania"}, Price: 90,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteZone_IsOwnerScoped(t *testing.T) {
	repo := newFakeZoneRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "alice", models.CreateZone{
		Name: "EU", Regions: models.StringList{"Europe"}, Price: 100,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "bob", created.ID))
	still, err := svc.Get(context.Background(), "alice", created.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)

	require.NoError(t, svc.Delete(context.Background(), "alice", created.ID))
	_, err = svc.Get(context.Background(), "alice", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
