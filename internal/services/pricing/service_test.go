package pricing

import (
	"context"
	"testing"
	"time"

	"shiprate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeZoneStore struct {
	zones []models.Zone
}

func (f *fakeZoneStore) ListByUser(userID string) ([]models.Zone, error) {
	var out []models.Zone
	for _, z := range f.zones {
		if z.UserID == userID {
			out = append(out, z)
		}
	}
	return out, nil
}

type fakeMethodStore struct {
	methods []models.Method
}

func (f *fakeMethodStore) GetByID(id string) (*models.Method, error) {
	for i := range f.methods {
		if f.methods[i].ID == id {
			return &f.methods[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMethodStore) GetByTitle(userID, title string) (*models.Method, error) {
	for i := range f.methods {
		if f.methods[i].UserID == userID && f.methods[i].Title == title {
			return &f.methods[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMethodStore) ListByUser(userID string) ([]models.Method, error) {
	var out []models.Method
	for _, m := range f.methods {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeSettingsSource struct {
	settings *models.ExtensionSettings
}

func (f *fakeSettingsSource) GetOrCreate(ctx context.Context, userID string) (*models.ExtensionSettings, error) {
	if f.settings != nil {
		return f.settings, nil
	}
	return models.NewExtensionSettings(userID), nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func satSettings(userID string) *models.ExtensionSettings {
	return models.NewExtensionSettings(userID)
}

func newTestService(zones []models.Zone, methods []models.Method, settings *models.ExtensionSettings) *Service {
	return NewService(
		&fakeZoneStore{zones: zones},
		&fakeMethodStore{methods: methods},
		&fakeSettingsSource{settings: settings},
	)
}

func TestCalculatePrice_NegativeWeight(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.CalculatePrice(context.Background(), "alice", "Europe", -1, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Weight must be zero or greater.", err.Error())
}

func TestCalculatePrice_RegionNotAvailable(t *testing.T) {
	// A matching rule exists, but the region was removed from the offered
	// list; availability is checked first.
	settings := satSettings("alice")
	settings.AvailableRegions = models.StringList{"Asia"}
	zones := []models.Zone{{
		ID: "z1", UserID: "alice", Name: "EU", Regions: models.StringList{"Europe"}, Price: 100,
	}}
	svc := newTestService(zones, nil, settings)

	_, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 10, "")
	require.Error(t, err)
	assert.Equal(t, "Region is not available.", err.Error())
}

func TestCalculatePrice_NoMatchingZone(t *testing.T) {
	zones := []models.Zone{{
		ID: "z1", UserID: "alice", Name: "EU", Regions: models.StringList{"Europe"}, Price: 100,
	}}
	svc := newTestService(zones, nil, satSettings("alice"))

	_, err := svc.CalculatePrice(context.Background(), "alice", "Asia", 10, "")
	require.Error(t, err)
	assert.Equal(t, "Region not found for any pricing rule.", err.Error())
}

func TestCalculatePrice_CheapestZoneWins(t *testing.T) {
	zones := []models.Zone{
		{ID: "z1", UserID: "alice", Name: "expensive", Regions: models.StringList{"Europe"}, Price: 250},
		{ID: "z2", UserID: "alice", Name: "cheap", Regions: models.StringList{"Europe"}, Price: 80},
		{ID: "z3", UserID: "alice", Name: "other", Regions: models.StringList{"Asia"}, Price: 10},
	}
	svc := newTestService(zones, nil, satSettings("alice"))

	quote, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "")
	require.NoError(t, err)
	assert.Equal(t, "z2", quote.ZoneID)
	assert.Equal(t, 80.0, quote.FinalPrice)
}

func TestCalculatePrice_TieBreakIsDeterministic(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	zones := []models.Zone{
		{ID: "zb", UserID: "alice", Name: "second", Regions: models.StringList{"Europe"}, Price: 100, CreatedAt: newer},
		{ID: "za", UserID: "alice", Name: "first", Regions: models.StringList{"Europe"}, Price: 100, CreatedAt: older},
	}
	svc := newTestService(zones, nil, satSettings("alice"))

	for i := 0; i < 5; i++ {
		quote, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "")
		require.NoError(t, err)
		assert.Equal(t, "za", quote.ZoneID)
	}

	// Equal creation times fall back to the id.
	zones[0].CreatedAt = older
	svc = newTestService(zones, nil, satSettings("alice"))
	quote, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "")
	require.NoError(t, err)
	assert.Equal(t, "za", quote.ZoneID)
}

func TestCalculatePrice_Surcharge(t *testing.T) {
	zones := []models.Zone{{
		ID: "z1", UserID: "alice", Name: "EU",
		Regions:         models.StringList{"Europe"},
		Price:           100,
		WeightThreshold: intPtr(82),
		PricePerGram:    floatPtr(88.45),
	}}
	svc := newTestService(zones, nil, satSettings("alice"))

	t.Run("at threshold no surcharge", func(t *testing.T) {
		quote, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 82, "")
		require.NoError(t, err)
		assert.Equal(t, 100.0, quote.BasePrice)
		assert.Equal(t, 100.0, quote.FinalPrice)
	})

	t.Run("above threshold rounds half-up in sats", func(t *testing.T) {
		// 100 + 8*88.45 = 807.6 -> 808
		quote, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 90, "")
		require.NoError(t, err)
		assert.Equal(t, 808.0, quote.BasePrice)
		assert.Equal(t, 0.0, quote.MethodFee)
		assert.Equal(t, 808.0, quote.FinalPrice)
		assert.Equal(t, quote.FinalPrice, quote.FiatPrice)
		assert.Equal(t, "sat", quote.Currency)
	})
}

func TestCalculatePrice_MethodFee(t *testing.T) {
	zones := []models.Zone{{
		ID: "z1", UserID: "alice", Name: "EU",
		Regions:         models.StringList{"Europe"},
		Price:           100,
		WeightThreshold: intPtr(82),
		PricePerGram:    floatPtr(88.45),
	}}
	// Restricted to the selected zone's id, as methods are created.
	methods := []models.Method{{
		ID: "m1", UserID: "alice", Title: "Express", CostPercentage: 10,
		Regions: models.StringList{"z1"},
	}}
	svc := newTestService(zones, methods, satSettings("alice"))

	quote, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 82, "m1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.BasePrice)
	assert.Equal(t, 10.0, quote.MethodFee)
	assert.Equal(t, 110.0, quote.FinalPrice)
	assert.Equal(t, 10.0, quote.CostPercentage)
	require.NotNil(t, quote.MethodID)
	assert.Equal(t, "m1", *quote.MethodID)
	require.NotNil(t, quote.MethodTitle)
	assert.Equal(t, "Express", *quote.MethodTitle)
}

func TestCalculatePrice_FeeScalesLinearly(t *testing.T) {
	zones := []models.Zone{{
		ID: "z1", UserID: "alice", Name: "EU", Regions: models.StringList{"Europe"}, Price: 200,
	}}
	tests := []struct {
		name       string
		percentage float64
		wantFee    float64
		wantFinal  float64
	}{
		{"zero percent", 0, 0, 200},
		{"ten percent", 10, 20, 220},
		{"twenty percent", 20, 40, 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methods := []models.Method{{
				ID: "m1", UserID: "alice", Title: "Express", CostPercentage: tt.percentage,
			}}
			svc := newTestService(zones, methods, satSettings("alice"))

			quote, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "m1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantFee, quote.MethodFee)
			assert.Equal(t, tt.wantFinal, quote.FinalPrice)
		})
	}
}

func TestCalculatePrice_MethodResolution(t *testing.T) {
	zones := []models.Zone{{
		ID: "z1", UserID: "alice", Name: "EU", Regions: models.StringList{"Europe"}, Price: 100,
	}}
	methods := []models.Method{
		{ID: "m-alice", UserID: "alice", Title: "Standard", CostPercentage: 5},
		{ID: "m-bob", UserID: "bob", Title: "BobOnly", CostPercentage: 5},
	}
	svc := newTestService(zones, methods, satSettings("alice"))

	t.Run("falls back to title lookup", func(t *testing.T) {
		quote, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "Standard")
		require.NoError(t, err)
		require.NotNil(t, quote.MethodID)
		assert.Equal(t, "m-alice", *quote.MethodID)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "nope")
		require.Error(t, err)
		assert.Equal(t, "Method not found.", err.Error())
	})

	t.Run("foreign method by id is reported as missing", func(t *testing.T) {
		_, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "m-bob")
		require.Error(t, err)
		assert.Equal(t, "Method not found.", err.Error())
	})

	t.Run("foreign method by title is reported as missing", func(t *testing.T) {
		_, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "BobOnly")
		require.Error(t, err)
		assert.Equal(t, "Method not found.", err.Error())
	})
}

func TestCalculatePrice_MethodRegionRestriction(t *testing.T) {
	zones := []models.Zone{{
		ID: "z1", UserID: "alice", Name: "EU", Regions: models.StringList{"Europe"}, Price: 100,
	}}
	// The restriction list holds zone ids; once the referenced zone is gone
	// (or never matched the requested region name) the method stops applying.
	methods := []models.Method{{
		ID: "m1", UserID: "alice", Title: "Express", CostPercentage: 10,
		Regions: models.StringList{"z-deleted"},
	}}
	svc := newTestService(zones, methods, satSettings("alice"))

	_, err := svc.CalculatePrice(context.Background(), "alice", "Europe", 0, "m1")
	require.Error(t, err)
	assert.Equal(t, "Method not available for this region.", err.Error())
}

func TestAvailableRegions(t *testing.T) {
	zones := []models.Zone{{
		ID: "z1", UserID: "alice", Name: "EU", Regions: models.StringList{"Europe"}, Price: 100,
	}}
	methods := []models.Method{{
		ID: "m1", UserID: "alice", Title: "Express", CostPercentage: 10,
	}}
	svc := newTestService(zones, methods, satSettings("alice"))

	resp, err := svc.AvailableRegions(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAvailableRegions, resp.AvailableRegions)
	assert.Len(t, resp.Methods, 1)
	assert.Len(t, resp.Regions, 1)
}
