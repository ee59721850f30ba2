package shared

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTimestampIDsNeverRepeat(t *testing.T) {
	clock := FixedClock{At: time.UnixMilli(1_700_000_000_000)}
	ids := NewTimestampIDs(clock)

	first := ids.NewID()
	second := ids.NewID()
	third := ids.NewID()

	require.Equal(t, "1700000000000", first)
	require.Equal(t, "1700000000001", second)
	require.Equal(t, "1700000000002", third)
}

func TestNewIDGenerator(t *testing.T) {
	gen, err := NewIDGenerator(IDSchemeUUID7, nil)
	require.NoError(t, err)
	parsed, err := uuid.Parse(gen.NewID())
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), parsed.Version())

	_, err = NewIDGenerator("sequence", nil)
	require.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	type draft struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"required,oneof=Food Snack"`
	}

	err := ValidateStruct(draft{Category: "Bakery"})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "required", verr.Fields["name"])
	require.Equal(t, "oneof", verr.Fields["category"])
	require.Equal(t, "validation failed: category (oneof), name (required)", err.Error())

	require.NoError(t, ValidateStruct(draft{Name: "Wings", Category: "Food"}))
}

func TestFormValueAcceptsNumbersAndStrings(t *testing.T) {
	var payload struct {
		Price    FormValue `json:"price"`
		Quantity FormValue `json:"quantity"`
		Points   FormValue `json:"points"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":12.5,"quantity":" 4 ","points":null}`), &payload))

	price, err := payload.Price.Float()
	require.NoError(t, err)
	require.InDelta(t, 12.5, price, 1e-9)

	qty, err := payload.Quantity.Int()
	require.NoError(t, err)
	require.Equal(t, 4, qty)

	require.Equal(t, "", payload.Points.String())
}

func TestDateOfUsesUTC(t *testing.T) {
	loc := time.FixedZone("LST", 2*60*60)
	at := time.Date(2026, 10, 17, 1, 30, 0, 0, loc)
	require.Equal(t, "2026-10-16", DateOf(at))
}

func TestPaginationBounds(t *testing.T) {
	p := NewPagination(2, 3, 7)
	require.Equal(t, 3, p.TotalPages)
	start, end := p.Bounds()
	require.Equal(t, 3, start)
	require.Equal(t, 6, end)

	start, end = NewPagination(3, 3, 7).Bounds()
	require.Equal(t, 6, start)
	require.Equal(t, 7, end)

	start, end = NewPagination(9, 3, 7).Bounds()
	require.Equal(t, start, end)

	p = NewPagination(0, 0, 0)
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultPerPage, p.PerPage)
}
