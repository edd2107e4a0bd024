package fixture

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SeedFile(t *testing.T) {
	fh, err := os.Open("testdata/seed.yaml")
	require.NoError(t, err)
	defer fh.Close()

	f, err := Load(fh)
	require.NoError(t, err)

	require.Len(t, f.Clients, 3)
	assert.Equal(t, "123456789", f.Clients[0].TaxID)
	assert.True(t, f.Clients[2].Inactive)

	require.Len(t, f.Accommodations, 5)
	assert.Equal(t, "Hostel", f.Accommodations[1].Kind)
	assert.Equal(t, 40.5, f.Accommodations[3].Hectares)

	require.Len(t, f.Reservations, 3)
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), f.Reservations[0].Start.Time)

	require.Len(t, f.Actions, 5)
	checkOut := f.Actions[3]
	assert.Equal(t, ActionCheckOut, checkOut.Type)
	assert.Equal(t, time.Date(2024, time.January, 15, 11, 0, 0, 0, time.UTC), checkOut.At.Time)
	assert.True(t, decimal.RequireFromString("375").Equal(checkOut.Total))
	assert.True(t, checkOut.CleaningDone)
}

func TestLoad_Empty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Clients)
	assert.Empty(t, f.Actions)
}

func TestLoad_BadDate(t *testing.T) {
	_, err := Load(strings.NewReader(`
reservations:
  - key: r1
    client: ana
    accommodation: flores
    start: "10/01/2024"
    end: "2024-01-15"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 6")
}

func TestLoad_BadTimestamp(t *testing.T) {
	_, err := Load(strings.NewReader(`
actions:
  - type: check_in
    reservation: r1
    at: "2024-01-10"
`))
	assert.Error(t, err)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader(`
clients:
  - key: ana
    name: Ana
    nif: "123456789"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nif")
}
