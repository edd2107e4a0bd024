package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alojamento/internal/pkg/apperror"
)

func TestAccommodation_Labels(t *testing.T) {
	assert.Equal(t, "Room", NewRoom("a", "o", 2, true).Label())
	assert.Equal(t, "Hostel", NewHostel("a", "o", 10, false).Label())
	assert.Equal(t, "Apartment", NewApartment("a", "o", 2, true).Label())
	assert.Equal(t, "House", NewHouse("a", "o", 3, true, false).Label())
	assert.Equal(t, "Farm", NewFarm("a", "o", 12.5, true).Label())
	assert.Equal(t, "Unknown", AccommodationKind("castle").Label())
}

func TestParseAccommodationKind(t *testing.T) {
	k, err := ParseAccommodationKind(" House ")
	require.NoError(t, err)
	assert.Equal(t, KindHouse, k)

	_, err = ParseAccommodationKind("castle")
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
}

func TestAccommodation_CheckPayload(t *testing.T) {
	assert.NoError(t, NewFarm("a", "o", 1, false).CheckPayload())

	broken := NewRoom("a", "o", 1, false)
	broken.Farm = &FarmDetails{Hectares: 1}
	assert.ErrorIs(t, broken.CheckPayload(), apperror.ErrInvalidArgument)

	missing := Accommodation{Kind: KindHostel, Address: "a", Owner: "o"}
	assert.ErrorIs(t, missing.CheckPayload(), apperror.ErrInvalidArgument)
}

func TestAccommodation_KindSpecificSetters(t *testing.T) {
	room := NewRoom("Rua A", "Rui", 2, false)
	require.NoError(t, room.SetCapacity(4))
	assert.Equal(t, 4, room.Room.Capacity)
	assert.ErrorIs(t, room.SetCapacity(0), apperror.ErrInvalidArgument)
	assert.ErrorIs(t, room.SetBeds(3), apperror.ErrInvalidArgument)
	require.NoError(t, room.SetAmenity(AmenityPrivateBathroom, true))
	assert.True(t, room.Room.PrivateBathroom)
	assert.ErrorIs(t, room.SetAmenity(AmenityPool, true), apperror.ErrInvalidArgument)

	house := NewHouse("Rua B", "Rita", 3, false, false)
	require.NoError(t, house.SetBedrooms(5))
	require.NoError(t, house.SetAmenity(AmenityGarden, true))
	require.NoError(t, house.SetAmenity(AmenityPool, true))
	assert.Equal(t, HouseDetails{Bedrooms: 5, Garden: true, Pool: true}, *house.House)

	apt := NewApartment("Rua C", "Rita", 1, false)
	require.NoError(t, apt.SetBedrooms(2))
	require.NoError(t, apt.SetAmenity(AmenityEquippedKitchen, true))
	assert.Equal(t, ApartmentDetails{Bedrooms: 2, EquippedKitchen: true}, *apt.Apartment)

	hostel := NewHostel("Rua D", "Rui", 8, false)
	require.NoError(t, hostel.SetBeds(12))
	require.NoError(t, hostel.SetAmenity(AmenityBreakfast, true))
	assert.ErrorIs(t, hostel.SetBedrooms(2), apperror.ErrInvalidArgument)

	farm := NewFarm("Estrada E", "Rosa", 10, false)
	require.NoError(t, farm.SetArea(12.5))
	require.NoError(t, farm.SetAmenity(AmenityLivestock, true))
	assert.ErrorIs(t, farm.SetArea(0), apperror.ErrInvalidArgument)
	assert.Equal(t, FarmDetails{Hectares: 12.5, Livestock: true}, *farm.Farm)
}

func TestAccommodation_ChangeAddressAndOwner(t *testing.T) {
	a := NewRoom("Rua A", "Rui", 2, false)

	assert.ErrorIs(t, a.ChangeAddress(""), apperror.ErrInvalidArgument)
	assert.ErrorIs(t, a.ChangeOwner(" "), apperror.ErrInvalidArgument)
	require.NoError(t, a.ChangeAddress("Rua Nova"))
	require.NoError(t, a.ChangeOwner("Rosa"))
	assert.Equal(t, "Rua Nova", a.Address)
	assert.Equal(t, "Rosa", a.Owner)
}

func TestAccommodation_CloneIsDeep(t *testing.T) {
	a := NewRoom("Rua A", "Rui", 2, false)
	c := a.Clone()

	require.NoError(t, c.SetCapacity(9))
	assert.Equal(t, 2, a.Room.Capacity)
}

func TestAccommodation_String(t *testing.T) {
	a := NewHouse("Rua B", "Rita", 3, true, false)
	a.ID = 4

	assert.Equal(t, "4 | House | Rua B | owner: Rita | bedrooms: 3 | garden: yes | pool: no", a.String())
}
