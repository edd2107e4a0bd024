package domain

import (
	"fmt"
	"strings"

	"alojamento/internal/pkg/apperror"
)

type AccommodationKind string

const (
	KindRoom      AccommodationKind = "room"
	KindHostel    AccommodationKind = "hostel"
	KindApartment AccommodationKind = "apartment"
	KindHouse     AccommodationKind = "house"
	KindFarm      AccommodationKind = "farm"
)

// Label is the display name of the kind.
func (k AccommodationKind) Label() string {
	switch k {
	case KindRoom:
		return "Room"
	case KindHostel:
		return "Hostel"
	case KindApartment:
		return "Apartment"
	case KindHouse:
		return "House"
	case KindFarm:
		return "Farm"
	default:
		return "Unknown"
	}
}

func ParseAccommodationKind(s string) (AccommodationKind, error) {
	k := AccommodationKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindRoom, KindHostel, KindApartment, KindHouse, KindFarm:
		return k, nil
	}
	return "", apperror.NewInvalidArgument(fmt.Sprintf("unknown accommodation kind %q", s))
}

type RoomDetails struct {
	Capacity        int  `json:"capacity" validate:"gt=0"`
	PrivateBathroom bool `json:"private_bathroom"`
}

type HostelDetails struct {
	Beds              int  `json:"beds" validate:"gt=0"`
	BreakfastIncluded bool `json:"breakfast_included"`
}

type ApartmentDetails struct {
	Bedrooms        int  `json:"bedrooms" validate:"gt=0"`
	EquippedKitchen bool `json:"equipped_kitchen"`
}

type HouseDetails struct {
	Bedrooms int  `json:"bedrooms" validate:"gt=0"`
	Garden   bool `json:"garden"`
	Pool     bool `json:"pool"`
}

type FarmDetails struct {
	Hectares  float64 `json:"hectares" validate:"gt=0"`
	Livestock bool    `json:"livestock"`
}

// Accommodation is a bookable unit. Kind selects which one of the detail
// payloads is set; the others are nil.
type Accommodation struct {
	ID      int64             `json:"id"`
	Kind    AccommodationKind `json:"kind"`
	Address string            `json:"address" validate:"notblank"`
	Owner   string            `json:"owner" validate:"notblank"`

	Room      *RoomDetails      `json:"room,omitempty"`
	Hostel    *HostelDetails    `json:"hostel,omitempty"`
	Apartment *ApartmentDetails `json:"apartment,omitempty"`
	House     *HouseDetails     `json:"house,omitempty"`
	Farm      *FarmDetails      `json:"farm,omitempty"`
}

func NewRoom(address, owner string, capacity int, privateBathroom bool) Accommodation {
	return Accommodation{Kind: KindRoom, Address: address, Owner: owner,
		Room: &RoomDetails{Capacity: capacity, PrivateBathroom: privateBathroom}}
}

func NewHostel(address, owner string, beds int, breakfastIncluded bool) Accommodation {
	return Accommodation{Kind: KindHostel, Address: address, Owner: owner,
		Hostel: &HostelDetails{Beds: beds, BreakfastIncluded: breakfastIncluded}}
}

func NewApartment(address, owner string, bedrooms int, equippedKitchen bool) Accommodation {
	return Accommodation{Kind: KindApartment, Address: address, Owner: owner,
		Apartment: &ApartmentDetails{Bedrooms: bedrooms, EquippedKitchen: equippedKitchen}}
}

func NewHouse(address, owner string, bedrooms int, garden, pool bool) Accommodation {
	return Accommodation{Kind: KindHouse, Address: address, Owner: owner,
		House: &HouseDetails{Bedrooms: bedrooms, Garden: garden, Pool: pool}}
}

func NewFarm(address, owner string, hectares float64, livestock bool) Accommodation {
	return Accommodation{Kind: KindFarm, Address: address, Owner: owner,
		Farm: &FarmDetails{Hectares: hectares, Livestock: livestock}}
}

// Label is the read-only type label derived from the kind.
func (a Accommodation) Label() string { return a.Kind.Label() }

// CheckPayload verifies that exactly the payload matching Kind is present.
func (a Accommodation) CheckPayload() error {
	set := map[AccommodationKind]bool{
		KindRoom:      a.Room != nil,
		KindHostel:    a.Hostel != nil,
		KindApartment: a.Apartment != nil,
		KindHouse:     a.House != nil,
		KindFarm:      a.Farm != nil,
	}
	if _, known := set[a.Kind]; !known {
		return apperror.NewInvalidArgument(fmt.Sprintf("unknown accommodation kind %q", a.Kind))
	}
	for k, present := range set {
		if present != (k == a.Kind) {
			return apperror.NewInvalidArgument(fmt.Sprintf("%s accommodation carries %s details", a.Kind, k))
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate registry state.
func (a Accommodation) Clone() Accommodation {
	out := a
	if a.Room != nil {
		v := *a.Room
		out.Room = &v
	}
	if a.Hostel != nil {
		v := *a.Hostel
		out.Hostel = &v
	}
	if a.Apartment != nil {
		v := *a.Apartment
		out.Apartment = &v
	}
	if a.House != nil {
		v := *a.House
		out.House = &v
	}
	if a.Farm != nil {
		v := *a.Farm
		out.Farm = &v
	}
	return out
}

func (a *Accommodation) ChangeAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return apperror.NewInvalidArgument("address must not be empty")
	}
	a.Address = address
	return nil
}

func (a *Accommodation) ChangeOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return apperror.NewInvalidArgument("owner must not be empty")
	}
	a.Owner = owner
	return nil
}

func (a *Accommodation) SetCapacity(n int) error {
	if a.Kind != KindRoom {
		return a.wrongKind("capacity")
	}
	if n <= 0 {
		return apperror.NewInvalidArgument("capacity must be at least 1")
	}
	a.Room.Capacity = n
	return nil
}

func (a *Accommodation) SetBeds(n int) error {
	if a.Kind != KindHostel {
		return a.wrongKind("beds")
	}
	if n <= 0 {
		return apperror.NewInvalidArgument("a hostel must have at least 1 bed")
	}
	a.Hostel.Beds = n
	return nil
}

// SetBedrooms applies to apartments and houses.
func (a *Accommodation) SetBedrooms(n int) error {
	var target *int
	switch a.Kind {
	case KindApartment:
		target = &a.Apartment.Bedrooms
	case KindHouse:
		target = &a.House.Bedrooms
	default:
		return a.wrongKind("bedrooms")
	}
	if n <= 0 {
		return apperror.NewInvalidArgument("bedrooms must be at least 1")
	}
	*target = n
	return nil
}

func (a *Accommodation) SetArea(hectares float64) error {
	if a.Kind != KindFarm {
		return a.wrongKind("area")
	}
	if hectares <= 0 {
		return apperror.NewInvalidArgument("area must be greater than 0 hectares")
	}
	a.Farm.Hectares = hectares
	return nil
}

type Amenity string

const (
	AmenityPrivateBathroom Amenity = "private_bathroom"
	AmenityBreakfast       Amenity = "breakfast"
	AmenityEquippedKitchen Amenity = "equipped_kitchen"
	AmenityGarden          Amenity = "garden"
	AmenityPool            Amenity = "pool"
	AmenityLivestock       Amenity = "livestock"
)

// SetAmenity toggles a kind-specific flag.
func (a *Accommodation) SetAmenity(amenity Amenity, on bool) error {
	var target *bool
	switch {
	case amenity == AmenityPrivateBathroom && a.Kind == KindRoom:
		target = &a.Room.PrivateBathroom
	case amenity == AmenityBreakfast && a.Kind == KindHostel:
		target = &a.Hostel.BreakfastIncluded
	case amenity == AmenityEquippedKitchen && a.Kind == KindApartment:
		target = &a.Apartment.EquippedKitchen
	case amenity == AmenityGarden && a.Kind == KindHouse:
		target = &a.House.Garden
	case amenity == AmenityPool && a.Kind == KindHouse:
		target = &a.House.Pool
	case amenity == AmenityLivestock && a.Kind == KindFarm:
		target = &a.Farm.Livestock
	default:
		return a.wrongKind(string(amenity))
	}
	*target = on
	return nil
}

func (a *Accommodation) wrongKind(attr string) error {
	return apperror.NewInvalidArgument(fmt.Sprintf("%s does not apply to a %s", attr, a.Kind)).
		WithDetail("accommodation_id", a.ID)
}

func (a Accommodation) String() string {
	return fmt.Sprintf("%d | %s | %s | owner: %s%s", a.ID, a.Label(), a.Address, a.Owner, a.detailString())
}

func (a Accommodation) detailString() string {
	switch a.Kind {
	case KindRoom:
		if a.Room != nil {
			return fmt.Sprintf(" | capacity: %d | private bathroom: %s", a.Room.Capacity, yesNo(a.Room.PrivateBathroom))
		}
	case KindHostel:
		if a.Hostel != nil {
			return fmt.Sprintf(" | beds: %d | breakfast: %s", a.Hostel.Beds, yesNo(a.Hostel.BreakfastIncluded))
		}
	case KindApartment:
		if a.Apartment != nil {
			return fmt.Sprintf(" | bedrooms: %d | equipped kitchen: %s", a.Apartment.Bedrooms, yesNo(a.Apartment.EquippedKitchen))
		}
	case KindHouse:
		if a.House != nil {
			return fmt.Sprintf(" | bedrooms: %d | garden: %s | pool: %s", a.House.Bedrooms, yesNo(a.House.Garden), yesNo(a.House.Pool))
		}
	case KindFarm:
		if a.Farm != nil {
			return fmt.Sprintf(" | area: %.2f ha | livestock: %s", a.Farm.Hectares, yesNo(a.Farm.Livestock))
		}
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
