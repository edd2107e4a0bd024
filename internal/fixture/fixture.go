// Package fixture loads a YAML description of clients, accommodations,
// reservations and lifecycle actions and replays it against a registry.
// Entries refer to each other by symbolic keys, never by id.
package fixture

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04"
)

type ActionType string

const (
	ActionCheckIn     ActionType = "check_in"
	ActionCheckOut    ActionType = "check_out"
	ActionCancel      ActionType = "cancel"
	ActionChangeDates ActionType = "change_dates"
)

type File struct {
	Clients        []Client        `yaml:"clients"`
	Accommodations []Accommodation `yaml:"accommodations"`
	Reservations   []Reservation   `yaml:"reservations"`
	Actions        []Action        `yaml:"actions"`
}

type Client struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	TaxID    string `yaml:"tax_id"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Inactive bool   `yaml:"inactive"`
}

// Accommodation is a flat record; only the fields of its kind are read.
type Accommodation struct {
	Key     string `yaml:"key"`
	Kind    string `yaml:"kind"`
	Address string `yaml:"address"`
	Owner   string `yaml:"owner"`

	Capacity        int     `yaml:"capacity"`
	PrivateBathroom bool    `yaml:"private_bathroom"`
	Beds            int     `yaml:"beds"`
	Breakfast       bool    `yaml:"breakfast"`
	Bedrooms        int     `yaml:"bedrooms"`
	EquippedKitchen bool    `yaml:"equipped_kitchen"`
	Garden          bool    `yaml:"garden"`
	Pool            bool    `yaml:"pool"`
	Hectares        float64 `yaml:"hectares"`
	Livestock       bool    `yaml:"livestock"`
}

type Reservation struct {
	Key           string `yaml:"key"`
	Client        string `yaml:"client"`
	Accommodation string `yaml:"accommodation"`
	Start         Date   `yaml:"start"`
	End           Date   `yaml:"end"`
}

type Action struct {
	Type        ActionType `yaml:"type"`
	Reservation string     `yaml:"reservation"`

	// check_in / check_out
	At    Timestamp `yaml:"at"`
	Staff string    `yaml:"staff"`

	// check_out
	Total        decimal.Decimal `yaml:"total"`
	CleaningDone bool            `yaml:"cleaning_done"`

	// change_dates
	Start Date `yaml:"start"`
	End   Date `yaml:"end"`
}

// Date is a calendar day in UTC written as 2006-01-02.
type Date struct{ time.Time }

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	t, err := parseScalar(node, DateLayout)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Timestamp is a UTC wall-clock time written as 2006-01-02 15:04.
type Timestamp struct{ time.Time }

func (ts *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	t, err := parseScalar(node, TimestampLayout)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

func parseScalar(node *yaml.Node, layout string) (time.Time, error) {
	if node.Kind != yaml.ScalarNode {
		return time.Time{}, fmt.Errorf("line %d: expected a scalar in %s format", node.Line, layout)
	}
	t, err := time.ParseInLocation(layout, strings.TrimSpace(node.Value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return t, nil
}

// Load parses a fixture document. Unknown fields are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}
