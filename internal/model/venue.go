package model

import "time"

// TableShape enumerates the allowed shapes of a table feature.
type TableShape string

const (
	TableShapeRound       TableShape = "round"
	TableShapeRectangular TableShape = "rectangular"
	TableShapeSquare      TableShape = "square"
)

// FeatureType discriminates the spatial elements a venue map may contain.
// Tables are the only variant with seating data; stages, bars and
// entrances carry position and dimensions only.
type FeatureType string

const (
	FeatureTable    FeatureType = "table"
	FeatureStage    FeatureType = "stage"
	FeatureBar      FeatureType = "bar"
	FeatureEntrance FeatureType = "entrance"
)

// Position locates a feature on the venue map.  Pointers are used so
// that a missing coordinate can be told apart from zero during map
// validation.
type Position struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// Dimensions describes the overall size of a venue map or of a single
// feature.  Both axes are required on the map itself.
type Dimensions struct {
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// SeatedGuest is a guest pre-seated on a table feature inside the map
// document itself.  SeatNumber must lie in [1, NumberOfSeats] of the
// owning table.
type SeatedGuest struct {
	Name       string `json:"name"`
	SeatNumber int    `json:"seatNumber"`
}

// Feature is one spatial element of a venue map.  The Type field
// discriminates the variant; table-only fields are pointers so that
// non-table features simply omit them.  TableNumber is a label unique
// within the venue map, not an entity identifier.
//
// Fields:
//  Type          – feature variant (table, stage, bar, entrance).
//  Position      – {x,y} placement on the map; required for every feature.
//  Dimensions    – optional footprint of the feature.
//  TableNumber   – table label, unique within the map (tables only).
//  Shape         – table shape (tables only).
//  NumberOfSeats – seat capacity, >= 1 (tables only).
//  Guests        – optional pre-seated guests (tables only).
type Feature struct {
	Type          FeatureType   `json:"type"`
	Position      *Position     `json:"position"`
	Dimensions    *Dimensions   `json:"dimensions,omitempty"`
	TableNumber   string        `json:"tableNumber,omitempty"`
	Shape         TableShape    `json:"shape,omitempty"`
	NumberOfSeats *int          `json:"numberOfSeats,omitempty"`
	Guests        []SeatedGuest `json:"guests,omitempty"`
}

// IsTable reports whether the feature is the table variant.
func (f *Feature) IsTable() bool {
	return f.Type == FeatureTable
}

// VenueMap is the spatial schema of a venue: overall dimensions plus an
// ordered sequence of features.  A venue may have no map at all.
type VenueMap struct {
	Dimensions *Dimensions `json:"dimensions"`
	Features   []Feature   `json:"features"`
}

// Table returns the table feature carrying the given table number, or
// nil when the map holds no such table.
func (m *VenueMap) Table(tableNumber string) *Feature {
	if m == nil {
		return nil
	}
	for i := range m.Features {
		f := &m.Features[i]
		if f.IsTable() && f.TableNumber == tableNumber {
			return f
		}
	}
	return nil
}

// Venue represents a location where events are hosted.  The map is
// optional and replaced wholesale on update, never merged.
//
// Fields:
//  ID          – entity identifier (UUID v4).
//  Name        – display name of the venue.
//  Address     – street address.
//  Capacity    – maximum number of guests, > 0.
//  Description – optional free text.
//  Map         – optional spatial layout.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
	Map         *VenueMap `json:"map,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
