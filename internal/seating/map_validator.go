package seating

import "github.com/iliyamo/event-seating/internal/model"

// ValidateVenueMap checks the structure of a submitted venue map.
// Rules run in order and the first violated rule wins; no errors are
// accumulated.  A nil map is valid because maps are optional.
func ValidateVenueMap(m *model.VenueMap) error {
	if m == nil {
		return nil
	}
	if m.Dimensions == nil || m.Dimensions.Width == nil || m.Dimensions.Height == nil {
		return Invalid(CodeInvalidVenueMap, "dimensions must include width and height")
	}
	if m.Features == nil {
		return Invalid(CodeInvalidVenueMap, "features must be an array")
	}
	tables := make(map[string]bool)
	for i := range m.Features {
		f := &m.Features[i]
		if !validFeatureType(f.Type) || f.Position == nil || f.Position.X == nil || f.Position.Y == nil {
			return Invalid(CodeInvalidVenueMap, "feature must have a valid type and position").
				WithDetails(map[string]any{"featureIndex": i})
		}
		if !f.IsTable() {
			continue
		}
		if f.NumberOfSeats == nil || *f.NumberOfSeats < 1 {
			return Invalid(CodeInvalidVenueMap, "table features must specify numberOfSeats").
				WithDetails(map[string]any{"featureIndex": i})
		}
		if f.TableNumber == "" || tables[f.TableNumber] {
			return Invalid(CodeInvalidVenueMap, "table features must carry a table number unique within the map").
				WithDetails(map[string]any{"featureIndex": i})
		}
		tables[f.TableNumber] = true
		for _, g := range f.Guests {
			if g.SeatNumber < 1 || g.SeatNumber > *f.NumberOfSeats {
				return Invalid(CodeInvalidVenueMap, "guest seat number must be between 1 and numberOfSeats").
					WithDetails(map[string]any{
						"tableNumber": f.TableNumber,
						"seatNumber":  g.SeatNumber,
						"guest":       g.Name,
					})
			}
		}
	}
	return nil
}

// validFeatureType matches the feature variants exhaustively.
func validFeatureType(t model.FeatureType) bool {
	switch t {
	case model.FeatureTable, model.FeatureStage, model.FeatureBar, model.FeatureEntrance:
		return true
	}
	return false
}
