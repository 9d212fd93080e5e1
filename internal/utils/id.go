package utils // utils holds small helpers shared across layers

import "github.com/google/uuid"

// NewID allocates a fresh random identifier for a new entity.
func NewID() string {
	return uuid.NewString()
}

// IsValidID reports whether s is a canonical 36-character UUID v4.
// Only the hyphenated form is accepted: uuid.Parse would also take
// urn: prefixes, braces and the 32-character form, none of which are
// valid external identifiers here.  The version nibble must be 4 and
// the variant nibble one of 8, 9, a or b.  Case is ignored.
func IsValidID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < 36; i++ {
		c := s[i]
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		case 14: // version nibble
			if c != '4' {
				return false
			}
		case 19: // variant nibble
			switch c {
			case '8', '9', 'a', 'b', 'A', 'B':
			default:
				return false
			}
		default:
			if !isHex(c) {
				return false
			}
		}
	}
	return true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
