package encoder

import "strings"

// Shape is the result of a length and charset check on an input string.
// It never reflects whether the value actually parses.
type Shape int

const (
	Unrecognized Shape = iota
	CanonicalShaped
	RawHexShaped
)

func (s Shape) String() string {
	switch s {
	case CanonicalShaped:
		return "guid"
	case RawHexShaped:
		return "raw hex"
	default:
		return "unrecognized"
	}
}

// Classify trims the input and tags it. Hyphen positions are not checked
// here, DecodeCanonical does that.
func Classify(input string) Shape {
	s := strings.TrimSpace(input)
	switch {
	case len(s) == CanonicalLen && strings.Count(s, "-") == 4:
		return CanonicalShaped
	case len(s) == RawHexLen && isHex(s):
		return RawHexShaped
	default:
		return Unrecognized
	}
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
