package encoder

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	CanonicalLen = 36
	RawHexLen    = 32
)

// MixedGUID holds the bytes of an identifier in the layout used by
// Windows, UEFI and DCE/RPC structures: the first three fields are little
// endian, the trailing 8 bytes are kept in network order.
type MixedGUID [16]byte

// Reorder swaps between natural (RFC 4122) byte order and the mixed-endian
// layout. Applying it twice yields the input.
func Reorder(b [16]byte) (r [16]byte) {
	r[0], r[1], r[2], r[3] = b[3], b[2], b[1], b[0]
	r[4], r[5] = b[5], b[4]
	r[6], r[7] = b[7], b[6]
	copy(r[8:], b[8:])
	return r
}

func ToMixed(id uuid.UUID) MixedGUID {
	return MixedGUID(Reorder(id))
}

func (m MixedGUID) UUID() uuid.UUID {
	return uuid.UUID(Reorder(m))
}

func (m MixedGUID) String() string {
	return strings.ToUpper(hex.EncodeToString(m[:]))
}

// DecodeCanonical parses the 8-4-4-4-12 hyphenated form. Other layouts
// accepted by uuid.Parse (braces, urn prefix, bare hex) are rejected.
func DecodeCanonical(text string) (uuid.UUID, error) {
	s := strings.TrimSpace(text)
	if len(s) != CanonicalLen {
		return uuid.Nil, fmt.Errorf("%w: invalid length %d", ErrMalformedCanonical, len(s))
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrMalformedCanonical, err)
	}
	return id, nil
}

// DecodeRawHex parses exactly 32 hex digits holding the mixed-endian bytes
// and returns the identifier in natural order. Surrounding whitespace is
// not accepted.
func DecodeRawHex(text string) (uuid.UUID, bool) {
	if len(text) != RawHexLen {
		return uuid.Nil, false
	}
	var m MixedGUID
	if _, err := hex.Decode(m[:], []byte(text)); err != nil {
		return uuid.Nil, false
	}
	return m.UUID(), true
}

func EncodeCanonical(id uuid.UUID) string {
	return id.String()
}

func EncodeRawHex(id uuid.UUID) string {
	return ToMixed(id).String()
}
