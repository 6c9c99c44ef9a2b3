package encoder

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// GUIDFields is the platform struct view of an identifier.
type GUIDFields struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

func Fields(id uuid.UUID) GUIDFields {
	f := GUIDFields{
		Data1: binary.BigEndian.Uint32(id[0:4]),
		Data2: binary.BigEndian.Uint16(id[4:6]),
		Data3: binary.BigEndian.Uint16(id[6:8]),
	}
	copy(f.Data4[:], id[8:])
	return f
}

// Bytes returns the in-memory representation of the struct on a little
// endian host, which is the mixed-endian layout.
func (f GUIDFields) Bytes() []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:4], f.Data1)
	binary.LittleEndian.PutUint16(b[4:6], f.Data2)
	binary.LittleEndian.PutUint16(b[6:8], f.Data3)
	copy(b[8:], f.Data4[:])
	return b
}

func (f GUIDFields) String() string {
	return fmt.Sprintf("{0x%08X, 0x%04X, 0x%04X, {0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X, 0x%02X}}",
		f.Data1, f.Data2, f.Data3,
		f.Data4[0], f.Data4[1], f.Data4[2], f.Data4[3], f.Data4[4], f.Data4[5], f.Data4[6], f.Data4[7])
}
