package id3v2

import "fmt"

// syncsafeMax is the largest value representable in four syncsafe
// bytes: 28 usable bits.
const syncsafeMax = 0x0FFFFFFF

// decodeSyncsafe assembles a 28-bit integer from the first four bytes
// of b, seven bits per byte, most significant group first. A byte with
// its high bit set violates the encoding and is reported as malformed.
func decodeSyncsafe(b []byte, offset int) (int, error) {
	if len(b) < 4 {
		return 0, malformed(offset, "need 4 bytes for syncsafe integer, have %d", len(b))
	}

	var v int
	for i, c := range b[:4] {
		if c&0x80 != 0 {
			return 0, malformed(offset+i, "syncsafe byte %#02x has high bit set", c)
		}
		v = v<<7 | int(c&0x7f)
	}

	return v, nil
}

// encodeSyncsafe splits v into four 7-bit groups. Values above
// syncsafeMax cannot be represented and are rejected rather than
// truncated.
func encodeSyncsafe(v int) ([]byte, error) {
	if v < 0 || v > syncsafeMax {
		return nil, fmt.Errorf("id3v2: value %d does not fit in a syncsafe integer", v)
	}

	return []byte{
		byte(v >> 21 & 0x7f),
		byte(v >> 14 & 0x7f),
		byte(v >> 7 & 0x7f),
		byte(v & 0x7f),
	}, nil
}
