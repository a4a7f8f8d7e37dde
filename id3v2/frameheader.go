package id3v2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// FrameID is a frame identifier: four uppercase ASCII characters, or
// three for frames read from a v2.2 tag that have no modern equivalent.
type FrameID string

// FrameFlags holds a frame's flags in the v2.4 bit layout. Flags read
// from a v2.3 header are translated into this layout on parse and back
// on render, so the rest of the package never branches on version to
// interpret them.
type FrameFlags uint16

func (f FrameFlags) DiscardOnTagAlteration() bool  { return f&0x4000 > 0 }
func (f FrameFlags) DiscardOnFileAlteration() bool { return f&0x2000 > 0 }
func (f FrameFlags) ReadOnly() bool                { return f&0x1000 > 0 }
func (f FrameFlags) Grouped() bool                 { return f&0x0040 > 0 }
func (f FrameFlags) Compressed() bool              { return f&0x0008 > 0 }
func (f FrameFlags) Encrypted() bool               { return f&0x0004 > 0 }

// Unsynchronised reports the per-frame unsynchronization flag, defined
// only for v2.4 frames.
func (f FrameFlags) Unsynchronised() bool        { return f&0x0002 > 0 }
func (f FrameFlags) DataLengthIndicator() bool   { return f&0x0001 > 0 }

// FrameHeader is the identifier and flags shared by every frame.
type FrameHeader struct {
	id    FrameID
	flags FrameFlags
}

func NewFrameHeader(id FrameID) FrameHeader {
	return FrameHeader{id: id}
}

func (h FrameHeader) ID() FrameID         { return h.id }
func (h FrameHeader) Flags() FrameFlags   { return h.flags }
func (h FrameHeader) Header() FrameHeader { return h }

// headerLayout selects one of the three incompatible on-disk frame
// header shapes. It is derived once from the tag version and threaded
// through parse and render explicitly.
type headerLayout int

const (
	layoutShort        headerLayout = iota // v2.2: 3-byte id, 3-byte plain size, no flags
	layoutLongPlain                        // v2.3: 4-byte id, 4-byte plain size, 2 flag bytes
	layoutLongSyncsafe                     // v2.4: 4-byte id, 4-byte syncsafe size, 2 flag bytes
)

func layoutForVersion(v Version) headerLayout {
	switch v {
	case Version22:
		return layoutShort
	case Version23:
		return layoutLongPlain
	default:
		return layoutLongSyncsafe
	}
}

func (l headerLayout) headerSize() int {
	if l == layoutShort {
		return 6
	}
	return 10
}

func (l headerLayout) idSize() int {
	if l == layoutShort {
		return 3
	}
	return 4
}

// errPaddingReached signals that the parser ran into the zero-filled
// padding region. It never escapes to callers.
var errPaddingReached = errors.New("padding reached")

// parseHeader reads one frame header from the start of b. It returns
// the header and the length of the following payload. b is the
// remainder of the declared tag body, so a payload length pointing past
// its end is malformed.
func (l headerLayout) parseHeader(b []byte, offset int) (FrameHeader, int, error) {
	hs := l.headerSize()
	if len(b) < hs {
		return FrameHeader{}, 0, malformed(offset, "truncated frame header: %d bytes left", len(b))
	}

	id := b[:l.idSize()]
	if isZero(id) {
		return FrameHeader{}, 0, errPaddingReached
	}
	for _, c := range id {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return FrameHeader{}, 0, malformed(offset, "invalid frame identifier %q", id)
		}
	}

	var (
		size int
		raw  uint16
		err  error
	)
	switch l {
	case layoutShort:
		size = int(b[3])<<16 | int(b[4])<<8 | int(b[5])
	case layoutLongPlain:
		size = int(binary.BigEndian.Uint32(b[4:8]))
		raw = binary.BigEndian.Uint16(b[8:10])
	case layoutLongSyncsafe:
		size, err = decodeSyncsafe(b[4:8], offset+4)
		if err != nil {
			return FrameHeader{}, 0, err
		}
		raw = binary.BigEndian.Uint16(b[8:10])
	}

	if size > len(b)-hs {
		return FrameHeader{}, 0, malformed(offset, "frame %q declares %d payload bytes but only %d remain in tag body", id, size, len(b)-hs)
	}

	header := FrameHeader{
		id:    FrameID(id),
		flags: l.normalizeFlags(raw),
	}
	return header, size, nil
}

// renderHeader serializes a frame header for a payload of the given
// length. The size encoding is derived purely from the layout, never
// from any version stored alongside the frame, so frames copied between
// tags of different versions always serialize correctly.
func (l headerLayout) renderHeader(h FrameHeader, payloadLen int) ([]byte, error) {
	if len(h.id) != l.idSize() {
		return nil, fmt.Errorf("id3v2: frame identifier %q is not representable in this tag version", h.id)
	}

	out := make([]byte, 0, l.headerSize())
	out = append(out, h.id...)

	switch l {
	case layoutShort:
		if payloadLen > 0xffffff {
			return nil, fmt.Errorf("id3v2: frame %q payload of %d bytes exceeds the 3-byte size field", h.id, payloadLen)
		}
		out = append(out, byte(payloadLen>>16), byte(payloadLen>>8), byte(payloadLen))
	case layoutLongPlain:
		out = binary.BigEndian.AppendUint32(out, uint32(payloadLen))
		out = binary.BigEndian.AppendUint16(out, l.rawFlags(h.flags))
	case layoutLongSyncsafe:
		size, err := encodeSyncsafe(payloadLen)
		if err != nil {
			return nil, err
		}
		out = append(out, size...)
		out = binary.BigEndian.AppendUint16(out, l.rawFlags(h.flags))
	}

	return out, nil
}

// v2.3 frame flag bits live in different positions than their v2.4
// counterparts; the per-frame unsynchronization and data length
// indicator bits do not exist at all in v2.3.
var v23FlagBits = [...][2]uint16{
	{0x8000, 0x4000}, // discard on tag alteration
	{0x4000, 0x2000}, // discard on file alteration
	{0x2000, 0x1000}, // read only
	{0x0080, 0x0008}, // compressed
	{0x0040, 0x0004}, // encrypted
	{0x0020, 0x0040}, // grouped
}

func (l headerLayout) normalizeFlags(raw uint16) FrameFlags {
	if l != layoutLongPlain {
		return FrameFlags(raw)
	}
	var f uint16
	for _, bits := range v23FlagBits {
		if raw&bits[0] > 0 {
			f |= bits[1]
		}
	}
	return FrameFlags(f)
}

func (l headerLayout) rawFlags(f FrameFlags) uint16 {
	if l != layoutLongPlain {
		return uint16(f)
	}
	var raw uint16
	for _, bits := range v23FlagBits {
		if uint16(f)&bits[1] > 0 {
			raw |= bits[0]
		}
	}
	return raw
}

func isZero(b []byte) bool {
	return len(bytes.Trim(b, "\x00")) == 0
}
