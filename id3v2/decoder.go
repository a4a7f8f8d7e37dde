package id3v2

import (
	"github.com/pkg/errors"
)

// Parse decodes a tag from the start of b.
//
// If b does not begin with the tag magic, Parse returns (nil, ErrNoTag)
// so the caller can probe other locations. For structural errors inside
// the body, Parse returns the frames decoded before the corruption
// together with the error, so callers may keep the valid prefix of a
// damaged tag.
//
// The returned tag holds no references into b.
func Parse(b []byte) (*Tag, error) {
	header, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}

	tag := &Tag{Header: header}

	body := b[tagHeaderSize:]
	if header.size < len(body) {
		body = body[:header.size]
	}
	// A body shorter than declared is handled frame by frame: whatever
	// fits is parsed, the first frame that doesn't is malformed.

	if header.Flags.Unsynchronisation() && header.Version < Version24 {
		body = unsyncRemove(body)
	}

	if header.Flags.ExtendedHeader() {
		body, err = skipExtendedHeader(body, header.Version)
		if err != nil {
			return tag, err
		}
	}

	tag.Frames, tag.Padding, err = parseFrames(body, header.Version)
	return tag, err
}

// ParseHeader decodes only the 10-byte tag header.
func ParseHeader(b []byte) (TagHeader, error) {
	if !Check(b) {
		return TagHeader{}, ErrNoTag
	}
	if len(b) < tagHeaderSize {
		return TagHeader{}, malformed(len(b), "tag header truncated after magic")
	}

	major := b[3]
	if major < 2 || major > 4 {
		return TagHeader{}, &UnsupportedVersionError{Version: major}
	}
	// b[4], the revision, is always zero in practice and ignored.

	size, err := decodeSyncsafe(b[6:10], 6)
	if err != nil {
		return TagHeader{}, err
	}

	return TagHeader{
		Version: Version(major),
		Flags:   HeaderFlags(b[5]),
		size:    size,
	}, nil
}

// skipExtendedHeader drops the extended header from the front of the
// body. Nothing in it matters for decoding frames, but its length field
// is version-dependent: v2.3 stores a plain big-endian size excluding
// the field itself, v2.4 a syncsafe size including it.
func skipExtendedHeader(body []byte, v Version) ([]byte, error) {
	if len(body) < 4 {
		return nil, malformed(tagHeaderSize, "extended header truncated")
	}

	var total int
	switch v {
	case Version24:
		size, err := decodeSyncsafe(body[:4], tagHeaderSize)
		if err != nil {
			return nil, err
		}
		total = size
	default:
		total = 4 + (int(body[0])<<24 | int(body[1])<<16 | int(body[2])<<8 | int(body[3]))
	}

	if total > len(body) {
		return nil, malformed(tagHeaderSize, "extended header size %d exceeds tag body", total)
	}
	return body[total:], nil
}

// parseFrames decodes consecutive frames until the body or the padding
// region is exhausted. It is reentrant: chapter and table-of-contents
// payloads call it on their sub-frame regions.
func parseFrames(body []byte, v Version) (frames []Frame, padding int, err error) {
	layout := layoutForVersion(v)
	offset := 0

	for offset < len(body) {
		rest := body[offset:]
		if len(rest) < layout.headerSize() && isZero(rest) {
			// Trailing padding smaller than a frame header.
			padding = len(rest)
			break
		}

		header, payloadLen, err := layout.parseHeader(rest, offset)
		if err == errPaddingReached {
			padding = len(rest)
			break
		}
		if err != nil {
			return frames, 0, err
		}

		payload := rest[layout.headerSize() : layout.headerSize()+payloadLen]
		frame, err := decodeFramePayload(header, payload, v)
		if err != nil {
			return frames, 0, errors.Wrapf(err, "frame %q at offset %d", header.id, offset)
		}

		frames = append(frames, frame)
		offset += layout.headerSize() + payloadLen
	}

	return frames, padding, nil
}

func decodeFramePayload(header FrameHeader, payload []byte, v Version) (Frame, error) {
	if header.flags.Unsynchronised() {
		payload = unsyncRemove(payload)
	}

	// Compressed, encrypted, grouped and length-prefixed payloads are
	// preserved, never interpreted: they carry extra leading bytes (the
	// group identifier, the data length prefix) that the typed decoders
	// would mistake for content. The flags survive in the header so the
	// renderer reproduces them as read.
	if f := header.flags; f.Compressed() || f.Encrypted() || f.Grouped() || f.DataLengthIndicator() {
		Logging.Println("keeping frame", header.id, "opaque: flags", f)
		return decodeOpaqueFrame(header, payload, v)
	}

	id := header.id
	if v == Version22 {
		if long, ok := v22Aliases[id]; ok {
			header.id = long
			id = long
		} else {
			Logging.Println("no v2.3 alias for frame", id)
		}
	}

	return decoderFor(id)(header, payload, v)
}
