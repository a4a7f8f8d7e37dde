package id3v2

import (
	"bytes"

	"github.com/pkg/errors"
)

// Render serializes the tag into its on-disk byte form. The declared size
// is always recomputed from the actual frame content, never taken from
// the header the tag was parsed with.
//
// Rendering only fails for values the format cannot represent: a body
// too large for a syncsafe size, a v2.2 frame payload exceeding its
// 3-byte size field, or a frame identifier with no v2.2 equivalent in a
// v2.2 tag.
func (t *Tag) Render() ([]byte, error) {
	version := t.Header.Version
	if version == 0 {
		version = Version24
	}
	layout := layoutForVersion(version)

	var body bytes.Buffer
	for _, frame := range t.Frames {
		if err := renderFrame(&body, frame, layout, version); err != nil {
			return nil, err
		}
	}

	// An extended header read from disk is dropped during parsing, so
	// the flag must not survive into the rendered header.
	flags := t.Header.Flags &^ 0x40

	bodyBytes := body.Bytes()
	if flags.Unsynchronisation() && version < Version24 {
		bodyBytes = unsyncApply(bodyBytes)
	}

	// A tag with a footer must not be padded; padding would make the
	// footer impossible to locate from the end of the tag.
	footer := version == Version24 && flags.Footer()
	padding := Padding
	if footer {
		padding = 0
	}

	size := len(bodyBytes) + padding
	sizeBytes, err := encodeSyncsafe(size)
	if err != nil {
		return nil, errors.Wrap(err, "tag body")
	}

	out := make([]byte, 0, tagHeaderSize+size+footerSize)
	out = append(out, id3byte...)
	out = append(out, byte(version), 0, byte(flags))
	out = append(out, sizeBytes...)
	out = append(out, bodyBytes...)
	out = append(out, make([]byte, padding)...)

	if footer {
		out = append(out, footerByte...)
		out = append(out, byte(version), 0, byte(flags))
		out = append(out, sizeBytes...)
	}

	return out, nil
}

func renderFrame(body *bytes.Buffer, frame Frame, layout headerLayout, version Version) error {
	header := frame.Header()

	if layout == layoutShort && len(header.id) == 4 {
		short, ok := v22AliasesReverse[header.id]
		if !ok {
			return errors.Errorf("id3v2: frame %q has no v2.2 identifier", header.id)
		}
		header.id = short
	}

	payload, err := frame.Encode(version)
	if err != nil {
		return err
	}

	if layout == layoutLongSyncsafe && header.flags.Unsynchronised() {
		payload = unsyncApply(payload)
	}

	headerBytes, err := layout.renderHeader(header, len(payload))
	if err != nil {
		return err
	}

	body.Write(headerBytes)
	body.Write(payload)
	return nil
}
