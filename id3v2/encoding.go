package id3v2

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding selector byte carried by most frame
// payloads.
type Encoding byte

const (
	EncodingISO88591 Encoding = 0
	EncodingUTF16    Encoding = 1 // UTF-16 with byte order mark
	EncodingUTF16BE  Encoding = 2 // UTF-16 big endian, no byte order mark
	EncodingUTF8     Encoding = 3
)

func (e Encoding) String() string {
	switch e {
	case EncodingISO88591:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	}
	return "unknown"
}

func (e Encoding) valid() bool {
	return e <= EncodingUTF8
}

// terminator returns the string terminator for the encoding: one zero
// byte for the single-byte encodings, two for the UTF-16 variants.
func (e Encoding) terminator() []byte {
	if e == EncodingUTF16 || e == EncodingUTF16BE {
		return []byte{0, 0}
	}
	return nul
}

// decode converts b, which must not include a terminator, to a Go
// string. UTF-16 input with a byte order mark is decoded according to
// the mark regardless of the declared variant; without a mark, the
// byte order defaults to little endian, matching the majority of
// writers in the wild.
func (e Encoding) decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	switch e {
	case EncodingISO88591:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case EncodingUTF16:
		var dec *encoding.Decoder
		if len(b) >= 2 && (b[0] == 0xfe && b[1] == 0xff || b[0] == 0xff && b[1] == 0xfe) {
			dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		} else {
			dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		}
		out, err := dec.Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case EncodingUTF16BE:
		out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return string(b), nil
	}
}

// encode converts s to the encoding's byte representation, without a
// terminator. EncodingUTF16 output starts with a little-endian byte
// order mark. ISO-8859-1 replaces runes outside the charmap with the
// substitute character instead of failing.
func (e Encoding) encode(s string) ([]byte, error) {
	switch e {
	case EncodingISO88591:
		return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).Bytes([]byte(s))
	case EncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	default:
		return []byte(s), nil
	}
}

// cutTerminated splits b at the encoding's first terminator. When no
// terminator exists the whole input is the head and rest is nil, which
// tolerates writers that omit the final terminator.
func cutTerminated(b []byte, enc Encoding) (head, rest []byte) {
	term := enc.terminator()
	if len(term) == 1 {
		head, rest, _ = bytes.Cut(b, term)
		return head, rest
	}

	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i], b[i+2:]
		}
	}
	return b, nil
}

// cutCString splits b at the first zero byte. Used for fields that are
// Latin-1 regardless of the payload's encoding byte, such as MIME types
// and owner identifiers.
func cutCString(b []byte) (head, rest []byte) {
	head, rest, _ = bytes.Cut(b, nul)
	return head, rest
}
