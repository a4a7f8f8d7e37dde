package id3v2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Frame is one self-contained metadata unit inside the tag body. Every
// implementation owns its encoded byte layout; for all valid frames,
// decoding the bytes produced by Encode yields an equal value.
type Frame interface {
	ID() FrameID
	Header() FrameHeader
	// Value returns a human-readable representation of the payload's
	// primary content.
	Value() string
	// Encode serializes the payload, without the frame header. The
	// version is needed by the few payloads whose layout differs
	// between tag versions.
	Encode(version Version) ([]byte, error)
}

// TextFrame is any of the text information frames ("T***" except
// TXXX). Multiple values are stored NUL-separated within Text.
type TextFrame struct {
	FrameHeader
	Encoding Encoding
	Text     string
}

func (f TextFrame) Value() string { return f.Text }

func (f TextFrame) Encode(Version) ([]byte, error) {
	return encodeWithSelector(f.Encoding, f.Text)
}

func decodeTextFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	enc, rest := splitSelector(b)
	text, err := enc.decode(trimTerminator(rest, enc))
	if err != nil {
		return nil, err
	}
	return TextFrame{FrameHeader: h, Encoding: enc, Text: text}, nil
}

// UserTextFrame is the user-defined text pair frame (TXXX).
type UserTextFrame struct {
	FrameHeader
	Encoding    Encoding
	Description string
	Text        string
}

func (f UserTextFrame) Value() string { return f.Text }

func (f UserTextFrame) Encode(Version) ([]byte, error) {
	return encodeWithSelector(f.Encoding, f.Description, f.Text)
}

func decodeUserTextFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	enc, rest := splitSelector(b)
	desc, rest := cutTerminated(rest, enc)
	frame := UserTextFrame{FrameHeader: h, Encoding: enc}

	var err error
	if frame.Description, err = enc.decode(desc); err != nil {
		return nil, err
	}
	if frame.Text, err = enc.decode(trimTerminator(rest, enc)); err != nil {
		return nil, err
	}
	return frame, nil
}

// URLFrame is any of the URL link frames ("W***" except WXXX). URLs are
// always Latin-1 and carry no encoding selector.
type URLFrame struct {
	FrameHeader
	URL string
}

func (f URLFrame) Value() string { return f.URL }

func (f URLFrame) Encode(Version) ([]byte, error) {
	return EncodingISO88591.encode(f.URL)
}

func decodeURLFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	url, err := EncodingISO88591.decode(trimTerminator(b, EncodingISO88591))
	if err != nil {
		return nil, err
	}
	return URLFrame{FrameHeader: h, URL: url}, nil
}

// UserURLFrame is the user-defined URL pair frame (WXXX). Only the
// description uses the selected encoding; the URL itself stays Latin-1.
type UserURLFrame struct {
	FrameHeader
	Encoding    Encoding
	Description string
	URL         string
}

func (f UserURLFrame) Value() string { return f.URL }

func (f UserURLFrame) Encode(Version) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTerminated(&buf, f.Encoding, f.Description); err != nil {
		return nil, err
	}
	url, err := EncodingISO88591.encode(f.URL)
	if err != nil {
		return nil, err
	}
	buf.Write(url)
	return withSelector(f.Encoding, buf.Bytes()), nil
}

func decodeUserURLFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	enc, rest := splitSelector(b)
	desc, rest := cutTerminated(rest, enc)
	frame := UserURLFrame{FrameHeader: h, Encoding: enc}

	var err error
	if frame.Description, err = enc.decode(desc); err != nil {
		return nil, err
	}
	if frame.URL, err = EncodingISO88591.decode(trimTerminator(rest, EncodingISO88591)); err != nil {
		return nil, err
	}
	return frame, nil
}

// CommentFrame is the comment frame (COMM). Comments are distinguished
// by the language and description pair, so several may coexist.
type CommentFrame struct {
	FrameHeader
	Encoding    Encoding
	Language    string // ISO 639-2, length-checked only
	Description string
	Text        string
}

func (f CommentFrame) Value() string { return f.Text }

func (f CommentFrame) Encode(Version) ([]byte, error) {
	return encodeLanguageText(f.Encoding, f.Language, f.Description, f.Text)
}

func decodeCommentFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	enc, lang, desc, text, err := decodeLanguageText(b)
	if err != nil {
		return nil, err
	}
	return CommentFrame{FrameHeader: h, Encoding: enc, Language: lang, Description: desc, Text: text}, nil
}

// LyricsFrame is the unsynchronised lyrics frame (USLT). Its layout is
// identical to CommentFrame's.
type LyricsFrame struct {
	FrameHeader
	Encoding    Encoding
	Language    string
	Description string
	Text        string
}

func (f LyricsFrame) Value() string { return f.Text }

func (f LyricsFrame) Encode(Version) ([]byte, error) {
	return encodeLanguageText(f.Encoding, f.Language, f.Description, f.Text)
}

func decodeLyricsFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	enc, lang, desc, text, err := decodeLanguageText(b)
	if err != nil {
		return nil, err
	}
	return LyricsFrame{FrameHeader: h, Encoding: enc, Language: lang, Description: desc, Text: text}, nil
}

// LyricsEvent is one synchronized lyrics entry: a text fragment and the
// moment it applies to.
type LyricsEvent struct {
	Text      string
	Timestamp uint32
}

// SyncedLyricsFrame is the synchronized lyrics frame (SYLT). The
// timestamp format byte selects between millisecond timestamps and
// MPEG frame counts; the engine preserves it without interpretation.
type SyncedLyricsFrame struct {
	FrameHeader
	Encoding        Encoding
	Language        string
	ContentType     byte
	TimestampFormat byte
	Events          []LyricsEvent
}

func (f SyncedLyricsFrame) Value() string {
	parts := make([]string, len(f.Events))
	for i, ev := range f.Events {
		parts[i] = ev.Text
	}
	return strings.Join(parts, "\n")
}

func (f SyncedLyricsFrame) Encode(Version) ([]byte, error) {
	if len(f.Language) != 3 {
		return nil, fmt.Errorf("id3v2: language %q must be 3 bytes", f.Language)
	}
	var buf bytes.Buffer
	buf.WriteString(f.Language)
	buf.WriteByte(f.ContentType)
	buf.WriteByte(f.TimestampFormat)
	for _, ev := range f.Events {
		if err := writeTerminated(&buf, f.Encoding, ev.Text); err != nil {
			return nil, err
		}
		var ts [4]byte
		binary.BigEndian.PutUint32(ts[:], ev.Timestamp)
		buf.Write(ts[:])
	}
	return withSelector(f.Encoding, buf.Bytes()), nil
}

func decodeSyncedLyricsFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	enc, rest := splitSelector(b)
	if len(rest) < 5 {
		return nil, fmt.Errorf("id3v2: synchronized lyrics frame too short")
	}
	frame := SyncedLyricsFrame{
		FrameHeader:     h,
		Encoding:        enc,
		Language:        string(rest[:3]),
		ContentType:     rest[3],
		TimestampFormat: rest[4],
	}
	rest = rest[5:]
	for len(rest) > 0 {
		text, after := cutTerminated(rest, enc)
		if len(after) < 4 {
			return nil, fmt.Errorf("id3v2: synchronized lyrics event missing timestamp")
		}
		decoded, err := enc.decode(text)
		if err != nil {
			return nil, err
		}
		frame.Events = append(frame.Events, LyricsEvent{
			Text:      decoded,
			Timestamp: binary.BigEndian.Uint32(after[:4]),
		})
		rest = after[4:]
	}
	return frame, nil
}

// PictureType classifies an embedded picture (front cover, back cover,
// ...).
type PictureType byte

func (p PictureType) String() string {
	if int(p) >= len(PictureTypes) {
		return ""
	}
	return PictureTypes[p]
}

// PictureFrame is the attached picture frame (APIC; PIC in v2.2, where
// the MIME type is stored as a 3-character image format instead).
type PictureFrame struct {
	FrameHeader
	Encoding    Encoding
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

func (f PictureFrame) Value() string {
	return fmt.Sprintf("%s (%s, %d bytes)", f.Description, f.MIMEType, len(f.Data))
}

func (f PictureFrame) Encode(v Version) ([]byte, error) {
	var buf bytes.Buffer
	if v == Version22 {
		format := imageFormatForMIME(f.MIMEType)
		buf.WriteString(format)
	} else {
		mime, err := EncodingISO88591.encode(f.MIMEType)
		if err != nil {
			return nil, err
		}
		buf.Write(mime)
		buf.WriteByte(0)
	}
	buf.WriteByte(byte(f.PictureType))
	if err := writeTerminated(&buf, f.Encoding, f.Description); err != nil {
		return nil, err
	}
	buf.Write(f.Data)
	return withSelector(f.Encoding, buf.Bytes()), nil
}

func decodePictureFrame(h FrameHeader, b []byte, v Version) (Frame, error) {
	enc, rest := splitSelector(b)
	frame := PictureFrame{FrameHeader: h, Encoding: enc}

	if v == Version22 {
		if len(rest) < 4 {
			return nil, fmt.Errorf("id3v2: picture frame too short")
		}
		frame.MIMEType = mimeForImageFormat(string(rest[:3]))
		frame.PictureType = PictureType(rest[3])
		rest = rest[4:]
	} else {
		mime, after := cutCString(rest)
		if len(after) < 1 {
			return nil, fmt.Errorf("id3v2: picture frame too short")
		}
		var err error
		if frame.MIMEType, err = EncodingISO88591.decode(mime); err != nil {
			return nil, err
		}
		frame.PictureType = PictureType(after[0])
		rest = after[1:]
	}

	desc, data := cutTerminated(rest, enc)
	var err error
	if frame.Description, err = enc.decode(desc); err != nil {
		return nil, err
	}
	frame.Data = append([]byte(nil), data...)
	return frame, nil
}

func imageFormatForMIME(mime string) string {
	switch mime {
	case "image/png":
		return "PNG"
	case "image/jpeg", "image/jpg":
		return "JPG"
	}
	// Already a bare 3-character format, or unknown. Pad/truncate to
	// the fixed field width.
	format := strings.ToUpper(strings.TrimPrefix(mime, "image/"))
	for len(format) < 3 {
		format += " "
	}
	return format[:3]
}

func mimeForImageFormat(format string) string {
	switch strings.ToUpper(strings.TrimRight(format, " ")) {
	case "PNG":
		return "image/png"
	case "JPG", "JPEG":
		return "image/jpeg"
	}
	return format
}

// UniqueFileIDFrame is the unique file identifier frame (UFID).
// Multiple may coexist, distinguished by owner.
type UniqueFileIDFrame struct {
	FrameHeader
	Owner      string
	Identifier []byte
}

func (f UniqueFileIDFrame) Value() string { return string(f.Identifier) }

func (f UniqueFileIDFrame) Encode(Version) ([]byte, error) {
	return encodeOwnerBlob(f.Owner, f.Identifier)
}

func decodeUniqueFileIDFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	owner, data, err := decodeOwnerBlob(b)
	if err != nil {
		return nil, err
	}
	return UniqueFileIDFrame{FrameHeader: h, Owner: owner, Identifier: data}, nil
}

// PrivateFrame is the private vendor blob frame (PRIV).
type PrivateFrame struct {
	FrameHeader
	Owner string
	Data  []byte
}

func (f PrivateFrame) Value() string { return string(f.Data) }

func (f PrivateFrame) Encode(Version) ([]byte, error) {
	return encodeOwnerBlob(f.Owner, f.Data)
}

func decodePrivateFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	owner, data, err := decodeOwnerBlob(b)
	if err != nil {
		return nil, err
	}
	return PrivateFrame{FrameHeader: h, Owner: owner, Data: data}, nil
}

// GeneralObjectFrame is the general encapsulated object frame (GEOB):
// an arbitrary binary attachment with a filename and MIME type.
type GeneralObjectFrame struct {
	FrameHeader
	Encoding    Encoding
	MIMEType    string
	Filename    string
	Description string
	Data        []byte
}

func (f GeneralObjectFrame) Value() string {
	return fmt.Sprintf("%s (%s, %d bytes)", f.Filename, f.MIMEType, len(f.Data))
}

func (f GeneralObjectFrame) Encode(Version) ([]byte, error) {
	var buf bytes.Buffer
	mime, err := EncodingISO88591.encode(f.MIMEType)
	if err != nil {
		return nil, err
	}
	buf.Write(mime)
	buf.WriteByte(0)
	if err := writeTerminated(&buf, f.Encoding, f.Filename); err != nil {
		return nil, err
	}
	if err := writeTerminated(&buf, f.Encoding, f.Description); err != nil {
		return nil, err
	}
	buf.Write(f.Data)
	return withSelector(f.Encoding, buf.Bytes()), nil
}

func decodeGeneralObjectFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	enc, rest := splitSelector(b)
	mime, rest := cutCString(rest)
	filename, rest := cutTerminated(rest, enc)
	desc, data := cutTerminated(rest, enc)

	frame := GeneralObjectFrame{FrameHeader: h, Encoding: enc}
	var err error
	if frame.MIMEType, err = EncodingISO88591.decode(mime); err != nil {
		return nil, err
	}
	if frame.Filename, err = enc.decode(filename); err != nil {
		return nil, err
	}
	if frame.Description, err = enc.decode(desc); err != nil {
		return nil, err
	}
	frame.Data = append([]byte(nil), data...)
	return frame, nil
}

// PopularimeterFrame is the rating frame (POPM). The play counter is
// optional on disk; HasCounter records whether one was present.
type PopularimeterFrame struct {
	FrameHeader
	Email      string
	Rating     byte
	Counter    uint64
	HasCounter bool
}

func (f PopularimeterFrame) Value() string { return strconv.Itoa(int(f.Rating)) }

func (f PopularimeterFrame) Encode(Version) ([]byte, error) {
	var buf bytes.Buffer
	email, err := EncodingISO88591.encode(f.Email)
	if err != nil {
		return nil, err
	}
	buf.Write(email)
	buf.WriteByte(0)
	buf.WriteByte(f.Rating)
	if f.HasCounter {
		buf.Write(encodeCounter(f.Counter))
	}
	return buf.Bytes(), nil
}

func decodePopularimeterFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	emailRaw, rest := cutCString(b)
	if len(rest) < 1 {
		return nil, fmt.Errorf("id3v2: popularimeter frame missing rating")
	}
	email, err := EncodingISO88591.decode(emailRaw)
	if err != nil {
		return nil, err
	}
	frame := PopularimeterFrame{FrameHeader: h, Email: email, Rating: rest[0]}
	if len(rest) > 1 {
		frame.Counter = decodeCounter(rest[1:])
		frame.HasCounter = true
	}
	return frame, nil
}

// PlayCounterFrame is the play counter frame (PCNT).
type PlayCounterFrame struct {
	FrameHeader
	Counter uint64
}

func (f PlayCounterFrame) Value() string { return strconv.FormatUint(f.Counter, 10) }

func (f PlayCounterFrame) Encode(Version) ([]byte, error) {
	return encodeCounter(f.Counter), nil
}

func decodePlayCounterFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	return PlayCounterFrame{FrameHeader: h, Counter: decodeCounter(b)}, nil
}

// encodeCounter writes a big-endian play counter, at least four bytes
// wide as the format prescribes, growing a byte at a time beyond that.
func encodeCounter(v uint64) []byte {
	n := 4
	for v>>(8*n) > 0 {
		n++
	}
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

func decodeCounter(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// MusicCDFrame is the music CD identifier frame (MCDI): the raw table
// of contents of the source CD.
type MusicCDFrame struct {
	FrameHeader
	TOC []byte
}

func (f MusicCDFrame) Value() string { return string(f.TOC) }

func (f MusicCDFrame) Encode(Version) ([]byte, error) {
	return append([]byte(nil), f.TOC...), nil
}

func decodeMusicCDFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	return MusicCDFrame{FrameHeader: h, TOC: append([]byte(nil), b...)}, nil
}

// Involvement is one role/name pair of a credited-people list.
type Involvement struct {
	Role string
	Name string
}

// InvolvedPeopleFrame is the credited-people list frame (TIPL, TMCL;
// IPLS in v2.3): a flat sequence of alternating role and name strings.
type InvolvedPeopleFrame struct {
	FrameHeader
	Encoding Encoding
	People   []Involvement
}

func (f InvolvedPeopleFrame) Value() string {
	parts := make([]string, len(f.People))
	for i, p := range f.People {
		parts[i] = p.Role + ": " + p.Name
	}
	return strings.Join(parts, ", ")
}

func (f InvolvedPeopleFrame) Encode(Version) ([]byte, error) {
	var buf bytes.Buffer
	for i, p := range f.People {
		if err := writeTerminated(&buf, f.Encoding, p.Role); err != nil {
			return nil, err
		}
		text, err := f.Encoding.encode(p.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(text)
		if i < len(f.People)-1 {
			buf.Write(f.Encoding.terminator())
		}
	}
	return withSelector(f.Encoding, buf.Bytes()), nil
}

func decodeInvolvedPeopleFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	enc, rest := splitSelector(b)
	frame := InvolvedPeopleFrame{FrameHeader: h, Encoding: enc}
	rest = trimTerminator(rest, enc)
	for len(rest) > 0 {
		role, after := cutTerminated(rest, enc)
		name, after := cutTerminated(after, enc)
		var inv Involvement
		var err error
		if inv.Role, err = enc.decode(role); err != nil {
			return nil, err
		}
		if inv.Name, err = enc.decode(name); err != nil {
			return nil, err
		}
		frame.People = append(frame.People, inv)
		rest = after
	}
	return frame, nil
}

// ChapterFrame is the chapter marker frame (CHAP). Sub-frames, usually
// a title and perhaps a picture, are parsed with the same frame codec
// as top-level frames.
type ChapterFrame struct {
	FrameHeader
	ElementID   string
	StartTime   uint32 // milliseconds
	EndTime     uint32 // milliseconds
	StartOffset uint32 // bytes, 0xFFFFFFFF if unused
	EndOffset   uint32 // bytes, 0xFFFFFFFF if unused
	Frames      []Frame
}

func (f ChapterFrame) Value() string { return f.ElementID }

func (f ChapterFrame) Encode(v Version) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(f.ElementID)
	buf.WriteByte(0)
	for _, n := range [...]uint32{f.StartTime, f.EndTime, f.StartOffset, f.EndOffset} {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], n)
		buf.Write(b[:])
	}
	if err := encodeSubFrames(&buf, f.Frames, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeChapterFrame(h FrameHeader, b []byte, v Version) (Frame, error) {
	elementID, rest := cutCString(b)
	if len(rest) < 16 {
		return nil, fmt.Errorf("id3v2: chapter frame too short")
	}
	frame := ChapterFrame{
		FrameHeader: h,
		ElementID:   string(elementID),
		StartTime:   binary.BigEndian.Uint32(rest[0:4]),
		EndTime:     binary.BigEndian.Uint32(rest[4:8]),
		StartOffset: binary.BigEndian.Uint32(rest[8:12]),
		EndOffset:   binary.BigEndian.Uint32(rest[12:16]),
	}
	sub, _, err := parseFrames(rest[16:], v)
	if err != nil {
		return nil, err
	}
	frame.Frames = sub
	return frame, nil
}

// TOCFrame is the table-of-contents marker frame (CTOC), grouping
// chapters by their element identifiers.
type TOCFrame struct {
	FrameHeader
	ElementID string
	TopLevel  bool
	Ordered   bool
	ChildIDs  []string
	Frames    []Frame
}

func (f TOCFrame) Value() string { return strings.Join(f.ChildIDs, ", ") }

func (f TOCFrame) Encode(v Version) ([]byte, error) {
	if len(f.ChildIDs) > 0xff {
		return nil, fmt.Errorf("id3v2: table of contents has %d entries, limit is 255", len(f.ChildIDs))
	}
	var buf bytes.Buffer
	buf.WriteString(f.ElementID)
	buf.WriteByte(0)
	var flags byte
	if f.TopLevel {
		flags |= 0x02
	}
	if f.Ordered {
		flags |= 0x01
	}
	buf.WriteByte(flags)
	buf.WriteByte(byte(len(f.ChildIDs)))
	for _, id := range f.ChildIDs {
		buf.WriteString(id)
		buf.WriteByte(0)
	}
	if err := encodeSubFrames(&buf, f.Frames, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeTOCFrame(h FrameHeader, b []byte, v Version) (Frame, error) {
	elementID, rest := cutCString(b)
	if len(rest) < 2 {
		return nil, fmt.Errorf("id3v2: table of contents frame too short")
	}
	frame := TOCFrame{
		FrameHeader: h,
		ElementID:   string(elementID),
		TopLevel:    rest[0]&0x02 > 0,
		Ordered:     rest[0]&0x01 > 0,
	}
	count := int(rest[1])
	rest = rest[2:]
	for i := 0; i < count; i++ {
		var id []byte
		id, rest = cutCString(rest)
		frame.ChildIDs = append(frame.ChildIDs, string(id))
	}
	sub, _, err := parseFrames(rest, v)
	if err != nil {
		return nil, err
	}
	frame.Frames = sub
	return frame, nil
}

// encodeSubFrames serializes embedded frames through the same path as
// top-level ones, so per-frame unsynchronization survives reencoding.
func encodeSubFrames(buf *bytes.Buffer, frames []Frame, v Version) error {
	layout := layoutForVersion(v)
	for _, sub := range frames {
		if err := renderFrame(buf, sub, layout, v); err != nil {
			return err
		}
	}
	return nil
}

// OpaqueFrame preserves the payload of a frame the registry does not
// recognize, or that is compressed or encrypted. It re-renders byte
// identical.
type OpaqueFrame struct {
	FrameHeader
	Data []byte
}

func (f OpaqueFrame) Value() string { return string(f.Data) }

func (f OpaqueFrame) Encode(Version) ([]byte, error) {
	return append([]byte(nil), f.Data...), nil
}

func decodeOpaqueFrame(h FrameHeader, b []byte, _ Version) (Frame, error) {
	return OpaqueFrame{FrameHeader: h, Data: append([]byte(nil), b...)}, nil
}

// splitSelector strips the leading text-encoding selector byte.
// Selector values outside the defined range fall back to Latin-1, which
// decodes any byte sequence.
func splitSelector(b []byte) (Encoding, []byte) {
	if len(b) == 0 {
		return EncodingUTF8, nil
	}
	enc := Encoding(b[0])
	if !enc.valid() {
		enc = EncodingISO88591
	}
	return enc, b[1:]
}

func withSelector(enc Encoding, b []byte) []byte {
	out := make([]byte, 0, len(b)+1)
	out = append(out, byte(enc))
	return append(out, b...)
}

// encodeWithSelector writes the selector byte followed by the given
// strings, terminated between but not after.
func encodeWithSelector(enc Encoding, strs ...string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(byte(enc))
	for i, s := range strs {
		text, err := enc.encode(s)
		if err != nil {
			return nil, err
		}
		buf.Write(text)
		if i < len(strs)-1 {
			buf.Write(enc.terminator())
		}
	}
	return buf.Bytes(), nil
}

func writeTerminated(buf *bytes.Buffer, enc Encoding, s string) error {
	text, err := enc.encode(s)
	if err != nil {
		return err
	}
	buf.Write(text)
	buf.Write(enc.terminator())
	return nil
}

// trimTerminator drops a single trailing terminator, which many
// writers emit even on the final string of a payload.
func trimTerminator(b []byte, enc Encoding) []byte {
	term := enc.terminator()
	if len(b) >= len(term) && isZero(b[len(b)-len(term):]) {
		return b[:len(b)-len(term)]
	}
	return b
}

func encodeLanguageText(enc Encoding, lang, desc, text string) ([]byte, error) {
	if len(lang) != 3 {
		return nil, fmt.Errorf("id3v2: language %q must be 3 bytes", lang)
	}
	var buf bytes.Buffer
	buf.WriteString(lang)
	if err := writeTerminated(&buf, enc, desc); err != nil {
		return nil, err
	}
	body, err := enc.encode(text)
	if err != nil {
		return nil, err
	}
	buf.Write(body)
	return withSelector(enc, buf.Bytes()), nil
}

func decodeLanguageText(b []byte) (enc Encoding, lang, desc, text string, err error) {
	enc, rest := splitSelector(b)
	if len(rest) < 3 {
		return enc, "", "", "", fmt.Errorf("id3v2: frame too short for language code")
	}
	lang = string(rest[:3])
	descRaw, textRaw := cutTerminated(rest[3:], enc)
	if desc, err = enc.decode(descRaw); err != nil {
		return enc, "", "", "", err
	}
	if text, err = enc.decode(trimTerminator(textRaw, enc)); err != nil {
		return enc, "", "", "", err
	}
	return enc, lang, desc, text, nil
}

func encodeOwnerBlob(owner string, data []byte) ([]byte, error) {
	ownerRaw, err := EncodingISO88591.encode(owner)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(ownerRaw)+1+len(data))
	out = append(out, ownerRaw...)
	out = append(out, 0)
	return append(out, data...), nil
}

func decodeOwnerBlob(b []byte) (string, []byte, error) {
	ownerRaw, data := cutCString(b)
	owner, err := EncodingISO88591.decode(ownerRaw)
	if err != nil {
		return "", nil, err
	}
	return owner, append([]byte(nil), data...), nil
}
