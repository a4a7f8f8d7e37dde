package id3v2

import (
	"strconv"
	"strings"

	"github.com/audiotag/audiotag"
)

// The accessors below project the generic field contract onto specific
// frame identifiers. When several frames share an identifier the field
// model treats as singular, the first occurrence in parse order wins on
// read, and a set replaces that first occurrence in place, leaving any
// later duplicates alone.

const musicBrainzOwner = "http://musicbrainz.org"

func (t *Tag) findFrame(id FrameID) (int, Frame) {
	for i, f := range t.Frames {
		if f.ID() == id {
			return i, f
		}
	}
	return -1, nil
}

// HasFrame reports whether at least one frame with the identifier
// exists.
func (t *Tag) HasFrame(id FrameID) bool {
	i, _ := t.findFrame(id)
	return i >= 0
}

// RemoveFrames deletes every frame with the identifier.
func (t *Tag) RemoveFrames(id FrameID) {
	kept := t.Frames[:0]
	for _, f := range t.Frames {
		if f.ID() != id {
			kept = append(kept, f)
		}
	}
	t.Frames = kept
}

// AddFrame appends a frame, preserving existing order.
func (t *Tag) AddFrame(f Frame) {
	t.Frames = append(t.Frames, f)
}

// GetTextFrame returns the text of the first frame with the identifier,
// or "" when absent.
func (t *Tag) GetTextFrame(id FrameID) string {
	if _, f := t.findFrame(id); f != nil {
		if tf, ok := f.(TextFrame); ok {
			return tf.Text
		}
	}
	return ""
}

// SetTextFrame replaces the first frame with the identifier, or appends
// a new one. An empty value removes the frames instead, so cleared
// fields don't linger as empty frames.
func (t *Tag) SetTextFrame(id FrameID, value string) {
	if value == "" {
		t.RemoveFrames(id)
		return
	}
	frame := TextFrame{
		FrameHeader: FrameHeader{id: id},
		Encoding:    EncodingUTF8,
		Text:        value,
	}
	if i, _ := t.findFrame(id); i >= 0 {
		t.Frames[i] = frame
	} else {
		t.Frames = append(t.Frames, frame)
	}
}

// GetTextFrameSlice splits a multi-valued text frame on the NUL
// separator, falling back to the "/" convention older writers used.
func (t *Tag) GetTextFrameSlice(id FrameID) []string {
	s := t.GetTextFrame(id)
	if s == "" {
		return nil
	}
	if strings.Contains(s, "\x00") {
		return strings.Split(s, "\x00")
	}
	if strings.Contains(s, "/") {
		return strings.Split(s, "/")
	}
	return []string{s}
}

func (t *Tag) SetTextFrameSlice(id FrameID, values []string) {
	t.SetTextFrame(id, strings.Join(values, "\x00"))
}

func (t *Tag) GetTextFrameNumber(id FrameID) int {
	n, _ := strconv.Atoi(t.GetTextFrame(id))
	return n
}

func (t *Tag) SetTextFrameNumber(id FrameID, n int) {
	if n == 0 {
		t.RemoveFrames(id)
		return
	}
	t.SetTextFrame(id, strconv.Itoa(n))
}

// UserText returns the value of the user text frame with the given
// description, matched case-insensitively.
func (t *Tag) UserText(description string) string {
	for _, f := range t.Frames {
		if utf, ok := f.(UserTextFrame); ok && strings.EqualFold(utf.Description, description) {
			return utf.Text
		}
	}
	return ""
}

// SetUserText sets the user text frame with the given description,
// keeping other user text frames untouched.
func (t *Tag) SetUserText(description, value string) {
	for i, f := range t.Frames {
		utf, ok := f.(UserTextFrame)
		if !ok || !strings.EqualFold(utf.Description, description) {
			continue
		}
		if value == "" {
			t.Frames = append(t.Frames[:i], t.Frames[i+1:]...)
			return
		}
		utf.Description = description
		utf.Text = value
		t.Frames[i] = utf
		return
	}
	if value == "" {
		return
	}
	t.Frames = append(t.Frames, UserTextFrame{
		FrameHeader: FrameHeader{id: "TXXX"},
		Encoding:    EncodingUTF8,
		Description: description,
		Text:        value,
	})
}

func (t *Tag) Title() string         { return t.GetTextFrame("TIT2") }
func (t *Tag) SetTitle(title string) { t.SetTextFrame("TIT2", title) }

func (t *Tag) Artists() []string           { return t.GetTextFrameSlice("TPE1") }
func (t *Tag) SetArtists(artists []string) { t.SetTextFrameSlice("TPE1", artists) }

// Artist returns the first of possibly several performers.
func (t *Tag) Artist() string {
	if artists := t.Artists(); len(artists) > 0 {
		return artists[0]
	}
	return ""
}

func (t *Tag) SetArtist(artist string) { t.SetTextFrame("TPE1", artist) }

func (t *Tag) Album() string         { return t.GetTextFrame("TALB") }
func (t *Tag) SetAlbum(album string) { t.SetTextFrame("TALB", album) }

func (t *Tag) AlbumArtist() string        { return t.GetTextFrame("TPE2") }
func (t *Tag) SetAlbumArtist(name string) { t.SetTextFrame("TPE2", name) }

func (t *Tag) Composers() []string            { return t.GetTextFrameSlice("TCOM") }
func (t *Tag) SetComposers(composers []string) { t.SetTextFrameSlice("TCOM", composers) }

func (t *Tag) Genres() []string          { return t.GetTextFrameSlice("TCON") }
func (t *Tag) SetGenres(genres []string) { t.SetTextFrameSlice("TCON", genres) }

func (t *Tag) BPM() int       { return t.GetTextFrameNumber("TBPM") }
func (t *Tag) SetBPM(bpm int) { t.SetTextFrameNumber("TBPM", bpm) }

func (t *Tag) ISRC() string         { return t.GetTextFrame("TSRC") }
func (t *Tag) SetISRC(isrc string)  { t.SetTextFrame("TSRC", isrc) }
func (t *Tag) Copyright() string    { return t.GetTextFrame("TCOP") }
func (t *Tag) SetCopyright(c string) { t.SetTextFrame("TCOP", c) }

// Year reads the recording year: the timestamp frame on v2.4 tags, the
// year frame on older ones; either is accepted regardless of version
// since cross-version copies are common in the wild.
func (t *Tag) Year() int {
	for _, id := range [...]FrameID{"TDRC", "TYER"} {
		s := t.GetTextFrame(id)
		if len(s) >= 4 {
			if y, err := strconv.Atoi(s[:4]); err == nil {
				return y
			}
		}
	}
	return 0
}

func (t *Tag) SetYear(year int) {
	if t.Header.Version != 0 && t.Header.Version < Version24 {
		t.SetTextFrameNumber("TYER", year)
		return
	}
	t.SetTextFrameNumber("TDRC", year)
}

// Comment returns the text of the first comment frame.
func (t *Tag) Comment() string {
	for _, f := range t.Frames {
		if c, ok := f.(CommentFrame); ok {
			return c.Text
		}
	}
	return ""
}

// SetComment replaces the first comment frame, or adds one with an
// empty description and undetermined language.
func (t *Tag) SetComment(text string) {
	for i, f := range t.Frames {
		c, ok := f.(CommentFrame)
		if !ok {
			continue
		}
		if text == "" {
			t.Frames = append(t.Frames[:i], t.Frames[i+1:]...)
			return
		}
		c.Text = text
		t.Frames[i] = c
		return
	}
	if text == "" {
		return
	}
	t.Frames = append(t.Frames, CommentFrame{
		FrameHeader: FrameHeader{id: "COMM"},
		Encoding:    EncodingUTF8,
		Language:    "und",
		Text:        text,
	})
}

// Comments returns every comment frame in parse order.
func (t *Tag) Comments() []CommentFrame {
	var comments []CommentFrame
	for _, f := range t.Frames {
		if c, ok := f.(CommentFrame); ok {
			comments = append(comments, c)
		}
	}
	return comments
}

func (t *Tag) Track() (int, int)          { return splitPosition(t.GetTextFrame("TRCK")) }
func (t *Tag) SetTrack(number, total int) { t.SetTextFrame("TRCK", joinPosition(number, total)) }

func (t *Tag) Disc() (int, int)          { return splitPosition(t.GetTextFrame("TPOS")) }
func (t *Tag) SetDisc(number, total int) { t.SetTextFrame("TPOS", joinPosition(number, total)) }

// splitPosition parses the "number/total" convention of the track and
// disc frames; the total part is optional.
func splitPosition(s string) (int, int) {
	number, totalStr, _ := strings.Cut(s, "/")
	n, _ := strconv.Atoi(number)
	total, _ := strconv.Atoi(totalStr)
	return n, total
}

func joinPosition(number, total int) string {
	if number == 0 && total == 0 {
		return ""
	}
	if total == 0 {
		return strconv.Itoa(number)
	}
	return strconv.Itoa(number) + "/" + strconv.Itoa(total)
}

// Lyrics returns the text of the first unsynchronised lyrics frame.
func (t *Tag) Lyrics() string {
	for _, f := range t.Frames {
		if l, ok := f.(LyricsFrame); ok {
			return l.Text
		}
	}
	return ""
}

func (t *Tag) SetLyrics(text string) {
	for i, f := range t.Frames {
		l, ok := f.(LyricsFrame)
		if !ok {
			continue
		}
		if text == "" {
			t.Frames = append(t.Frames[:i], t.Frames[i+1:]...)
			return
		}
		l.Text = text
		t.Frames[i] = l
		return
	}
	if text == "" {
		return
	}
	t.Frames = append(t.Frames, LyricsFrame{
		FrameHeader: FrameHeader{id: "USLT"},
		Encoding:    EncodingUTF8,
		Language:    "und",
		Text:        text,
	})
}

func (t *Tag) TitleSort() string           { return t.GetTextFrame("TSOT") }
func (t *Tag) SetTitleSort(s string)       { t.SetTextFrame("TSOT", s) }
func (t *Tag) ArtistSort() string          { return t.GetTextFrame("TSOP") }
func (t *Tag) SetArtistSort(s string)      { t.SetTextFrame("TSOP", s) }
func (t *Tag) AlbumSort() string           { return t.GetTextFrame("TSOA") }
func (t *Tag) SetAlbumSort(s string)       { t.SetTextFrame("TSOA", s) }
func (t *Tag) AlbumArtistSort() string     { return t.GetTextFrame("TSO2") }
func (t *Tag) SetAlbumArtistSort(s string) { t.SetTextFrame("TSO2", s) }
func (t *Tag) ComposerSort() string        { return t.GetTextFrame("TSOC") }
func (t *Tag) SetComposerSort(s string)    { t.SetTextFrame("TSOC", s) }

// MusicBrainzTrackID reads the recording identifier from the unique
// file identifier frame owned by the MusicBrainz database.
func (t *Tag) MusicBrainzTrackID() string {
	for _, f := range t.Frames {
		if u, ok := f.(UniqueFileIDFrame); ok && u.Owner == musicBrainzOwner {
			return string(u.Identifier)
		}
	}
	return ""
}

func (t *Tag) SetMusicBrainzTrackID(id string) {
	for i, f := range t.Frames {
		u, ok := f.(UniqueFileIDFrame)
		if !ok || u.Owner != musicBrainzOwner {
			continue
		}
		if id == "" {
			t.Frames = append(t.Frames[:i], t.Frames[i+1:]...)
			return
		}
		u.Identifier = []byte(id)
		t.Frames[i] = u
		return
	}
	if id == "" {
		return
	}
	t.Frames = append(t.Frames, UniqueFileIDFrame{
		FrameHeader: FrameHeader{id: "UFID"},
		Owner:       musicBrainzOwner,
		Identifier:  []byte(id),
	})
}

func (t *Tag) MusicBrainzArtistID() string      { return t.UserText("MusicBrainz Artist Id") }
func (t *Tag) SetMusicBrainzArtistID(id string) { t.SetUserText("MusicBrainz Artist Id", id) }

func (t *Tag) MusicBrainzAlbumID() string      { return t.UserText("MusicBrainz Album Id") }
func (t *Tag) SetMusicBrainzAlbumID(id string) { t.SetUserText("MusicBrainz Album Id", id) }

func (t *Tag) MusicBrainzReleaseGroupID() string {
	return t.UserText("MusicBrainz Release Group Id")
}

func (t *Tag) SetMusicBrainzReleaseGroupID(id string) {
	t.SetUserText("MusicBrainz Release Group Id", id)
}

func (t *Tag) ReplayGainTrackGain() string       { return t.UserText("replaygain_track_gain") }
func (t *Tag) SetReplayGainTrackGain(v string)   { t.SetUserText("replaygain_track_gain", v) }
func (t *Tag) ReplayGainTrackPeak() string       { return t.UserText("replaygain_track_peak") }
func (t *Tag) SetReplayGainTrackPeak(v string)   { t.SetUserText("replaygain_track_peak", v) }
func (t *Tag) ReplayGainAlbumGain() string       { return t.UserText("replaygain_album_gain") }
func (t *Tag) SetReplayGainAlbumGain(v string)   { t.SetUserText("replaygain_album_gain", v) }
func (t *Tag) ReplayGainAlbumPeak() string       { return t.UserText("replaygain_album_peak") }
func (t *Tag) SetReplayGainAlbumPeak(v string)   { t.SetUserText("replaygain_album_peak", v) }

// Pictures returns every embedded picture in parse order.
func (t *Tag) Pictures() []audiotag.Picture {
	var pics []audiotag.Picture
	for _, f := range t.Frames {
		if p, ok := f.(PictureFrame); ok {
			pics = append(pics, audiotag.Picture{
				MIMEType:    p.MIMEType,
				Type:        byte(p.PictureType),
				Description: p.Description,
				Data:        p.Data,
			})
		}
	}
	return pics
}

// SetPictures replaces all picture frames.
func (t *Tag) SetPictures(pics []audiotag.Picture) {
	t.RemoveFrames("APIC")
	for _, p := range pics {
		t.Frames = append(t.Frames, PictureFrame{
			FrameHeader: FrameHeader{id: "APIC"},
			Encoding:    EncodingUTF8,
			MIMEType:    p.MIMEType,
			PictureType: PictureType(p.Type),
			Description: p.Description,
			Data:        p.Data,
		})
	}
}

var _ audiotag.Metadata = (*Tag)(nil)
