package id3v2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiotag/audiotag"
)

func TestTextFieldAccessors(t *testing.T) {
	tag := NewTag()

	tag.SetTitle("Sympathique")
	assert.Equal(t, "Sympathique", tag.Title())

	tag.SetTitle("Je ne veux pas travailler")
	assert.Equal(t, "Je ne veux pas travailler", tag.Title())
	require.Len(t, tag.Frames, 1)

	tag.SetTitle("")
	assert.Equal(t, "", tag.Title())
	assert.Empty(t, tag.Frames)
}

func TestFirstFrameWinsOnDuplicates(t *testing.T) {
	tag := NewTag()
	tag.AddFrame(TextFrame{FrameHeader: NewFrameHeader("TIT2"), Encoding: EncodingUTF8, Text: "first"})
	tag.AddFrame(TextFrame{FrameHeader: NewFrameHeader("TIT2"), Encoding: EncodingUTF8, Text: "second"})

	assert.Equal(t, "first", tag.Title())

	// Setting replaces the first occurrence and leaves the duplicate.
	tag.SetTitle("changed")
	require.Len(t, tag.Frames, 2)
	assert.Equal(t, "changed", tag.Frames[0].(TextFrame).Text)
	assert.Equal(t, "second", tag.Frames[1].(TextFrame).Text)
}

func TestMultiValuedFields(t *testing.T) {
	tag := NewTag()

	tag.SetArtists([]string{"Pink Martini", "China Forbes"})
	assert.Equal(t, []string{"Pink Martini", "China Forbes"}, tag.Artists())
	assert.Equal(t, "Pink Martini", tag.Artist())

	// Older writers separate multiple values with a slash.
	tag.SetTextFrame("TPE1", "AC/DC")
	assert.Equal(t, []string{"AC", "DC"}, tag.Artists())
}

func TestTrackAndDisc(t *testing.T) {
	tag := NewTag()

	tag.SetTrack(3, 12)
	n, total := tag.Track()
	assert.Equal(t, 3, n)
	assert.Equal(t, 12, total)
	assert.Equal(t, "3/12", tag.GetTextFrame("TRCK"))

	tag.SetTrack(4, 0)
	n, total = tag.Track()
	assert.Equal(t, 4, n)
	assert.Equal(t, 0, total)
	assert.Equal(t, "4", tag.GetTextFrame("TRCK"))

	tag.SetDisc(1, 2)
	n, total = tag.Disc()
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, total)
}

func TestYearPerVersion(t *testing.T) {
	v4 := NewTag()
	v4.SetYear(1997)
	assert.True(t, v4.HasFrame("TDRC"))
	assert.Equal(t, 1997, v4.Year())

	v3 := &Tag{Header: TagHeader{Version: Version23}}
	v3.SetYear(1969)
	assert.True(t, v3.HasFrame("TYER"))
	assert.Equal(t, 1969, v3.Year())

	// Full v2.4 timestamps still yield the year.
	ts := NewTag()
	ts.SetTextFrame("TDRC", "2004-06-01T12:00:00")
	assert.Equal(t, 2004, ts.Year())
}

func TestUserTextFields(t *testing.T) {
	tag := NewTag()

	tag.SetMusicBrainzArtistID("abc-123")
	tag.SetReplayGainTrackGain("-6.5 dB")

	assert.Equal(t, "abc-123", tag.MusicBrainzArtistID())
	assert.Equal(t, "-6.5 dB", tag.ReplayGainTrackGain())

	// Both live in user text frames and must not clobber each other.
	require.Len(t, tag.Frames, 2)

	// Description matching is case-insensitive.
	tag.Frames[1] = UserTextFrame{
		FrameHeader: NewFrameHeader("TXXX"),
		Encoding:    EncodingUTF8,
		Description: "REPLAYGAIN_TRACK_GAIN",
		Text:        "-7.0 dB",
	}
	assert.Equal(t, "-7.0 dB", tag.ReplayGainTrackGain())
}

func TestMusicBrainzTrackID(t *testing.T) {
	tag := NewTag()
	tag.AddFrame(UniqueFileIDFrame{
		FrameHeader: NewFrameHeader("UFID"),
		Owner:       "http://example.com",
		Identifier:  []byte("other"),
	})

	assert.Equal(t, "", tag.MusicBrainzTrackID())

	tag.SetMusicBrainzTrackID("8ac1b0bf")
	assert.Equal(t, "8ac1b0bf", tag.MusicBrainzTrackID())
	// The foreign identifier frame is untouched.
	require.Len(t, tag.Frames, 2)
	assert.Equal(t, "http://example.com", tag.Frames[0].(UniqueFileIDFrame).Owner)
}

func TestPictures(t *testing.T) {
	tag := NewTag()
	tag.SetPictures([]audiotag.Picture{
		{MIMEType: "image/png", Type: 3, Description: "front", Data: []byte{1, 2, 3}},
		{MIMEType: "image/jpeg", Type: 4, Description: "back", Data: []byte{4, 5}},
	})

	pics := tag.Pictures()
	require.Len(t, pics, 2)
	assert.Equal(t, "image/png", pics[0].MIMEType)
	assert.Equal(t, byte(4), pics[1].Type)
}

func TestCommentAndLyrics(t *testing.T) {
	tag := NewTag()

	tag.SetComment("nice record")
	assert.Equal(t, "nice record", tag.Comment())

	tag.SetLyrics("la la la")
	assert.Equal(t, "la la la", tag.Lyrics())

	tag.SetComment("")
	assert.Equal(t, "", tag.Comment())
	assert.Equal(t, "la la la", tag.Lyrics())
}

func TestRemoveFrames(t *testing.T) {
	tag := NewTag()
	tag.SetTitle("a")
	tag.SetAlbum("b")
	tag.RemoveFrames("TIT2")

	assert.False(t, tag.HasFrame("TIT2"))
	assert.True(t, tag.HasFrame("TALB"))
}
