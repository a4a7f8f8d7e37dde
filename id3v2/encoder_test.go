package id3v2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPadding(t *testing.T, n int) {
	t.Helper()

	old := Padding
	Padding = n
	t.Cleanup(func() { Padding = old })
}

func TestRenderParseRoundTrip(t *testing.T) {
	tag := NewTag()
	tag.SetTitle("Sympathique")
	tag.SetArtists([]string{"Pink Martini", "China Forbes"})
	tag.SetAlbum("Sympathique")
	tag.SetTrack(3, 12)
	tag.SetComment("the lazy song")
	tag.AddFrame(PopularimeterFrame{
		FrameHeader: NewFrameHeader("POPM"),
		Email:       "user@example.com",
		Rating:      220,
		Counter:     7,
		HasCounter:  true,
	})

	raw, err := tag.Render()
	require.NoError(t, err)

	got, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, tag.Frames, got.Frames)
	assert.Equal(t, Version24, got.Header.Version)
	assert.Equal(t, Padding, got.Padding)
}

func TestRenderRecomputesSize(t *testing.T) {
	withPadding(t, 0)

	tag := NewTag()
	tag.SetTitle("x")
	// A stale declared size from a previous parse must not leak into
	// the render.
	tag.Header.size = 9999

	raw, err := tag.Render()
	require.NoError(t, err)

	header, err := ParseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, len(raw)-tagHeaderSize, header.size)
}

func TestRenderUnknownFramePreservedByteExact(t *testing.T) {
	withPadding(t, 0)

	known := v24Frame(t, "TIT2", append([]byte{3}, "hello"...))
	unknown := v24Frame(t, "ZZZZ", []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x13})
	raw := buildTag(t, 4, 0, append(known, unknown...))

	tag, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, tag.Frames, 2)

	rendered, err := tag.Render()
	require.NoError(t, err)
	assert.Equal(t, raw, rendered)
}

func TestRenderGroupedFramePreservedByteExact(t *testing.T) {
	withPadding(t, 0)

	// Group identifier 0x85 ahead of the content; the frame must come
	// back byte for byte, flags included.
	hb, err := layoutLongSyncsafe.renderHeader(FrameHeader{id: "TIT2", flags: 0x0040}, 4)
	require.NoError(t, err)
	body := append(hb, 0x85, 0x03, 'h', 'i')
	raw := buildTag(t, 4, 0, body)

	tag, err := Parse(raw)
	require.NoError(t, err)

	rendered, err := tag.Render()
	require.NoError(t, err)
	assert.Equal(t, raw, rendered)
}

func TestRenderV22RoundTrip(t *testing.T) {
	withPadding(t, 0)

	tag := &Tag{Header: TagHeader{Version: Version22}}
	tag.SetTitle("Help!")
	tag.SetAlbum("Help!")

	raw, err := tag.Render()
	require.NoError(t, err)
	// The short layout stores translated 3-character identifiers.
	assert.Contains(t, string(raw), "TT2")
	assert.Contains(t, string(raw), "TAL")

	got, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Help!", got.Title())
	assert.Equal(t, "Help!", got.Album())
}

func TestRenderV23RoundTrip(t *testing.T) {
	tag := &Tag{Header: TagHeader{Version: Version23}}
	tag.SetTitle("Yesterday")
	tag.SetYear(1965)

	raw, err := tag.Render()
	require.NoError(t, err)

	got, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, Version23, got.Header.Version)
	assert.Equal(t, "Yesterday", got.Title())
	assert.Equal(t, 1965, got.Year())
	assert.True(t, got.HasFrame("TYER"))
}

func TestRenderWholeBodyUnsync(t *testing.T) {
	tag := &Tag{Header: TagHeader{Version: Version23, Flags: 0x80}}
	tag.AddFrame(PrivateFrame{
		FrameHeader: NewFrameHeader("PRIV"),
		Owner:       "example.com",
		Data:        []byte{0xff, 0xe6, 0xff, 0x00},
	})

	raw, err := tag.Render()
	require.NoError(t, err)

	// No 0xFF byte in the body may be followed by a sync-pattern byte.
	body := raw[tagHeaderSize:]
	for i := 0; i+1 < len(body); i++ {
		if body[i] == 0xff {
			assert.Less(t, body[i+1], byte(0xe0))
		}
	}

	got, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, got.Frames, 1)
	assert.Equal(t, tag.Frames[0], got.Frames[0])
}

func TestRenderPerFrameUnsyncV4(t *testing.T) {
	withPadding(t, 0)

	tag := NewTag()
	tag.AddFrame(OpaqueFrame{
		FrameHeader: FrameHeader{id: "XENC", flags: 0x0002},
		Data:        []byte{0xff, 0xe6},
	})

	raw, err := tag.Render()
	require.NoError(t, err)
	// On disk the payload carries the inserted zero byte.
	assert.Equal(t, []byte{0xff, 0x00, 0xe6}, raw[len(raw)-3:])

	got, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, tag.Frames, got.Frames)
}

func TestRenderFooter(t *testing.T) {
	tag := &Tag{Header: TagHeader{Version: Version24, Flags: 0x10}}
	tag.SetTitle("x")

	raw, err := tag.Render()
	require.NoError(t, err)
	assert.Equal(t, []byte("3DI"), raw[len(raw)-footerSize:len(raw)-footerSize+3])

	header, err := ParseHeader(raw)
	require.NoError(t, err)
	// Declared size excludes both header and footer.
	assert.Equal(t, len(raw)-tagHeaderSize-footerSize, header.size)
}

func TestRenderOversizedFrameFails(t *testing.T) {
	// v2.2 frame sizes are three plain bytes; anything past 2^24-1
	// cannot be written.
	tag := &Tag{Header: TagHeader{Version: Version22}}
	tag.AddFrame(OpaqueFrame{
		FrameHeader: NewFrameHeader("ZZZ"),
		Data:        make([]byte, 1<<24),
	})

	_, err := tag.Render()
	assert.Error(t, err)
}

func TestRenderV22UntranslatableFrameFails(t *testing.T) {
	tag := &Tag{Header: TagHeader{Version: Version22}}
	// TSOA has no three-character equivalent.
	tag.SetAlbumSort("Help")

	_, err := tag.Render()
	assert.Error(t, err)
}
