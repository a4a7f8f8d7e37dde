package id3v2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The same four size bytes mean different things depending on the tag
// version: plain big-endian in v2.3, syncsafe in v2.4.
func TestFrameSizeEncodingDependsOnVersion(t *testing.T) {
	buf := append([]byte("TIT2"), 0x00, 0x00, 0x01, 0x00, 0x00, 0x00)
	buf = append(buf, make([]byte, 256)...)

	_, size, err := layoutLongPlain.parseHeader(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 256, size)

	_, size, err = layoutLongSyncsafe.parseHeader(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 128, size)
}

func TestShortHeaderLayout(t *testing.T) {
	buf := append([]byte("TT2"), 0x00, 0x00, 0x05)
	buf = append(buf, []byte("hello")...)

	header, size, err := layoutShort.parseHeader(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, FrameID("TT2"), header.ID())
	assert.Equal(t, 5, size)
}

func TestParseHeaderPadding(t *testing.T) {
	_, _, err := layoutLongSyncsafe.parseHeader(make([]byte, 64), 0)
	assert.Equal(t, errPaddingReached, err)

	_, _, err = layoutShort.parseHeader(make([]byte, 64), 0)
	assert.Equal(t, errPaddingReached, err)
}

func TestParseHeaderRejectsOverrun(t *testing.T) {
	// Frame claims 100 payload bytes, only 4 remain.
	buf := append([]byte("TIT2"), 0x00, 0x00, 0x00, 0x64, 0x00, 0x00)
	buf = append(buf, make([]byte, 4)...)

	_, _, err := layoutLongSyncsafe.parseHeader(buf, 0)
	var merr *MalformedError
	assert.ErrorAs(t, err, &merr)
}

func TestParseHeaderRejectsBadIdentifier(t *testing.T) {
	buf := append([]byte("ti*2"), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)

	_, _, err := layoutLongSyncsafe.parseHeader(buf, 0)
	var merr *MalformedError
	assert.ErrorAs(t, err, &merr)
}

func TestRenderHeaderRoundTrip(t *testing.T) {
	for _, layout := range []headerLayout{layoutLongPlain, layoutLongSyncsafe} {
		in := FrameHeader{id: "APIC", flags: 0x0040 | 0x0008}
		b, err := layout.renderHeader(in, 1234)
		require.NoError(t, err)
		require.Len(t, b, 10)

		out, size, err := layout.parseHeader(append(b, make([]byte, 1234)...), 0)
		require.NoError(t, err)
		assert.Equal(t, in, out)
		assert.Equal(t, 1234, size)
		assert.True(t, out.Flags().Grouped())
		assert.True(t, out.Flags().Compressed())
	}
}

func TestRenderHeaderOversizeShortFrame(t *testing.T) {
	_, err := layoutShort.renderHeader(FrameHeader{id: "PIC"}, 0x1000000)
	assert.Error(t, err)
}

func TestV23FlagTranslation(t *testing.T) {
	// Compression is bit 7 of the second flag byte in v2.3.
	raw := uint16(0x0080)
	f := layoutLongPlain.normalizeFlags(raw)
	assert.True(t, f.Compressed())
	assert.False(t, f.Encrypted())
	assert.Equal(t, raw, layoutLongPlain.rawFlags(f))
}
