package id3v2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsyncApply(t *testing.T) {
	tests := []struct {
		in  []byte
		out []byte
	}{
		{[]byte{}, []byte{}},
		{[]byte{0x01, 0x02}, []byte{0x01, 0x02}},
		{[]byte{0xff, 0x00}, []byte{0xff, 0x00, 0x00}},
		{[]byte{0xff, 0xe0}, []byte{0xff, 0x00, 0xe0}},
		{[]byte{0xff}, []byte{0xff, 0x00}},
		{[]byte{0xff, 0xff}, []byte{0xff, 0x00, 0xff, 0x00}},
	}

	for _, test := range tests {
		assert.Equal(t, test.out, unsyncApply(test.in), "input %x", test.in)
	}
}

func TestUnsyncRemove(t *testing.T) {
	assert.Equal(t, []byte{0xff, 0x00}, unsyncRemove([]byte{0xff, 0x00, 0x00}))
	assert.Equal(t, []byte{0xff, 0xe0}, unsyncRemove([]byte{0xff, 0x00, 0xe0}))
	assert.Equal(t, []byte{0x01, 0x02}, unsyncRemove([]byte{0x01, 0x02}))
}

func TestUnsyncRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xff},
		{0xff, 0xff, 0xff},
		{0xff, 0x00, 0xff, 0xe6, 0x12},
		{0x49, 0x44, 0x33, 0xff, 0xfb, 0x90},
	}

	for _, in := range inputs {
		assert.Equal(t, in, unsyncRemove(unsyncApply(in)), "input %x", in)
	}
}

func TestUnsyncApplyDoesNotAliasInput(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03}
	out := unsyncApply(in)
	out[0] = 0xaa
	assert.Equal(t, byte(0x01), in[0])
}
