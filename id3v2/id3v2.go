// Package id3v2 implements the versioned binary tag format embedded by
// most supported audio containers.
//
// The package parses and renders all three on-disk layouts (v2.2, v2.3
// and v2.4). Frames with identifiers the package does not recognize are
// preserved byte for byte, so a parse-then-render cycle never loses
// information.
package id3v2

import (
	"fmt"
	"log"
)

// Logging enables debug output if set to true.
var Logging LogFlag

type LogFlag bool

func (l LogFlag) Println(args ...interface{}) {
	if l {
		log.Println(args...)
	}
}

const (
	tagHeaderSize = 10
	footerSize    = 10
)

var (
	id3byte    = []byte("ID3")
	footerByte = []byte("3DI")
	nul        = []byte{0}
)

// Padding is the number of padding bytes appended after the frames when
// rendering a tag. It is ignored when the footer flag is set, since a
// tag with a footer must not be padded.
var Padding = 1024

// Version is the major version of a tag: 2, 3 or 4.
type Version byte

const (
	Version22 Version = 2
	Version23 Version = 3
	Version24 Version = 4
)

func (v Version) String() string {
	return fmt.Sprintf("ID3v2.%d.0", byte(v))
}

// HeaderFlags is the flag byte of the tag header.
type HeaderFlags byte

func (f HeaderFlags) Unsynchronisation() bool {
	return f&0x80 > 0
}

func (f HeaderFlags) ExtendedHeader() bool {
	return f&0x40 > 0
}

func (f HeaderFlags) Experimental() bool {
	return f&0x20 > 0
}

// Footer reports whether a mirrored 10-byte footer follows the tag
// body. Only meaningful for v2.4 tags.
func (f HeaderFlags) Footer() bool {
	return f&0x10 > 0
}

// TagHeader is the outer envelope of a tag: version, flags and the
// declared size of the body.
type TagHeader struct {
	Version Version
	Flags   HeaderFlags
	size    int // declared body size on disk, excluding the 10-byte header
}

// Tag is an ordered collection of frames plus the header it was read
// with. Frame order is preserved on render, since some identifiers are
// legitimately repeatable.
type Tag struct {
	Header TagHeader
	Frames []Frame

	// Padding is the number of trailing padding bytes found after the
	// frames when the tag was parsed.
	Padding int
}

// NewTag returns an empty v2.4 tag.
func NewTag() *Tag {
	return &Tag{Header: TagHeader{Version: Version24}}
}

// Check reports whether b starts with a tag magic. It does not validate
// anything beyond the first three bytes.
func Check(b []byte) bool {
	return len(b) >= 3 && b[0] == id3byte[0] && b[1] == id3byte[1] && b[2] == id3byte[2]
}
