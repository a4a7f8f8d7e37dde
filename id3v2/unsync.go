package id3v2

import "bytes"

// unsyncApply inserts a zero byte after every 0xFF byte so that no two
// adjacent bytes in the output can be mistaken for an audio frame sync
// pattern. The original encoders insert unconditionally rather than
// only before 0x00 and >=0xE0 bytes, and so do we.
func unsyncApply(b []byte) []byte {
	n := bytes.Count(b, []byte{0xff})
	if n == 0 {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}

	out := make([]byte, 0, len(b)+n)
	for _, c := range b {
		out = append(out, c)
		if c == 0xff {
			out = append(out, 0)
		}
	}
	return out
}

// unsyncRemove reverses unsyncApply: a zero byte directly following
// 0xFF is dropped. For any input produced by unsyncApply,
// unsyncRemove(unsyncApply(b)) == b.
func unsyncRemove(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		out = append(out, b[i])
		if b[i] == 0xff && i+1 < len(b) && b[i+1] == 0 {
			i++
		}
	}
	return out
}
