package common

// WipeByteArray overwrites every byte of buf with zeroes. Use it to scrub
// password buffers once they are no longer needed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
