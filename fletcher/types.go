package fletcher

// Word is the constraint for the unsigned integer types that can serve as
// checksum input words. The word width fixes the modulus (2^k) and the
// output width (2k).
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Sum128 is a 128-bit checksum value, since Go has no native uint128.
// Hi holds the second running sum (the high 64 bits of the packed value),
// Lo holds the first.
type Sum128 struct {
	Hi uint64
	Lo uint64
}

// Bytes returns the checksum as 16 big-endian bytes.
func (s Sum128) Bytes() [16]byte {
	var out [16]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(s.Hi >> (56 - 8*i))
		out[8+i] = byte(s.Lo >> (56 - 8*i))
	}
	return out
}

// String returns the checksum as 32 lowercase hex digits.
func (s Sum128) String() string {
	const hexdigits = "0123456789abcdef"
	var out [32]byte
	b := s.Bytes()
	for i, v := range b {
		out[2*i] = hexdigits[v>>4]
		out[2*i+1] = hexdigits[v&0xf]
	}
	return string(out[:])
}
