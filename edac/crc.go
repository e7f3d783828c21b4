package edac

const (
	// G(x) = x^9+x^6+x^4+x^3+1
	crc9poly = 0x59
	// G(x) = x^16+x^12+x^5+1
	crc16poly = 0x1021
	// G(x) = x^32+x^26+x^23+x^22+x^16+x^12+x^11+x^10+x^8+x^7+x^5+x^4+x^2+x+1
	crc32poly = 0x04c11db7
)

// bitReader is the read-only slice of the message contract the shift
// register checksums need.
type bitReader interface {
	Get(i int) bool
}

// CRC9 computes the CRC-9 remainder of the message bits [start, end),
// zero initial fill, zero augmented.
func CRC9(m bitReader, start, end int) uint16 {
	var crc uint16
	for i := start; i < end; i++ {
		xor := crc&0x0100 > 0
		crc <<= 1
		// Limit the number of shift registers to 9.
		crc &= 0x01ff
		if m.Get(i) {
			crc++
		}
		if xor {
			crc ^= crc9poly
		}
	}
	for i := 0; i < 9; i++ {
		xor := crc&0x0100 > 0
		crc <<= 1
		crc &= 0x01ff
		if xor {
			crc ^= crc9poly
		}
	}
	return crc
}

// CRC16 computes the CRC-CCITT remainder of the message bits [start, end),
// zero initial fill, zero augmented.
func CRC16(m bitReader, start, end int) uint16 {
	var crc uint16
	for i := start; i < end; i++ {
		xor := crc&0x8000 > 0
		crc <<= 1
		if m.Get(i) {
			crc++
		}
		if xor {
			crc ^= crc16poly
		}
	}
	for i := 0; i < 16; i++ {
		xor := crc&0x8000 > 0
		crc <<= 1
		if xor {
			crc ^= crc16poly
		}
	}
	return crc
}

// CRC32 computes the CRC-32 remainder of the message bits [start, end),
// zero initial fill, zero augmented.
func CRC32(m bitReader, start, end int) uint32 {
	var crc uint32
	for i := start; i < end; i++ {
		xor := crc&0x80000000 > 0
		crc <<= 1
		if m.Get(i) {
			crc++
		}
		if xor {
			crc ^= crc32poly
		}
	}
	for i := 0; i < 32; i++ {
		xor := crc&0x80000000 > 0
		crc <<= 1
		if xor {
			crc ^= crc32poly
		}
	}
	return crc
}
