// Package fec implements the block forward error correcting codes used by
// P25 and DMR frame structures.
package fec

import "github.com/hotelzululima/sdrtrunk/bit"

var (
	// Checksums of each single bit error in an extended Golay(24, 12, 8)
	// codeword: the 12 data bit checksums followed by the 12 single bit
	// patterns of the check field itself.
	//
	// G(x) = x^11+x^10+x^6+x^5+x^4+x^2+1, plus an overall parity bit.
	golay_24_12_table = [24]uint32{
		0xc75, 0x63b, 0xf68, 0x7b4, 0x3da, 0xd99, 0x6cd, 0x367,
		0xdc6, 0xa97, 0x93e, 0x8eb, 0x800, 0x400, 0x200, 0x100,
		0x080, 0x040, 0x020, 0x010, 0x008, 0x004, 0x002, 0x001,
	}
)

// Golay_24_12_Parity returns the 12 check bits for the low 12 bits of
// input: the 11 bit cyclic remainder followed by the overall even parity
// bit of the codeword.
func Golay_24_12_Parity(input uint32) uint32 {
	var parity uint32
	for i := 0; i < 12; i++ {
		if input&(1<<uint(11-i)) > 0 {
			parity ^= golay_24_12_table[i]
		}
	}
	return parity
}

// Golay(24, 12, 8) encode the low 12 bits of input.
func Golay_24_12_Encode(input uint32) uint32 {
	input &= 0xfff
	return input<<12 | Golay_24_12_Parity(input)
}

// Golay_24_12_Correct checks the 24 bit codeword of m at offset,
// correcting a single bit error in place. It returns the number of
// detected bit errors: 0, 1, or 2 for anything beyond the correction
// radius of the code.
func Golay_24_12_Correct(m *bit.Message, offset int) int {
	var calculated uint32
	for i := m.NextSetBit(offset); i >= 0 && i < offset+12; i = m.NextSetBit(i + 1) {
		calculated ^= golay_24_12_table[i-offset]
	}
	residual := calculated ^ uint32(m.Uint64(offset+12, offset+23))

	if residual == 0 {
		return 0
	}
	for i, c := range golay_24_12_table {
		if c == residual {
			m.Flip(offset + i)
			m.RecordCorrected(1)
			return 1
		}
	}
	return 2
}
