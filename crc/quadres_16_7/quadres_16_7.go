// Package quadres_16_7 implements the quadratic residue (16, 7, 6) parity
// check protecting the DMR embedded signalling field.
package quadres_16_7

var validParities [128]uint16

// Parity returns the 9 parity bits for the low 7 bits of data,
// multiplying the data bits with the generator matrix, see DMR AI
// spec. page 134.
func Parity(data uint8) uint16 {
	var b [7]uint16
	for i := range b {
		b[i] = uint16(data>>uint(6-i)) & 1
	}

	var p [9]uint16
	p[0] = b[1] ^ b[2] ^ b[3] ^ b[4]
	p[1] = b[2] ^ b[3] ^ b[4] ^ b[5]
	p[2] = b[0] ^ b[3] ^ b[4] ^ b[5] ^ b[6]
	p[3] = b[2] ^ b[3] ^ b[5] ^ b[6]
	p[4] = b[1] ^ b[2] ^ b[6]
	p[5] = b[0] ^ b[1] ^ b[4]
	p[6] = b[0] ^ b[1] ^ b[2] ^ b[5]
	p[7] = b[0] ^ b[1] ^ b[2] ^ b[3] ^ b[6]
	p[8] = b[0] ^ b[2] ^ b[4] ^ b[5] ^ b[6]

	var parity uint16
	for _, v := range p {
		parity = parity<<1 | v
	}
	return parity
}

// Check reports whether the 16 bit codeword, 7 data bits followed by 9
// parity bits, carries the parity of its data bits.
func Check(codeword uint16) bool {
	return validParities[codeword>>9] == codeword&0x1ff
}

func init() {
	for i := range validParities {
		validParities[i] = Parity(uint8(i))
	}
}
