package edac

// GenerateChecksums builds the single bit error checksum table for a
// cyclic code over messageSize data bits with a crcSize bit checksum and
// the given generator polynomial, top bit included. Entry i holds the
// one's complement of the checksum contribution of a message with only
// data bit i set. With crcBitErrors set, crcSize entries covering single
// bit errors in the checksum field itself are appended.
func GenerateChecksums(messageSize, crcSize int, poly uint64, crcBitErrors bool) []uint32 {
	var (
		top  = uint64(1) << uint(crcSize)
		mask = top - 1
	)
	table := make([]uint32, messageSize, messageSize+crcSize)

	// The last data bit contributes x^crcSize mod G(x); every bit before
	// it contributes x times the contribution of its successor.
	r := poly & mask
	table[messageSize-1] = uint32(r ^ mask)
	for i := messageSize - 2; i >= 0; i-- {
		r <<= 1
		if r&top != 0 {
			r ^= poly
		}
		table[i] = uint32(r ^ mask)
	}

	if crcBitErrors {
		for i := 0; i < crcSize; i++ {
			table = append(table, uint32(1)<<uint(i))
		}
	}
	return table
}
