// Package edac implements error detection and correction for P25 frame
// checksums: table driven single bit correction for the CRC-CCITT, CRC-9
// and CRC-32 protected regions, plus the Golay block scan applied to
// terminator link control messages.
//
// The correction routines exploit the XOR linearity of cyclic codes: the
// checksum of an arbitrary message is the XOR of the checksums of each of
// its set bits, so a precomputed single-bit checksum table turns error
// localization into a table lookup on the residual. Each routine mutates
// the message in place, flipping at most one bit. The tables are immutable
// after process initialization and safe for concurrent readers; a single
// message must not be shared by concurrent correction calls.
package edac

import (
	"github.com/hotelzululima/sdrtrunk/bit"
	"github.com/hotelzululima/sdrtrunk/fec"
)

// Packet data units carry their protected payload at a fixed offset
// behind the two 64 bit network identifier words.
const pduDataStart = 160

// CorrectPDU1 verifies a header plus one block packet data unit, with
// data bits [160, 224) and the CRC-32 checksum at [224, 256).
func CorrectPDU1(m *bit.Message) bit.CRC {
	return CorrectPDU(m, PDU1Checksums, 224)
}

// CorrectPDU2 verifies a header plus two block packet data unit, with
// data bits [160, 320) and the CRC-32 checksum at [320, 352).
func CorrectPDU2(m *bit.Message) bit.CRC {
	return CorrectPDU(m, PDU2Checksums, 320)
}

// CorrectPDU3 verifies a header plus three block packet data unit, with
// data bits [160, 416) and the CRC-32 checksum at [416, 448).
func CorrectPDU3(m *bit.Message) bit.CRC {
	return CorrectPDU(m, PDU3Checksums, 416)
}

// CorrectPDU verifies the CRC-32 protected region [160, crcStart) of m
// against the checksum at [crcStart, crcStart+32), correcting a single
// bit error in place. Checksums in both straight and one's complement
// transmission conventions are accepted. The verdict is recorded on the
// message and returned.
func CorrectPDU(m *bit.Message, checksums []uint32, crcStart int) bit.CRC {
	var calculated uint32
	for i := m.NextSetBit(pduDataStart); i >= 0 && i < crcStart; i = m.NextSetBit(i + 1) {
		calculated ^= checksums[i-pduDataStart]
	}
	residual := calculated ^ UnsignedChecksum(m, crcStart, 32)

	if residual == 0 || residual == 0xffffffff {
		m.SetCRC(bit.CRCPassed)
		return bit.CRCPassed
	}
	if i := FindSingleBitError(residual, checksums); i >= 0 {
		m.Flip(pduDataStart + i)
		m.RecordCorrected(1)
		m.SetCRC(bit.CRCCorrected)
		return bit.CRCCorrected
	}
	m.SetCRC(bit.CRCFailed)
	return bit.CRCFailed
}

// CorrectCCITT80 verifies the CRC-CCITT protected region
// [messageStart, crcStart) of m against the 16 bit checksum at crcStart,
// correcting a single bit error in place. Checksums in both straight and
// one's complement transmission conventions are accepted. The verdict is
// recorded on the message and returned.
func CorrectCCITT80(m *bit.Message, messageStart, crcStart int) bit.CRC {
	var calculated uint32
	for i := m.NextSetBit(messageStart); i >= 0 && i < crcStart; i = m.NextSetBit(i + 1) {
		calculated ^= CCITT80Checksums[i-messageStart]
	}
	residual := calculated ^ UnsignedChecksum(m, crcStart, 16)

	if residual == 0 || residual == 0xffff {
		m.SetCRC(bit.CRCPassed)
		return bit.CRCPassed
	}
	if i := FindSingleBitError(residual, CCITT80Checksums); i >= 0 {
		m.Flip(messageStart + i)
		m.RecordCorrected(1)
		m.SetCRC(bit.CRCCorrected)
		return bit.CRCCorrected
	}
	m.SetCRC(bit.CRCFailed)
	return bit.CRCFailed
}

// CorrectCCITT80Counted verifies the same region as CorrectCCITT80 for
// messages whose checksum was produced with an all-ones initial fill. It
// returns an error class instead of recording a verdict: 0 for a clean
// frame, 1 after a single bit correction, 2 for an uncorrectable frame.
// The corrected bit counter advances by the returned class, feeding the
// link quality statistics some call sites keep.
func CorrectCCITT80Counted(m *bit.Message, messageStart, crcStart int) int {
	calculated := uint32(0xffff)
	for i := m.NextSetBit(messageStart); i >= 0 && i < crcStart; i = m.NextSetBit(i + 1) {
		calculated ^= CCITT80Checksums[i-messageStart]
	}
	residual := calculated ^ UnsignedChecksum(m, crcStart, 16)

	if residual == 0 || residual == 0xffff {
		return 0
	}
	if i := FindSingleBitError(residual, CCITT80Checksums); i >= 0 {
		m.Flip(messageStart + i)
		m.RecordCorrected(1)
		return 1
	}
	m.RecordCorrected(2)
	return 2
}

// CheckCRC9 verifies the CRC-9 protected confirmed data block of m
// starting at blockStart: 7 data bits, the embedded 9 bit checksum, then
// 128 more data bits. Data bits behind the checksum field map to table
// entries offset back by the checksum width, matching a table generated
// over the logically contiguous data stream. No correction is attempted
// and m is never altered; the verdict is returned without being recorded.
func CheckCRC9(m *bit.Message, blockStart int) bit.CRC {
	var calculated uint32
	for i := m.NextSetBit(blockStart); i >= 0 && i < blockStart+144; i = m.NextSetBit(i + 1) {
		switch {
		case i < blockStart+7:
			calculated ^= CRC9Checksums[i-blockStart]
		case i >= blockStart+16:
			calculated ^= CRC9Checksums[i-blockStart-9]
		}
	}
	residual := calculated ^ UnsignedChecksum(m, blockStart+7, 9)

	if residual == 0 || residual == 0x1ff {
		return bit.CRCPassed
	}
	return bit.CRCFailed
}

// CorrectGolay24Blocks walks the sequence of 24 bit Golay codewords that
// follows the 64 bit network identifier, correcting single bit errors in
// place. The scan stops at the first codeword with two or more bit errors
// and reports whether every evaluated codeword was clean or corrected. A
// trailing fragment shorter than one codeword is not evaluated.
func CorrectGolay24Blocks(m *bit.Message) bool {
	passes := true
	for x := 64; x+24 <= m.Len() && passes; x += 24 {
		passes = fec.Golay_24_12_Correct(m, x) < 2
	}
	return passes
}

// UnsignedChecksum extracts the stored checksum field of m at
// [crcStart, crcStart+crcLength) as an unsigned value.
func UnsignedChecksum(m *bit.Message, crcStart, crcLength int) uint32 {
	return uint32(m.Uint64(crcStart, crcStart+crcLength-1))
}

// FindSingleBitError returns the index of the table entry equal to
// residual, or -1 when no single bit error hypothesis explains it.
func FindSingleBitError(residual uint32, checksums []uint32) int {
	for i, c := range checksums {
		if c == residual {
			return i
		}
	}
	return -1
}
