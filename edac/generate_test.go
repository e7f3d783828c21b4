package edac

import "testing"

func TestGenerateChecksums(t *testing.T) {
	var tests = []struct {
		Name        string
		MessageSize int
		CRCSize     int
		Poly        uint64
		CRCBits     bool
		Want        []uint32
	}{
		{"ccitt80", 80, 16, 0x11021, true, CCITT80Checksums},
		{"crc9", 135, 9, 0x259, false, CRC9Checksums},
		{"pdu1", 64, 32, 0x104c11db7, true, PDU1Checksums},
		{"pdu2", 160, 32, 0x104c11db7, true, PDU2Checksums},
		{"pdu3", 256, 32, 0x104c11db7, true, PDU3Checksums},
	}

	for _, test := range tests {
		got := GenerateChecksums(test.MessageSize, test.CRCSize, test.Poly, test.CRCBits)
		if len(got) != len(test.Want) {
			t.Fatalf("%s: expected %d entries, got %d", test.Name, len(test.Want), len(got))
		}
		for i := range test.Want {
			if got[i] != test.Want[i] {
				t.Fatalf("%s: entry %d: %#x != %#x", test.Name, i, got[i], test.Want[i])
			}
		}
	}
}

// Each table must map every residual to at most one error position, and no
// single bit error may look like a clean frame in either transmission
// convention.
func TestChecksumsUnambiguous(t *testing.T) {
	var tests = []struct {
		Name    string
		CRCSize int
		Table   []uint32
	}{
		{"ccitt80", 16, CCITT80Checksums},
		{"crc9", 9, CRC9Checksums},
		{"pdu1", 32, PDU1Checksums},
		{"pdu2", 32, PDU2Checksums},
		{"pdu3", 32, PDU3Checksums},
	}

	for _, test := range tests {
		ones := uint32(1)<<uint(test.CRCSize) - 1
		seen := make(map[uint32]int, len(test.Table))
		for i, c := range test.Table {
			if c == 0 || c == ones {
				t.Fatalf("%s: entry %d is %#x", test.Name, i, c)
			}
			if j, ok := seen[c]; ok {
				t.Fatalf("%s: entries %d and %d share checksum %#x", test.Name, j, i, c)
			}
			seen[c] = i
		}
	}
}

// The CRC-32 code is the same for every PDU length: a data bit at a given
// distance ahead of the checksum field contributes the same checksum, so
// the longer tables end in the shorter ones.
func TestChecksumsPDUStructure(t *testing.T) {
	for i := 0; i < 64; i++ {
		if PDU2Checksums[96+i] != PDU1Checksums[i] {
			t.Fatalf("pdu2 entry %d: %#08x != %#08x", 96+i, PDU2Checksums[96+i], PDU1Checksums[i])
		}
		if PDU3Checksums[192+i] != PDU1Checksums[i] {
			t.Fatalf("pdu3 entry %d: %#08x != %#08x", 192+i, PDU3Checksums[192+i], PDU1Checksums[i])
		}
	}
	for i := 0; i < 160; i++ {
		if PDU3Checksums[96+i] != PDU2Checksums[i] {
			t.Fatalf("pdu3 entry %d: %#08x != %#08x", 96+i, PDU3Checksums[96+i], PDU2Checksums[i])
		}
	}
}

// Tables that cover checksum field errors append the single bit patterns
// in ascending order.
func TestChecksumsFieldEntries(t *testing.T) {
	var tests = []struct {
		Name     string
		DataSize int
		CRCSize  int
		Table    []uint32
	}{
		{"ccitt80", 80, 16, CCITT80Checksums},
		{"pdu1", 64, 32, PDU1Checksums},
		{"pdu2", 160, 32, PDU2Checksums},
		{"pdu3", 256, 32, PDU3Checksums},
	}

	for _, test := range tests {
		if len(test.Table) != test.DataSize+test.CRCSize {
			t.Fatalf("%s: expected %d entries, got %d", test.Name, test.DataSize+test.CRCSize, len(test.Table))
		}
		for b := 0; b < test.CRCSize; b++ {
			if got, want := test.Table[test.DataSize+b], uint32(1)<<uint(b); got != want {
				t.Fatalf("%s: checksum bit entry %d: %#x != %#x", test.Name, b, got, want)
			}
		}
	}
}
