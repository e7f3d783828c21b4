package edac

import (
	"testing"

	"github.com/hotelzululima/sdrtrunk/bit"
)

func TestCRC9(t *testing.T) {
	tests := map[uint16][]byte{
		0x0000: []byte{},
		0x0059: []byte{0x00, 0x01},
		0x00ab: []byte("hello world"),
	}

	for want, test := range tests {
		m := bit.NewMessageFromBytes(test)
		if crc := CRC9(m, 0, m.Len()); crc != want {
			t.Fatalf("crc9 %v failed: %#04x != %#04x", test, crc, want)
		}
	}
}

func TestCRC16(t *testing.T) {
	tests := map[uint16][]byte{
		0x0000: []byte{},
		0x1021: []byte{0x00, 0x01},
		0x3be4: []byte("hello world"),
		0x31c3: []byte("123456789"),
	}

	for want, test := range tests {
		m := bit.NewMessageFromBytes(test)
		if crc := CRC16(m, 0, m.Len()); crc != want {
			t.Fatalf("crc16 %v failed: %#04x != %#04x", test, crc, want)
		}
	}
}

func TestCRC32(t *testing.T) {
	tests := map[uint32][]byte{
		0x00000000: []byte{},
		0x04c11db7: []byte{0x00, 0x01},
		0x737af2ae: []byte("hello world"),
	}

	for want, test := range tests {
		m := bit.NewMessageFromBytes(test)
		if crc := CRC32(m, 0, m.Len()); crc != want {
			t.Fatalf("crc32 %v failed: %#08x != %#08x", test, crc, want)
		}
	}
}

// Sub-range checksums see only the bits inside the range.
func TestCRCSubRange(t *testing.T) {
	m := bit.NewMessage(96)
	inner := bit.NewMessageFromBytes([]byte("hello"))
	for i := 0; i < inner.Len(); i++ {
		m.SetTo(8+i, inner.Get(i))
	}
	m.Set(0)
	m.Set(95)

	if got, want := CRC16(m, 8, 48), CRC16(inner, 0, 40); got != want {
		t.Fatalf("crc16 sub-range failed: %#04x != %#04x", got, want)
	}
	if got, want := CRC9(m, 8, 48), CRC9(inner, 0, 40); got != want {
		t.Fatalf("crc9 sub-range failed: %#04x != %#04x", got, want)
	}
	if got, want := CRC32(m, 8, 48), CRC32(inner, 0, 40); got != want {
		t.Fatalf("crc32 sub-range failed: %#08x != %#08x", got, want)
	}
}
