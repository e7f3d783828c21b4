package fec

import (
	"math/bits"
	"testing"

	"github.com/hotelzululima/sdrtrunk/bit"
)

func golayMessage(codeword uint32) *bit.Message {
	return bit.NewMessageFromBytes([]byte{
		byte(codeword >> 16), byte(codeword >> 8), byte(codeword),
	})
}

func TestGolay_24_12_Encode(t *testing.T) {
	var tests = map[uint32]uint32{
		0x000: 0x000000,
		0x001: 0x0018eb,
		0x002: 0x00293e,
		0x123: 0x1230ac,
		0x555: 0x555d0d,
		0x7e1: 0x7e1e82,
		0x800: 0x800c75,
		0xabc: 0xabc23c,
		0xfff: 0xffffff,
	}
	for input, want := range tests {
		if got := Golay_24_12_Encode(input); got != want {
			t.Fatalf("encode %#03x: %#06x != %#06x", input, got, want)
		}
	}
}

func TestGolay_24_12_MinimumDistance(t *testing.T) {
	for data := uint32(1); data < 0x1000; data++ {
		if w := bits.OnesCount32(Golay_24_12_Encode(data)); w < 8 {
			t.Fatalf("codeword for %#03x has weight %d, expected >= 8", data, w)
		}
	}
}

func TestGolay_24_12_CorrectClean(t *testing.T) {
	for data := uint32(0); data < 0x1000; data++ {
		m := golayMessage(Golay_24_12_Encode(data))
		if errs := Golay_24_12_Correct(m, 0); errs != 0 {
			t.Fatalf("clean codeword for %#03x reports %d errors", data, errs)
		}
		if got := uint32(m.Uint64(0, 11)); got != data {
			t.Fatalf("clean codeword for %#03x mutated to %#03x", data, got)
		}
		if m.CorrectedBitCount() != 0 {
			t.Fatalf("clean codeword for %#03x counted corrections", data)
		}
	}
}

func TestGolay_24_12_CorrectSingleBit(t *testing.T) {
	for data := uint32(0); data < 0x1000; data++ {
		codeword := Golay_24_12_Encode(data)
		for i := 0; i < 24; i++ {
			m := golayMessage(codeword)
			m.Flip(i)
			if errs := Golay_24_12_Correct(m, 0); errs != 1 {
				t.Fatalf("codeword %#06x bit %d: expected 1 error, got %d", codeword, i, errs)
			}
			if got := uint32(m.Uint64(0, 23)); got != codeword {
				t.Fatalf("codeword %#06x bit %d: corrected to %#06x", codeword, i, got)
			}
			if m.CorrectedBitCount() != 1 {
				t.Fatalf("codeword %#06x bit %d: corrected count %d", codeword, i, m.CorrectedBitCount())
			}
		}
	}
}

func TestGolay_24_12_DetectDoubleBit(t *testing.T) {
	for _, data := range []uint32{0x000, 0x123, 0x7e1, 0xfff} {
		codeword := Golay_24_12_Encode(data)
		for i := 0; i < 24; i++ {
			for j := i + 1; j < 24; j++ {
				m := golayMessage(codeword)
				m.Flip(i)
				m.Flip(j)
				if errs := Golay_24_12_Correct(m, 0); errs != 2 {
					t.Fatalf("codeword %#06x bits %d+%d: expected 2 errors, got %d", codeword, i, j, errs)
				}
				want := codeword ^ 1<<uint(23-i) ^ 1<<uint(23-j)
				if got := uint32(m.Uint64(0, 23)); got != want {
					t.Fatalf("codeword %#06x bits %d+%d: buffer altered to %#06x", codeword, i, j, got)
				}
			}
		}
	}
}

func TestGolay_24_12_CorrectOffset(t *testing.T) {
	codeword := Golay_24_12_Encode(0x5a5)
	m := bit.NewMessage(88)
	for i := 0; i < 24; i++ {
		m.SetTo(64+i, codeword&(1<<uint(23-i)) != 0)
	}
	m.Flip(64 + 13)
	if errs := Golay_24_12_Correct(m, 64); errs != 1 {
		t.Fatalf("expected 1 error, got %d", errs)
	}
	if got := uint32(m.Uint64(64, 87)); got != codeword {
		t.Fatalf("expected %#06x, got %#06x", codeword, got)
	}
}
