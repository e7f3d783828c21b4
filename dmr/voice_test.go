package dmr

import (
	"testing"

	"github.com/hotelzululima/sdrtrunk/bit"
	"github.com/hotelzululima/sdrtrunk/crc/quadres_16_7"
)

func setBytes(m *bit.Message, offset int, data []byte) {
	for i, b := range data {
		for j := 0; j < 8; j++ {
			m.SetTo(offset+i*8+j, b&(1<<uint(7-j)) != 0)
		}
	}
}

func TestParseVoiceMessage(t *testing.T) {
	m := bit.NewMessage(FrameBits)
	setBytes(m, SyncOffset, bsSourcedVoice)

	vm, err := ParseVoiceMessage(m)
	if err != nil {
		t.Fatal(err)
	}
	if vm.Pattern != SyncPatternBSSourcedVoice {
		t.Fatalf("expected bs sourced voice sync, got %s", SyncPatternName[vm.Pattern])
	}

	if _, err = ParseVoiceMessage(bit.NewMessage(FrameBits - 1)); err == nil {
		t.Fatal("expected an error for a short frame")
	}
}

func TestVoiceMessageAMBEFrames(t *testing.T) {
	m := bit.NewMessage(FrameBits)
	m.Set(VoiceAOffset)
	m.Set(VoiceBOffset + VoiceHalfBits - 1)

	vm, err := ParseVoiceMessage(m)
	if err != nil {
		t.Fatal(err)
	}

	frames := vm.AMBEFrames()
	for i, frame := range frames {
		if len(frame) != 14 {
			t.Fatalf("frame %d: expected 14 bytes, got %d", i, len(frame))
		}
	}
	if frames[0][0] != 0x80 {
		t.Fatalf("first voice bit misplaced: %#v", frames[0])
	}
	// Bit 107 is the fourth bit of the high-aligned trailing half byte.
	if frames[1][13] != 0x10 {
		t.Fatalf("last voice bit misplaced: %#v", frames[1])
	}
}

func TestVoiceMessageEMB(t *testing.T) {
	data := uint8(5)<<3 | LastFragment // color code 5, pi 0
	codeword := uint16(data)<<9 | quadres_16_7.Parity(data)

	m := bit.NewMessage(FrameBits)
	setBytes(m, SyncOffset, []byte{byte(codeword >> 8)})
	setBytes(m, VoiceBOffset-EMBHalfBits, []byte{byte(codeword)})

	vm, err := ParseVoiceMessage(m)
	if err != nil {
		t.Fatal(err)
	}
	if vm.Pattern != SyncPatternUnknown {
		t.Fatalf("embedded signalling should not match a sync pattern, got %s", SyncPatternName[vm.Pattern])
	}

	emb, err := vm.EMB()
	if err != nil {
		t.Fatal(err)
	}
	if emb.ColorCode != 5 {
		t.Fatalf("expected color code 5, got %d", emb.ColorCode)
	}
	if emb.LCSS != LastFragment {
		t.Fatalf("expected %s, got %s", LCSSName[LastFragment], LCSSName[emb.LCSS])
	}

	// A parity error must be rejected.
	m.Flip(SyncOffset + 2)
	if _, err = vm.EMB(); err == nil {
		t.Fatal("expected a checksum error")
	}
}

func TestSyncPattern(t *testing.T) {
	var tests = []struct {
		Bytes []byte
		Want  uint16
	}{
		{bsSourcedVoice, SyncPatternBSSourcedVoice},
		{msSourcedData, SyncPatternMSSourcedData},
		{directVoiceTS2, SyncPatternDirectVoiceTS2},
		{[]byte{0, 1, 2, 3, 4, 5}, SyncPatternUnknown},
	}

	for _, test := range tests {
		if got := SyncPattern(test.Bytes); got != test.Want {
			t.Fatalf("expected %s, got %s", SyncPatternName[test.Want], SyncPatternName[got])
		}
	}
}
