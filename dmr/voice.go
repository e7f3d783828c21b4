package dmr

import (
	"errors"
	"fmt"

	"github.com/hotelzululima/sdrtrunk/bit"
	"github.com/hotelzululima/sdrtrunk/crc/quadres_16_7"
)

// EMB LCSS fragments.
const (
	SingleFragment uint8 = iota
	FirstFragment
	LastFragment
	Continuation
)

// LCSSName is a map of LCSS fragment type to string.
var LCSSName = map[uint8]string{
	SingleFragment: "single fragment",
	FirstFragment:  "first fragment",
	LastFragment:   "last fragment",
	Continuation:   "continuation",
}

// EMB contains embedded signalling.
type EMB struct {
	ColorCode uint8
	LCSS      uint8
}

func (emb *EMB) String() string {
	return fmt.Sprintf("color code %d, %s (%d)", emb.ColorCode, LCSSName[emb.LCSS], emb.LCSS)
}

// ParseEMB parses the 16 bit embedded signalling codeword: color code,
// pre-emption bit and LCSS followed by 9 parity bits.
func ParseEMB(codeword uint16) (*EMB, error) {
	if !quadres_16_7.Check(codeword) {
		return nil, errors.New("dmr/emb: checksum error")
	}
	if codeword&(1<<11) != 0 {
		return nil, errors.New("dmr/emb: pi is not 0")
	}
	return &EMB{
		ColorCode: uint8(codeword >> 12),
		LCSS:      uint8(codeword>>9) & 0x3,
	}, nil
}

// VoiceMessage is one 288 bit voice frame: a 24 bit CACH prefix followed
// by a 264 bit burst carrying two 108 bit vocoder frames around the 48
// bit sync or embedded signalling field.
type VoiceMessage struct {
	Message *bit.Message
	Pattern uint16
}

// ParseVoiceMessage wraps a 288 bit frame, matching its sync field.
func ParseVoiceMessage(m *bit.Message) (*VoiceMessage, error) {
	if m.Len() != FrameBits {
		return nil, fmt.Errorf("dmr/voice: expected %d bits, got %d", FrameBits, m.Len())
	}
	return &VoiceMessage{
		Message: m,
		Pattern: SyncPattern(m.BytesAt(SyncOffset, SyncBits)),
	}, nil
}

func (vm *VoiceMessage) String() string {
	return fmt.Sprintf("voice frame, %s sync", SyncPatternName[vm.Pattern])
}

// AMBEFrames returns the two 108 bit vocoder frames, packed into bytes
// with the trailing half byte zero padded.
func (vm *VoiceMessage) AMBEFrames() [2][]byte {
	return [2][]byte{
		vm.Message.BytesAt(VoiceAOffset, VoiceHalfBits),
		vm.Message.BytesAt(VoiceBOffset, VoiceHalfBits),
	}
}

// EMB returns the embedded signalling a frame without sync carries in the
// first and last 8 bits of the sync field.
func (vm *VoiceMessage) EMB() (*EMB, error) {
	codeword := uint16(vm.Message.Uint64(SyncOffset, SyncOffset+EMBHalfBits-1))<<8 |
		uint16(vm.Message.Uint64(VoiceBOffset-EMBHalfBits, VoiceBOffset-1))
	return ParseEMB(codeword)
}

// EMBSignallingLCFragment returns the 32 bit link control fragment
// between the two embedded signalling halves.
func (vm *VoiceMessage) EMBSignallingLCFragment() []byte {
	return vm.Message.BytesAt(SyncOffset+EMBHalfBits, EMBSignallingLCFragmentBits)
}
