// Package bit implements the addressable bit buffer shared by the frame
// decoders: a fixed length, word packed bit sequence with sparse set-bit
// iteration, unsigned field extraction and bookkeeping for applied error
// corrections.
package bit

import (
	"fmt"
	"math/bits"
)

// CRC is the verification outcome recorded on a Message by the correction
// routines in package edac.
type CRC uint8

const (
	CRCUnknown CRC = iota
	CRCPassed
	CRCCorrected
	CRCFailed
)

// CRCName is a map of CRC verification outcome to string.
var CRCName = map[CRC]string{
	CRCUnknown:   "unknown",
	CRCPassed:    "passed",
	CRCCorrected: "corrected",
	CRCFailed:    "failed",
}

func (c CRC) String() string {
	if name, ok := CRCName[c]; ok {
		return name
	}
	return fmt.Sprintf("CRC(%d)", uint8(c))
}

// Message is a fixed length sequence of bits addressed from 0, packed into
// 64 bit words with the first message bit in the most significant position
// of the first word. A Message is not safe for concurrent use.
type Message struct {
	words     []uint64
	length    int
	corrected int
	crc       CRC
}

// NewMessage returns an all-zero message of the given bit length.
func NewMessage(length int) *Message {
	if length < 0 {
		panic("bit: negative message length")
	}
	return &Message{
		words:  make([]uint64, (length+63)/64),
		length: length,
	}
}

// NewMessageFromBytes returns a message holding the bits of data, eight per
// byte, most significant bit first.
func NewMessageFromBytes(data []byte) *Message {
	m := NewMessage(len(data) * 8)
	for i, b := range data {
		m.words[i/8] |= uint64(b) << uint(56-(i%8)*8)
	}
	return m
}

// ParseMessage parses a message from a string of "0" and "1" characters.
func ParseMessage(s string) (*Message, error) {
	m := NewMessage(len(s))
	for i, c := range s {
		switch c {
		case '1':
			m.Set(i)
		case '0':
		default:
			return nil, fmt.Errorf("bit: invalid character %q at index %d", c, i)
		}
	}
	return m, nil
}

// Len returns the number of bits in the message.
func (m *Message) Len() int { return m.length }

func (m *Message) index(i int) {
	if i < 0 || i >= m.length {
		panic(fmt.Sprintf("bit: index %d out of range [0, %d)", i, m.length))
	}
}

// Get reports whether bit i is set.
func (m *Message) Get(i int) bool {
	m.index(i)
	return m.words[i>>6]&(1<<uint(63-i&63)) != 0
}

// Set sets bit i.
func (m *Message) Set(i int) {
	m.index(i)
	m.words[i>>6] |= 1 << uint(63-i&63)
}

// Clear clears bit i.
func (m *Message) Clear(i int) {
	m.index(i)
	m.words[i>>6] &^= 1 << uint(63-i&63)
}

// SetTo sets bit i to value.
func (m *Message) SetTo(i int, value bool) {
	if value {
		m.Set(i)
	} else {
		m.Clear(i)
	}
}

// Flip inverts bit i.
func (m *Message) Flip(i int) {
	m.index(i)
	m.words[i>>6] ^= 1 << uint(63-i&63)
}

// NextSetBit returns the index of the first set bit at or after from, or -1
// if no set bit remains. Iteration cost scales with the number of set bits
// rather than the message length.
func (m *Message) NextSetBit(from int) int {
	if from < 0 {
		from = 0
	}
	if from >= m.length {
		return -1
	}
	w := from >> 6
	word := m.words[w] & (^uint64(0) >> uint(from&63))
	for {
		if word != 0 {
			i := w<<6 + bits.LeadingZeros64(word)
			if i >= m.length {
				return -1
			}
			return i
		}
		if w++; w >= len(m.words) {
			return -1
		}
		word = m.words[w]
	}
}

// Uint64 returns the unsigned value of bits start through end inclusive,
// most significant bit first. The field must span at most 64 bits.
func (m *Message) Uint64(start, end int) uint64 {
	m.index(start)
	m.index(end)
	if end < start || end-start >= 64 {
		panic(fmt.Sprintf("bit: invalid field [%d, %d]", start, end))
	}
	var value uint64
	for i := start; i <= end; i++ {
		value <<= 1
		if m.words[i>>6]&(1<<uint(63-i&63)) != 0 {
			value |= 1
		}
	}
	return value
}

// Bytes packs the message into bytes, eight bits per byte, most significant
// bit first. A trailing partial byte is padded with zero bits.
func (m *Message) Bytes() []byte {
	return m.BytesAt(0, m.length)
}

// BytesAt packs n bits starting at offset into bytes.
func (m *Message) BytesAt(offset, n int) []byte {
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		if m.Get(offset + i) {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// String returns the message as a string of "0" and "1" characters.
func (m *Message) String() string {
	s := make([]byte, m.length)
	for i := range s {
		if m.Get(i) {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}

// RecordCorrected adds n to the count of bits changed by correction
// routines over the lifetime of the message.
func (m *Message) RecordCorrected(n int) { m.corrected += n }

// CorrectedBitCount returns the cumulative number of corrected bits.
func (m *Message) CorrectedBitCount() int { return m.corrected }

// SetCRC records the outcome of the most recent verification pass.
func (m *Message) SetCRC(crc CRC) { m.crc = crc }

// CRC returns the outcome of the most recent verification pass.
func (m *Message) CRC() CRC { return m.crc }
