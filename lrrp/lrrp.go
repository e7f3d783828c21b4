// Package lrrp implements the token layer of LRRP location reports:
// reports are a byte aligned sequence of single byte token identifiers,
// each followed by a fixed number of value bytes, carried in the payload
// of a corrected data message.
package lrrp

import (
	"fmt"

	"github.com/hotelzululima/sdrtrunk/bit"
)

// Token identifiers.
const (
	TypeTime     uint8 = 0x34
	TypeCircle2D uint8 = 0x51
	TypePoint2D  uint8 = 0x66
)

// TypeName is a map of token type to string.
var TypeName = map[uint8]string{
	TypeTime:     "time",
	TypeCircle2D: "circle-2d",
	TypePoint2D:  "point-2d",
}

// valueLength is the number of value bytes following each identifier.
var valueLength = map[uint8]int{
	TypeTime:     5,
	TypeCircle2D: 10,
	TypePoint2D:  8,
}

// Token is one identifier plus value inside a report.
type Token interface {
	// Type returns the token identifier.
	Type() uint8
	// ByteLength returns the token size including the identifier byte.
	ByteLength() int
}

// token binds a typed view to its backing message and the bit offset of
// the token identifier.
type token struct {
	message *bit.Message
	offset  int
}

// value returns the unsigned field of width bits starting at bit
// position pos of the token value.
func (t token) value(pos, width int) uint64 {
	start := t.offset + 8 + pos
	return t.message.Uint64(start, start+width-1)
}

// Time is the timestamp of a report: 40 value bits packing year, month,
// day, hour, minute and second.
type Time struct{ token }

func (t Time) Type() uint8     { return TypeTime }
func (t Time) ByteLength() int { return 1 + valueLength[TypeTime] }

func (t Time) Year() int   { return int(t.value(0, 14)) }
func (t Time) Month() int  { return int(t.value(14, 4)) }
func (t Time) Day() int    { return int(t.value(18, 5)) }
func (t Time) Hour() int   { return int(t.value(23, 5)) }
func (t Time) Minute() int { return int(t.value(28, 6)) }
func (t Time) Second() int { return int(t.value(34, 6)) }

func (t Time) String() string {
	return fmt.Sprintf("time %04d-%02d-%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// Point2D is a position: latitude and longitude as signed 32 bit fixed
// point fractions of a full circle.
type Point2D struct{ token }

func (p Point2D) Type() uint8     { return TypePoint2D }
func (p Point2D) ByteLength() int { return 1 + valueLength[TypePoint2D] }

// RawLatitude returns the latitude as on-air fixed point.
func (p Point2D) RawLatitude() int32 { return int32(p.value(0, 32)) }

// RawLongitude returns the longitude as on-air fixed point.
func (p Point2D) RawLongitude() int32 { return int32(p.value(32, 32)) }

// Latitude returns the latitude in degrees, 360/2^32 per unit.
func (p Point2D) Latitude() float64 { return degrees(p.RawLatitude()) }

// Longitude returns the longitude in degrees, 360/2^32 per unit.
func (p Point2D) Longitude() float64 { return degrees(p.RawLongitude()) }

func (p Point2D) String() string {
	return fmt.Sprintf("point-2d %.5f, %.5f", p.Latitude(), p.Longitude())
}

// Circle2D is a position with an uncertainty radius in meters.
type Circle2D struct{ Point2D }

func (c Circle2D) Type() uint8     { return TypeCircle2D }
func (c Circle2D) ByteLength() int { return 1 + valueLength[TypeCircle2D] }

// Radius returns the uncertainty radius in meters.
func (c Circle2D) Radius() int { return int(c.value(64, 16)) }

func (c Circle2D) String() string {
	return fmt.Sprintf("circle-2d %.5f, %.5f, radius %dm",
		c.Latitude(), c.Longitude(), c.Radius())
}

func degrees(raw int32) float64 {
	return float64(raw) * 360 / (1 << 32)
}

// ParseTokens walks the token sequence starting at the given bit offset
// until the end of the message. A token identifier without a known value
// length ends the walk with an error and the tokens parsed up to that
// point, since the remainder of the report cannot be located.
func ParseTokens(m *bit.Message, offset int) ([]Token, error) {
	var tokens []Token
	for offset+8 <= m.Len() {
		id := uint8(m.Uint64(offset, offset+7))
		length, ok := valueLength[id]
		if !ok {
			return tokens, fmt.Errorf("lrrp: unknown token type %#02x at bit %d", id, offset)
		}
		if offset+8+length*8 > m.Len() {
			return tokens, fmt.Errorf("lrrp: truncated %s token at bit %d", TypeName[id], offset)
		}

		base := token{message: m, offset: offset}
		switch id {
		case TypeTime:
			tokens = append(tokens, Time{base})
		case TypeCircle2D:
			tokens = append(tokens, Circle2D{Point2D{base}})
		case TypePoint2D:
			tokens = append(tokens, Point2D{base})
		}
		offset += (1 + length) * 8
	}
	return tokens, nil
}
