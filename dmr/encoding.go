package dmr

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Data Format
// ref: ETSI TS 102 361-2 7.2.18
const (
	DDFormatBinary uint8 = iota
	DDFormatBCD
	DDFormat7BitChar
	DDFormat8BitISO8859_1
	DDFormat8BitISO8859_2
	DDFormat8BitISO8859_3
	DDFormat8BitISO8859_4
	DDFormat8BitISO8859_5
	DDFormat8BitISO8859_6
	DDFormat8BitISO8859_7
	DDFormat8BitISO8859_8
	DDFormat8BitISO8859_9
	DDFormat8BitISO8859_10
	DDFormat8BitISO8859_11
	DDFormat8BitISO8859_13
	DDFormat8BitISO8859_14
	DDFormat8BitISO8859_15
	DDFormat8BitISO8859_16
	DDFormatUTF8
	DDFormatUTF16
	DDFormatUTF16BE
	DDFormatUTF16LE
	DDFormatUTF32
	DDFormatUTF32BE
	DDFormatUTF32LE
)

// DDFormatName is a map of data format to string.
var DDFormatName = map[uint8]string{
	DDFormatBinary:         "binary",
	DDFormatBCD:            "BCD",
	DDFormat7BitChar:       "7-bit characters",
	DDFormat8BitISO8859_1:  "8-bit ISO 8859-1",
	DDFormat8BitISO8859_2:  "8-bit ISO 8859-2",
	DDFormat8BitISO8859_3:  "8-bit ISO 8859-3",
	DDFormat8BitISO8859_4:  "8-bit ISO 8859-4",
	DDFormat8BitISO8859_5:  "8-bit ISO 8859-5",
	DDFormat8BitISO8859_6:  "8-bit ISO 8859-6",
	DDFormat8BitISO8859_7:  "8-bit ISO 8859-7",
	DDFormat8BitISO8859_8:  "8-bit ISO 8859-8",
	DDFormat8BitISO8859_9:  "8-bit ISO 8859-9",
	DDFormat8BitISO8859_10: "8-bit ISO 8859-10",
	DDFormat8BitISO8859_11: "8-bit ISO 8859-11",
	DDFormat8BitISO8859_13: "8-bit ISO 8859-13",
	DDFormat8BitISO8859_14: "8-bit ISO 8859-14",
	DDFormat8BitISO8859_15: "8-bit ISO 8859-15",
	DDFormat8BitISO8859_16: "8-bit ISO 8859-16",
	DDFormatUTF8:           "unicode UTF-8",
	DDFormatUTF16:          "unicode UTF-16",
	DDFormatUTF16BE:        "unicode UTF-16BE",
	DDFormatUTF16LE:        "unicode UTF-16LE",
	DDFormatUTF32:          "unicode UTF-32",
	DDFormatUTF32BE:        "unicode UTF-32BE",
	DDFormatUTF32LE:        "unicode UTF-32LE",
}

type binaryCoder struct{ transform.NopResetter }

func (e binaryCoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	// The decoder can only make the input larger, not smaller.
	n := len(src)
	if len(dst) < n {
		err = transform.ErrShortDst
		n = len(dst)
		atEOF = false
	} else {
		copy(dst[:n], src)
		nDst = n
		nSrc = n
	}
	return
}

type binaryEncoding struct{}

func (e binaryEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: binaryCoder{}}
}

func (e binaryEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: binaryCoder{}}
}

// Encodings maps the byte oriented data formats to their character
// encoding. BCD and the 7 bit character format pack values below byte
// granularity and have no entry.
var Encodings = map[uint8]encoding.Encoding{
	DDFormatBinary:         binaryEncoding{},
	DDFormat8BitISO8859_1:  charmap.ISO8859_1,
	DDFormat8BitISO8859_2:  charmap.ISO8859_2,
	DDFormat8BitISO8859_3:  charmap.ISO8859_3,
	DDFormat8BitISO8859_4:  charmap.ISO8859_4,
	DDFormat8BitISO8859_5:  charmap.ISO8859_5,
	DDFormat8BitISO8859_6:  charmap.ISO8859_6,
	DDFormat8BitISO8859_7:  charmap.ISO8859_7,
	DDFormat8BitISO8859_8:  charmap.ISO8859_8,
	DDFormat8BitISO8859_9:  charmap.ISO8859_9,
	DDFormat8BitISO8859_10: charmap.ISO8859_10,
	// ISO 8859-11 is TIS-620 with NBSP; Windows-874 is its superset.
	DDFormat8BitISO8859_11: charmap.Windows874,
	DDFormat8BitISO8859_13: charmap.ISO8859_13,
	DDFormat8BitISO8859_14: charmap.ISO8859_14,
	DDFormat8BitISO8859_15: charmap.ISO8859_15,
	DDFormat8BitISO8859_16: charmap.ISO8859_16,
	DDFormatUTF8:           unicode.UTF8,
	DDFormatUTF16:          unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	DDFormatUTF16BE:        unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	DDFormatUTF16LE:        unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	DDFormatUTF32:          utf32.UTF32(utf32.BigEndian, utf32.UseBOM),
	DDFormatUTF32BE:        utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	DDFormatUTF32LE:        utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

// DecodeText decodes payload bytes in the given data format.
func DecodeText(data []byte, format uint8) (string, error) {
	enc, ok := Encodings[format]
	if !ok {
		return "", fmt.Errorf("dmr: no decoder for data format %d", format)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
