package dmr

import "testing"

func TestDecodeText(t *testing.T) {
	var tests = []struct {
		Name   string
		Data   []byte
		Format uint8
		Want   string
	}{
		{"binary", []byte{0x17, 0x2a}, DDFormatBinary, "\x17\x2a"},
		{"latin-1", []byte{0x63, 0x61, 0x66, 0xe9}, DDFormat8BitISO8859_1, "café"},
		{"cyrillic", []byte{0xbf, 0xe0, 0xd8, 0xd2, 0xd5, 0xe2}, DDFormat8BitISO8859_5, "Привет"},
		{"utf-8", []byte("CQCQCQ PD0MZ"), DDFormatUTF8, "CQCQCQ PD0MZ"},
		{"utf-16 bom", []byte{0xfe, 0xff, 0x00, 0x43, 0x00, 0x51}, DDFormatUTF16, "CQ"},
		{"utf-16be", []byte{0x00, 0x43, 0x00, 0x51}, DDFormatUTF16BE, "CQ"},
		{"utf-16le", []byte{0x43, 0x00, 0x51, 0x00}, DDFormatUTF16LE, "CQ"},
		{"utf-32be", []byte{0, 0, 0, 0x43, 0, 0, 0, 0x51}, DDFormatUTF32BE, "CQ"},
	}

	for _, test := range tests {
		got, err := DecodeText(test.Data, test.Format)
		if err != nil {
			t.Fatalf("%s: %v", test.Name, err)
		}
		if got != test.Want {
			t.Fatalf("%s: expected %q, got %q", test.Name, got, test.Want)
		}
	}
}

func TestDecodeTextUnsupported(t *testing.T) {
	for _, format := range []uint8{DDFormatBCD, DDFormat7BitChar, 0xff} {
		if _, err := DecodeText([]byte{0x12}, format); err == nil {
			t.Fatalf("expected an error for data format %d", format)
		}
	}
}
