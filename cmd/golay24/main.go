package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hotelzululima/sdrtrunk/bit"
	"github.com/hotelzululima/sdrtrunk/fec"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: golay24 word [word ...]")
		fmt.Fprintln(os.Stderr, "3 hex digit words are encoded, 6 hex digit words are decoded")
		os.Exit(1)
	}

	for _, arg := range os.Args[1:] {
		switch len(arg) {
		case 3:
			data, err := strconv.ParseUint(arg, 16, 12)
			if err != nil {
				fmt.Printf("%s: %v\n", arg, err)
				continue
			}
			fmt.Printf("%s -> %06x\n", arg, fec.Golay_24_12_Encode(uint32(data)))
		case 6:
			codeword, err := strconv.ParseUint(arg, 16, 24)
			if err != nil {
				fmt.Printf("%s: %v\n", arg, err)
				continue
			}
			m := bit.NewMessageFromBytes([]byte{
				byte(codeword >> 16), byte(codeword >> 8), byte(codeword),
			})
			errors := fec.Golay_24_12_Correct(m, 0)
			fmt.Printf("%s -> data %03x, parity %03x, %d bit errors\n",
				arg, m.Uint64(0, 11), m.Uint64(12, 23), errors)
		default:
			fmt.Printf("%s: want 3 (encode) or 6 (decode) hex digits\n", arg)
		}
	}
}
