package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/hotelzululima/sdrtrunk"
	"github.com/hotelzululima/sdrtrunk/bit"
	"github.com/hotelzululima/sdrtrunk/dmr"
	"github.com/hotelzululima/sdrtrunk/edac"
)

var log = logging.MustGetLogger("sdrtrunk/edacdump")

// crcStart per PDU code, data bits start at 160.
var pduCRCStart = map[string]int{
	"pdu1": 224,
	"pdu2": 320,
	"pdu3": 416,
}

type frame struct {
	Code       string `yaml:"code"`
	Hex        string `yaml:"hex"`
	Bits       string `yaml:"bits"`
	Start      int    `yaml:"start"`
	CRC        int    `yaml:"crc"`
	TextFormat *uint8 `yaml:"text-format"`
}

type config struct {
	Frames []frame `yaml:"frames"`
}

func message(f frame) (*bit.Message, error) {
	if f.Bits != "" {
		return bit.ParseMessage(f.Bits)
	}
	raw, err := hex.DecodeString(f.Hex)
	if err != nil {
		return nil, err
	}
	return bit.NewMessageFromBytes(raw), nil
}

func check(i int, f frame) error {
	m, err := message(f)
	if err != nil {
		return err
	}

	switch f.Code {
	case "ccitt80":
		log.Infof("frame %d: ccitt80 %s", i, edac.CorrectCCITT80(m, f.Start, f.CRC))
	case "ccitt80-counted":
		log.Infof("frame %d: ccitt80-counted %d bit errors", i, edac.CorrectCCITT80Counted(m, f.Start, f.CRC))
	case "crc9":
		log.Infof("frame %d: crc9 %s", i, edac.CheckCRC9(m, f.Start))
	case "pdu1":
		log.Infof("frame %d: pdu1 %s", i, edac.CorrectPDU1(m))
	case "pdu2":
		log.Infof("frame %d: pdu2 %s", i, edac.CorrectPDU2(m))
	case "pdu3":
		log.Infof("frame %d: pdu3 %s", i, edac.CorrectPDU3(m))
	case "golay24":
		log.Infof("frame %d: golay24 passed=%t", i, edac.CorrectGolay24Blocks(m))
	default:
		return fmt.Errorf("unknown code %q", f.Code)
	}

	log.Infof("frame %d: corrected %d bits: %x", i, m.CorrectedBitCount(), m.Bytes())

	if f.TextFormat != nil {
		crcStart, ok := pduCRCStart[f.Code]
		if !ok {
			return fmt.Errorf("code %q carries no text payload", f.Code)
		}
		text, err := dmr.DecodeText(m.BytesAt(160, crcStart-160), *f.TextFormat)
		if err != nil {
			return err
		}
		log.Infof("frame %d: payload %q (%s)", i, text, dmr.DDFormatName[*f.TextFormat])
	}

	return nil
}

func main() {
	configFile := pflag.String("config", "edacdump.yaml", "configuration file")
	pflag.Parse()

	log.Infof("edacdump %s", sdrtrunk.PackageID)

	raw, err := os.ReadFile(*configFile)
	if err != nil {
		panic(err)
	}

	c := &config{}
	if err := yaml.Unmarshal(raw, c); err != nil {
		panic(err)
	}

	for i, f := range c.Frames {
		if err := check(i, f); err != nil {
			log.Errorf("frame %d: %v", i, err)
		}
	}
}
