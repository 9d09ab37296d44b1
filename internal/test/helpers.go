package test

import (
	"fmt"
	"strings"
)

const (
	cardLength = 80
	blockSize  = 2880
)

// PadCard is a helper function for tests that pads a card image out to the
// fixed 80-byte record length. It panics instead of returning an error, which
// makes it usable inline.
func PadCard(s string) []byte {
	if len(s) > cardLength {
		panic(fmt.Sprintf("card image longer than %d bytes: %q", cardLength, s))
	}
	return []byte(s + strings.Repeat(" ", cardLength-len(s)))
}

// HeaderBlocks assembles raw FITS header bytes from card images: each card is
// padded to 80 bytes, an END card is appended, and the result is padded with
// spaces to a multiple of the 2880-byte block size.
func HeaderBlocks(cards ...string) []byte {
	var b []byte
	for _, c := range cards {
		b = append(b, PadCard(c)...)
	}
	b = append(b, PadCard("END")...)
	for len(b)%blockSize != 0 {
		b = append(b, ' ')
	}
	return b
}
