// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fitsio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blinklabs-io/gofits/card"
)

// Reader scans a FITS stream block by block and serves the cards of one
// header at a time. HDUs are addressed by zero-based index; the stream is
// consumed forward only, so seeks go to the current HDU or a later one.
type Reader struct {
	br     *bufio.Reader
	cards  [][]byte
	pos    int
	hdu    int
	loaded bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, BlockSize)}
}

// HDU returns the zero-based index of the current HDU
func (r *Reader) HDU() int {
	return r.hdu
}

// CardCount returns the number of cards in the current header, not counting
// the END card
func (r *Reader) CardCount() (int, error) {
	if err := r.ensureLoaded(); err != nil {
		return 0, err
	}
	return len(r.cards), nil
}

// NextCard returns the next raw 80-byte card of the current header, or
// io.EOF past the last card
func (r *Reader) NextCard() ([]byte, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	if r.pos >= len(r.cards) {
		return nil, io.EOF
	}
	c := r.cards[r.pos]
	r.pos++
	return c, nil
}

// Rewind resets the card cursor to the first card of the current header
func (r *Reader) Rewind() error {
	if err := r.ensureLoaded(); err != nil {
		return err
	}
	r.pos = 0
	return nil
}

// SeekHDU positions the reader at the header of the HDU with the given
// zero-based index. The stream only moves forward: seeking before the
// current HDU is an error.
func (r *Reader) SeekHDU(index int) error {
	if index < 0 {
		return fmt.Errorf("invalid HDU index %d", index)
	}
	if index < r.hdu {
		return fmt.Errorf(
			"cannot seek backwards from HDU %d to HDU %d",
			r.hdu,
			index,
		)
	}
	if err := r.ensureLoaded(); err != nil {
		return err
	}
	for r.hdu < index {
		if err := r.skipData(); err != nil {
			return err
		}
		r.hdu++
		if err := r.loadHeader(); err != nil {
			return err
		}
	}
	return nil
}

// NextHDU advances to the header of the following HDU
func (r *Reader) NextHDU() error {
	return r.SeekHDU(r.hdu + 1)
}

func (r *Reader) ensureLoaded() error {
	if r.loaded {
		return nil
	}
	return r.loadHeader()
}

// loadHeader reads whole blocks until the END card, collecting every card
// before it
func (r *Reader) loadHeader() error {
	r.cards = nil
	r.pos = 0
	r.loaded = false
	block := make([]byte, BlockSize)
	for {
		if _, err := io.ReadFull(r.br, block); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf(
					"unexpected end of stream in header of HDU %d",
					r.hdu,
				)
			}
			return err
		}
		for i := 0; i < CardsPerBlock; i++ {
			c := make([]byte, card.Length)
			copy(c, block[i*card.Length:(i+1)*card.Length])
			if isEndCard(c) {
				r.loaded = true
				return nil
			}
			r.cards = append(r.cards, c)
		}
	}
}

func isEndCard(c []byte) bool {
	return string(c[:card.KeyLength]) == "END     "
}

// skipData discards the data unit following the current header. The data
// size follows from the mandatory keywords: |BITPIX|/8 * GCOUNT *
// (PCOUNT + NAXIS1 * ... * NAXISn), rounded up to whole blocks.
func (r *Reader) skipData() error {
	size, err := r.dataSize()
	if err != nil {
		return err
	}
	if size == 0 {
		return nil
	}
	blocks := (size + BlockSize - 1) / BlockSize
	if _, err := io.CopyN(io.Discard, r.br, blocks*BlockSize); err != nil {
		return fmt.Errorf(
			"unexpected end of stream in data of HDU %d: %w",
			r.hdu,
			err,
		)
	}
	return nil
}

func (r *Reader) dataSize() (int64, error) {
	var bitpix, naxis, pcount int64
	gcount := int64(1)
	axisProduct := int64(1)
	for _, c := range r.cards {
		key, pos, err := card.ParseKey(c)
		if err != nil || key == "" {
			continue
		}
		switch {
		case key == "BITPIX" || key == card.KeyNaxis ||
			key == "PCOUNT" || key == "GCOUNT":
			val, _, err := card.ParseValue(c, pos, key, 0)
			if err != nil || val.Code != card.TypeInt {
				return 0, fmt.Errorf("HDU %d: bad %s card", r.hdu, key)
			}
			switch key {
			case "BITPIX":
				bitpix = val.Int
			case card.KeyNaxis:
				naxis = val.Int
			case "PCOUNT":
				pcount = val.Int
			case "GCOUNT":
				gcount = val.Int
			}
		case strings.HasPrefix(key, card.KeyNaxis):
			val, _, err := card.ParseValue(c, pos, key, 0)
			if err != nil || val.Code != card.TypeInt {
				return 0, fmt.Errorf("HDU %d: bad %s card", r.hdu, key)
			}
			axisProduct *= val.Int
		}
	}
	if naxis == 0 {
		return 0, nil
	}
	if bitpix < 0 {
		bitpix = -bitpix
	}
	return bitpix / 8 * gcount * (pcount + axisProduct), nil
}
