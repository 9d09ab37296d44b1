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
	"errors"
	"io"
	"slices"

	"github.com/blinklabs-io/gofits/card"
)

// Precision used for single- and double-precision value formatting. Double
// values use the shortest representation that parses back identically.
const (
	floatDigits  = 7
	doubleDigits = -1
)

// stringValueCapacity is the escaped character budget of a string value in
// one card: 80 bytes minus the 10-byte keyword field and the two quotes
const stringValueCapacity = 68

// Writer buffers typed keyword cards for one header and emits them on Close
// with END-card termination and space padding to a whole block. Buffering is
// what makes the update hint cheap: an update replaces the buffered card
// group with the same keyword instead of appending a duplicate.
type Writer struct {
	w      io.Writer
	cards  [][]byte
	closed bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) put(name string, c []byte, err error, update bool) error {
	if err != nil {
		return err
	}
	w.putGroup(name, [][]byte{c}, update)
	return nil
}

// putGroup appends a card group (a keyword card plus any CONTINUE cards
// carrying its wrapped value). When the update hint is set and a card with
// the same keyword is already buffered, the new group replaces the old one
// in place, CONTINUE fragments included, so no orphaned fragments survive
// the replacement.
func (w *Writer) putGroup(name string, group [][]byte, update bool) {
	if update {
		if i := w.findCard(name); i >= 0 {
			w.cards = slices.Replace(w.cards, i, i+w.groupLen(i), group...)
			return
		}
	}
	w.cards = append(w.cards, group...)
}

// findCard returns the index of the buffered card with the given keyword, or
// -1 if none matches
func (w *Writer) findCard(name string) int {
	for i, existing := range w.cards {
		key, _, err := card.ParseKey(existing)
		if err == nil && key == name {
			return i
		}
	}
	return -1
}

// groupLen returns the number of cards in the group starting at i: the card
// itself plus the CONTINUE cards that follow it
func (w *Writer) groupLen(i int) int {
	n := 1
	for i+n < len(w.cards) {
		key, _, err := card.ParseKey(w.cards[i+n])
		if err != nil || key != card.KeyContinue {
			break
		}
		n++
	}
	return n
}

func (w *Writer) WriteLogical(name string, value bool, comment string, update bool) error {
	c, err := card.FormatLogical(name, value, comment)
	return w.put(name, c, err, update)
}

func (w *Writer) WriteInt(name string, value int64, comment string, update bool) error {
	c, err := card.FormatInt(name, value, comment)
	return w.put(name, c, err, update)
}

func (w *Writer) WriteFloat(name string, value float64, comment string, update bool) error {
	c, err := card.FormatFloat(name, value, floatDigits, comment)
	return w.put(name, c, err, update)
}

func (w *Writer) WriteDouble(name string, value float64, comment string, update bool) error {
	c, err := card.FormatFloat(name, value, doubleDigits, comment)
	return w.put(name, c, err, update)
}

func (w *Writer) WriteComplex(name string, value complex128, comment string, update bool) error {
	c, err := card.FormatComplex(name, value, doubleDigits, comment)
	return w.put(name, c, err, update)
}

// WriteString writes a string keyword, wrapping values that exceed one
// card's capacity across CONTINUE cards with '&' continuation markers. An
// update replaces the whole prior card group for the keyword, whether either
// value is wrapped or not.
func (w *Writer) WriteString(name string, value string, comment string, update bool) error {
	if len(card.Escape(value)) <= stringValueCapacity {
		c, err := card.FormatString(name, value, comment)
		return w.put(name, c, err, update)
	}
	chunks := splitLongString(value)
	group := make([][]byte, 0, len(chunks))
	for i, chunk := range chunks {
		chunkComment := ""
		if i == len(chunks)-1 {
			chunkComment = comment
		}
		var c []byte
		var err error
		if i == 0 {
			c, err = card.FormatString(name, chunk, chunkComment)
		} else {
			c, err = card.FormatContinue(chunk, chunkComment)
		}
		if err != nil {
			return err
		}
		group = append(group, c)
	}
	w.putGroup(name, group, update)
	return nil
}

// WriteComment appends a COMMENT card, splitting long text across several
// cards
func (w *Writer) WriteComment(text string) error {
	return w.writeCommentary(card.KeyComment, text)
}

// WriteHistory appends a HISTORY card, splitting long text across several
// cards
func (w *Writer) WriteHistory(text string) error {
	return w.writeCommentary(card.KeyHistory, text)
}

func (w *Writer) writeCommentary(keyword string, text string) error {
	const capacity = card.Length - card.KeyLength
	for {
		chunk := text
		if len(chunk) > capacity {
			chunk = chunk[:capacity]
		}
		c, err := card.FormatCommentary(keyword, chunk)
		if err != nil {
			return err
		}
		w.cards = append(w.cards, c)
		text = text[len(chunk):]
		if text == "" {
			return nil
		}
	}
}

// CardCount returns the number of cards buffered so far
func (w *Writer) CardCount() int {
	return len(w.cards)
}

// Close terminates the header with an END card, pads to a whole block and
// writes everything out
func (w *Writer) Close() error {
	if w.closed {
		return errors.New("writer already closed")
	}
	w.closed = true
	buf := make([]byte, 0, (len(w.cards)/CardsPerBlock+1)*BlockSize)
	for _, c := range w.cards {
		buf = append(buf, c...)
	}
	end := [card.Length]byte{'E', 'N', 'D'}
	for i := 3; i < card.Length; i++ {
		end[i] = ' '
	}
	buf = append(buf, end[:]...)
	for len(buf)%BlockSize != 0 {
		buf = append(buf, ' ')
	}
	_, err := w.w.Write(buf)
	return err
}

// splitLongString cuts a long string value into card-sized fragments, all
// but the last ending in the '&' continuation marker. Fragments are measured
// after quote escaping so each one fits its card.
func splitLongString(value string) []string {
	var chunks []string
	for value != "" {
		if len(card.Escape(value)) <= stringValueCapacity {
			chunks = append(chunks, value)
			break
		}
		escaped := 0
		i := 0
		for i < len(value) {
			n := 1
			if value[i] == '\'' {
				n = 2
			}
			// Reserve one character for the continuation marker
			if escaped+n > stringValueCapacity-1 {
				break
			}
			escaped += n
			i++
		}
		chunks = append(chunks, value[:i]+"&")
		value = value[i:]
	}
	return chunks
}
