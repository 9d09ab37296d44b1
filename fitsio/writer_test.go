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

package fitsio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/blinklabs-io/gofits/fitsio"
	"github.com/blinklabs-io/gofits/header"
	"github.com/stretchr/testify/assert"
)

func TestWriterBlockPadding(t *testing.T) {
	var buf bytes.Buffer
	w := fitsio.NewWriter(&buf)
	assert.NoError(t, w.WriteLogical("SIMPLE", true, "conforms", false))
	assert.NoError(t, w.WriteInt("BITPIX", 16, "", false))
	assert.NoError(t, w.Close())
	assert.Equal(t, fitsio.BlockSize, buf.Len())
	// END card follows the last keyword card
	assert.Equal(t, "END     ", buf.String()[160:168])
	// Padding is spaces
	assert.Equal(t, strings.Repeat(" ", 80), buf.String()[240:320])
	// Double close is an error
	assert.Error(t, w.Close())
}

func TestWriterUpdateReplacesCard(t *testing.T) {
	var buf bytes.Buffer
	w := fitsio.NewWriter(&buf)
	assert.NoError(t, w.WriteDouble("EXPTIME", 1.0, "", false))
	assert.NoError(t, w.WriteDouble("EXPTIME", 2.5, "", true))
	assert.Equal(t, 1, w.CardCount())
	assert.NoError(t, w.Close())
	assert.Contains(t, buf.String(), "2.5")
	assert.Equal(t, 1, strings.Count(buf.String(), "EXPTIME"))
}

func TestWriterUpdateWithoutExistingAppends(t *testing.T) {
	var buf bytes.Buffer
	w := fitsio.NewWriter(&buf)
	assert.NoError(t, w.WriteDouble("EXPTIME", 2.5, "", true))
	assert.Equal(t, 1, w.CardCount())
}

func TestWriterLongString(t *testing.T) {
	var buf bytes.Buffer
	w := fitsio.NewWriter(&buf)
	long := strings.Repeat("abcdefghij", 20)
	assert.NoError(t, w.WriteString("LONGSTR", long, "wrapped", false))
	assert.Greater(t, w.CardCount(), 1)
	assert.NoError(t, w.Close())
	out := buf.String()
	assert.Contains(t, out, "CONTINUE  '")
	assert.Contains(t, out, "&'")
	// Reassembling the quoted fragments recovers the original value
	r := fitsio.NewReader(bytes.NewReader(buf.Bytes()))
	var rebuilt strings.Builder
	for {
		c, err := r.NextCard()
		if errors.Is(err, io.EOF) {
			break
		}
		assert.NoError(t, err)
		s := string(c)
		first := strings.Index(s, "'")
		last := strings.LastIndex(s, "'")
		frag := strings.ReplaceAll(s[first+1:last], "''", "'")
		frag = strings.TrimRight(frag, " ")
		rebuilt.WriteString(strings.TrimSuffix(frag, "&"))
	}
	assert.Equal(t, long, rebuilt.String())
}

// A duplicate keyword whose first occurrence was wrapped must replace the
// whole card group, leaving no orphaned CONTINUE fragments behind
func TestWriterUpdateReplacesWrappedGroup(t *testing.T) {
	l := header.NewPropertyList()
	l.Append(header.NewStringProperty("LONGSTR", strings.Repeat("x", 150)))
	l.Append(header.NewStringProperty("LONGSTR", "short"))

	var buf bytes.Buffer
	w := fitsio.NewWriter(&buf)
	assert.NoError(t, header.Encode(l, w, nil))
	assert.Equal(t, 1, w.CardCount())
	assert.NoError(t, w.Close())
	assert.NotContains(t, buf.String(), "CONTINUE")

	r := fitsio.NewReader(bytes.NewReader(buf.Bytes()))
	decoded, err := header.Decode(r, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, decoded.Size())
	s, err := decoded.Get(0).String()
	assert.NoError(t, err)
	assert.Equal(t, "short", s)
}

// The reverse direction: updating a single-card string with a wrapped value
// replaces in place, keeping later cards after the new group
func TestWriterUpdateWrapsInPlace(t *testing.T) {
	var buf bytes.Buffer
	w := fitsio.NewWriter(&buf)
	assert.NoError(t, w.WriteString("LONGSTR", "short", "", false))
	assert.NoError(t, w.WriteInt("BITPIX", 16, "", false))
	assert.NoError(t, w.WriteString("LONGSTR", strings.Repeat("y", 150), "", true))
	// 150 chars wrap into three cards: the keyword card plus two CONTINUE
	assert.Equal(t, 4, w.CardCount())
	assert.NoError(t, w.Close())
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "LONGSTR"))
	assert.Equal(t, "LONGSTR ", out[:8])
	assert.Equal(t, "CONTINUE", out[80:88])
	assert.Equal(t, "CONTINUE", out[160:168])
	assert.Equal(t, "BITPIX  ", out[240:248])
}

func TestWriterCommentChunking(t *testing.T) {
	var buf bytes.Buffer
	w := fitsio.NewWriter(&buf)
	assert.NoError(t, w.WriteComment(strings.Repeat("x", 100)))
	assert.Equal(t, 2, w.CardCount())
}

// Full write/read cycle through raw bytes
func TestWriterReaderRoundTrip(t *testing.T) {
	l := header.NewPropertyList()
	l.Append(header.NewBoolProperty("SIMPLE", true).WithComment("conforms"))
	l.Append(header.NewIntProperty("BITPIX", 16))
	l.Append(header.NewIntProperty("NAXIS", 2))
	l.Append(header.NewIntProperty("NAXIS1", 100))
	l.Append(header.NewDoubleProperty("CRVAL1", 0))
	l.Append(header.NewStringProperty("OBSERVER", "O'HARA"))
	l.Append(header.NewDoubleComplexProperty("CPLX", complex(1.5, -2.5)))
	l.Append(header.NewStringProperty("COMMENT", "written by test"))

	var buf bytes.Buffer
	w := fitsio.NewWriter(&buf)
	assert.NoError(t, header.Encode(l, w, nil))
	assert.NoError(t, w.Close())
	assert.Equal(t, 0, buf.Len()%fitsio.BlockSize)

	r := fitsio.NewReader(bytes.NewReader(buf.Bytes()))
	decoded, err := header.Decode(r, nil)
	assert.NoError(t, err)
	assert.Equal(t, l.Size(), decoded.Size())
	for i := 0; i < l.Size(); i++ {
		orig := l.Get(i)
		got := decoded.Get(i)
		assert.Equal(t, orig.Name, got.Name)
		assert.Equal(t, orig.Type, got.Type, orig.Name)
		assert.Equal(t, orig.Value, got.Value, orig.Name)
	}
	// CRVAL1 must come back as floating point even though its value is
	// integral (NAXIS precedes it in card order)
	assert.Equal(t, header.TypeDouble, decoded.Get(4).Type)
}
