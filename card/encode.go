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

package card

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fixedValueEnd is the column (1-based) at which fixed-format values are
// right-justified
const fixedValueEnd = 30

// keyField renders the keyword field including the value indicator. Keywords
// longer than 8 characters use the HIERARCH convention.
func keyField(name string) (string, error) {
	if name == "" {
		return "", errors.New("empty keyword name")
	}
	if len(name) <= KeyLength {
		return fmt.Sprintf("%-8s= ", name), nil
	}
	field := hierarchPrefix + name + " = "
	if len(field) >= Length {
		return "", fmt.Errorf("keyword %q leaves no room for a value", name)
	}
	return field, nil
}

// buildCard assembles a full 80-byte card from its parts. Fixed-format
// (right-aligned) values are padded out to column 30 when they fit. The
// comment is truncated if it does not fit; a value that does not fit is an
// error.
func buildCard(prefix string, value string, comment string, rightAlign bool) ([]byte, error) {
	b := make([]byte, 0, Length)
	b = append(b, prefix...)
	if rightAlign {
		if pad := fixedValueEnd - len(prefix) - len(value); pad > 0 {
			for i := 0; i < pad; i++ {
				b = append(b, ' ')
			}
		}
	}
	if len(b)+len(value) > Length {
		return nil, fmt.Errorf("%w: %q", ErrValueTooLong, value)
	}
	b = append(b, value...)
	if comment != "" {
		if room := Length - len(b) - 3; room > 0 {
			if len(comment) > room {
				comment = comment[:room]
			}
			b = append(b, ' ', '/', ' ')
			b = append(b, comment...)
		}
	}
	for len(b) < Length {
		b = append(b, ' ')
	}
	return b, nil
}

// FormatLogical renders a logical keyword card
func FormatLogical(name string, value bool, comment string) ([]byte, error) {
	prefix, err := keyField(name)
	if err != nil {
		return nil, err
	}
	v := "F"
	if value {
		v = "T"
	}
	return buildCard(prefix, v, comment, true)
}

// FormatInt renders an integer keyword card
func FormatInt(name string, value int64, comment string) ([]byte, error) {
	prefix, err := keyField(name)
	if err != nil {
		return nil, err
	}
	return buildCard(prefix, strconv.FormatInt(value, 10), comment, true)
}

// FormatFloat renders a floating-point keyword card. A digits value <= 0
// selects the shortest representation that parses back to the same value.
// NaN and infinities have no card representation and are rejected.
func FormatFloat(name string, value float64, digits int, comment string) ([]byte, error) {
	prefix, err := keyField(name)
	if err != nil {
		return nil, err
	}
	if !isFinite(value) {
		return nil, fmt.Errorf("%w: %s = %v", ErrNonFinite, name, value)
	}
	return buildCard(prefix, FloatString(value, digits), comment, true)
}

// FormatComplex renders a complex keyword card as (real, imag). Either
// component being NaN or infinite is rejected.
func FormatComplex(name string, value complex128, digits int, comment string) ([]byte, error) {
	prefix, err := keyField(name)
	if err != nil {
		return nil, err
	}
	if !isFinite(real(value)) || !isFinite(imag(value)) {
		return nil, fmt.Errorf("%w: %s = %v", ErrNonFinite, name, value)
	}
	v := fmt.Sprintf(
		"(%s, %s)",
		FloatString(real(value), digits),
		FloatString(imag(value), digits),
	)
	return buildCard(prefix, v, comment, false)
}

// FormatString renders a string keyword card. The value must fit in a single
// card after quote escaping; longer values are the caller's responsibility to
// wrap via the CONTINUE convention.
func FormatString(name string, value string, comment string) ([]byte, error) {
	prefix, err := keyField(name)
	if err != nil {
		return nil, err
	}
	return buildCard(prefix, Quote(value), comment, false)
}

// FormatContinue renders a CONTINUE card carrying a long-string fragment
func FormatContinue(value string, comment string) ([]byte, error) {
	return buildCard("CONTINUE  ", Quote(value), comment, false)
}

// FormatCommentary renders a commentary card (COMMENT, HISTORY or blank
// keyword): no value indicator, the remainder of the card is free text.
func FormatCommentary(name string, text string) ([]byte, error) {
	if len(name) > KeyLength {
		return nil, fmt.Errorf("commentary keyword %q too long", name)
	}
	b := make([]byte, 0, Length)
	b = append(b, fmt.Sprintf("%-8s", name)...)
	if len(text) > Length-KeyLength {
		text = text[:Length-KeyLength]
	}
	b = append(b, text...)
	for len(b) < Length {
		b = append(b, ' ')
	}
	return b, nil
}

// FloatString renders a floating-point value in FITS notation: uppercase
// exponent, and always a '.' or exponent so the value reads back as floating
// point rather than integer
func FloatString(value float64, digits int) string {
	if digits <= 0 {
		digits = -1
	}
	s := strconv.FormatFloat(value, 'G', digits, 64)
	if !strings.ContainsAny(s, ".E") {
		s += "."
	}
	return s
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// Escape doubles embedded quotes per FITS 4.2.1
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Quote renders a quoted string value, escaping embedded quotes and padding
// to the conventional 8-character minimum inside the quotes
func Quote(s string) string {
	return fmt.Sprintf("'%-8s'", Escape(s))
}
