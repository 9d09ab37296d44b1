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
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseKey extracts the keyword name from a raw card and returns the position
// of the value indicator. For standard cards the keyword is the leading run of
// non-space bytes within the first 8 columns and the returned position is
// always column 8, whether or not it actually holds '='. Cards using the
// HIERARCH convention return the position of the '=' that terminates the long
// keyword; a HIERARCH card without one is malformed.
func ParseKey(c []byte) (string, int, error) {
	if len(c) == 0 {
		return "", 0, nil
	}
	if bytes.HasPrefix(c, []byte(hierarchPrefix)) {
		eq := bytes.IndexByte(c[len(hierarchPrefix):], '=')
		if eq < 0 {
			return "", 0, fmt.Errorf(
				"%w: HIERARCH card has no value indicator",
				ErrMalformedKey,
			)
		}
		eq += len(hierarchPrefix)
		key := strings.TrimRight(string(c[len(hierarchPrefix):eq]), " ")
		if key == "" {
			return "", 0, fmt.Errorf(
				"%w: HIERARCH card has an empty keyword",
				ErrMalformedKey,
			)
		}
		return key, eq, nil
	}
	end := min(len(c), KeyLength)
	i := 0
	for i < end && c[i] != ' ' && c[i] != 0 {
		i++
	}
	return string(c[:i]), KeyLength, nil
}

// ParseValue parses the typed value of a card starting at the value indicator
// position returned by ParseKey. The naxis argument bounds the WCS
// floating-point override check for the given keyword. It returns the parsed
// Value and the card's comment text (empty if none).
func ParseValue(c []byte, pos int, key string, naxis int) (Value, string, error) {
	// Commentary cards and cards without a value indicator carry only a
	// comment: the whole remainder of the card.
	if key == "" || key == KeyComment || key == KeyHistory ||
		pos >= len(c) || c[pos] != '=' {
		com := ""
		if pos < len(c) {
			com = strings.TrimSpace(string(c[pos:]))
		}
		return Value{Code: TypeNone}, com, nil
	}
	pos++
	for pos < len(c) && c[pos] == ' ' {
		pos++
	}
	if pos >= len(c) {
		// Value indicator with nothing after it
		return Value{Code: TypeUndefined}, "", nil
	}
	var val Value
	switch b := c[pos]; {
	case b == '\'':
		s, next, err := parseString(c, pos)
		if err != nil {
			return Value{Code: TypeUnparsable}, "", err
		}
		val = Value{Code: TypeString, Str: s, Length: len(s)}
		pos = next
	case b == 'T' || b == 'F':
		val = Value{Code: TypeLogical, Bool: b == 'T', Length: 1}
		pos++
	case b == '(':
		z, next, err := parseComplex(c, pos)
		if err != nil {
			return Value{Code: TypeUnparsable}, "", err
		}
		val = Value{Code: TypeComplex, Complex: z, Length: 1}
		pos = next
	case b == '/':
		// Valueless card with only a comment
		com, _ := ParseComment(c, pos)
		return Value{Code: TypeUndefined}, com, nil
	case b == '+' || b == '-' || b == '.' || (b >= '0' && b <= '9'):
		end := pos
		for end < len(c) && c[end] != ' ' && c[end] != '/' {
			end++
		}
		v, err := parseNumber(string(c[pos:end]), key, naxis)
		if err != nil {
			return Value{Code: TypeUnparsable}, "", err
		}
		val = v
		pos = end
	default:
		return Value{Code: TypeUnparsable}, "", fmt.Errorf(
			"%w: unrecognized value at column %d",
			ErrUnparsableValue,
			pos+1,
		)
	}
	// Only spaces may separate the value from the comment or the end of the
	// record
	for pos < len(c) && c[pos] == ' ' {
		pos++
	}
	if pos < len(c) && c[pos] != '/' {
		return Value{Code: TypeUnparsable}, "", fmt.Errorf(
			"%w: trailing characters after value at column %d",
			ErrUnparsableValue,
			pos+1,
		)
	}
	com, _ := ParseComment(c, pos)
	return val, com, nil
}

// ParseComment returns the comment text at or after pos. The boolean result
// is false when the card has no '/' from pos onward or when the text after it
// is entirely spaces. A single space after the '/' is not part of the comment
// (FITS 4.1.2.3), and trailing spaces are stripped.
func ParseComment(c []byte, pos int) (string, bool) {
	if pos < 0 || pos >= len(c) {
		return "", false
	}
	slash := bytes.IndexByte(c[pos:], '/')
	if slash < 0 {
		return "", false
	}
	start := pos + slash + 1
	if start < len(c) && c[start] == ' ' {
		start++
	}
	com := strings.TrimRight(string(c[start:]), " ")
	if com == "" {
		return "", false
	}
	return com, true
}

// parseString decodes a quoted string starting at the opening quote. A
// doubled quote inside the string is an escaped literal quote (FITS 4.2.1).
// Trailing spaces inside the quotes are insignificant, which also makes an
// all-space string empty. Returns the decoded string and the position just
// past the closing quote.
func parseString(c []byte, pos int) (string, int, error) {
	// Scratch buffer sized to the card; the decoded value can never be
	// longer than the raw card bytes
	var scratch [Length]byte
	n := 0
	i := pos + 1
	for {
		if i >= len(c) {
			return "", 0, ErrUnterminatedString
		}
		if c[i] == '\'' {
			if i+1 < len(c) && c[i+1] == '\'' {
				if n >= len(scratch) {
					return "", 0, fmt.Errorf(
						"%w: value overflows card",
						ErrUnparsableValue,
					)
				}
				scratch[n] = '\''
				n++
				i += 2
				continue
			}
			i++
			break
		}
		if n >= len(scratch) {
			return "", 0, fmt.Errorf("%w: value overflows card", ErrUnparsableValue)
		}
		scratch[n] = c[i]
		n++
		i++
	}
	s := strings.TrimRight(string(scratch[:n]), " ")
	return s, i, nil
}

// parseComplex decodes a complex value of the form (real, imag) starting at
// the opening parenthesis. Returns the value and the position just past the
// closing parenthesis.
func parseComplex(c []byte, pos int) (complex128, int, error) {
	end := bytes.IndexByte(c[pos:], ')')
	if end < 0 {
		return 0, 0, fmt.Errorf(
			"%w: complex value has no closing parenthesis",
			ErrUnparsableValue,
		)
	}
	end += pos
	re, im, ok := strings.Cut(string(c[pos+1:end]), ",")
	if !ok {
		return 0, 0, fmt.Errorf(
			"%w: complex value has no separator",
			ErrUnparsableValue,
		)
	}
	r, err := parseFloatToken(strings.TrimSpace(re))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad real part", ErrUnparsableValue)
	}
	i, err := parseFloatToken(strings.TrimSpace(im))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad imaginary part", ErrUnparsableValue)
	}
	return complex(r, i), end + 1, nil
}

// parseNumber decodes a numeric token. Integer decoding is attempted first
// unless the keyword is one of the WCS keywords that must always decode as
// floating point. Integer overflow or a trailing '.'/exponent character both
// surface as a failed integer parse and fall through to the float path, which
// also accepts the Fortran 'D' exponent marker.
func parseNumber(tok string, key string, naxis int) (Value, error) {
	if !MustBeFloat(key, naxis) {
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return Value{Code: TypeInt, Int: i, Length: 1}, nil
		}
	}
	f, err := parseFloatToken(tok)
	if err != nil {
		return Value{}, fmt.Errorf(
			"%w: bad numeric value %q",
			ErrUnparsableValue,
			tok,
		)
	}
	return Value{Code: TypeFloat, Float: f, Length: 1}, nil
}

// parseFloatToken parses a floating-point token, mapping the Fortran 'D'
// exponent marker to 'E' in a scratch copy before parsing
func parseFloatToken(tok string) (float64, error) {
	if strings.ContainsAny(tok, "Dd") {
		tok = strings.Map(func(r rune) rune {
			switch r {
			case 'D':
				return 'E'
			case 'd':
				return 'e'
			}
			return r
		}, tok)
	}
	return strconv.ParseFloat(tok, 64)
}
