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

package header

import (
	"fmt"
	"math"

	"github.com/blinklabs-io/gofits/card"
)

// FilterFunc decides whether a keyword takes part in a decode or encode pass.
// A nil filter accepts everything.
type FilterFunc func(name string) bool

// CardSource is the read-side boundary with the FITS I/O layer: a bounded
// sequence of raw 80-byte cards for one header
type CardSource interface {
	// CardCount returns the number of cards in the current header, not
	// counting the END card
	CardCount() (int, error)
	// NextCard returns the next raw card
	NextCard() ([]byte, error)
	// Rewind resets the read cursor to the first card
	Rewind() error
}

// CardWriter is the write-side boundary with the FITS I/O layer: one typed
// write primitive per property type, plus commentary appends. The update
// flag is a hint that a card with the same keyword was already written; both
// settings produce a correct header, but the hint saves the writer a scan.
type CardWriter interface {
	WriteLogical(name string, value bool, comment string, update bool) error
	WriteInt(name string, value int64, comment string, update bool) error
	WriteFloat(name string, value float64, comment string, update bool) error
	WriteDouble(name string, value float64, comment string, update bool) error
	WriteString(name string, value string, comment string, update bool) error
	WriteComplex(name string, value complex128, comment string, update bool) error
	WriteComment(text string) error
	WriteHistory(text string) error
}

// Decode reads every card of the current header from src and builds a
// property list in card order. Cards whose keyword is rejected by the filter
// contribute nothing. Any malformed card aborts the whole decode with an
// error naming the card index; no partial list is returned.
func Decode(src CardSource, filter FilterFunc) (*PropertyList, error) {
	count, err := src.CardCount()
	if err != nil {
		return nil, fmt.Errorf("unable to size header: %w", err)
	}
	if count <= 0 {
		return nil, fmt.Errorf("unable to size header: %d cards", count)
	}
	if err := src.Rewind(); err != nil {
		return nil, err
	}
	list := NewPropertyList()
	// The most recently seen NAXIS value bounds the WCS floating-point
	// override for subsequent cards
	naxis := 0
	for i := 0; i < count; i++ {
		c, err := src.NextCard()
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		key, pos, err := card.ParseKey(c)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		if filter != nil && !filter(key) {
			continue
		}
		val, comment, err := card.ParseValue(c, pos, key, naxis)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		if key == card.KeyNaxis && val.Code == card.TypeInt {
			naxis = int(val.Int)
		}
		prop, err := propertyFromValue(key, val, comment)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		list.Append(prop)
	}
	return list, nil
}

// propertyFromValue maps a parsed card value to a property. Value-less cards
// are preserved as string properties so no information is silently dropped.
func propertyFromValue(key string, val card.Value, comment string) (*Property, error) {
	switch val.Code {
	case card.TypeLogical:
		return NewBoolProperty(key, val.Bool).WithComment(comment), nil
	case card.TypeInt:
		if val.Int >= math.MinInt32 && val.Int <= math.MaxInt32 {
			return NewIntProperty(key, val.Int).WithComment(comment), nil
		}
		return NewLongLongProperty(key, val.Int).WithComment(comment), nil
	case card.TypeFloat:
		return NewDoubleProperty(key, val.Float).WithComment(comment), nil
	case card.TypeString:
		return NewStringProperty(key, val.Str).WithComment(comment), nil
	case card.TypeComplex:
		return NewDoubleComplexProperty(key, val.Complex).WithComment(comment), nil
	case card.TypeUndefined:
		// Valueless card: zero-length string property keeps the comment
		return NewStringProperty(key, "").WithComment(comment), nil
	case card.TypeNone:
		// Commentary card: the comment text is the value. Blank keywords
		// are normalized to COMMENT.
		name := key
		if name == "" {
			name = card.KeyComment
		}
		return NewStringProperty(name, comment), nil
	default:
		return nil, fmt.Errorf("%w: value type %s", ErrUnsupported, val.Code)
	}
}

// Encode writes every property of the list, in list order, through the typed
// write primitives of dst. Properties rejected by the filter are never
// written. COMMENT and HISTORY string properties go through the commentary
// primitives and are exempt from the uniqueness check; for everything else
// the uniqueness table turns repeated keywords into update hints. The first
// write failure aborts the encode.
func Encode(list *PropertyList, dst CardWriter, filter FilterFunc) error {
	table := newUniqueTable()
	size := list.Size()
	for i := 0; i < size; i++ {
		p := list.Get(i)
		if filter != nil && !filter(p.Name) {
			continue
		}
		if p.Type == TypeString &&
			(p.Name == card.KeyComment || p.Name == card.KeyHistory) {
			text, _ := p.String()
			var err error
			if p.Name == card.KeyComment {
				err = dst.WriteComment(text)
			} else {
				err = dst.WriteHistory(text)
			}
			if err != nil {
				return writeError(p, err)
			}
			continue
		}
		update := table.check(p.Name, size-i) == uniqueStatusDuplicate
		if err := writeProperty(dst, p, update); err != nil {
			return writeError(p, err)
		}
	}
	return nil
}

func writeProperty(dst CardWriter, p *Property, update bool) error {
	switch p.Type {
	case TypeChar:
		v, err := p.Char()
		if err != nil {
			return err
		}
		return dst.WriteString(p.Name, string(v), p.Comment, update)
	case TypeBool:
		v, err := p.Bool()
		if err != nil {
			return err
		}
		return dst.WriteLogical(p.Name, v, p.Comment, update)
	case TypeInt, TypeLong, TypeLongLong:
		v, err := p.Int()
		if err != nil {
			return err
		}
		return dst.WriteInt(p.Name, v, p.Comment, update)
	case TypeFloat:
		v, err := p.Float()
		if err != nil {
			return err
		}
		return dst.WriteFloat(p.Name, v, p.Comment, update)
	case TypeDouble:
		v, err := p.Float()
		if err != nil {
			return err
		}
		return dst.WriteDouble(p.Name, v, p.Comment, update)
	case TypeString:
		v, err := p.String()
		if err != nil {
			return err
		}
		return dst.WriteString(p.Name, v, p.Comment, update)
	case TypeFloatComplex, TypeDoubleComplex:
		v, err := p.ComplexVal()
		if err != nil {
			return err
		}
		return dst.WriteComplex(p.Name, v, p.Comment, update)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, p.Type)
	}
}

func writeError(p *Property, err error) error {
	return fmt.Errorf(
		"writing property %q (type %s, comment %q): %w",
		p.Name,
		p.Type,
		p.Comment,
		err,
	)
}
