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

	_cbor "github.com/fxamacker/cbor/v2"
)

// propertyRecord is the CBOR wire form of a single property. Each payload
// type has its own field so values survive the round trip without any
// interface-typing ambiguity; only the field selected by Type is meaningful.
type propertyRecord struct {
	Name    string     `cbor:"name"`
	Type    Type       `cbor:"type"`
	Bool    bool       `cbor:"bool,omitempty"`
	Int     int64      `cbor:"int,omitempty"`
	Float   float64    `cbor:"float,omitempty"`
	Str     string     `cbor:"str,omitempty"`
	Complex [2]float64 `cbor:"complex,omitempty"`
	Comment string     `cbor:"comment,omitempty"`
}

// MarshalSnapshot serializes the list to a compact CBOR snapshot, preserving
// order, duplicate names, types, values and comments. Snapshots are intended
// for header caching and interchange, not for FITS output.
func MarshalSnapshot(list *PropertyList) ([]byte, error) {
	records := make([]propertyRecord, 0, list.Size())
	for i := 0; i < list.Size(); i++ {
		p := list.Get(i)
		rec := propertyRecord{
			Name:    p.Name,
			Type:    p.Type,
			Comment: p.Comment,
		}
		switch p.Type {
		case TypeChar:
			v, err := p.Char()
			if err != nil {
				return nil, err
			}
			rec.Int = int64(v)
		case TypeBool:
			v, err := p.Bool()
			if err != nil {
				return nil, err
			}
			rec.Bool = v
		case TypeInt, TypeLong, TypeLongLong:
			v, err := p.Int()
			if err != nil {
				return nil, err
			}
			rec.Int = v
		case TypeFloat, TypeDouble:
			v, err := p.Float()
			if err != nil {
				return nil, err
			}
			rec.Float = v
		case TypeString:
			v, err := p.String()
			if err != nil {
				return nil, err
			}
			rec.Str = v
		case TypeFloatComplex, TypeDoubleComplex:
			v, err := p.ComplexVal()
			if err != nil {
				return nil, err
			}
			rec.Complex = [2]float64{real(v), imag(v)}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, p.Type)
		}
		records = append(records, rec)
	}
	opts := _cbor.EncOptions{
		// Make sure that maps have ordered keys
		Sort: _cbor.SortCoreDeterministic,
	}
	em, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(records)
}

// UnmarshalSnapshot rebuilds a property list from a CBOR snapshot produced by
// MarshalSnapshot
func UnmarshalSnapshot(data []byte) (*PropertyList, error) {
	var records []propertyRecord
	if err := _cbor.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	list := NewPropertyList()
	for _, rec := range records {
		var p *Property
		switch rec.Type {
		case TypeChar:
			p = NewCharProperty(rec.Name, byte(rec.Int))
		case TypeBool:
			p = NewBoolProperty(rec.Name, rec.Bool)
		case TypeInt:
			p = NewIntProperty(rec.Name, rec.Int)
		case TypeLong:
			p = NewLongProperty(rec.Name, rec.Int)
		case TypeLongLong:
			p = NewLongLongProperty(rec.Name, rec.Int)
		case TypeFloat:
			p = NewFloatProperty(rec.Name, rec.Float)
		case TypeDouble:
			p = NewDoubleProperty(rec.Name, rec.Float)
		case TypeString:
			p = NewStringProperty(rec.Name, rec.Str)
		case TypeFloatComplex:
			p = NewFloatComplexProperty(
				rec.Name,
				complex(rec.Complex[0], rec.Complex[1]),
			)
		case TypeDoubleComplex:
			p = NewDoubleComplexProperty(
				rec.Name,
				complex(rec.Complex[0], rec.Complex[1]),
			)
		default:
			return nil, fmt.Errorf("%w: record type %d", ErrUnsupported, rec.Type)
		}
		list.Append(p.WithComment(rec.Comment))
	}
	return list, nil
}
