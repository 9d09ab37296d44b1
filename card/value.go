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

// TypeCode identifies the FITS value type parsed from a card
type TypeCode uint8

const (
	TypeNone TypeCode = iota
	TypeString
	TypeLogical
	TypeInt
	TypeFloat
	TypeComplex
	TypeUndefined
	TypeUnparsable
)

func (t TypeCode) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeString:
		return "string"
	case TypeLogical:
		return "logical"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeComplex:
		return "complex"
	case TypeUndefined:
		return "undefined"
	case TypeUnparsable:
		return "unparsable"
	default:
		return "unknown"
	}
}

// Value is the typed payload parsed from a single card. Only the field
// matching Code carries meaning. A Value is built once during parsing and
// never mutated afterwards.
type Value struct {
	Code    TypeCode
	Str     string
	Bool    bool
	Int     int64
	Float   float64
	Complex complex128
	// Length is the byte count for string values and 0/1 otherwise
	Length int
}
