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
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
)

var (
	ErrNotFound     = errors.New("property not found")
	ErrTypeMismatch = errors.New("property type mismatch")
	ErrUnsupported  = errors.New("unsupported property type")
)

// Type identifies the native type of a property value
type Type uint8

const (
	TypeInvalid Type = iota
	TypeChar
	TypeBool
	TypeInt
	TypeLong
	TypeLongLong
	TypeFloat
	TypeDouble
	TypeString
	TypeFloatComplex
	TypeDoubleComplex
)

func (t Type) String() string {
	switch t {
	case TypeChar:
		return "char"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeLongLong:
		return "long long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeFloatComplex:
		return "float complex"
	case TypeDoubleComplex:
		return "double complex"
	default:
		return "invalid"
	}
}

// Property is a single named, typed, optionally commented header entry. The
// integer types share an int64 payload, the floating types a float64 payload
// and the complex types a complex128 payload; Type records which external
// representation the value carries. The Set functions are the checked
// mutation path: they reject a value whose type differs from the property's.
type Property struct {
	Name    string
	Type    Type
	Value   any
	Comment string
}

func NewCharProperty(name string, value byte) *Property {
	return &Property{Name: name, Type: TypeChar, Value: value}
}

func NewBoolProperty(name string, value bool) *Property {
	return &Property{Name: name, Type: TypeBool, Value: value}
}

func NewIntProperty(name string, value int64) *Property {
	return &Property{Name: name, Type: TypeInt, Value: value}
}

func NewLongProperty(name string, value int64) *Property {
	return &Property{Name: name, Type: TypeLong, Value: value}
}

func NewLongLongProperty(name string, value int64) *Property {
	return &Property{Name: name, Type: TypeLongLong, Value: value}
}

func NewFloatProperty(name string, value float64) *Property {
	return &Property{Name: name, Type: TypeFloat, Value: value}
}

func NewDoubleProperty(name string, value float64) *Property {
	return &Property{Name: name, Type: TypeDouble, Value: value}
}

func NewStringProperty(name string, value string) *Property {
	return &Property{Name: name, Type: TypeString, Value: value}
}

func NewFloatComplexProperty(name string, value complex128) *Property {
	return &Property{Name: name, Type: TypeFloatComplex, Value: value}
}

func NewDoubleComplexProperty(name string, value complex128) *Property {
	return &Property{Name: name, Type: TypeDoubleComplex, Value: value}
}

// WithComment sets the comment and returns the property for chaining during
// construction
func (p *Property) WithComment(comment string) *Property {
	p.Comment = comment
	return p
}

func (p *Property) Bool() (bool, error) {
	if p.Type != TypeBool {
		return false, p.mismatch(TypeBool)
	}
	return p.Value.(bool), nil
}

func (p *Property) Char() (byte, error) {
	if p.Type != TypeChar {
		return 0, p.mismatch(TypeChar)
	}
	return p.Value.(byte), nil
}

// Int returns the integer payload shared by the int, long and long long
// types
func (p *Property) Int() (int64, error) {
	switch p.Type {
	case TypeInt, TypeLong, TypeLongLong:
		return p.Value.(int64), nil
	default:
		return 0, p.mismatch(TypeInt)
	}
}

// Float returns the floating-point payload shared by the float and double
// types
func (p *Property) Float() (float64, error) {
	switch p.Type {
	case TypeFloat, TypeDouble:
		return p.Value.(float64), nil
	default:
		return 0, p.mismatch(TypeDouble)
	}
}

func (p *Property) String() (string, error) {
	if p.Type != TypeString {
		return "", p.mismatch(TypeString)
	}
	return p.Value.(string), nil
}

// ComplexVal returns the complex payload shared by the float complex and
// double complex types
func (p *Property) ComplexVal() (complex128, error) {
	switch p.Type {
	case TypeFloatComplex, TypeDoubleComplex:
		return p.Value.(complex128), nil
	default:
		return 0, p.mismatch(TypeDoubleComplex)
	}
}

func (p *Property) SetBool(value bool) error {
	if p.Type != TypeBool {
		return p.mismatch(TypeBool)
	}
	p.Value = value
	return nil
}

func (p *Property) SetChar(value byte) error {
	if p.Type != TypeChar {
		return p.mismatch(TypeChar)
	}
	p.Value = value
	return nil
}

func (p *Property) SetInt(value int64) error {
	switch p.Type {
	case TypeInt, TypeLong, TypeLongLong:
		p.Value = value
		return nil
	default:
		return p.mismatch(TypeInt)
	}
}

func (p *Property) SetFloat(value float64) error {
	switch p.Type {
	case TypeFloat, TypeDouble:
		p.Value = value
		return nil
	default:
		return p.mismatch(TypeDouble)
	}
}

func (p *Property) SetString(value string) error {
	if p.Type != TypeString {
		return p.mismatch(TypeString)
	}
	p.Value = value
	return nil
}

func (p *Property) SetComplex(value complex128) error {
	switch p.Type {
	case TypeFloatComplex, TypeDoubleComplex:
		p.Value = value
		return nil
	default:
		return p.mismatch(TypeDoubleComplex)
	}
}

// Duplicate returns a deep copy of the property. Ownership of a property is
// exclusive to one list at a time, so copies are never aliased.
func (p *Property) Duplicate() (*Property, error) {
	dup := &Property{}
	if err := copier.CopyWithOption(
		dup,
		p,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, err
	}
	return dup, nil
}

func (p *Property) mismatch(want Type) error {
	return fmt.Errorf(
		"%w: property %q has type %s, not %s",
		ErrTypeMismatch,
		p.Name,
		p.Type,
		want,
	)
}
