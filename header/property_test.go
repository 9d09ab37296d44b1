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

package header_test

import (
	"testing"

	"github.com/blinklabs-io/gofits/header"
	"github.com/stretchr/testify/assert"
)

func TestPropertyConstructors(t *testing.T) {
	p := header.NewIntProperty("BITPIX", 16).WithComment("bits per pixel")
	assert.Equal(t, "BITPIX", p.Name)
	assert.Equal(t, header.TypeInt, p.Type)
	assert.Equal(t, "bits per pixel", p.Comment)
	v, err := p.Int()
	assert.NoError(t, err)
	assert.Equal(t, int64(16), v)

	b := header.NewBoolProperty("SIMPLE", true)
	bv, err := b.Bool()
	assert.NoError(t, err)
	assert.True(t, bv)

	s := header.NewStringProperty("OBJECT", "NGC 1365")
	sv, err := s.String()
	assert.NoError(t, err)
	assert.Equal(t, "NGC 1365", sv)

	z := header.NewDoubleComplexProperty("CPLX", complex(1, 2))
	zv, err := z.ComplexVal()
	assert.NoError(t, err)
	assert.Equal(t, complex(1.0, 2.0), zv)
}

func TestPropertySetRejectsTypeMismatch(t *testing.T) {
	p := header.NewIntProperty("BITPIX", 16)
	assert.ErrorIs(t, p.SetString("oops"), header.ErrTypeMismatch)
	assert.ErrorIs(t, p.SetBool(true), header.ErrTypeMismatch)
	assert.ErrorIs(t, p.SetFloat(1.5), header.ErrTypeMismatch)
	// Matching type is accepted
	assert.NoError(t, p.SetInt(32))
	v, err := p.Int()
	assert.NoError(t, err)
	assert.Equal(t, int64(32), v)
	// Type is unchanged by a rejected set
	assert.Equal(t, header.TypeInt, p.Type)
}

func TestPropertyAccessorMismatch(t *testing.T) {
	p := header.NewStringProperty("OBJECT", "NGC 1365")
	_, err := p.Int()
	assert.ErrorIs(t, err, header.ErrTypeMismatch)
	_, err = p.Bool()
	assert.ErrorIs(t, err, header.ErrTypeMismatch)
}

func TestPropertyIntFamilySharesAccessor(t *testing.T) {
	for _, p := range []*header.Property{
		header.NewIntProperty("A", 1),
		header.NewLongProperty("B", 2),
		header.NewLongLongProperty("C", 3),
	} {
		_, err := p.Int()
		assert.NoError(t, err, p.Name)
		assert.NoError(t, p.SetInt(42), p.Name)
	}
}

func TestPropertyDuplicate(t *testing.T) {
	p := header.NewDoubleProperty("EXPTIME", 12.5).WithComment("exposure")
	dup, err := p.Duplicate()
	assert.NoError(t, err)
	assert.Equal(t, p, dup)
	// Mutating the copy leaves the original untouched
	assert.NoError(t, dup.SetFloat(99.0))
	v, err := p.Float()
	assert.NoError(t, err)
	assert.Equal(t, 12.5, v)
}
