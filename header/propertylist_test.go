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
	"strings"
	"testing"

	"github.com/blinklabs-io/gofits/header"
	"github.com/stretchr/testify/assert"
)

func samplePropertyList() *header.PropertyList {
	l := header.NewPropertyList()
	l.Append(header.NewBoolProperty("SIMPLE", true))
	l.Append(header.NewIntProperty("BITPIX", 16))
	l.Append(header.NewIntProperty("NAXIS", 2))
	l.Append(header.NewDoubleProperty("EXPTIME", 12.5))
	return l
}

func TestPropertyListOrderAndAccess(t *testing.T) {
	l := samplePropertyList()
	assert.Equal(t, 4, l.Size())
	assert.False(t, l.IsEmpty())
	assert.Equal(t, "SIMPLE", l.Get(0).Name)
	assert.Equal(t, "EXPTIME", l.Get(3).Name)
	// Out-of-range access is soft
	assert.Nil(t, l.Get(4))
	assert.Nil(t, l.Get(-1))
}

func TestPropertyListLookupFirstMatch(t *testing.T) {
	l := header.NewPropertyList()
	l.Append(header.NewIntProperty("EXPTIME", 1))
	l.Append(header.NewIntProperty("EXPTIME", 2))
	assert.Equal(t, 2, l.Size())
	p := l.Lookup("EXPTIME")
	assert.NotNil(t, p)
	v, err := p.Int()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v)
	assert.Nil(t, l.Lookup("MISSING"))
	assert.False(t, l.Contains("MISSING"))
}

func TestPropertyListTypedGetters(t *testing.T) {
	l := samplePropertyList()
	b, err := l.GetBool("SIMPLE")
	assert.NoError(t, err)
	assert.True(t, b)
	i, err := l.GetInt("BITPIX")
	assert.NoError(t, err)
	assert.Equal(t, int64(16), i)
	f, err := l.GetFloat("EXPTIME")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, f)
	_, err = l.GetInt("MISSING")
	assert.ErrorIs(t, err, header.ErrNotFound)
	_, err = l.GetString("BITPIX")
	assert.ErrorIs(t, err, header.ErrTypeMismatch)
}

func TestPropertyListInsertion(t *testing.T) {
	l := samplePropertyList()
	l.Prepend(header.NewStringProperty("ORIGIN", "test"))
	assert.Equal(t, "ORIGIN", l.Get(0).Name)
	assert.True(t, l.Insert(2, header.NewIntProperty("EXTRA", 1)))
	assert.Equal(t, "EXTRA", l.Get(2).Name)
	// Out-of-range insertion is rejected softly
	assert.False(t, l.Insert(100, header.NewIntProperty("NOPE", 1)))
	assert.False(t, l.Insert(-1, header.NewIntProperty("NOPE", 1)))
	assert.False(t, l.Contains("NOPE"))
	// InsertAfter places directly after the first match
	assert.NoError(t, l.InsertAfter("NAXIS", header.NewIntProperty("NAXIS1", 100)))
	for i := 0; i < l.Size(); i++ {
		if l.Get(i).Name == "NAXIS" {
			assert.Equal(t, "NAXIS1", l.Get(i+1).Name)
		}
	}
	assert.ErrorIs(
		t,
		l.InsertAfter("MISSING", header.NewIntProperty("X", 1)),
		header.ErrNotFound,
	)
}

func TestPropertyListErase(t *testing.T) {
	l := header.NewPropertyList()
	l.Append(header.NewIntProperty("A", 1))
	l.Append(header.NewIntProperty("B", 2))
	l.Append(header.NewIntProperty("A", 3))
	// Erase removes only the first match
	assert.True(t, l.Erase("A"))
	assert.Equal(t, 2, l.Size())
	v, err := l.GetInt("A")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), v)
	assert.False(t, l.Erase("MISSING"))
	// EraseAll removes everything matching the predicate
	removed := l.EraseAll(func(p *header.Property) bool {
		return strings.HasPrefix(p.Name, "A")
	})
	assert.Equal(t, 1, removed)
	l.Empty()
	assert.True(t, l.IsEmpty())
}

func TestPropertyListFilter(t *testing.T) {
	l := samplePropertyList()
	matched, err := l.Filter(func(p *header.Property) bool {
		return strings.HasPrefix(p.Name, "NAXIS")
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, matched.Size())
	assert.Equal(t, "NAXIS", matched.Get(0).Name)
	// Filter results are copies, not aliases
	assert.NoError(t, matched.Get(0).SetInt(99))
	orig, err := l.GetInt("NAXIS")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), orig)
}

func TestPropertyListCopyAndDuplicate(t *testing.T) {
	l := samplePropertyList()
	dup, err := l.Duplicate()
	assert.NoError(t, err)
	assert.Equal(t, l.Size(), dup.Size())
	for i := 0; i < l.Size(); i++ {
		assert.Equal(t, l.Get(i), dup.Get(i))
	}
	// Deep copy: mutations do not propagate
	assert.NoError(t, dup.Get(1).SetInt(-32))
	v, err := l.GetInt("BITPIX")
	assert.NoError(t, err)
	assert.Equal(t, int64(16), v)

	other := header.NewPropertyList()
	assert.NoError(t, other.Copy(l))
	assert.NoError(t, other.Copy(l))
	assert.Equal(t, 2*l.Size(), other.Size())
}

func TestPropertyListSortStable(t *testing.T) {
	l := header.NewPropertyList()
	l.Append(header.NewIntProperty("B", 1))
	l.Append(header.NewIntProperty("A", 2))
	l.Append(header.NewIntProperty("B", 3))
	l.Append(header.NewIntProperty("A", 4))
	l.Sort(func(a, b *header.Property) int {
		return strings.Compare(a.Name, b.Name)
	})
	names := make([]string, 0, l.Size())
	values := make([]int64, 0, l.Size())
	for i := 0; i < l.Size(); i++ {
		names = append(names, l.Get(i).Name)
		v, err := l.Get(i).Int()
		assert.NoError(t, err)
		values = append(values, v)
	}
	assert.Equal(t, []string{"A", "A", "B", "B"}, names)
	// Stable: equal keys keep their original relative order
	assert.Equal(t, []int64{2, 4, 1, 3}, values)
}
