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
	"slices"
)

// PropertyList is an ordered sequence of properties. Insertion order is
// preserved and duplicate names are permitted: name lookups return the first
// match. The list owns its properties; every copy operation duplicates them.
type PropertyList struct {
	props []*Property
}

func NewPropertyList() *PropertyList {
	return &PropertyList{}
}

func (l *PropertyList) Size() int {
	return len(l.props)
}

func (l *PropertyList) IsEmpty() bool {
	return len(l.props) == 0
}

// Get returns the property at the given position, or nil when the index is
// outside [0, size). Out-of-range access is not an error, mirroring the soft
// lookup semantics of name lookups.
func (l *PropertyList) Get(index int) *Property {
	if index < 0 || index >= len(l.props) {
		return nil
	}
	return l.props[index]
}

// Lookup returns the first property with the given name, or nil if the list
// has none
func (l *PropertyList) Lookup(name string) *Property {
	for _, p := range l.props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (l *PropertyList) Contains(name string) bool {
	return l.Lookup(name) != nil
}

// GetBool returns the value of the first property with the given name, which
// must be a bool property
func (l *PropertyList) GetBool(name string) (bool, error) {
	p := l.Lookup(name)
	if p == nil {
		return false, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.Bool()
}

// GetInt returns the value of the first property with the given name, which
// must be an integer-family property
func (l *PropertyList) GetInt(name string) (int64, error) {
	p := l.Lookup(name)
	if p == nil {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.Int()
}

// GetFloat returns the value of the first property with the given name, which
// must be a floating-point-family property
func (l *PropertyList) GetFloat(name string) (float64, error) {
	p := l.Lookup(name)
	if p == nil {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.Float()
}

// GetString returns the value of the first property with the given name,
// which must be a string property
func (l *PropertyList) GetString(name string) (string, error) {
	p := l.Lookup(name)
	if p == nil {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.String()
}

// Append adds a property at the end of the list. Duplicate names are never
// deduplicated.
func (l *PropertyList) Append(p *Property) {
	l.props = append(l.props, p)
}

// Prepend adds a property at the start of the list
func (l *PropertyList) Prepend(p *Property) {
	l.props = slices.Insert(l.props, 0, p)
}

// Insert adds a property at the given position. Positions outside [0, size]
// are ignored and reported by the return value.
func (l *PropertyList) Insert(index int, p *Property) bool {
	if index < 0 || index > len(l.props) {
		return false
	}
	l.props = slices.Insert(l.props, index, p)
	return true
}

// InsertAfter adds a property directly after the first property with the
// given name. Returns ErrNotFound when no property has that name.
func (l *PropertyList) InsertAfter(name string, p *Property) error {
	for i, existing := range l.props {
		if existing.Name == name {
			l.props = slices.Insert(l.props, i+1, p)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Erase removes the first property with the given name and reports whether
// one was removed
func (l *PropertyList) Erase(name string) bool {
	for i, p := range l.props {
		if p.Name == name {
			l.props = slices.Delete(l.props, i, i+1)
			return true
		}
	}
	return false
}

// EraseAll removes every property matching the predicate and returns the
// number removed
func (l *PropertyList) EraseAll(match func(*Property) bool) int {
	before := len(l.props)
	l.props = slices.DeleteFunc(l.props, match)
	return before - len(l.props)
}

// Empty removes every property from the list
func (l *PropertyList) Empty() {
	l.props = nil
}

// Filter returns a new list holding deep copies of the properties accepted by
// the predicate, in list order
func (l *PropertyList) Filter(accept func(*Property) bool) (*PropertyList, error) {
	out := NewPropertyList()
	for _, p := range l.props {
		if !accept(p) {
			continue
		}
		dup, err := p.Duplicate()
		if err != nil {
			return nil, err
		}
		out.Append(dup)
	}
	return out, nil
}

// Copy appends deep copies of every property in other to the list
func (l *PropertyList) Copy(other *PropertyList) error {
	for _, p := range other.props {
		dup, err := p.Duplicate()
		if err != nil {
			return err
		}
		l.Append(dup)
	}
	return nil
}

// Duplicate returns a deep copy of the whole list
func (l *PropertyList) Duplicate() (*PropertyList, error) {
	dup := NewPropertyList()
	if err := dup.Copy(l); err != nil {
		return nil, err
	}
	return dup, nil
}

// Sort orders the list by the given comparison function. The sort is stable
// so properties that compare equal keep their original relative order.
func (l *PropertyList) Sort(cmp func(a *Property, b *Property) int) {
	slices.SortStableFunc(l.props, cmp)
}
