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
	"strings"

	"github.com/blinklabs-io/gofits/card"
)

type uniqueStatus uint8

const (
	uniqueStatusUnique uniqueStatus = iota
	uniqueStatusDuplicate
	uniqueStatusExempt
)

// uniqueTable is the write-path uniqueness accelerator. Keys are bucketed by
// length so each incoming key is only compared against previously written
// keys of the same length. Headers with keys spread across many lengths keep
// total comparison work close to linear; the worst case of all same-length
// keys degrades toward quadratic. A table is built fresh for each header
// write and discarded afterwards.
type uniqueTable struct {
	buckets [card.MaxValueLength + 1][]string
}

func newUniqueTable() *uniqueTable {
	return &uniqueTable{}
}

// check classifies a key as unique, duplicate, or exempt and records unique
// keys for later comparisons. remaining is the number of properties left to
// write, used to size a bucket once instead of growing it repeatedly.
// Zero-length keys and the COMMENT/HISTORY keywords are exempt: FITS permits
// unlimited repeats of commentary keywords.
func (t *uniqueTable) check(key string, remaining int) uniqueStatus {
	key = strings.TrimRight(key, " ")
	if key == "" {
		return uniqueStatusExempt
	}
	length := min(len(key), card.MaxValueLength)
	if length == 7 && (key == card.KeyComment || key == card.KeyHistory) {
		return uniqueStatusExempt
	}
	for _, seen := range t.buckets[length] {
		if length > card.KeyLength {
			// Compare the last 8 bytes first: for long keys they are far
			// more discriminating than the shared prefix
			if seen[len(seen)-8:] != key[len(key)-8:] {
				continue
			}
			if seen[:len(seen)-8] == key[:len(key)-8] {
				return uniqueStatusDuplicate
			}
			continue
		}
		if seen == key {
			return uniqueStatusDuplicate
		}
	}
	if t.buckets[length] == nil {
		t.buckets[length] = make([]string, 0, max(remaining, 1))
	}
	t.buckets[length] = append(t.buckets[length], key)
	return uniqueStatusUnique
}
