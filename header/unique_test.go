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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueTableDuplicate(t *testing.T) {
	table := newUniqueTable()
	assert.Equal(t, uniqueStatusUnique, table.check("EXPTIME", 2))
	assert.Equal(t, uniqueStatusDuplicate, table.check("EXPTIME", 1))
}

func TestUniqueTableCommentaryExempt(t *testing.T) {
	table := newUniqueTable()
	assert.Equal(t, uniqueStatusExempt, table.check("COMMENT", 4))
	assert.Equal(t, uniqueStatusExempt, table.check("COMMENT", 3))
	assert.Equal(t, uniqueStatusExempt, table.check("HISTORY", 2))
	assert.Equal(t, uniqueStatusExempt, table.check("HISTORY", 1))
	// Other 7-character keys are checked normally
	assert.Equal(t, uniqueStatusUnique, table.check("EXPTIME", 2))
	assert.Equal(t, uniqueStatusDuplicate, table.check("EXPTIME", 1))
}

func TestUniqueTableEmptyAndPaddedKeys(t *testing.T) {
	table := newUniqueTable()
	assert.Equal(t, uniqueStatusExempt, table.check("", 2))
	assert.Equal(t, uniqueStatusExempt, table.check("   ", 2))
	// Trailing spaces are trimmed before comparison
	assert.Equal(t, uniqueStatusUnique, table.check("NAXIS  ", 2))
	assert.Equal(t, uniqueStatusDuplicate, table.check("NAXIS", 1))
}

func TestUniqueTableLengthBuckets(t *testing.T) {
	table := newUniqueTable()
	// Same spelling prefix, different lengths: no collision
	assert.Equal(t, uniqueStatusUnique, table.check("NAXIS", 4))
	assert.Equal(t, uniqueStatusUnique, table.check("NAXIS1", 3))
	assert.Equal(t, uniqueStatusUnique, table.check("NAXIS2", 2))
	assert.Equal(t, uniqueStatusDuplicate, table.check("NAXIS2", 1))
}

func TestUniqueTableLongKeys(t *testing.T) {
	table := newUniqueTable()
	// HIERARCH-style keys longer than 8 bytes use the suffix-first compare
	assert.Equal(t, uniqueStatusUnique, table.check("ESO DET CHIP ID", 4))
	assert.Equal(t, uniqueStatusDuplicate, table.check("ESO DET CHIP ID", 3))
	// Same length, same suffix, different prefix
	assert.Equal(t, uniqueStatusUnique, table.check("ABC DET CHIP ID", 2))
	// Same length, different suffix
	assert.Equal(t, uniqueStatusUnique, table.check("ESO DET CHIP XY", 1))
}
