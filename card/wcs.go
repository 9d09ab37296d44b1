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
	"strings"
)

// WCS keywords that are floating point regardless of axis count
var wcsFixedKeys = map[string]struct{}{
	"EQUINOX":  {},
	"EPOCH":    {},
	"MJD-OBS":  {},
	"LONGPOLE": {},
	"LATPOLE":  {},
}

// WCS keyword families indexed by a single axis number
var wcsAxisPrefixes = []string{"CRPIX", "CRVAL", "CDELT", "CRDER", "CSYER"}

// WCS keyword families indexed by an axis pair, e.g. PC1_1
var wcsMatrixPrefixes = []string{"PC", "PV", "CD"}

// MustBeFloat reports whether the keyword belongs to the set of WCS keywords
// that must always decode as floating point, even when their textual form is
// a valid integer. Downstream consumers expect consistent typing for
// coordinate-system keywords. Axis numbers are only accepted up to naxis.
func MustBeFloat(key string, naxis int) bool {
	if _, ok := wcsFixedKeys[key]; ok {
		return true
	}
	if naxis <= 0 {
		return false
	}
	// The single-axis families are checked before the matrix families so
	// that CDELTn never matches the CD prefix
	for _, prefix := range wcsAxisPrefixes {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		if n, valid := axisNumber(rest); valid && n <= naxis {
			return true
		}
	}
	for _, prefix := range wcsMatrixPrefixes {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		first, second, found := strings.Cut(rest, "_")
		if !found {
			continue
		}
		i, iOk := axisNumber(first)
		j, jOk := axisNumber(second)
		if iOk && jOk && i <= naxis && j <= naxis {
			return true
		}
	}
	return false
}

// axisNumber parses an unsigned axis index. FITS axis numbers start at 1 and
// a header can have at most 999 axes.
func axisNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 999 {
			return 0, false
		}
	}
	if n < 1 {
		return 0, false
	}
	return n, true
}
