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
	"errors"
)

const (
	// Length is the fixed size of a FITS header card in bytes
	Length = 80
	// KeyLength is the maximum keyword length for standard (non-HIERARCH) cards
	KeyLength = 8
	// MaxValueLength is the maximum length of a value field, and the upper
	// bound on keyword lengths tracked by the write-path uniqueness check
	MaxValueLength = 71
)

// Reserved keywords with special card semantics
const (
	KeyComment  = "COMMENT"
	KeyHistory  = "HISTORY"
	KeyContinue = "CONTINUE"
	KeyEnd      = "END"
	KeyNaxis    = "NAXIS"
)

// hierarchPrefix marks cards using the long-keyword convention
const hierarchPrefix = "HIERARCH "

var (
	ErrMalformedKey       = errors.New("malformed keyword")
	ErrUnterminatedString = errors.New("unterminated string value")
	ErrUnparsableValue    = errors.New("unparsable value")
	ErrValueTooLong       = errors.New("value does not fit in a single card")
	ErrNonFinite          = errors.New("non-finite value")
)
