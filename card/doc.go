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

// Package card implements parsing and formatting of individual FITS header
// cards: the fixed 80-byte records that carry one keyword, an optional typed
// value, and an optional comment. It covers quoted strings with doubled-quote
// escaping, logical and complex values, integer and floating-point numbers
// (including the Fortran 'D' exponent convention), HIERARCH long keywords,
// commentary cards, and the WCS keyword typing override.
package card
