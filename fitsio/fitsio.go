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

// Package fitsio implements the block-level FITS I/O layer: reading headers
// card by card from 2880-byte blocks, skipping data units to address an HDU
// by index, and writing typed keyword cards back out with END-card
// termination and block padding.
package fitsio

import (
	"github.com/blinklabs-io/gofits/card"
)

const (
	// BlockSize is the fixed FITS block size in bytes
	BlockSize = 2880
	// CardsPerBlock is the number of header cards per block
	CardsPerBlock = BlockSize / card.Length
)
