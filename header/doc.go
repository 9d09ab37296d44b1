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

// Package header provides the ordered property list that models a FITS
// header and the codec that converts between property lists and raw header
// cards. Reading drives the card tokenizer over every card of a header;
// writing dispatches each property to the matching typed primitive of the
// I/O layer, using a length-bucketed uniqueness table to avoid rescanning
// the written header for every keyword.
package header
