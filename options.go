package gofits

import (
	"github.com/blinklabs-io/gofits/header"
)

type FITSOptionFunc func(*FITS)

// WithFilter sets a keyword filter applied while reading headers. Cards
// whose keyword is rejected by the filter are skipped.
func WithFilter(filter header.FilterFunc) FITSOptionFunc {
	return func(f *FITS) {
		f.filter = filter
	}
}
