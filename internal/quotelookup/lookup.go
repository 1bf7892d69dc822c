// Package quotelookup resolves one symbol to a current quote through an
// interchangeable backend.
package quotelookup

import (
	"context"
	"math"
)

// Quote is the subset of a provider quote the quote service returns.
// Price is nil when the provider has no usable number for it.
type Quote struct {
	Symbol    string
	ShortName string
	LongName  string
	Price     *float64
	Currency  string
	Exchange  string
	// Time is the regular market time in Unix seconds, 0 if unknown.
	Time int64
}

// HasPrice reports whether q carries a finite price.
func (q *Quote) HasPrice() bool {
	return q != nil && q.Price != nil && !math.IsNaN(*q.Price) && !math.IsInf(*q.Price, 0)
}

// Lookup fetches the quote for symbol. A nil quote with a nil error means the
// provider returned nothing for the symbol.
//
//go:generate mockgen -package=quotesvc_test -destination=../quotesvc/mock_lookup_test.go -source=lookup.go Lookup
type Lookup interface {
	Quote(ctx context.Context, symbol string) (*Quote, error)
}
