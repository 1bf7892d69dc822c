package quotelookup

import (
	"context"
	"fmt"
	"net/http"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
)

// FinanceGo looks quotes up through github.com/piquette/finance-go.
//
// finance-go keeps its HTTP client in package state and takes no context, so
// ctx is only checked before the call.
type FinanceGo struct {
	get func(symbol string) (*finance.Quote, error)
}

// NewFinanceGo routes finance-go through hc when it is non-nil.
func NewFinanceGo(hc *http.Client) *FinanceGo {
	if hc != nil {
		finance.SetHTTPClient(hc)
	}
	return &FinanceGo{get: quote.Get}
}

func (f *FinanceGo) Quote(ctx context.Context, symbol string) (*Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q, err := f.get(symbol)
	if err != nil {
		return nil, fmt.Errorf("finance-go quote %s: %w", symbol, err)
	}
	if q == nil {
		return nil, nil
	}
	return fromFinance(q), nil
}

func fromFinance(q *finance.Quote) *Quote {
	out := &Quote{
		Symbol:    q.Symbol,
		ShortName: q.ShortName,
		Currency:  q.CurrencyID,
		Exchange:  q.ExchangeID,
		Time:      int64(q.RegularMarketTime),
	}
	// finance-go decodes into plain floats, so an absent price arrives as 0.
	if q.RegularMarketPrice != 0 {
		p := q.RegularMarketPrice
		out.Price = &p
	}
	return out
}
