package quotelookup

import (
	"context"
	"fmt"

	"stockquotes/internal/yahoo"
)

// BatchQuoter is satisfied by *yahoo.Client.
type BatchQuoter interface {
	BatchQuote(ctx context.Context, symbols []string) ([]yahoo.Quote, error)
}

// Batch looks quotes up through the v7 batch quote endpoint, one symbol per call.
type Batch struct {
	client BatchQuoter
}

func NewBatch(client BatchQuoter) *Batch {
	return &Batch{client: client}
}

func (b *Batch) Quote(ctx context.Context, symbol string) (*Quote, error) {
	rows, err := b.client.BatchQuote(ctx, []string{symbol})
	if err != nil {
		return nil, fmt.Errorf("batch quote %s: %w", symbol, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	r := rows[0]
	return &Quote{
		Symbol:    r.Symbol,
		ShortName: deref(r.ShortName),
		LongName:  deref(r.LongName),
		Price:     r.RegularMarketPrice,
		Currency:  deref(r.Currency),
		Exchange:  deref(r.Exchange),
		Time:      derefInt(r.RegularMarketTime),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
