package stockapi

import "stockquotes/internal/yahoo"

// Suggestion is one /api/search result.
type Suggestion struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	ExchDisp string `json:"exchDisp"`
	TypeDisp string `json:"typeDisp"`
}

func NewSuggestions(in []yahoo.Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(in))
	for _, s := range in {
		out = append(out, Suggestion{
			Symbol:   s.Symbol,
			Name:     s.Name,
			ExchDisp: s.ExchDisp,
			TypeDisp: s.TypeDisp,
		})
	}
	return out
}

// StockData is the reshaped quote returned by /api/stock. Fields the provider
// omitted encode as null.
type StockData struct {
	Symbol                     string   `json:"symbol"`
	ShortName                  *string  `json:"shortName"`
	LongName                   *string  `json:"longName"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketOpen          *float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh       *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow        *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume        *int64   `json:"regularMarketVolume"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	RegularMarketChange        *float64 `json:"regularMarketChange"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	RegularMarketTime          *int64   `json:"regularMarketTime"`
	Currency                   *string  `json:"currency"`
	ExchangeName               *string  `json:"exchangeName"`
	MarketState                *string  `json:"marketState"`
}

// NewStockData copies q, taking ExchangeName from the full exchange name.
func NewStockData(q yahoo.Quote) StockData {
	return StockData{
		Symbol:                     q.Symbol,
		ShortName:                  q.ShortName,
		LongName:                   q.LongName,
		RegularMarketPrice:         q.RegularMarketPrice,
		RegularMarketOpen:          q.RegularMarketOpen,
		RegularMarketDayHigh:       q.RegularMarketDayHigh,
		RegularMarketDayLow:        q.RegularMarketDayLow,
		RegularMarketVolume:        q.RegularMarketVolume,
		RegularMarketPreviousClose: q.RegularMarketPreviousClose,
		RegularMarketChange:        q.RegularMarketChange,
		RegularMarketChangePercent: q.RegularMarketChangePercent,
		RegularMarketTime:          q.RegularMarketTime,
		Currency:                   q.Currency,
		ExchangeName:               q.FullExchangeName,
		MarketState:                q.MarketState,
	}
}
