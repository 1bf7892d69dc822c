// Package scrape pulls a price out of a parsed quote page.
//
// Lookups are Extractor strategies tried in order by a Chain.
package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Match is a successful extraction.
type Match struct {
	Strategy string
	Text     string
	Price    float64
}

// Extractor finds the price for ticker in doc.
type Extractor interface {
	Extract(doc *goquery.Document, ticker string) (Match, bool)
}

// StreamerField matches the live-updating <fin-streamer> element the quote
// page renders for a symbol, e.g.
//
//	<fin-streamer data-symbol="AAPL" data-field="regularMarketPrice">189.84</fin-streamer>
type StreamerField struct {
	Field string
}

func (s StreamerField) Extract(doc *goquery.Document, ticker string) (Match, bool) {
	sel := doc.Find(fmt.Sprintf("fin-streamer[data-field=%q]", s.Field)).
		FilterFunction(func(_ int, el *goquery.Selection) bool {
			sym, _ := el.Attr("data-symbol")
			return sym == ticker
		}).
		First()
	return match("fin-streamer:"+s.Field, sel)
}

// ClassContains matches the first Tag element whose class attribute contains
// Substr.
type ClassContains struct {
	Tag    string
	Substr string
}

func (c ClassContains) Extract(doc *goquery.Document, _ string) (Match, bool) {
	sel := doc.Find(fmt.Sprintf("%s[class*=%q]", c.Tag, c.Substr)).First()
	return match(c.Tag+"[class*="+c.Substr+"]", sel)
}

// Chain tries each extractor in order and returns the first match.
type Chain []Extractor

func (c Chain) Extract(doc *goquery.Document, ticker string) (Match, bool) {
	for _, e := range c {
		if m, ok := e.Extract(doc, ticker); ok {
			return m, true
		}
	}
	return Match{}, false
}

// Default is the quote page lookup: the symbol's regularMarketPrice streamer,
// then any span with "price" in its class.
func Default() Chain {
	return Chain{
		StreamerField{Field: "regularMarketPrice"},
		ClassContains{Tag: "span", Substr: "price"},
	}
}

func match(strategy string, sel *goquery.Selection) (Match, bool) {
	if sel.Length() == 0 {
		return Match{}, false
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return Match{}, false
	}
	price, err := ParsePrice(text)
	if err != nil {
		return Match{}, false
	}
	return Match{Strategy: strategy, Text: text, Price: price}, true
}
