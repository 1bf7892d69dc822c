// Package symbols holds an in-memory directory of listed symbols loaded from
// CSV and answers ranked prefix/substring searches over it.
package symbols

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const (
	symbolColumn  = "Symbol"
	companyColumn = "Company Name"
)

var ErrEmpty = errors.New("no symbols loaded")

// Listing is one directory row. The JSON names match the CSV headers.
type Listing struct {
	Symbol      string `json:"Symbol"`
	CompanyName string `json:"Company Name"`
}

// Directory is read-only after Load/Parse and safe for concurrent use.
type Directory struct {
	listings []Listing
}

// Load reads the CSV at path. A file that yields no rows is an error.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbols csv: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// Parse reads CSV with "Symbol" and "Company Name" columns in any position.
// Rows missing either value are skipped.
func Parse(r io.Reader) (*Directory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	symIdx, nameIdx := -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch h {
		case symbolColumn:
			symIdx = i
		case companyColumn:
			nameIdx = i
		}
	}
	if symIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("header must contain %q and %q", symbolColumn, companyColumn)
	}

	var out []Listing
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if symIdx >= len(rec) || nameIdx >= len(rec) {
			continue
		}
		sym := strings.TrimSpace(rec[symIdx])
		name := strings.TrimSpace(rec[nameIdx])
		if sym == "" || name == "" {
			continue
		}
		out = append(out, Listing{Symbol: sym, CompanyName: name})
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return &Directory{listings: out}, nil
}

func (d *Directory) Len() int { return len(d.listings) }

// Search ranks listings whose symbol or company name equals, starts with or
// contains query, case-insensitively, in that order. Each symbol appears once
// and at most limit results are returned with every match wrapped in <b></b>.
func (d *Directory) Search(query string, limit int) []Listing {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}
	q := strings.ToUpper(query)

	var tiers [3][]Listing
	for _, l := range d.listings {
		sym, name := strings.ToUpper(l.Symbol), strings.ToUpper(l.CompanyName)
		switch {
		case sym == q || name == q:
			tiers[0] = append(tiers[0], l)
		case strings.HasPrefix(sym, q) || strings.HasPrefix(name, q):
			tiers[1] = append(tiers[1], l)
		case strings.Contains(sym, q) || strings.Contains(name, q):
			tiers[2] = append(tiers[2], l)
		}
	}

	re := highlighter(query)
	seen := make(map[string]struct{})
	out := make([]Listing, 0, limit)
	for _, tier := range tiers {
		for _, l := range tier {
			if _, ok := seen[l.Symbol]; ok {
				continue
			}
			seen[l.Symbol] = struct{}{}
			out = append(out, Listing{
				Symbol:      highlight(re, l.Symbol),
				CompanyName: highlight(re, l.CompanyName),
			})
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

// Highlight wraps every case-insensitive occurrence of query in text with <b></b>.
func Highlight(text, query string) string {
	if query == "" {
		return text
	}
	return highlight(highlighter(query), text)
}

func highlighter(query string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}

func highlight(re *regexp.Regexp, text string) string {
	return re.ReplaceAllString(text, "<b>$0</b>")
}
