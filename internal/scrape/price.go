package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParsePrice reads a displayed price such as "1,234.56" or "42.5 USD".
// Thousands separators are dropped and anything after the leading number is ignored.
func ParsePrice(text string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	num := numericPrefix.FindString(s)
	if num == "" {
		return 0, fmt.Errorf("no number in %q", text)
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", num, err)
	}
	return d.InexactFloat64(), nil
}
