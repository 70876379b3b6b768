package eventmodels

import (
	"strings"
)

// StockSymbol is an underlying symbol as written upstream. Matching is case-sensitive.
type StockSymbol string

func (s StockSymbol) String() string {
	return string(s)
}

func NewStockSymbol(s string) StockSymbol {
	return StockSymbol(strings.TrimSpace(s))
}

// Whitelist is the ordered set of symbols reported on. Declared order is output order.
type Whitelist []StockSymbol

func NewWhitelist(symbols ...string) Whitelist {
	whitelist := make(Whitelist, 0, len(symbols))
	seen := make(map[StockSymbol]struct{}, len(symbols))
	for _, s := range symbols {
		symbol := NewStockSymbol(s)
		if symbol == "" {
			continue
		}

		if _, found := seen[symbol]; found {
			continue
		}

		seen[symbol] = struct{}{}
		whitelist = append(whitelist, symbol)
	}

	return whitelist
}

func (w Whitelist) Contains(symbol StockSymbol) bool {
	for _, s := range w {
		if s == symbol {
			return true
		}
	}

	return false
}

func (w Whitelist) Strings() []string {
	out := make([]string, len(w))
	for i, s := range w {
		out[i] = string(s)
	}

	return out
}

var DefaultWhitelist = Whitelist{"NIFTY", "BANKNIFTY", "FINNIFTY", "MIDCPNIFTY", "SENSEX", "BANKEX"}
