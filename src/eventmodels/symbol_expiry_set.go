package eventmodels

import "sort"

// SymbolExpirySet groups distinct sort keys per symbol for a single run.
type SymbolExpirySet map[StockSymbol]map[SortKey]struct{}

func (s SymbolExpirySet) Add(expiry CanonicalExpiry) {
	keys, found := s[expiry.Symbol]
	if !found {
		keys = make(map[SortKey]struct{})
		s[expiry.Symbol] = keys
	}

	keys[expiry.SortKey] = struct{}{}
}

// SortedKeys returns the symbol's keys in ascending calendar order.
func (s SymbolExpirySet) SortedKeys(symbol StockSymbol) []SortKey {
	keys := make([]SortKey, 0, len(s[symbol]))
	for k := range s[symbol] {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	return keys
}
