package eventmodels

type CanonicalExpiry struct {
	Symbol      StockSymbol
	SortKey     SortKey
	DisplayText string
}

func NewCanonicalExpiry(symbol StockSymbol, date ExpiryDate) CanonicalExpiry {
	return CanonicalExpiry{
		Symbol:      symbol,
		SortKey:     date.SortKey(),
		DisplayText: date.Format(),
	}
}
