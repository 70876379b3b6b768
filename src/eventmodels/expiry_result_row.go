package eventmodels

const NoDataSentinel = "NO DATA"

type ExpiryResultRow struct {
	Symbol      StockSymbol `json:"symbol"`
	DisplayText string      `json:"expiry"`
}

func (r ExpiryResultRow) IsNoData() bool {
	return r.DisplayText == NoDataSentinel
}

type ExpiryResultRows []ExpiryResultRow

// ForSymbol returns the rows of one symbol in output order.
func (rows ExpiryResultRows) ForSymbol(symbol StockSymbol) ExpiryResultRows {
	var out ExpiryResultRows
	for _, r := range rows {
		if r.Symbol == symbol {
			out = append(out, r)
		}
	}

	return out
}

func (rows ExpiryResultRows) ToRows() [][]string {
	values := make([][]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, []string{string(r.Symbol), r.DisplayText})
	}

	return values
}
