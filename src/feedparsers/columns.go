package feedparsers

// DelimitedColumns names the three required header columns of the text feed.
type DelimitedColumns struct {
	Kind   string
	Symbol string
	Expiry string
}

func DefaultDelimitedColumns() DelimitedColumns {
	return DelimitedColumns{
		Kind:   "instrument_type",
		Symbol: "underlying_symbol",
		Expiry: "expiry_date",
	}
}

// WithDefaults fills blank names from DefaultDelimitedColumns.
func (c DelimitedColumns) WithDefaults() DelimitedColumns {
	d := DefaultDelimitedColumns()
	if c.Kind == "" {
		c.Kind = d.Kind
	}
	if c.Symbol == "" {
		c.Symbol = d.Symbol
	}
	if c.Expiry == "" {
		c.Expiry = d.Expiry
	}

	return c
}

type JsonFields struct {
	Kind   string
	Symbol string
	Expiry string
}

func DefaultJsonFields() JsonFields {
	return JsonFields{
		Kind:   "instrument_type",
		Symbol: "underlying_symbol",
		Expiry: "expiry",
	}
}

func (f JsonFields) WithDefaults() JsonFields {
	d := DefaultJsonFields()
	if f.Kind == "" {
		f.Kind = d.Kind
	}
	if f.Symbol == "" {
		f.Symbol = d.Symbol
	}
	if f.Expiry == "" {
		f.Expiry = d.Expiry
	}

	return f
}

type TabularColumns struct {
	Symbol string
	Expiry string
}

func DefaultTabularColumns() TabularColumns {
	return TabularColumns{
		Symbol: "Symbol",
		Expiry: "Expiry Date",
	}
}

func (c TabularColumns) WithDefaults() TabularColumns {
	d := DefaultTabularColumns()
	if c.Symbol == "" {
		c.Symbol = d.Symbol
	}
	if c.Expiry == "" {
		c.Expiry = d.Expiry
	}

	return c
}
