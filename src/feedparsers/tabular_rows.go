package feedparsers

import (
	"strings"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

// TabularRow is one spreadsheet row addressed by header name.
type TabularRow map[string]string

// ParseTabularRows reads symbol/expiry rows from a spreadsheet. The sheet has
// no option side column, so every accepted row is emitted once per option
// type. Rows missing either value are skipped.
func ParseTabularRows(rows []TabularRow, columns TabularColumns) eventmodels.ParseResult {
	columns = columns.WithDefaults()

	var result eventmodels.ParseResult
	for _, row := range rows {
		symbol := strings.TrimSpace(row[columns.Symbol])
		expiry := strings.TrimSpace(row[columns.Expiry])
		if symbol == "" || expiry == "" {
			result.Skipped++
			continue
		}

		for _, kind := range eventmodels.OptionTypes {
			result.Records = append(result.Records, eventmodels.NewRawInstrumentRecord(string(kind), symbol, eventmodels.NewTextExpiry(expiry)))
		}
	}

	return result
}

// NewTabularRows pairs a header row with value rows. Short rows read the
// missing cells as empty.
func NewTabularRows(header []string, values [][]string) []TabularRow {
	rows := make([]TabularRow, 0, len(values))
	for _, v := range values {
		row := make(TabularRow, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			if i < len(v) {
				row[name] = v[i]
			} else {
				row[name] = ""
			}
		}

		rows = append(rows, row)
	}

	return rows
}
