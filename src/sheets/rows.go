package sheets

import (
	"fmt"

	"github.com/jiaming2012/expiry-tracker/src/feedparsers"
)

type Row []interface{}
type Rows [][]interface{}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}

	if s, ok := cell.(string); ok {
		return s
	}

	return fmt.Sprint(cell)
}

// ToTabularRows uses the first row as the header for the rest.
func (r Rows) ToTabularRows() []feedparsers.TabularRow {
	if len(r) == 0 {
		return nil
	}

	header := make([]string, len(r[0]))
	for i, cell := range r[0] {
		header[i] = cellString(cell)
	}

	values := make([][]string, 0, len(r)-1)
	for _, row := range r[1:] {
		v := make([]string, len(row))
		for i, cell := range row {
			v[i] = cellString(cell)
		}

		values = append(values, v)
	}

	return feedparsers.NewTabularRows(header, values)
}
