package feedparsers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

const fieldDelimiter = ","

// InstrumentCsvRowDTO is a text feed row after projection onto the required columns.
type InstrumentCsvRowDTO struct {
	InstrumentType   string `csv:"instrument_type"`
	UnderlyingSymbol string `csv:"underlying_symbol"`
	ExpiryDate       string `csv:"expiry_date"`
}

func (dto InstrumentCsvRowDTO) ToModel() eventmodels.RawInstrumentRecord {
	return eventmodels.NewRawInstrumentRecord(dto.InstrumentType, dto.UnderlyingSymbol, eventmodels.NewTextExpiry(dto.ExpiryDate))
}

var projectedHeader = []string{"instrument_type", "underlying_symbol", "expiry_date"}

// projectedLineReader feeds gocsv one header and then every data line cut down
// to the resolved column indices. Lines are split on the delimiter with no
// quoting, so a delimiter inside a field shifts that row.
type projectedLineReader struct {
	lines   []string
	indices [3]int
	pos     int
	started bool
}

func (r *projectedLineReader) Read() ([]string, error) {
	if !r.started {
		r.started = true
		return projectedHeader, nil
	}

	if r.pos >= len(r.lines) {
		return nil, io.EOF
	}

	fields := splitFields(r.lines[r.pos])
	r.pos++

	row := make([]string, len(r.indices))
	for i, idx := range r.indices {
		if idx < len(fields) {
			row[i] = fields[idx]
		}
	}

	return row, nil
}

func (r *projectedLineReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}

		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}
}

func splitFields(line string) []string {
	fields := strings.Split(line, fieldDelimiter)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	return fields
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

// ParseDelimitedText reads a comma separated instrument list. The first
// non-blank line is the header; if any required column is absent the whole
// payload is rejected.
func ParseDelimitedText(text string, columns DelimitedColumns) eventmodels.ParseResult {
	columns = columns.WithDefaults()

	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return eventmodels.NewUnusableParseResult(eventmodels.NewFeedError(eventmodels.StructuralFeedError, eventmodels.CsvFeed, "payload has no header line", nil))
	}

	header := splitFields(strings.TrimPrefix(lines[0], "\ufeff"))
	position := make(map[string]int, len(header))
	for i, name := range header {
		if _, found := position[name]; !found {
			position[name] = i
		}
	}

	var missing []string
	var indices [3]int
	for i, name := range []string{columns.Kind, columns.Symbol, columns.Expiry} {
		idx, found := position[name]
		if !found {
			missing = append(missing, name)
			continue
		}

		indices[i] = idx
	}

	if len(missing) > 0 {
		return eventmodels.NewUnusableParseResult(eventmodels.NewFeedError(eventmodels.StructuralFeedError, eventmodels.CsvFeed, fmt.Sprintf("missing required columns %v in header %v", missing, header), nil))
	}

	reader := &projectedLineReader{
		lines:   lines[1:],
		indices: indices,
	}

	var dtos []InstrumentCsvRowDTO
	if err := gocsv.UnmarshalCSV(reader, &dtos); err != nil {
		return eventmodels.NewUnusableParseResult(eventmodels.NewFeedError(eventmodels.DecodeFeedError, eventmodels.CsvFeed, "failed to decode rows", err))
	}

	records := make([]eventmodels.RawInstrumentRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, dto.ToModel())
	}

	return eventmodels.ParseResult{Records: records}
}
