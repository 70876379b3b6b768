package sheets

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/sheets/v4"

	"github.com/jiaming2012/expiry-tracker/src/feedparsers"
)

const DefaultSheetName = "Sheet1"

type RowsReader interface {
	ReadRows(ctx context.Context, sheetRange string) (Rows, error)
}

type ServiceRowsReader struct {
	srv           *sheets.Service
	spreadsheetId string
}

func NewServiceRowsReader(srv *sheets.Service, spreadsheetId string) *ServiceRowsReader {
	return &ServiceRowsReader{
		srv:           srv,
		spreadsheetId: spreadsheetId,
	}
}

func (r *ServiceRowsReader) ReadRows(ctx context.Context, sheetRange string) (Rows, error) {
	return fetchRows(ctx, r.srv, r.spreadsheetId, sheetRange)
}

func fetchRows(ctx context.Context, srv *sheets.Service, spreadsheetId string, sheetRange string) (Rows, error) {
	response, err := srv.Spreadsheets.Values.Get(spreadsheetId, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetchRows: unable to retrieve %s: %w", sheetRange, err)
	}

	if response.HTTPStatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetchRows: invalid http status code: %v", response.HTTPStatusCode)
	}

	return response.Values, nil
}

// FetchTabularRows reads every populated row of sheetName. The first row is
// the header.
func FetchTabularRows(ctx context.Context, reader RowsReader, sheetName string) ([]feedparsers.TabularRow, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	rows, err := reader.ReadRows(ctx, fmt.Sprintf("%s!A:Z", sheetName))
	if err != nil {
		return nil, err
	}

	return rows.ToTabularRows(), nil
}
