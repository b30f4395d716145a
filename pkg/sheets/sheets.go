// Package sheets supplies raw rows to the table engine.  It is deliberately
// thin: a Google Sheets range fetch and a local CSV reader, both returning
// ordered string sequences ready for table.NewTableFromRows.  Ragged rows
// are passed through untouched; normalization is the table's job.
package sheets

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Service wraps a Google Sheets client for read-only range fetches.
type Service struct {
	srv *sheetsapi.Service
}

// NewService constructs a sheets service using the given client options
// (e.g. option.WithAPIKey or option.WithCredentialsFile).
func NewService(ctx context.Context, opts ...option.ClientOption) (*Service, error) {
	srv, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	//
	return &Service{srv}, nil
}

// FetchRange reads the given A1-notation range of a spreadsheet and returns
// its cells as raw rows.  Non-string cell values are rendered with their
// default formatting.
func (p *Service) FetchRange(ctx context.Context, spreadsheetID string, readRange string) ([][]string, error) {
	log.Debugf("fetching range %q of spreadsheet %s", readRange, spreadsheetID)
	//
	resp, err := p.srv.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching range %q: %w", readRange, err)
	}
	//
	rows := make([][]string, len(resp.Values))
	//
	for i, cells := range resp.Values {
		row := make([]string, len(cells))
		for j, cell := range cells {
			row[j] = fmt.Sprint(cell)
		}
		//
		rows[i] = row
	}
	//
	log.Debugf("fetched %d rows", len(rows))
	//
	return rows, nil
}
