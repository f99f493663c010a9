// Package sheets publishes the run summary and ranked trade table to a
// Google Sheets spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"bc-mercantile/internal/engine"
)

const (
	overviewSheet = "Overview"
	tradesSheet   = "Profitable Trades"
)

// Summary holds the four Overview cells written each run.
type Summary struct {
	StartedAt      time.Time
	ElapsedMinutes int
	DistinctItems  int
	DistinctClaims int
}

// Publisher writes reports to one spreadsheet via the Sheets API.
type Publisher struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewPublisher builds a Sheets client from a service-account credentials
// file. Credential handling beyond loading the file is Google's problem.
func NewPublisher(ctx context.Context, spreadsheetID, credentialsFile string) (*Publisher, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Publisher{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Publish updates the Overview cells and rewrites the Profitable Trades
// sheet with the report in ranking order. Callers must not invoke it with
// an empty report.
func (p *Publisher) Publish(ctx context.Context, summary Summary, rep *engine.Report) error {
	batch := &sheetsapi.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             summaryCells(summary),
	}
	if _, err := p.svc.Spreadsheets.Values.BatchUpdate(p.spreadsheetID, batch).Context(ctx).Do(); err != nil {
		return fmt.Errorf("update overview: %w", err)
	}

	if _, err := p.svc.Spreadsheets.Values.Clear(p.spreadsheetID, tradesSheet, &sheetsapi.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear trades sheet: %w", err)
	}

	values := make([][]interface{}, 0, len(rep.Rows)+1)
	header := make([]interface{}, len(rep.Columns))
	for i, c := range rep.Columns {
		header[i] = c
	}
	values = append(values, header)
	values = append(values, rep.Rows...)

	update := &sheetsapi.ValueRange{Values: values}
	_, err := p.svc.Spreadsheets.Values.Update(p.spreadsheetID, tradesSheet+"!A1", update).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update trades sheet: %w", err)
	}
	return nil
}

// summaryCells maps the summary onto the fixed Overview cell layout.
func summaryCells(s Summary) []*sheetsapi.ValueRange {
	cell := func(ref string, v interface{}) *sheetsapi.ValueRange {
		return &sheetsapi.ValueRange{
			Range:  overviewSheet + "!" + ref,
			Values: [][]interface{}{{v}},
		}
	}
	return []*sheetsapi.ValueRange{
		cell("D12", s.StartedAt.UTC().Format("2006-01-02 15:04 MST")),
		cell("G12", fmt.Sprintf("%d [min]", s.ElapsedMinutes)),
		cell("D14", strconv.Itoa(s.DistinctItems)),
		cell("G14", strconv.Itoa(s.DistinctClaims)),
	}
}
