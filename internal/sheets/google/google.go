package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"spendtrack/internal/core"
	ports "spendtrack/internal/sheets"

	retry "github.com/avast/retry-go"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client appends monthly report rows to a Google spreadsheet. It is a
// write-only backup target; nothing in the application reads it back.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	reportSheet   string
}

var _ ports.ReportWriter = (*Client)(nil)

// New creates a Sheets client for the given spreadsheet and sheet name.
// Credentials come from GOOGLE_SERVICE_ACCOUNT_JSON,
// GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS.
func New(ctx context.Context, spreadsheetID, reportSheet string) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if strings.TrimSpace(reportSheet) == "" {
		reportSheet = "Reports"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		reportSheet:   reportSheet,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// AppendReport writes one row per category plus a totals row:
// [period, label, amount, budget state, appended-at].
func (c *Client) AppendReport(ctx context.Context, report core.Report) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	state := ""
	if report.Budget != nil {
		state = string(report.Budget.State)
	}
	appendedAt := time.Now().UTC().Format(time.RFC3339)

	rows := make([][]any, 0, len(report.Summary.ByCategory)+1)
	rows = append(rows, []any{report.Period.String(), "TOTAL", report.Summary.Total.Units(), state, appendedAt})
	for _, ca := range report.CategoriesByAmount() {
		rows = append(rows, []any{report.Period.String(), ca.Name, ca.Amount.Units(), "", appendedAt})
	}

	rng := fmt.Sprintf("%s!A:E", c.reportSheet)
	vr := &gsheet.ValueRange{Values: rows}
	err := retry.Do(
		func() error {
			_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
				ValueInputOption("USER_ENTERED").
				InsertDataOption("INSERT_ROWS").
				Context(ctx).Do()
			return err
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("append report rows to %s: %w", c.reportSheet, err)
	}
	return nil
}
