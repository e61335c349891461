// Package hilan talks to the Hilan portal's attendance API. Client
// implements attendance.Service.
package hilan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ronharel02/hilan-attendance/internal/attendance"
	"github.com/ronharel02/hilan-attendance/internal/model"
	"github.com/ronharel02/hilan-attendance/internal/payperiod"
)

// Report type codes used by the portal.
const (
	codeHome   = "101"
	codeOffice = "103"
	codeAbroad = "104"
)

func codeFor(wt model.WorkType) string {
	switch wt {
	case model.WorkHome:
		return codeHome
	case model.WorkOffice:
		return codeOffice
	case model.WorkAbroad:
		return codeAbroad
	}
	return ""
}

func typeFromCode(code string) model.WorkType {
	switch code {
	case codeHome:
		return model.WorkHome
	case codeOffice:
		return model.WorkOffice
	case codeAbroad:
		return model.WorkAbroad
	}
	return ""
}

// Client is an authenticated portal API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ attendance.Service = (*Client)(nil)

// NewClient creates a client for the given portal base URL using the
// provided (already authenticated) HTTP client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// attendanceDay is the portal's wire format for one calendar day.
type attendanceDay struct {
	Date       string `json:"date"`
	Entry      string `json:"entry,omitempty"`
	Exit       string `json:"exit,omitempty"`
	ReportType string `json:"report_type,omitempty"`
	Note       string `json:"note,omitempty"`
}

type attendanceResponse struct {
	Days []attendanceDay `json:"days"`
}

// FetchRecords returns the portal's snapshot for the pay period named by
// the period label. The portal groups its calendar by pay period, so one
// request covers the full range.
func (c *Client) FetchRecords(ctx context.Context, period payperiod.PayPeriod) ([]model.ExistingRecord, error) {
	endpoint := fmt.Sprintf("%s/api/attendance?year=%d&month=%d", c.baseURL, period.Year, int(period.Month))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &attendance.SessionError{Op: "fetch records", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &attendance.SessionError{Op: "fetch records", Err: err}
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, &attendance.SessionError{Op: "fetch records", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &attendance.SessionError{
			Op:  "fetch records",
			Err: fmt.Errorf("portal returned %d: %s", resp.StatusCode, bytes.TrimSpace(body)),
		}
	}

	var page attendanceResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &attendance.SessionError{Op: "decode records", Err: err}
	}

	records := make([]model.ExistingRecord, 0, len(page.Days))
	for _, day := range page.Days {
		rec, err := day.toRecord()
		if err != nil {
			// An unreadable snapshot is unsafe to reconcile against.
			return nil, &attendance.SessionError{Op: "decode records", Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (d attendanceDay) toRecord() (model.ExistingRecord, error) {
	date, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return model.ExistingRecord{}, fmt.Errorf("bad date %q: %w", d.Date, err)
	}
	rec := model.ExistingRecord{
		Date:     date,
		WorkType: typeFromCode(d.ReportType),
		Note:     d.Note,
	}
	if d.Entry != "" {
		entry, err := model.ParseTimeOfDay(d.Entry)
		if err != nil {
			return model.ExistingRecord{}, fmt.Errorf("bad entry time on %s: %w", d.Date, err)
		}
		rec.Entry = &entry
	}
	if d.Exit != "" {
		exit, err := model.ParseTimeOfDay(d.Exit)
		if err != nil {
			return model.ExistingRecord{}, fmt.Errorf("bad exit time on %s: %w", d.Date, err)
		}
		rec.Exit = &exit
	}
	return rec, nil
}

// submitRequest is the portal's wire format for reporting one day.
type submitRequest struct {
	Date       string `json:"date"`
	Entry      string `json:"entry"`
	Exit       string `json:"exit"`
	ReportType string `json:"report_type"`
}

// Submit writes a single day's attendance record.
func (c *Client) Submit(ctx context.Context, day model.TargetDay) error {
	payload, err := json.Marshal(submitRequest{
		Date:       model.DateKey(day.Date),
		Entry:      day.Entry.Format("15:04"),
		Exit:       day.Exit.Format("15:04"),
		ReportType: codeFor(day.WorkType),
	})
	if err != nil {
		return &attendance.SubmissionError{Date: day.Date, Reason: err.Error()}
	}

	endpoint := c.baseURL + "/api/attendance/report"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return &attendance.SubmissionError{Date: day.Date, Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &attendance.SubmissionError{Date: day.Date, Reason: err.Error()}
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &attendance.SubmissionError{
			Date:   day.Date,
			Reason: fmt.Sprintf("portal returned %d: %s", resp.StatusCode, bytes.TrimSpace(body)),
		}
	}
	return nil
}
