package clients

import (
	"context"
	"net/http"
	"net/url"
)

const sheetsBaseURL = "https://sheets.googleapis.com/v4"

// Sheets implements agents.SheetSource against the Google Sheets values API
// with API-key auth (the backfill sheet must be link-readable).
type Sheets struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewSheets creates the client.
func NewSheets(apiKey string) *Sheets {
	return &Sheets{apiKey: apiKey, baseURL: sheetsBaseURL, http: &http.Client{}}
}

// NewSheetsWithBaseURL points the client at a test server.
func NewSheetsWithBaseURL(apiKey, baseURL string) *Sheets {
	return &Sheets{apiKey: apiKey, baseURL: baseURL, http: &http.Client{}}
}

// ListVideoURLs reads the range and returns the first non-empty cell of each
// row. Rows that fail to parse as video links are the caller's concern.
func (s *Sheets) ListVideoURLs(ctx context.Context, sheetID, cellRange string) ([]string, error) {
	endpoint := s.baseURL + "/spreadsheets/" + url.PathEscape(sheetID) + "/values/" + url.PathEscape(cellRange) + "?key=" + url.QueryEscape(s.apiKey)

	var resp struct {
		Values [][]interface{} `json:"values"`
	}
	if err := getJSON(ctx, s.http, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	var urls []string
	for _, row := range resp.Values {
		for _, cell := range row {
			if v, ok := cell.(string); ok && v != "" {
				urls = append(urls, v)
				break
			}
		}
	}
	return urls, nil
}
