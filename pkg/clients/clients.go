// Package clients holds the HTTP implementations of the collaborator
// interfaces consumed by pkg/agents: YouTube Data API discovery, Google
// Sheets backfill reads, AssemblyAI transcription, OpenAI summarization, and
// the Zep document index. Each client is a thin wrapper; retry, quota, and
// cost policy live with the callers.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBodyBytes bounds how much of an error response lands in logs.
const maxErrorBodyBytes = 512

// getJSON performs a GET and decodes the response into out.
func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return doJSON(client, req, headers, out)
}

// postJSON performs a POST with a JSON body and decodes the response into out.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(client, req, headers, out)
}

func doJSON(client *http.Client, req *http.Request, headers map[string]string, out interface{}) error {
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
