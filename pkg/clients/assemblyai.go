package clients

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/autopiloot/autopiloot/pkg/agents"
)

const assemblyAIBaseURL = "https://api.assemblyai.com/v2"

// assemblyAIHourlyRateUSD prices completed audio for the cost ledger.
const assemblyAIHourlyRateUSD = 0.37

// defaultPollInterval paces transcript status polling.
const defaultPollInterval = 5 * time.Second

// AssemblyAI implements agents.Transcription and agents.TranscriptFetcher.
// Transcript artifact refs are AssemblyAI transcript IDs.
type AssemblyAI struct {
	apiKey       string
	baseURL      string
	http         *http.Client
	pollInterval time.Duration
}

// NewAssemblyAI creates the client.
func NewAssemblyAI(apiKey string) *AssemblyAI {
	return &AssemblyAI{
		apiKey:       apiKey,
		baseURL:      assemblyAIBaseURL,
		http:         &http.Client{},
		pollInterval: defaultPollInterval,
	}
}

// NewAssemblyAIWithBaseURL points the client at a test server with a short
// poll interval.
func NewAssemblyAIWithBaseURL(apiKey, baseURL string, pollInterval time.Duration) *AssemblyAI {
	return &AssemblyAI{apiKey: apiKey, baseURL: baseURL, http: &http.Client{}, pollInterval: pollInterval}
}

func (a *AssemblyAI) headers() map[string]string {
	return map[string]string{"Authorization": a.apiKey}
}

type transcriptResponse struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Text          string  `json:"text"`
	AudioDuration float64 `json:"audio_duration"`
	Error         string  `json:"error"`
}

// Transcribe submits the media URL and polls until the transcript settles.
// The caller's context deadline bounds the whole exchange.
func (a *AssemblyAI) Transcribe(ctx context.Context, videoURL string) (*agents.TranscriptionResult, error) {
	var submitted transcriptResponse
	err := postJSON(ctx, a.http, a.baseURL+"/transcript", a.headers(),
		map[string]interface{}{"audio_url": videoURL}, &submitted)
	if err != nil {
		return nil, fmt.Errorf("submitting transcription: %w", err)
	}

	tr, err := a.pollTranscript(ctx, submitted.ID)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256([]byte(tr.Text))
	return &agents.TranscriptionResult{
		TranscriptDocRef:  tr.ID,
		TranscriptJSONRef: tr.ID + "/json",
		Digest:            hex.EncodeToString(digest[:]),
		CostUSD:           tr.AudioDuration / 3600 * assemblyAIHourlyRateUSD,
	}, nil
}

func (a *AssemblyAI) pollTranscript(ctx context.Context, id string) (*transcriptResponse, error) {
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		var tr transcriptResponse
		if err := getJSON(ctx, a.http, a.baseURL+"/transcript/"+url.PathEscape(id), a.headers(), &tr); err != nil {
			return nil, fmt.Errorf("polling transcript %s: %w", id, err)
		}
		switch tr.Status {
		case "completed":
			return &tr, nil
		case "error":
			return nil, fmt.Errorf("transcription %s failed: %s", id, tr.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// FetchTranscript retrieves the transcript text by its artifact ref.
func (a *AssemblyAI) FetchTranscript(ctx context.Context, transcriptDocRef string) (string, error) {
	if transcriptDocRef == "" {
		return "", errors.New("empty transcript ref")
	}
	var tr transcriptResponse
	if err := getJSON(ctx, a.http, a.baseURL+"/transcript/"+url.PathEscape(transcriptDocRef), a.headers(), &tr); err != nil {
		return "", err
	}
	if tr.Status != "completed" {
		return "", fmt.Errorf("transcript %s is %s, expected completed", transcriptDocRef, tr.Status)
	}
	return tr.Text, nil
}
