// Package agents implements the three job executors — scraper, transcriber,
// summarizer — behind the queue runtime's JobExecutor interface. External
// services are consumed through the collaborator interfaces defined here;
// the executors own the pipeline semantics (checkpoints, duration gate,
// business gate, cost and quota accounting) and write every result through
// the state store.
package agents

import (
	"context"
	"time"
)

// UploadItem is one video returned by a channel uploads listing.
type UploadItem struct {
	VideoID     string
	Title       string
	PublishedAt time.Time
	DurationSec int
}

// ChannelSource lists a channel's uploads (YouTube Data API shape).
type ChannelSource interface {
	ResolveHandle(ctx context.Context, handle string) (string, error)
	ListUploads(ctx context.Context, channelID string, since, until time.Time, limit int) ([]UploadItem, error)
}

// SheetSource reads video links from a backfill spreadsheet.
type SheetSource interface {
	ListVideoURLs(ctx context.Context, sheetID, cellRange string) ([]string, error)
}

// TranscriptionResult carries the artifacts of one transcription call.
type TranscriptionResult struct {
	TranscriptDocRef  string
	TranscriptJSONRef string
	Digest            string
	CostUSD           float64
}

// Transcription submits a video for transcription and polls to completion.
type Transcription interface {
	Transcribe(ctx context.Context, videoURL string) (*TranscriptionResult, error)
}

// TranscriptFetcher retrieves stored transcript text by its artifact ref.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, transcriptDocRef string) (string, error)
}

// SummaryResult is the structured output of one summarization call,
// including the business-content gate verdict and token usage.
type SummaryResult struct {
	Bullets           []string
	KeyConcepts       []string
	IsBusinessContent bool
	ContentType       string
	Reason            string
	InputTokens       int
	OutputTokens      int
	CostUSD           float64
}

// Summarization generates a business-insight summary for a transcript.
type Summarization interface {
	Summarize(ctx context.Context, transcriptText, title string) (*SummaryResult, error)
}

// IndexedDoc identifies an upserted vector/graph document.
type IndexedDoc struct {
	DocID      string
	Collection string
}

// VectorIndex upserts summary content for retrieval.
type VectorIndex interface {
	Upsert(ctx context.Context, docID, content string, metadata map[string]interface{}, labels []string) (*IndexedDoc, error)
}
