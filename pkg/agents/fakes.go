package agents

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Deterministic in-memory collaborator doubles, shared by this package's
// tests and the database-backed scenario tests.

// FakeChannelSource serves canned handle resolutions and upload listings.
type FakeChannelSource struct {
	mu       sync.Mutex
	Channels map[string]string       // handle → channel_id
	Uploads  map[string][]UploadItem // channel_id → uploads, oldest first
	Err      error

	ListCalls int
}

func (f *FakeChannelSource) ResolveHandle(_ context.Context, handle string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	id, ok := f.Channels[handle]
	if !ok {
		return "", fmt.Errorf("unknown handle %s", handle)
	}
	return id, nil
}

func (f *FakeChannelSource) ListUploads(_ context.Context, channelID string, since, until time.Time, limit int) ([]UploadItem, error) {
	f.mu.Lock()
	f.ListCalls++
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var out []UploadItem
	for _, item := range f.Uploads[channelID] {
		if item.PublishedAt.Before(since) || !item.PublishedAt.Before(until) {
			continue
		}
		out = append(out, item)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// FakeSheetSource serves a canned list of video links.
type FakeSheetSource struct {
	URLs []string
	Err  error
}

func (f *FakeSheetSource) ListVideoURLs(_ context.Context, _, _ string) ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.URLs, nil
}

// FakeTranscription returns a fixed result and counts calls.
type FakeTranscription struct {
	mu     sync.Mutex
	Result *TranscriptionResult
	Err    error

	Calls int
}

func (f *FakeTranscription) Transcribe(_ context.Context, _ string) (*TranscriptionResult, error) {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Result, nil
}

// FakeTranscriptFetcher serves fixed transcript text.
type FakeTranscriptFetcher struct {
	Text string
	Err  error
}

func (f *FakeTranscriptFetcher) FetchTranscript(_ context.Context, _ string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}

// FakeSummarization returns a fixed summary result.
type FakeSummarization struct {
	Result *SummaryResult
	Err    error
}

func (f *FakeSummarization) Summarize(_ context.Context, _, _ string) (*SummaryResult, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Result, nil
}

// FakeVectorIndex acknowledges upserts with a derived doc ID.
type FakeVectorIndex struct {
	Collection string
	Err        error

	mu       sync.Mutex
	Upserted []string
}

func (f *FakeVectorIndex) Upsert(_ context.Context, docID, _ string, _ map[string]interface{}, _ []string) (*IndexedDoc, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	f.Upserted = append(f.Upserted, docID)
	f.mu.Unlock()
	collection := f.Collection
	if collection == "" {
		collection = "autopiloot"
	}
	return &IndexedDoc{DocID: "zep_" + docID, Collection: collection}, nil
}
