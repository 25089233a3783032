package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYouTubeResolveHandle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/channels", r.URL.Path)
		assert.Equal(t, "@hormozi", r.URL.Query().Get("forHandle"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]string{{"id": "UCchannel1"}},
		})
	}))
	defer server.Close()

	yt := NewYouTubeWithBaseURL("test-key", server.URL)
	id, err := yt.ResolveHandle(context.Background(), "@hormozi")
	require.NoError(t, err)
	assert.Equal(t, "UCchannel1", id)
}

func TestYouTubeResolveHandleNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"items": []interface{}{}})
	}))
	defer server.Close()

	yt := NewYouTubeWithBaseURL("test-key", server.URL)
	_, err := yt.ResolveHandle(context.Background(), "@missing")
	assert.ErrorContains(t, err, "no channel found")
}

func TestYouTubeListUploads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			assert.Equal(t, "UCchannel1", r.URL.Query().Get("channelId"))
			// Newest first, as the API returns them.
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"items": []map[string]interface{}{
					{
						"id":      map[string]string{"videoId": "vid00000002"},
						"snippet": map[string]string{"title": "Newer", "publishedAt": "2025-03-02T00:00:00Z"},
					},
					{
						"id":      map[string]string{"videoId": "vid00000001"},
						"snippet": map[string]string{"title": "Older", "publishedAt": "2025-03-01T00:00:00Z"},
					},
				},
			})
		case "/videos":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"items": []map[string]interface{}{
					{"id": "vid00000001", "contentDetails": map[string]string{"duration": "PT10M"}},
					{"id": "vid00000002", "contentDetails": map[string]string{"duration": "PT1H30M"}},
				},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	yt := NewYouTubeWithBaseURL("test-key", server.URL)
	items, err := yt.ListUploads(context.Background(), "UCchannel1", time.Time{}, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Oldest first for checkpoint advancement.
	assert.Equal(t, "vid00000001", items[0].VideoID)
	assert.Equal(t, 600, items[0].DurationSec)
	assert.Equal(t, "vid00000002", items[1].VideoID)
	assert.Equal(t, 5400, items[1].DurationSec)
}

func TestSheetsListVideoURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/spreadsheets/sheet1/values/")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"values": [][]interface{}{
				{"https://youtu.be/vid00000001", "note"},
				{},
				{"", "https://youtu.be/vid00000002"},
			},
		})
	}))
	defer server.Close()

	sheets := NewSheetsWithBaseURL("test-key", server.URL)
	urls, err := sheets.ListVideoURLs(context.Background(), "sheet1", "Sheet1!A:D")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://youtu.be/vid00000001", "https://youtu.be/vid00000002"}, urls)
}

func TestAssemblyAITranscribe(t *testing.T) {
	polls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "aai-key", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/transcript":
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "https://www.youtube.com/watch?v=vid00000001", body["audio_url"])
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "tr_1", "status": "queued"})
		case r.Method == http.MethodGet && r.URL.Path == "/transcript/tr_1":
			polls++
			if polls < 2 {
				_ = json.NewEncoder(w).Encode(map[string]string{"id": "tr_1", "status": "processing"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id":             "tr_1",
				"status":         "completed",
				"text":           "hello world",
				"audio_duration": 3600.0,
			})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	aai := NewAssemblyAIWithBaseURL("aai-key", server.URL, time.Millisecond)
	result, err := aai.Transcribe(context.Background(), "https://www.youtube.com/watch?v=vid00000001")
	require.NoError(t, err)
	assert.Equal(t, "tr_1", result.TranscriptDocRef)
	assert.NotEmpty(t, result.Digest)
	assert.InDelta(t, 0.37, result.CostUSD, 1e-9)
	assert.GreaterOrEqual(t, polls, 2)
}

func TestAssemblyAITranscribeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "tr_2", "status": "queued"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "tr_2", "status": "error", "error": "unsupported media"})
	}))
	defer server.Close()

	aai := NewAssemblyAIWithBaseURL("aai-key", server.URL, time.Millisecond)
	_, err := aai.Transcribe(context.Background(), "https://example.com/a.mp4")
	assert.ErrorContains(t, err, "unsupported media")
}

func TestAssemblyAIFetchTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "tr_1", "status": "completed", "text": "hello"})
	}))
	defer server.Close()

	aai := NewAssemblyAIWithBaseURL("aai-key", server.URL, time.Millisecond)
	text, err := aai.FetchTranscript(context.Background(), "tr_1")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestOpenAISummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer oai-key", r.Header.Get("Authorization"))
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4.1", body["model"])

		content, _ := json.Marshal(map[string]interface{}{
			"bullets":             []string{"raise prices"},
			"key_concepts":        []string{"pricing"},
			"is_business_content": true,
		})
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": string(content)}},
			},
			"usage": map[string]int{"prompt_tokens": 1000, "completion_tokens": 500},
		})
	}))
	defer server.Close()

	oai := NewOpenAIWithBaseURL("oai-key", server.URL, config.LLMTaskConfig{Model: "gpt-4.1", Temperature: 0.2, MaxOutputTokens: 1500})
	result, err := oai.Summarize(context.Background(), "transcript text", "How to price")
	require.NoError(t, err)
	assert.True(t, result.IsBusinessContent)
	assert.Equal(t, []string{"raise prices"}, result.Bullets)
	assert.Equal(t, 1000, result.InputTokens)
	assert.Equal(t, 500, result.OutputTokens)
	assert.InDelta(t, 1000*2.0/1e6+500*8.0/1e6, result.CostUSD, 1e-9)
}

func TestOpenAISummarizeMalformedOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "not json"}},
			},
		})
	}))
	defer server.Close()

	oai := NewOpenAIWithBaseURL("oai-key", server.URL, config.LLMTaskConfig{Model: "gpt-4.1"})
	_, err := oai.Summarize(context.Background(), "text", "title")
	assert.ErrorContains(t, err, "parsing summary output")
}

func TestZepUpsert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/autopiloot/documents", r.URL.Path)
		assert.Equal(t, "Api-Key zep-key", r.Header.Get("Authorization"))
		var body []map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "vid00000001", body[0]["document_id"])
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	zep := NewZepWithBaseURL("zep-key", server.URL, "autopiloot")
	doc, err := zep.Upsert(context.Background(), "vid00000001", "summary", map[string]interface{}{"title": "t"}, []string{"pricing"})
	require.NoError(t, err)
	assert.Equal(t, "vid00000001", doc.DocID)
	assert.Equal(t, "autopiloot", doc.Collection)
}

func TestErrorStatusSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quotaExceeded"}}`))
	}))
	defer server.Close()

	yt := NewYouTubeWithBaseURL("test-key", server.URL)
	_, err := yt.ResolveHandle(context.Background(), "@x")
	assert.ErrorContains(t, err, "status 403")
	assert.ErrorContains(t, err, "quotaExceeded")
}
