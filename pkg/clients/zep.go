package clients

import (
	"context"
	"net/http"
	"net/url"

	"github.com/autopiloot/autopiloot/pkg/agents"
)

const zepBaseURL = "https://api.getzep.com/api/v2"

// Zep implements agents.VectorIndex against the Zep document API.
type Zep struct {
	apiKey     string
	baseURL    string
	collection string
	http       *http.Client
}

// NewZep creates the client for one document collection.
func NewZep(apiKey, collection string) *Zep {
	return &Zep{apiKey: apiKey, baseURL: zepBaseURL, collection: collection, http: &http.Client{}}
}

// NewZepWithBaseURL points the client at a test server.
func NewZepWithBaseURL(apiKey, baseURL, collection string) *Zep {
	return &Zep{apiKey: apiKey, baseURL: baseURL, collection: collection, http: &http.Client{}}
}

// Upsert writes one document into the collection. The document ID is stable
// per video, so re-summarizing replaces rather than duplicates.
func (z *Zep) Upsert(ctx context.Context, docID, content string, metadata map[string]interface{}, labels []string) (*agents.IndexedDoc, error) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	if len(labels) > 0 {
		metadata["labels"] = labels
	}

	endpoint := z.baseURL + "/collections/" + url.PathEscape(z.collection) + "/documents"
	headers := map[string]string{"Authorization": "Api-Key " + z.apiKey}
	body := []map[string]interface{}{
		{
			"document_id": docID,
			"content":     content,
			"metadata":    metadata,
		},
	}
	if err := postJSON(ctx, z.http, endpoint, headers, body, nil); err != nil {
		return nil, err
	}
	return &agents.IndexedDoc{DocID: docID, Collection: z.collection}, nil
}
