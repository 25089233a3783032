package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/autopiloot/autopiloot/pkg/agents"
	"github.com/autopiloot/autopiloot/pkg/config"
)

const openAIBaseURL = "https://api.openai.com/v1"

// Token prices for cost estimation, USD per million tokens.
const (
	openAIInputPerMTokUSD  = 2.00
	openAIOutputPerMTokUSD = 8.00
)

// summarySystemPrompt instructs the model to emit the structured summary
// contract, including the business-content verdict.
const summarySystemPrompt = `You summarize coaching and business video transcripts.
Respond with a JSON object:
{"bullets": [..], "key_concepts": [..], "is_business_content": bool, "content_type": "...", "reason": "..."}
bullets: actionable insights from the transcript, most important first.
key_concepts: short topic labels.
is_business_content: false for music, entertainment, or other non-business content; then content_type names the category and reason explains the call.`

// OpenAI implements agents.Summarization via chat completions in JSON mode.
type OpenAI struct {
	apiKey  string
	baseURL string
	task    config.LLMTaskConfig
	http    *http.Client
}

// NewOpenAI creates the client with the resolved task configuration.
func NewOpenAI(apiKey string, task config.LLMTaskConfig) *OpenAI {
	return &OpenAI{apiKey: apiKey, baseURL: openAIBaseURL, task: task, http: &http.Client{}}
}

// NewOpenAIWithBaseURL points the client at a test server.
func NewOpenAIWithBaseURL(apiKey, baseURL string, task config.LLMTaskConfig) *OpenAI {
	return &OpenAI{apiKey: apiKey, baseURL: baseURL, task: task, http: &http.Client{}}
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Summarize runs one summarization call and parses the structured verdict.
func (o *OpenAI) Summarize(ctx context.Context, transcriptText, title string) (*agents.SummaryResult, error) {
	body := map[string]interface{}{
		"model":           o.task.Model,
		"temperature":     o.task.Temperature,
		"max_tokens":      o.task.MaxOutputTokens,
		"response_format": map[string]string{"type": "json_object"},
		"messages": []map[string]string{
			{"role": "system", "content": summarySystemPrompt},
			{"role": "user", "content": fmt.Sprintf("Title: %s\n\nTranscript:\n%s", title, transcriptText)},
		},
	}

	var resp chatResponse
	headers := map[string]string{"Authorization": "Bearer " + o.apiKey}
	if err := postJSON(ctx, o.http, o.baseURL+"/chat/completions", headers, body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model %s returned no choices", o.task.Model)
	}

	var parsed struct {
		Bullets           []string `json:"bullets"`
		KeyConcepts       []string `json:"key_concepts"`
		IsBusinessContent bool     `json:"is_business_content"`
		ContentType       string   `json:"content_type"`
		Reason            string   `json:"reason"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("parsing summary output: %w", err)
	}

	usage := resp.Usage
	cost := float64(usage.PromptTokens)*openAIInputPerMTokUSD/1e6 +
		float64(usage.CompletionTokens)*openAIOutputPerMTokUSD/1e6
	return &agents.SummaryResult{
		Bullets:           parsed.Bullets,
		KeyConcepts:       parsed.KeyConcepts,
		IsBusinessContent: parsed.IsBusinessContent,
		ContentType:       parsed.ContentType,
		Reason:            parsed.Reason,
		InputTokens:       usage.PromptTokens,
		OutputTokens:      usage.CompletionTokens,
		CostUSD:           cost,
	}, nil
}
