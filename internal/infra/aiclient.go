package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BusinessInsight is one structured recommendation returned by the AI upstream.
type BusinessInsight struct {
	Type        string          `json:"type"` // recommendation | alert | forecast
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    string          `json:"priority"` // low | medium | high
	Actionable  bool            `json:"actionable"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// InsightSnapshot is the aggregated business data sent for analysis.
type InsightSnapshot struct {
	Sales     interface{} `json:"sales"`
	Inventory interface{} `json:"inventory"`
}

// AIClient talks to an OpenAI-compatible chat-completions endpoint.
// The upstream is treated as an opaque advisory service: any failure
// degrades to zero insights, never to an order-path error.
type AIClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewAIClient(baseURL, apiKey, model string) *AIClient {
	return &AIClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

const insightSystemPrompt = "You are an AI business analyst expert. " +
	"Provide actionable insights based on business data. Always respond with valid JSON."

const insightPromptTemplate = `Analyze the following business data and provide actionable insights:

Sales Data: %s
Inventory Data: %s

Generate business insights in the following JSON format:
{"insights": [{"type": "recommendation|alert|forecast", "title": "Brief title",
"description": "Detailed description with specific actions",
"priority": "low|medium|high", "actionable": true, "data": {}}]}

Focus on inventory management (low stock, overstocking, reorder points),
sales trends and forecasting, and revenue optimization opportunities.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	MaxTokens int `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateInsights sends the snapshot for analysis and parses the structured result.
func (c *AIClient) GenerateInsights(ctx context.Context, snapshot InsightSnapshot) ([]BusinessInsight, error) {
	salesJSON, err := json.Marshal(snapshot.Sales)
	if err != nil {
		return nil, fmt.Errorf("ai: marshal sales snapshot: %w", err)
	}
	inventoryJSON, err := json.Marshal(snapshot.Inventory)
	if err != nil {
		return nil, fmt.Errorf("ai: marshal inventory snapshot: %w", err)
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: insightSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(insightPromptTemplate, salesJSON, inventoryJSON)},
		},
		MaxTokens: 1500,
	}
	reqBody.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("ai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai: upstream unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai: upstream returned %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("ai: decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("ai: empty completion")
	}

	var result struct {
		Insights []BusinessInsight `json:"insights"`
	}
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("ai: parse insights: %w", err)
	}
	return result.Insights, nil
}
