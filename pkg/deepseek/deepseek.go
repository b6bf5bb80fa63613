package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	formatJSON   = "json_object"
	finishLength = "length"
	maxErrorBody = 4 << 10
)

type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// New creates a chat completions client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		client:   httpClient,
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

// GenerateContent posts req and returns the first choice. In JSON mode the
// answer must be complete: an empty body or a max_tokens cut is an error.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, ErrNoMessages
	}
	if req.Model == "" {
		req.Model = c.model
	}
	if req.JSONMode() {
		ensureJSONHint(req)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("deepseek: marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("deepseek: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("deepseek: decode response: %w", err)
	}
	if err := checkAnswer(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}

	var errResp ErrorResponse
	if json.Unmarshal(raw, &errResp) == nil && errResp.Error.Message != "" {
		apiErr.Message = errResp.Error.Message
		apiErr.Type = errResp.Error.Type
	}
	return apiErr
}

func checkAnswer(req *Request, resp *Response) error {
	if len(resp.Choices) == 0 {
		return ErrEmptyResponse
	}
	if !req.JSONMode() {
		return nil
	}
	first := resp.Choices[0]
	if first.FinishReason == finishLength {
		return ErrTruncated
	}
	if strings.TrimSpace(first.Message.Content) == "" {
		return ErrEmptyResponse
	}
	return nil
}

// ensureJSONHint adds the word "json" to the system prompt; the endpoint
// rejects json_object requests whose prompt never mentions it.
func ensureJSONHint(req *Request) {
	for _, m := range req.Messages {
		if strings.Contains(strings.ToLower(m.Content), "json") {
			return
		}
	}
	hint := Message{Role: "system", Content: "Reply with a single JSON object."}
	if req.Messages[0].Role == "system" {
		req.Messages[0].Content += "\n" + hint.Content
		return
	}
	req.Messages = append([]Message{hint}, req.Messages...)
}
