package llmprovider

import (
	"context"

	"flowx/pkg/deepseek"
	"flowx/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.JSON {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	c := convertToGeminiContents([]Message{*msg})[0]
	return &c
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		parts := make([]gemini.Part, len(msg.Parts))
		for j, p := range msg.Parts {
			parts[j] = gemini.Part{Text: p.Text}
		}
		contents[i] = gemini.Content{Role: role, Parts: parts}
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: "assistant", Parts: parts}
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	deepseekReq := &deepseek.Request{
		Messages:    convertToDeepSeekMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// system instruction goes first as its own message
	if req.SystemInstruction != nil {
		systemMsg := deepseek.Message{Role: "system", Content: joinText(req.SystemInstruction.Parts)}
		deepseekReq.Messages = append([]deepseek.Message{systemMsg}, deepseekReq.Messages...)
	}
	if req.JSON {
		deepseekReq.ResponseFormat = &deepseek.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.GenerateContent(ctx, deepseekReq)
	if err != nil {
		return nil, err
	}

	return convertFromDeepSeekResponse(resp), nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func convertToDeepSeekMessages(msgs []Message) []deepseek.Message {
	messages := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		messages = append(messages, deepseek.Message{Role: msg.Role, Content: joinText(msg.Parts)})
	}
	return messages
}

func convertFromDeepSeekResponse(resp *deepseek.Response) *Response {
	parts := []Part{}
	if text := resp.Text(); text != "" {
		parts = append(parts, Part{Text: text})
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: "deepseek",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}

func joinText(parts []Part) string {
	if len(parts) == 1 {
		return parts[0].Text
	}
	var out string
	for i, p := range parts {
		if i > 0 {
			out += "\n"
		}
		out += p.Text
	}
	return out
}
