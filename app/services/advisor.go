package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TipService produces a short advisory tip for a class title. It never
// influences booking state and implementations must stay swappable.
type TipService interface {
	FocusTip(title string) (string, error)
}

// ImageEditor edits an image according to a free-text instruction and
// returns the edited image bytes with their MIME type.
type ImageEditor interface {
	Edit(image []byte, mimeType, instruction string) ([]byte, string, error)
}

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiAdvisor implements both collaborators against the Gemini REST API.
type GeminiAdvisor struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewGeminiAdvisor(apiKey string) *GeminiAdvisor {
	return &GeminiAdvisor{
		APIKey:  apiKey,
		BaseURL: geminiBaseURL,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// FocusTip asks for a one-sentence focus cue for the given class title.
func (g *GeminiAdvisor) FocusTip(title string) (string, error) {
	prompt := fmt.Sprintf("Give one short, encouraging focus tip for a %s class. One sentence, no preamble.", title)

	resp, err := g.generate("gemini-2.0-flash", []geminiPart{{Text: prompt}})
	if err != nil {
		return "", err
	}
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", fmt.Errorf("tip response had no text")
}

// Edit sends the image plus instruction and returns the first image part of
// the response.
func (g *GeminiAdvisor) Edit(image []byte, mimeType, instruction string) ([]byte, string, error) {
	parts := []geminiPart{
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
		{Text: instruction},
	}

	resp, err := g.generate("gemini-2.0-flash-exp-image-generation", parts)
	if err != nil {
		return nil, "", err
	}
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.InlineData != nil {
				data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, "", fmt.Errorf("decode edited image: %w", err)
				}
				return data, p.InlineData.MimeType, nil
			}
		}
	}
	return nil, "", fmt.Errorf("edit response had no image")
}

func (g *GeminiAdvisor) generate(model string, parts []geminiPart) (*geminiResponse, error) {
	req := geminiRequest{Contents: []geminiContent{{Parts: parts}}}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.BaseURL, model, g.APIKey)
	httpResp, err := g.Client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisor request failed with status %d", httpResp.StatusCode)
	}

	var resp geminiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
