package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/meeting-minutes-team/meeting-minutes/pkg/config"
)

// GroqClient is a minimal client for the Groq API. One credential covers the
// two capabilities the pipeline needs: chat completions for the text
// extractors and whisper transcription for uploaded audio.
type GroqClient struct {
	apiKey          string
	baseURL         string
	chatModel       string
	transcribeModel string
	client          *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	chatModel := "llama-3.3-70b-versatile"
	transcribeModel := "whisper-large-v3"
	if cfg != nil {
		if cfg.ChatModel != "" {
			chatModel = cfg.ChatModel
		}
		if cfg.TranscribeModel != "" {
			transcribeModel = cfg.TranscribeModel
		}
	}

	c := &http.Client{}
	if cfg != nil && cfg.CallTimeout > 0 {
		c.Timeout = cfg.CallTimeout
	}

	return &GroqClient{
		apiKey:          apiKey,
		baseURL:         base,
		chatModel:       chatModel,
		transcribeModel: transcribeModel,
		client:          c,
	}
}

// ChatMessage is one entry of a chat completion conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests.
// Temperature deliberately has no omitempty: the extractors pin it to 0.
type ChatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages,omitempty"`
	Temperature float64       `json:"temperature"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends a system-framed prompt plus the user content and
// returns the assistant content. Decoding temperature is fixed at 0 so
// repeated runs on identical input stay maximally reproducible.
func (g *GroqClient) ChatCompletion(ctx context.Context, systemPrompt, userContent string) (string, error) {
	reqBody := ChatRequest{
		Model: g.chatModel,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: 0,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return cr.Choices[0].Message.Content, nil
}

// TranscriptionResponse is a minimal transcription response shape
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads audio and returns the transcript text
func (g *GroqClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", err
	}
	if err := mw.WriteField("model", g.transcribeModel); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var tr TranscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	return tr.Text, nil
}
