package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/luxehub/luxehub/internal/domain"
)

const defaultModel = "gemini-3-flash-preview"

const conciergeInstruction = "You are a luxury fashion consultant. Help users find brands, understand styles, and manage their wardrobe. Keep answers elegant, concise, and helpful."

const extractInstruction = "Extract clothing item details from user text. If brand is mentioned, extract it. Otherwise leave empty."

// Gateway implements domain.AIGateway against the Gemini API. Both calls are
// single-shot and non-streaming; there is no retry policy.
type Gateway struct {
	client *genai.Client
	model  string
}

// New reads the API key from GEMINI_API_KEY (falling back to GOOGLE_API_KEY)
// unless the config already carries one. An empty key is only allowed with a
// custom HTTP client, e.g. for replay tests.
func New(ctx context.Context, cfg *genai.ClientConfig) (*Gateway, error) {
	if cfg == nil {
		cfg = &genai.ClientConfig{}
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if cfg.APIKey == "" && cfg.HTTPClient == nil {
		return nil, errors.New("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	model := os.Getenv("LUXEHUB_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Gateway{client: client, model: model}, nil
}

// Converse answers a caller-assembled prompt with unstructured prose.
func (g *Gateway) Converse(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(conciergeInstruction, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := collectText(resp)
	if text == "" {
		return "", errors.New("no content generated")
	}
	return text, nil
}

// ExtractWardrobeItem asks for a schema-constrained JSON object and decodes
// it defensively. Output the backend returns that cannot be validated into a
// complete item yields (nil, nil), never a partial object.
func (g *Gateway) ExtractWardrobeItem(ctx context.Context, text string) (*domain.ParsedWardrobeItem, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(extractInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":     {Type: genai.TypeString},
				"category": {Type: genai.TypeString, Description: "One of: " + strings.Join(domain.SuggestedCategories(), ", ")},
				"color":    {Type: genai.TypeString},
				"brand":    {Type: genai.TypeString},
			},
			Required: []string{"name", "category", "color"},
		},
	}
	prompt := fmt.Sprintf("Parse this wardrobe item description into a structured JSON: %q", text)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return decodeParsedItem(collectText(resp)), nil
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			out.WriteString(part.Text)
		}
	}
	return out.String()
}

// decodeParsedItem validates raw backend output into a complete item. Code
// fences, malformed JSON and missing required fields all collapse to nil.
func decodeParsedItem(raw string) *domain.ParsedWardrobeItem {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var parsed domain.ParsedWardrobeItem
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}
	if parsed.Name == "" || parsed.Category == "" || parsed.Color == "" {
		return nil
	}
	return &parsed
}
