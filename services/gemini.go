package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/FrozenSaturn/pawsome/config"
)

// GeminiResponder relays chat messages to Google's generative-language
// API. Every request sends the same fixed two-turn persona seed (the
// persona instruction framed as a prior user turn, a canned
// acknowledgement framed as a prior model turn) followed by the live
// message, so the model stays in character without any server-side
// conversation state.
type GeminiResponder struct {
	client  *genai.Client
	cfg     config.LLMConfig
	timeout time.Duration
}

// NewGeminiResponder creates the relay. With no API key configured it
// still returns a responder; Reply then reports ErrNotConfigured
// without ever contacting the external service.
func NewGeminiResponder(ctx context.Context, cfg config.LLMConfig) (*GeminiResponder, error) {
	r := &GeminiResponder{
		cfg:     cfg,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	if r.timeout <= 0 {
		r.timeout = 30 * time.Second
	}
	if cfg.APIKey == "" {
		log.Println("WARN: [ChatRelay] No API key configured; PawBuddy will answer with the unavailable message.")
		return r, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	r.client = client
	log.Printf("INFO: [ChatRelay] GenAI client initialized for model '%s'.", cfg.Model)
	return r, nil
}

// Reply forwards the message to the model and relays the text back
// verbatim. Upstream failures are logged and surfaced as ErrUpstream;
// nothing is retried.
func (r *GeminiResponder) Reply(ctx context.Context, message string) (string, error) {
	if r.client == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	contents := seedContents(r.cfg.PersonaPrompt, r.cfg.PersonaAck, message)
	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(r.cfg.Temperature),
		MaxOutputTokens: r.cfg.MaxOutputTokens,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}

	resp, err := r.client.Models.GenerateContent(ctx, r.cfg.Model, contents, genCfg)
	if err != nil {
		log.Printf("ERROR: [ChatRelay] GenerateContent failed for model '%s': %v", r.cfg.Model, err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		log.Printf("ERROR: [ChatRelay] Model '%s' returned an empty reply (possibly safety-blocked).", r.cfg.Model)
		return "", fmt.Errorf("%w: empty model reply", ErrUpstream)
	}
	return text, nil
}

// seedContents builds the fixed persona seed plus the live message.
// Kept separate from Reply so the conversation shape is testable
// without a network client.
func seedContents(personaPrompt, personaAck, message string) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(personaPrompt, genai.RoleUser),
		genai.NewContentFromText(personaAck, genai.RoleModel),
		genai.NewContentFromText(message, genai.RoleUser),
	}
}
