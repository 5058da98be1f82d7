package service

import (
	"context"
	"fmt"
)

const (
	enhanceModel = "gemini-3-flash-preview"
	imageModel   = "gemini-2.5-flash-image"
)

// GenerativeClient is the slice of the provider client the AI features use.
type GenerativeClient interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	GenerateImage(ctx context.Context, model, prompt string) (mimeType, base64Data string, err error)
}

// AIService wraps the generative provider with the console's prompt templates
type AIService interface {
	EnhanceMessage(ctx context.Context, text, tone string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type aiService struct {
	client GenerativeClient
}

// NewAIService creates a new AIService
func NewAIService(client GenerativeClient) AIService {
	return &aiService{client: client}
}

// EnhanceMessage rewrites the text in the given tone. Tone defaults to
// "professional" when empty.
func (s *aiService) EnhanceMessage(ctx context.Context, text, tone string) (string, error) {
	if tone == "" {
		tone = "professional"
	}
	prompt := fmt.Sprintf(
		"Rewrite this WhatsApp message to be more %s and engaging. Add relevant emojis. Keep it concise. Original message: %q",
		tone, text,
	)

	enhanced, err := s.client.GenerateText(ctx, enhanceModel, prompt)
	if err != nil {
		return "", fmt.Errorf("enhance call failed: %w", err)
	}
	return enhanced, nil
}

// GenerateImage returns the generated poster as a data URL.
func (s *aiService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	fullPrompt := fmt.Sprintf(
		"A professional marketing poster for: %s. Premium luxury style, Trio Developers branding.",
		prompt,
	)

	mimeType, data, err := s.client.GenerateImage(ctx, imageModel, fullPrompt)
	if err != nil {
		return "", fmt.Errorf("image generation call failed: %w", err)
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, data), nil
}
