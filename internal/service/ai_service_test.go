package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeGenerativeClient struct {
	lastModel  string
	lastPrompt string

	text     string
	textErr  error
	mimeType string
	imgData  string
	imgErr   error
}

func (f *fakeGenerativeClient) GenerateText(_ context.Context, model, prompt string) (string, error) {
	f.lastModel = model
	f.lastPrompt = prompt
	return f.text, f.textErr
}

func (f *fakeGenerativeClient) GenerateImage(_ context.Context, model, prompt string) (string, string, error) {
	f.lastModel = model
	f.lastPrompt = prompt
	return f.mimeType, f.imgData, f.imgErr
}

func TestEnhanceMessage(t *testing.T) {
	client := &fakeGenerativeClient{text: "✨ Big sale this weekend!"}
	svc := NewAIService(client)

	got, err := svc.EnhanceMessage(context.Background(), "big sale this weekend", "friendly")
	assert.NoError(t, err)
	assert.Equal(t, "✨ Big sale this weekend!", got)
	assert.Equal(t, "gemini-3-flash-preview", client.lastModel)
	assert.Contains(t, client.lastPrompt, "more friendly and engaging")
	assert.Contains(t, client.lastPrompt, `"big sale this weekend"`)
}

func TestEnhanceMessage_DefaultTone(t *testing.T) {
	client := &fakeGenerativeClient{text: "ok"}
	svc := NewAIService(client)

	_, err := svc.EnhanceMessage(context.Background(), "hello", "")
	assert.NoError(t, err)
	assert.Contains(t, client.lastPrompt, "more professional and engaging")
}

func TestEnhanceMessage_ClientError(t *testing.T) {
	client := &fakeGenerativeClient{textErr: errors.New("quota exceeded")}
	svc := NewAIService(client)

	_, err := svc.EnhanceMessage(context.Background(), "hello", "")
	assert.Error(t, err)
}

func TestGenerateImage(t *testing.T) {
	client := &fakeGenerativeClient{mimeType: "image/jpeg", imgData: "aGVsbG8="}
	svc := NewAIService(client)

	got, err := svc.GenerateImage(context.Background(), "diwali offer")
	assert.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", got)
	assert.Equal(t, "gemini-2.5-flash-image", client.lastModel)
	assert.Contains(t, client.lastPrompt, "diwali offer")
	assert.Contains(t, client.lastPrompt, "marketing poster")
}

func TestGenerateImage_DefaultMimeType(t *testing.T) {
	client := &fakeGenerativeClient{imgData: "aGVsbG8="}
	svc := NewAIService(client)

	got, err := svc.GenerateImage(context.Background(), "diwali offer")
	assert.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", got)
}
