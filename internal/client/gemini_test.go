package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "Hello "},
					{"text": "there!"},
				}}},
			},
		})
	}))
	defer server.Close()

	c := NewGeminiClient("test-key", 5*time.Second).WithBaseURL(server.URL)

	got, err := c.GenerateText(context.Background(), "gemini-3-flash-preview", "say hello")
	assert.NoError(t, err)
	assert.Equal(t, "Hello there!", got)
	assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "say hello", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "here is your poster"},
					{"inlineData": map[string]any{"mimeType": "image/png", "data": "aGVsbG8="}},
				}}},
			},
		})
	}))
	defer server.Close()

	c := NewGeminiClient("test-key", 5*time.Second).WithBaseURL(server.URL)

	mimeType, data, err := c.GenerateImage(context.Background(), "gemini-2.5-flash-image", "a poster")
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, "aGVsbG8=", data)
}

func TestGenerateImage_NoInlineData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "sorry, text only"},
				}}},
			},
		})
	}))
	defer server.Close()

	c := NewGeminiClient("test-key", 5*time.Second).WithBaseURL(server.URL)

	_, _, err := c.GenerateImage(context.Background(), "gemini-2.5-flash-image", "a poster")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no image")
}

func TestGenerate_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewGeminiClient("test-key", 5*time.Second).WithBaseURL(server.URL)

	_, err := c.GenerateText(context.Background(), "gemini-3-flash-preview", "say hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	c := NewGeminiClient("test-key", 5*time.Second).WithBaseURL(server.URL)

	_, err := c.GenerateText(context.Background(), "gemini-3-flash-preview", "say hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
