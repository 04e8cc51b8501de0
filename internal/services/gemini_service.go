package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/YiChiaPeng/ryan-travel-agency/config"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	geminiModel = "gemini-2.5-flash"

	// Free-tier quota for the model above.
	requestsPerMinute = 15
)

// GeminiService wraps the Gemini API with rate limiting, retry and a
// response cache keyed on the request content. Both the OCR transcription
// step and the structured-extraction step go through it.
type GeminiService struct {
	client      *genai.Client
	cache       map[string]*CachedResponse
	cacheMutex  sync.RWMutex
	rateLimiter *rate.Limiter
}

type CachedResponse struct {
	Data      string
	ExpiresAt time.Time
}

type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

func NewGeminiService(apiKey string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	service := &GeminiService{
		client:      client,
		cache:       make(map[string]*CachedResponse),
		rateLimiter: newRequestLimiter(),
	}

	service.startCacheCleanup()

	return service, nil
}

// newRequestLimiter spreads the per-minute quota across the minute, so
// a burst of uploads queues instead of being rejected upstream.
func newRequestLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), requestsPerMinute)
}

// GenerateContentWithRetry runs a text-only prompt with exponential
// backoff on retryable upstream errors. Successful responses are cached
// for 24 hours.
func (g *GeminiService) GenerateContentWithRetry(ctx context.Context, prompt string, retryCfg *RetryConfig) (string, error) {
	if retryCfg == nil {
		retryCfg = &RetryConfig{
			MaxRetries:    3,
			InitialDelay:  time.Second,
			MaxDelay:      time.Minute,
			BackoffFactor: 2.0,
		}
	}

	cacheKey := cacheKeyFor([]byte(prompt))
	if cached := g.getFromCache(cacheKey); cached != "" {
		return cached, nil
	}

	if err := g.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit exceeded: %w", err)
	}

	var lastErr error
	delay := retryCfg.InitialDelay

	for attempt := 0; attempt <= retryCfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		result, err := g.generateText(ctx, prompt)
		if err == nil {
			g.cacheResponse(cacheKey, result)
			return result, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			break
		}

		delay = time.Duration(float64(delay) * retryCfg.BackoffFactor)
		if delay > retryCfg.MaxDelay {
			delay = retryCfg.MaxDelay
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", retryCfg.MaxRetries+1, lastErr)
}

func (g *GeminiService) generateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}}},
	}

	startTime := time.Now()

	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		config.Logger.Error("Gemini API request failed",
			zap.String("type", "text"),
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)),
		)
		return "", err
	}

	responseText := resp.Text()

	config.Logger.Info("Received response from Gemini",
		zap.String("type", "text"),
		zap.Int("responseLength", len(responseText)),
		zap.Duration("duration", time.Since(startTime)),
	)

	return responseText, nil
}

// ProcessDocumentWithPrompt sends an image or PDF together with text
// instructions as one multimodal request. Responses are cached on the
// combined hash of the file bytes and the prompt.
func (g *GeminiService) ProcessDocumentWithPrompt(ctx context.Context, fileBytes []byte, mimeType string, prompt string) (string, error) {
	cacheKey := cacheKeyFor(append(append([]byte{}, fileBytes...), []byte(prompt)...))
	if cached := g.getFromCache(cacheKey); cached != "" {
		return cached, nil
	}

	if err := g.rateLimiter.Wait(ctx); err != nil {
		config.Logger.Error("Rate limit exceeded",
			zap.String("type", "document"),
			zap.String("mimeType", mimeType),
			zap.Error(err),
		)
		return "", fmt.Errorf("rate limit exceeded: %w", err)
	}

	config.Logger.Info("Processing document with Gemini",
		zap.String("type", "document"),
		zap.String("mimeType", mimeType),
		zap.Int("fileSize", len(fileBytes)),
	)

	parts := []*genai.Part{
		{Text: prompt},
		{InlineData: &genai.Blob{
			MIMEType: mimeType,
			Data:     fileBytes,
		}},
	}

	contents := []*genai.Content{
		{Parts: parts},
	}

	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		config.Logger.Error("Gemini API request failed",
			zap.String("type", "document"),
			zap.String("mimeType", mimeType),
			zap.Error(err),
		)
		return "", err
	}

	result := resp.Text()
	g.cacheResponse(cacheKey, result)

	return result, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryableErrors := []string{
		"rate limit",
		"quota exceeded",
		"temporary",
		"timeout",
		"connection",
		"503",
		"429",
		"internal error",
		"service unavailable",
	}

	for _, retryable := range retryableErrors {
		if strings.Contains(errStr, retryable) {
			return true
		}
	}
	return false
}

func cacheKeyFor(data []byte) string {
	hash := md5.Sum(data)
	return hex.EncodeToString(hash[:])
}

func (g *GeminiService) getFromCache(key string) string {
	g.cacheMutex.RLock()
	defer g.cacheMutex.RUnlock()

	if cached, exists := g.cache[key]; exists && time.Now().Before(cached.ExpiresAt) {
		return cached.Data
	}
	return ""
}

func (g *GeminiService) cacheResponse(key, response string) {
	g.cacheMutex.Lock()
	defer g.cacheMutex.Unlock()

	g.cache[key] = &CachedResponse{
		Data:      response,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func (g *GeminiService) startCacheCleanup() {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			g.cleanupExpiredCache()
		}
	}()
}

func (g *GeminiService) cleanupExpiredCache() {
	g.cacheMutex.Lock()
	defer g.cacheMutex.Unlock()

	now := time.Now()
	for key, cached := range g.cache {
		if now.After(cached.ExpiresAt) {
			delete(g.cache, key)
		}
	}
}
