package controllers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	internal_services "github.com/YiChiaPeng/ryan-travel-agency/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errUpstream = errors.New("backend returned 500")

// stubBackend serves canned OCR and extraction responses.
type stubBackend struct {
	ocrText string
	ocrErr  error
	llmText string
	llmErr  error
}

func (s *stubBackend) ProcessDocumentWithPrompt(_ context.Context, _ []byte, _ string, _ string) (string, error) {
	return s.ocrText, s.ocrErr
}

func (s *stubBackend) GenerateContentWithRetry(_ context.Context, _ string, _ *internal_services.RetryConfig) (string, error) {
	return s.llmText, s.llmErr
}

func newExtractionApp(backend ExtractionBackend) *fiber.App {
	config.Logger = zap.NewNop()
	controller := &ExtractionController{Gemini: backend}
	app := fiber.New()
	app.Post("/extract", controller.ExtractPassportComplete)
	return app
}

func postImage(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	imageData := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\nfake"))
	payload, err := json.Marshal(fiber.Map{"image_data": imageData})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/extract", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestExtractPassportCompleteSuccess(t *testing.T) {
	app := newExtractionApp(&stubBackend{
		ocrText: "PASSPORT P12345678 WANG XIAOMING",
		llmText: `{"passport_number": "P12345678", "surname": "WANG"}`,
	})

	status, body := postImage(t, app)
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]interface{})
	info := data["passport_info"].(map[string]interface{})
	require.Equal(t, "P12345678", info["passport_number"])
	require.Equal(t, "PASSPORT P12345678 WANG XIAOMING", data["ocr_text"])
}

func TestExtractPassportCompleteUnparseableResponse(t *testing.T) {
	app := newExtractionApp(&stubBackend{
		ocrText: "PASSPORT P12345678",
		llmText: "I could not find any passport fields in this text.",
	})

	status, body := postImage(t, app)
	require.Equal(t, fiber.StatusUnprocessableEntity, status)

	data := body["data"].(map[string]interface{})
	require.Equal(t, "llm", data["step"])
	require.NotEmpty(t, body["error"])
}

func TestExtractPassportCompleteEmptyTranscription(t *testing.T) {
	app := newExtractionApp(&stubBackend{ocrText: "   \n  "})

	status, body := postImage(t, app)
	require.Equal(t, fiber.StatusUnprocessableEntity, status)

	data := body["data"].(map[string]interface{})
	require.Equal(t, "ocr", data["step"])
}

func TestExtractPassportCompleteUpstreamFailure(t *testing.T) {
	app := newExtractionApp(&stubBackend{ocrErr: errUpstream})

	status, body := postImage(t, app)
	require.Equal(t, fiber.StatusBadGateway, status)

	data := body["data"].(map[string]interface{})
	require.Equal(t, "ocr", data["step"])
}

func TestExtractPassportCompleteUnconfigured(t *testing.T) {
	app := newExtractionApp(nil)

	status, _ := postImage(t, app)
	require.Equal(t, fiber.StatusServiceUnavailable, status)
}
