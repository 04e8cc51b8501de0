package config

const geminiAPIKeyEnv = "GEMINI_API_KEY"

// GetGeminiAPIKey returns the extraction API key, or empty when unset.
// Extraction is an optional capability: the caller decides whether a
// missing key is fatal.
func GetGeminiAPIKey() string {
	return GetEnv(geminiAPIKeyEnv)
}
