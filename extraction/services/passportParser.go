package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PassportInfo is the structured result of passport extraction.
type PassportInfo struct {
	PassportNumber   string `json:"passport_number"`
	Surname          string `json:"surname"`
	GivenNames       string `json:"given_names"`
	ChineseName      string `json:"chinese_name,omitempty"`
	Nationality      string `json:"nationality"`
	Sex              string `json:"sex"`
	DateOfBirth      string `json:"date_of_birth"`
	DateOfIssue      string `json:"date_of_issue"`
	DateOfExpiry     string `json:"date_of_expiry"`
	PlaceOfBirth     string `json:"place_of_birth,omitempty"`
	IssuingAuthority string `json:"issuing_authority,omitempty"`
	NationalID       string `json:"national_id,omitempty"`
}

// ExtractionPrompt instructs the model to answer with bare JSON matching
// PassportInfo. Shared by the text and multimodal paths.
const ExtractionPrompt = `Extract the passport information and respond with ONLY a JSON object, no markdown, using exactly these keys:
{"passport_number": "", "surname": "", "given_names": "", "chinese_name": "", "nationality": "", "sex": "", "date_of_birth": "", "date_of_issue": "", "date_of_expiry": "", "place_of_birth": "", "issuing_authority": "", "national_id": ""}
Dates must be formatted YYYY-MM-DD. Use an empty string for anything not present.`

// OCRPrompt asks for a plain transcription of everything visible.
const OCRPrompt = `Transcribe all text visible in this document image. Preserve the reading order. Respond with the raw text only, no commentary.`

// ParsePassportInfo pulls the JSON object out of a model response. Models
// often wrap their answer in markdown fences or prose, so the parse is
// lenient: it takes the substring between the first '{' and the last '}'.
func ParsePassportInfo(response string) (*PassportInfo, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var info PassportInfo
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &info); err != nil {
		return nil, fmt.Errorf("failed to parse passport info: %w", err)
	}

	return &info, nil
}
