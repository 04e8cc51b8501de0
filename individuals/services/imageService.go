package services

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeImageData accepts either a data URI ("data:image/png;base64,...")
// or a bare base64 string and returns the raw bytes. Malformed input is an
// error rather than a silently stored null.
func DecodeImageData(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}

	payload := value
	if strings.HasPrefix(value, "data:") {
		idx := strings.Index(value, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URI: missing payload separator")
		}
		header := value[:idx]
		if !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("malformed data URI: only base64 encoding is supported")
		}
		payload = value[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	return decoded, nil
}

// EncodeImageData wraps raw bytes into a data URI for JSON responses.
func EncodeImageData(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}
