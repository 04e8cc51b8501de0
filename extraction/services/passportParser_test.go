package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{"passport_number": "E12345678", "surname": "WANG", "given_names": "XIAOMING", "chinese_name": "王小明", "nationality": "TWN", "sex": "M", "date_of_birth": "1990-01-02", "date_of_issue": "2020-05-06", "date_of_expiry": "2030-05-06", "place_of_birth": "", "issuing_authority": "", "national_id": "A123456789"}`

func TestParsePassportInfo(t *testing.T) {
	t.Run("bare JSON", func(t *testing.T) {
		info, err := ParsePassportInfo(samplePayload)
		require.NoError(t, err)
		assert.Equal(t, "E12345678", info.PassportNumber)
		assert.Equal(t, "WANG", info.Surname)
		assert.Equal(t, "王小明", info.ChineseName)
		assert.Equal(t, "1990-01-02", info.DateOfBirth)
		assert.Equal(t, "A123456789", info.NationalID)
	})

	t.Run("markdown fenced", func(t *testing.T) {
		info, err := ParsePassportInfo("```json\n" + samplePayload + "\n```")
		require.NoError(t, err)
		assert.Equal(t, "E12345678", info.PassportNumber)
	})

	t.Run("wrapped in prose", func(t *testing.T) {
		info, err := ParsePassportInfo("Here is the extracted data:\n" + samplePayload + "\nLet me know if you need more.")
		require.NoError(t, err)
		assert.Equal(t, "XIAOMING", info.GivenNames)
	})

	t.Run("no JSON object", func(t *testing.T) {
		_, err := ParsePassportInfo("sorry, I could not read the image")
		assert.Error(t, err)
	})

	t.Run("broken JSON", func(t *testing.T) {
		_, err := ParsePassportInfo(`{"passport_number": `)
		assert.Error(t, err)
	})
}
