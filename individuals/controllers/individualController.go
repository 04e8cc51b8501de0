package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/individuals/repositories"

	"github.com/gofiber/fiber/v2"
)

type IndividualController struct {
	IndividualRepo repositories.IndividualRepository
}

// IndividualRequest is the shared payload for create and update. Image
// fields carry base64 data URIs; pointer fields distinguish "absent" from
// "set to empty" on partial updates.
type IndividualRequest struct {
	ChineseLastName   *string `json:"chinese_last_name"`
	ChineseFirstName  *string `json:"chinese_first_name"`
	EnglishLastName   *string `json:"english_last_name"`
	EnglishFirstName  *string `json:"english_first_name"`
	NationalID        *string `json:"national_id"`
	Gender            *string `json:"gender"`
	PassportInfoImage *string `json:"passport_info_image"`
	IDCardFrontImage  *string `json:"id_card_front_image"`
	IDCardBackImage   *string `json:"id_card_back_image"`
}

// individualResponse omits the image blobs; clients fetch those through
// the dedicated image endpoints.
func individualResponse(individual *models.Individual) fiber.Map {
	var gender *string
	if individual.Gender != nil {
		g := string(*individual.Gender)
		gender = &g
	}

	return fiber.Map{
		"id":                  individual.ID.String(),
		"chinese_last_name":   individual.ChineseLastName,
		"chinese_first_name":  individual.ChineseFirstName,
		"chinese_name":        individual.FullChineseName(),
		"english_last_name":   individual.EnglishLastName,
		"english_first_name":  individual.EnglishFirstName,
		"national_id":         individual.NationalID,
		"gender":              gender,
		"has_passport_image":  len(individual.PassportInfoImage) > 0,
		"has_id_front_image":  len(individual.IDCardFrontImage) > 0,
		"has_id_back_image":   len(individual.IDCardBackImage) > 0,
		"created_at":          individual.CreatedAt,
		"updated_at":          individual.UpdatedAt,
	}
}

func parseGender(value string) (*models.Gender, error) {
	switch value {
	case "":
		return nil, nil
	case string(models.MaleGender):
		g := models.MaleGender
		return &g, nil
	case string(models.FemaleGender):
		g := models.FemaleGender
		return &g, nil
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "gender must be male or female")
	}
}
