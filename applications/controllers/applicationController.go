package controllers

import (
	"fmt"

	"github.com/YiChiaPeng/ryan-travel-agency/applications/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/applications/requests"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	individual_services "github.com/YiChiaPeng/ryan-travel-agency/individuals/services"
	search_repositories "github.com/YiChiaPeng/ryan-travel-agency/search/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationController struct {
	ApplicationRepo repositories.ApplicationRepository
	SearchRepo      search_repositories.SearchRepositoryInterface
}

// applicationResponse is the denormalized view: application fields plus
// summaries of the owning user and the referenced individual.
func applicationResponse(application *models.Application) fiber.Map {
	data := fiber.Map{
		"id":               application.ID.String(),
		"user_id":          application.UserID.String(),
		"individual_id":    application.IndividualID.String(),
		"application_type": application.ApplicationType,
		"urgency":          application.Urgency,
		"application_date": utils.FormatDate(application.ApplicationDate),
		"customer_name":    application.CustomerName,
		"status":           application.Status,
		"substatus":        application.Substatus,
		"reason":           application.Reason,
		"resubmissions":    application.Resubmissions,
		"created_at":       application.CreatedAt,
		"updated_at":       application.UpdatedAt,
	}

	if application.Individual.ID != uuid.Nil {
		data["individual_name"] = application.Individual.FullChineseName()
		data["individual"] = fiber.Map{
			"id":                 application.Individual.ID.String(),
			"chinese_last_name":  application.Individual.ChineseLastName,
			"chinese_first_name": application.Individual.ChineseFirstName,
			"english_last_name":  application.Individual.EnglishLastName,
			"english_first_name": application.Individual.EnglishFirstName,
			"national_id":        application.Individual.NationalID,
			"gender":             application.Individual.Gender,
		}
	}

	if application.User.ID != uuid.Nil {
		data["user"] = fiber.Map{
			"id":           application.User.ID.String(),
			"username":     application.User.Username,
			"company_name": application.User.CompanyName,
		}
	}

	return data
}

// individualFromRequest builds the upsert payload for application
// creation, decoding any supplied images.
func individualFromRequest(data *requests.IndividualData) (*models.Individual, error) {
	individual := &models.Individual{
		ChineseLastName:  data.ChineseLastName,
		ChineseFirstName: data.ChineseFirstName,
	}
	if data.EnglishLastName != nil {
		individual.EnglishLastName = *data.EnglishLastName
	}
	if data.EnglishFirstName != nil {
		individual.EnglishFirstName = *data.EnglishFirstName
	}
	if data.NationalID != nil && *data.NationalID != "" {
		individual.NationalID = data.NationalID
	}
	if data.Gender != nil && *data.Gender != "" {
		gender := models.Gender(*data.Gender)
		individual.Gender = &gender
	}

	for _, field := range []struct {
		value *string
		dest  *[]byte
		name  string
	}{
		{data.PassportInfoImage, &individual.PassportInfoImage, "passport_info_image"},
		{data.IDCardFrontImage, &individual.IDCardFrontImage, "id_card_front_image"},
		{data.IDCardBackImage, &individual.IDCardBackImage, "id_card_back_image"},
	} {
		if field.value == nil || *field.value == "" {
			continue
		}
		decoded, err := individual_services.DecodeImageData(*field.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dest = decoded
	}

	return individual, nil
}

// individualUpdatesFromRequest builds the column map for the cascaded
// individual update on an application patch.
func individualUpdatesFromRequest(data *requests.UpdateIndividualData) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if data.ChineseLastName != nil && *data.ChineseLastName != "" {
		updates["chinese_last_name"] = *data.ChineseLastName
	}
	if data.ChineseFirstName != nil && *data.ChineseFirstName != "" {
		updates["chinese_first_name"] = *data.ChineseFirstName
	}
	if data.EnglishLastName != nil {
		updates["english_last_name"] = *data.EnglishLastName
	}
	if data.EnglishFirstName != nil {
		updates["english_first_name"] = *data.EnglishFirstName
	}
	if data.NationalID != nil && *data.NationalID != "" {
		updates["national_id"] = *data.NationalID
	}
	if data.Gender != nil && *data.Gender != "" {
		updates["gender"] = *data.Gender
	}

	for _, field := range []struct {
		value  *string
		column string
	}{
		{data.PassportInfoImage, "passport_info_image"},
		{data.IDCardFrontImage, "id_card_front_image"},
		{data.IDCardBackImage, "id_card_back_image"},
	} {
		if field.value == nil || *field.value == "" {
			continue
		}
		decoded, err := individual_services.DecodeImageData(*field.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.column, err)
		}
		updates[field.column] = decoded
	}

	return updates, nil
}
