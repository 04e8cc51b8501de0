package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/applications/repositories"
	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/middleware"
	"github.com/YiChiaPeng/ryan-travel-agency/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExportController struct {
	ApplicationRepo repositories.ApplicationRepository
}

var exportHeaders = []string{
	"Application ID",
	"Customer Name",
	"Individual (Chinese)",
	"Individual (English)",
	"National ID",
	"Type",
	"Urgency",
	"Application Date",
	"Status",
	"Substatus",
	"Reason",
	"Created At",
}

// ExportCompanyApplications streams a spreadsheet of one company's
// applications. Users may export their own company only; admins may
// export any.
func (ec *ExportController) ExportCompanyApplications(c *fiber.Ctx) error {
	payload := middleware.CurrentUser(c)
	if payload == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"data":    nil,
			"error":   "Missing or invalid token.",
		})
	}

	company := c.Params("company")
	if company == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Company name is required.",
		})
	}

	if !middleware.VerifyCompanyPermission(payload, company, true) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
			"data":    nil,
			"error":   "You may only export your own company's records.",
		})
	}

	applications, err := ec.ApplicationRepo.ListByCompany(company)
	if err != nil {
		config.Logger.Error("Failed to load applications for export",
			zap.String("company", company),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Export failed",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	rows := make([][]interface{}, 0, len(applications))
	for i := range applications {
		application := &applications[i]

		nationalID := ""
		if application.Individual.NationalID != nil {
			nationalID = *application.Individual.NationalID
		}
		substatus := ""
		if application.Substatus != nil {
			substatus = string(*application.Substatus)
		}
		reason := ""
		if application.Reason != nil {
			reason = *application.Reason
		}

		rows = append(rows, []interface{}{
			application.ID.String(),
			application.CustomerName,
			application.Individual.FullChineseName(),
			application.Individual.FullEnglishName(),
			nationalID,
			string(application.ApplicationType),
			string(application.Urgency),
			utils.FormatDate(application.ApplicationDate),
			string(application.Status),
			substatus,
			reason,
			application.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	filePath, err := utils.GenerateExcel("applications_"+utils.SanitizeFileName(company), exportHeaders, rows)
	if err != nil {
		config.Logger.Error("Failed to generate export file",
			zap.String("company", company),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Export failed",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	config.Logger.Info("Export generated",
		zap.String("company", company),
		zap.Int("rows", len(rows)),
		zap.String("file", filePath),
	)

	return c.Download(filePath)
}
