package services

import (
	"fmt"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/utils"

	"go.uber.org/zap"
)

var statusLabels = map[models.ApplicationStatus]string{
	models.DraftStatus:             "Draft",
	models.PendingReviewStatus:     "Pending Review",
	models.NeedsResubmissionStatus: "Needs Resubmission",
	models.SubmittedStatus:         "Submitted",
	models.CompletedStatus:         "Completed",
}

// NotifyStatusChange emails the owning account after an admin moves an
// application to a new status. Delivery failures are logged and swallowed;
// the status change itself has already committed.
func NotifyStatusChange(application *models.Application) {
	if application.User.Email == "" {
		config.Logger.Info("Skipping status notification: owner has no email",
			zap.String("applicationID", application.ID.String()),
		)
		return
	}

	label, ok := statusLabels[application.Status]
	if !ok {
		label = string(application.Status)
	}

	subject := fmt.Sprintf("Application %s status update: %s", application.ID.String(), label)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe application for %s has moved to status %q.",
		application.User.CompanyName,
		application.CustomerName,
		label,
	)
	if application.Reason != nil && *application.Reason != "" {
		body += fmt.Sprintf("\n\nReviewer note: %s", *application.Reason)
	}
	body += "\n\nThis is an automated notification."

	if err := utils.SendEmail(application.User.Email, subject, body, ""); err != nil {
		config.Logger.Error("Failed to send status notification",
			zap.String("applicationID", application.ID.String()),
			zap.String("email", application.User.Email),
			zap.Error(err),
		)
		return
	}

	config.Logger.Info("Status notification sent",
		zap.String("applicationID", application.ID.String()),
		zap.String("status", string(application.Status)),
	)
}
