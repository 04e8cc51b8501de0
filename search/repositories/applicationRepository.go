package repositories

import (
	"strings"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

const applicationsIndex = "applications"

type applicationDoc struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	IndividualID    string `json:"individual_id"`
	ApplicationType string `json:"application_type"`
	Urgency         string `json:"urgency"`
	CustomerName    string `json:"customer_name"`
	Status          string `json:"status"`
	CompanyName     string `json:"company_name,omitempty"`
	IndividualName  string `json:"individual_name,omitempty"`
}

func newApplicationDoc(application models.Application) applicationDoc {
	doc := applicationDoc{
		ID:              application.ID.String(),
		UserID:          application.UserID.String(),
		IndividualID:    application.IndividualID.String(),
		ApplicationType: string(application.ApplicationType),
		Urgency:         string(application.Urgency),
		CustomerName:    application.CustomerName,
		Status:          string(application.Status),
	}
	doc.CompanyName = application.User.CompanyName
	doc.IndividualName = application.Individual.FullChineseName()
	return doc
}

func (r *SearchRepository) IndexSingleApplication(application models.Application) error {
	err := r.indexer.IndexDocument(applicationsIndex, application.ID.String(), newApplicationDoc(application))
	if err != nil {
		config.Logger.Error("Failed to index application",
			zap.Error(err),
			zap.String("application_id", application.ID.String()),
		)
		return err
	}
	return nil
}

func (r *SearchRepository) IndexExistingApplications(applications []models.Application) error {
	documents := make(map[string]interface{}, len(applications))
	for _, application := range applications {
		documents[application.ID.String()] = newApplicationDoc(application)
	}
	if err := r.indexer.BulkIndexDocuments(applicationsIndex, documents); err != nil {
		config.Logger.Error("Failed to bulk index applications", zap.Error(err))
		return err
	}
	return nil
}

func (r *SearchRepository) DeleteApplication(applicationID string) error {
	return r.indexer.DeleteDocument(applicationsIndex, applicationID)
}

func (r *SearchRepository) SearchApplications(queryString, status string) (*bleve.SearchResult, error) {
	queryString = strings.TrimSpace(strings.ToLower(queryString))

	booleanQuery := bleve.NewBooleanQuery()

	textMatch := bleve.NewBooleanQuery()
	for _, field := range []string{"customer_name", "company_name", "individual_name"} {
		phraseQuery := bleve.NewMatchPhraseQuery(queryString)
		phraseQuery.SetField(field)
		phraseQuery.SetBoost(5.0)
		textMatch.AddShould(phraseQuery)

		prefixQuery := bleve.NewPrefixQuery(queryString)
		prefixQuery.SetField(field)
		prefixQuery.SetBoost(2.0)
		textMatch.AddShould(prefixQuery)
	}
	booleanQuery.AddMust(textMatch)

	if status != "" {
		statusQuery := bleve.NewTermQuery(status)
		statusQuery.SetField("status")
		booleanQuery.AddMust(statusQuery)
	}

	return r.indexer.SearchIndex(applicationsIndex, booleanQuery, 50)
}
