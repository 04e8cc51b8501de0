package repositories

import (
	"strings"

	"github.com/YiChiaPeng/ryan-travel-agency/config"
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

const individualsIndex = "individuals"

type individualDoc struct {
	ID               string `json:"id"`
	ChineseLastName  string `json:"chinese_last_name"`
	ChineseFirstName string `json:"chinese_first_name"`
	ChineseName      string `json:"chinese_name"`
	EnglishLastName  string `json:"english_last_name,omitempty"`
	EnglishFirstName string `json:"english_first_name,omitempty"`
	NationalID       string `json:"national_id,omitempty"`
}

func newIndividualDoc(individual models.Individual) individualDoc {
	doc := individualDoc{
		ID:               individual.ID.String(),
		ChineseLastName:  individual.ChineseLastName,
		ChineseFirstName: individual.ChineseFirstName,
		ChineseName:      individual.FullChineseName(),
		EnglishLastName:  individual.EnglishLastName,
		EnglishFirstName: individual.EnglishFirstName,
	}
	if individual.NationalID != nil {
		doc.NationalID = *individual.NationalID
	}
	return doc
}

func (r *SearchRepository) IndexSingleIndividual(individual models.Individual) error {
	err := r.indexer.IndexDocument(individualsIndex, individual.ID.String(), newIndividualDoc(individual))
	if err != nil {
		config.Logger.Error("Failed to index individual",
			zap.Error(err),
			zap.String("individual_id", individual.ID.String()),
		)
		return err
	}
	return nil
}

func (r *SearchRepository) IndexExistingIndividuals(individuals []models.Individual) error {
	documents := make(map[string]interface{}, len(individuals))
	for _, individual := range individuals {
		documents[individual.ID.String()] = newIndividualDoc(individual)
	}
	if err := r.indexer.BulkIndexDocuments(individualsIndex, documents); err != nil {
		config.Logger.Error("Failed to bulk index individuals", zap.Error(err))
		return err
	}
	return nil
}

func (r *SearchRepository) SearchIndividuals(queryString string) (*bleve.SearchResult, error) {
	queryString = strings.TrimSpace(strings.ToLower(queryString))

	booleanQuery := bleve.NewBooleanQuery()

	// Exact matches on names and national ID rank highest
	exactMatch := bleve.NewBooleanQuery()
	for _, field := range []string{"chinese_name", "national_id"} {
		termQuery := bleve.NewTermQuery(queryString)
		termQuery.SetField(field)
		termQuery.SetBoost(6.0)
		exactMatch.AddShould(termQuery)
	}

	// Fuzzy matches on name parts
	fuzzyMatch := bleve.NewBooleanQuery()
	for _, field := range []string{"chinese_name", "english_last_name", "english_first_name"} {
		fuzzyQuery := bleve.NewFuzzyQuery(queryString)
		fuzzyQuery.SetField(field)
		fuzzyQuery.SetFuzziness(2)
		fuzzyQuery.SetBoost(3.0)
		fuzzyMatch.AddShould(fuzzyQuery)
	}

	// Prefix matches for as-you-type lookups
	prefixMatch := bleve.NewBooleanQuery()
	for _, field := range []string{"chinese_name", "english_last_name", "english_first_name", "national_id"} {
		prefixQuery := bleve.NewPrefixQuery(queryString)
		prefixQuery.SetField(field)
		prefixQuery.SetBoost(2.0)
		prefixMatch.AddShould(prefixQuery)
	}

	booleanQuery.AddShould(exactMatch)
	booleanQuery.AddShould(fuzzyMatch)
	booleanQuery.AddShould(prefixMatch)

	return r.indexer.SearchIndex(individualsIndex, booleanQuery, 50)
}
