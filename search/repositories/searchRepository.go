package repositories

import (
	"github.com/YiChiaPeng/ryan-travel-agency/db/models"
	"github.com/YiChiaPeng/ryan-travel-agency/search/services"

	"github.com/blevesearch/bleve/v2"
)

type SearchRepository struct {
	indexer *services.IndexingService
}

type SearchRepositoryInterface interface {
	DeleteAllIndices() error

	// ==== Individual indexing ====
	IndexSingleIndividual(individual models.Individual) error
	IndexExistingIndividuals(individuals []models.Individual) error
	SearchIndividuals(queryString string) (*bleve.SearchResult, error)

	// ==== Application indexing ====
	IndexSingleApplication(application models.Application) error
	IndexExistingApplications(applications []models.Application) error
	DeleteApplication(applicationID string) error
	SearchApplications(queryString, status string) (*bleve.SearchResult, error)
}

// Constructor returning both the struct and the interface
func NewSearchRepository(indexer *services.IndexingService) (*SearchRepository, SearchRepositoryInterface) {
	repo := &SearchRepository{indexer: indexer}
	return repo, repo
}

func (r *SearchRepository) DeleteAllIndices() error {
	return r.indexer.DeleteAllIndices()
}
