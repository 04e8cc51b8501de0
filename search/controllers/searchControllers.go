package controllers

import (
	"github.com/YiChiaPeng/ryan-travel-agency/search/repositories"
)

type SearchController struct {
	repo repositories.SearchRepositoryInterface
}

func NewSearchController(repo repositories.SearchRepositoryInterface) *SearchController {
	return &SearchController{repo: repo}
}
