package service

import (
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
)

// SearchResult bundles the two full-text corpora behind a single query.
type SearchResult struct {
	Articles []model.Article   `json:"articles"`
	Pdfs     []model.PdfUpload `json:"pdfs"`
}

type SearchService struct {
	ArticleRepo *repository.ArticleRepository
	PdfRepo     *repository.PdfUploadRepository
}

func NewSearchService(articleRepo *repository.ArticleRepository, pdfRepo *repository.PdfUploadRepository) *SearchService {
	return &SearchService{
		ArticleRepo: articleRepo,
		PdfRepo:     pdfRepo,
	}
}

func (s *SearchService) SearchArticles(query string) ([]model.Article, error) {
	return s.ArticleRepo.FullTextSearch(query)
}

func (s *SearchService) SearchPdfs(query string) ([]model.PdfUpload, error) {
	return s.PdfRepo.FullTextSearch(query)
}

// SearchAll runs both corpora. A failure in either aborts the whole query
// rather than returning a partial result.
func (s *SearchService) SearchAll(query string) (*SearchResult, error) {
	articles, err := s.ArticleRepo.FullTextSearch(query)
	if err != nil {
		return nil, err
	}
	pdfs, err := s.PdfRepo.FullTextSearch(query)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Articles: articles, Pdfs: pdfs}, nil
}
