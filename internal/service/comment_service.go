package service

import (
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"
)

type CommentService struct {
	CommentRepo *repository.CommentRepository
	ArticleRepo *repository.ArticleRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, articleRepo *repository.ArticleRepository) *CommentService {
	return &CommentService{
		CommentRepo: commentRepo,
		ArticleRepo: articleRepo,
	}
}

func (s *CommentService) GetByArticle(articleID uint) ([]model.Comment, error) {
	return s.CommentRepo.FindByArticle(articleID)
}

func (s *CommentService) Get(id uint) (*model.Comment, error) {
	comment, err := s.CommentRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrCommentNotFound
	}
	return comment, nil
}

func (s *CommentService) GetReplies(parentID uint) ([]model.Comment, error) {
	if _, err := s.CommentRepo.FindByID(parentID); err != nil {
		return nil, util.ErrCommentNotFound
	}
	return s.CommentRepo.FindByParent(parentID)
}

// Create validates the article and, when given, the parent before writing.
// A parent must belong to the same article to keep the tree consistent.
func (s *CommentService) Create(comment *model.Comment) error {
	if _, err := s.ArticleRepo.FindByID(comment.ArticleID); err != nil {
		return util.ErrArticleNotFound
	}

	if comment.ParentID != nil {
		parent, err := s.CommentRepo.FindByID(*comment.ParentID)
		if err != nil {
			return util.ErrCommentNotFound
		}
		if parent.ArticleID != comment.ArticleID {
			return util.ErrCommentNotFound
		}
	}

	return s.CommentRepo.Create(comment)
}

func (s *CommentService) Delete(id uint) error {
	return s.CommentRepo.Delete(id)
}
