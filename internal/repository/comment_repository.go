package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.First(&comment, id).Error
	return &comment, err
}

func (r *CommentRepository) FindByArticle(articleID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Where("article_id = ?", articleID).Order("id ASC").Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) FindByParent(parentID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Where("parent_id = ?", parentID).Order("id ASC").Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}
