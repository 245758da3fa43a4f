package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectIdeaRepository struct {
	DB *gorm.DB
}

func NewProjectIdeaRepository(db *gorm.DB) *ProjectIdeaRepository {
	return &ProjectIdeaRepository{DB: db}
}

func (r *ProjectIdeaRepository) Create(idea *model.ProjectIdea) error {
	return r.DB.Create(idea).Error
}

func (r *ProjectIdeaRepository) FindByID(id uint) (*model.ProjectIdea, error) {
	var idea model.ProjectIdea
	err := r.DB.First(&idea, id).Error
	return &idea, err
}

func (r *ProjectIdeaRepository) FindAll() ([]model.ProjectIdea, error) {
	var ideas []model.ProjectIdea
	err := r.DB.Find(&ideas).Error
	return ideas, err
}
