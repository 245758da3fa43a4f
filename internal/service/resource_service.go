package service

import (
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"
)

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
	LessonRepo   *repository.LessonRepository
}

func NewResourceService(resourceRepo *repository.ResourceRepository, lessonRepo *repository.LessonRepository) *ResourceService {
	return &ResourceService{
		ResourceRepo: resourceRepo,
		LessonRepo:   lessonRepo,
	}
}

func (s *ResourceService) GetByLesson(lessonID uint) ([]model.Resource, error) {
	return s.ResourceRepo.FindByLesson(lessonID)
}

func (s *ResourceService) Create(lessonID uint, resource *model.Resource) error {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		return util.ErrLessonNotFound
	}
	resource.LessonID = lessonID
	return s.ResourceRepo.Create(resource)
}

// Update changes name, type and URL; the lesson binding is immutable.
func (s *ResourceService) Update(id uint, updated *model.Resource) (*model.Resource, error) {
	resource, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrResourceNotFound
	}

	resource.Name = updated.Name
	resource.Type = updated.Type
	resource.URL = updated.URL
	if err := s.ResourceRepo.Update(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) Delete(id uint) error {
	return s.ResourceRepo.Delete(id)
}
