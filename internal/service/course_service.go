package service

import (
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

func (s *CourseService) GetAll() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

func (s *CourseService) Create(course *model.Course) error {
	return s.CourseRepo.Create(course)
}

func (s *CourseService) Update(course *model.Course) error {
	if _, err := s.CourseRepo.FindByID(course.ID); err != nil {
		return util.ErrCourseNotFound
	}
	return s.CourseRepo.Update(course)
}

func (s *CourseService) Delete(id uint) error {
	return s.CourseRepo.Delete(id)
}
