package service

import (
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	CourseRepo *repository.CourseRepository
}

func NewLessonService(lessonRepo *repository.LessonRepository, courseRepo *repository.CourseRepository) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		CourseRepo: courseRepo,
	}
}

func (s *LessonService) GetByCourse(courseID uint) ([]model.Lesson, error) {
	return s.LessonRepo.FindByCourse(courseID)
}

func (s *LessonService) Get(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrLessonNotFound
	}
	return lesson, nil
}

func (s *LessonService) Create(courseID uint, lesson *model.Lesson) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return util.ErrCourseNotFound
	}
	lesson.CourseID = courseID
	return s.LessonRepo.Create(lesson)
}

func (s *LessonService) Update(lesson *model.Lesson) error {
	if _, err := s.LessonRepo.FindByID(lesson.ID); err != nil {
		return util.ErrLessonNotFound
	}
	return s.LessonRepo.Update(lesson)
}

func (s *LessonService) Delete(id uint) error {
	return s.LessonRepo.Delete(id)
}
