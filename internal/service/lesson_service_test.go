package service

import (
	"testing"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLessonFixture(t *testing.T) (*LessonService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewLessonService(
		repository.NewLessonRepository(db),
		repository.NewCourseRepository(db),
	)
	return svc, db
}

func TestLessonsOrderedBySequence(t *testing.T) {
	svc, db := newLessonFixture(t)
	course := createTestCourse(t, db, "Go basics")

	require.NoError(t, svc.Create(course.ID, &model.Lesson{Title: "Third", SequenceOrder: 3}))
	require.NoError(t, svc.Create(course.ID, &model.Lesson{Title: "First", SequenceOrder: 1}))
	require.NoError(t, svc.Create(course.ID, &model.Lesson{Title: "Second", SequenceOrder: 2}))

	lessons, err := svc.GetByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	assert.Equal(t, "First", lessons[0].Title)
	assert.Equal(t, "Second", lessons[1].Title)
	assert.Equal(t, "Third", lessons[2].Title)
}

func TestCreateLessonMissingCourse(t *testing.T) {
	svc, _ := newLessonFixture(t)

	err := svc.Create(999, &model.Lesson{Title: "Orphan"})
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}
