package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrUsernameRegistered = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrPdfNotFound        = errors.New("pdf not found")
	ErrIdeaNotFound       = errors.New("project idea not found")
	ErrNotPdf             = errors.New("file is not a PDF")
	ErrInvalidGitHubURL   = errors.New("invalid GitHub repository URL")
	ErrInvalidRole        = errors.New("invalid role")
)
