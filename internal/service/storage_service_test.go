package service

import (
	"testing"

	"learnify_backend/internal/config"
	"learnify_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewStorageServiceFallsBackWhenMinioInitFails(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = prev }()

	cfg := &config.Config{}
	cfg.Storage.Type = "minio"
	cfg.Storage.MinioEndpoint = "not a valid endpoint"
	cfg.Storage.LocalPath = t.TempDir()

	svc := NewStorageService(cfg)

	_, local := svc.Provider.(*LocalStorageProvider)
	assert.True(t, local, "a broken MinIO setup must not leave uploads unwired")
	assert.Equal(t, 1, logs.FilterMessage("MinIO client init failed, falling back to local storage").Len(),
		"the fallback has to be visible in the logs")
}
