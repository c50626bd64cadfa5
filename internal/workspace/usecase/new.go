package usecase

import (
	"time"

	"rima-workspace/internal/assistant"
	"rima-workspace/internal/extractor"
	"rima-workspace/internal/insight"
	"rima-workspace/internal/workspace/repository"
	pkgLog "rima-workspace/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	extractor extractor.Service
	insights  insight.Generator
	responder assistant.Responder
	now       func() time.Time
}

// New creates a new workspace UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	ext extractor.Service,
	insights insight.Generator,
	responder assistant.Responder,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		extractor: ext,
		insights:  insights,
		responder: responder,
		now:       time.Now,
	}
}
