package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
)

type directoryRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ListAdvisors(ctx context.Context) ([]models.AdvisorSummary, error)
	ListStudents(ctx context.Context) ([]models.StudentSummary, error)
}

type directoryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

const (
	cacheKeyAdvisors = "directory:advisors"
	cacheKeyStudents = "directory:students"
)

// DirectoryService serves the advisor and student listings every role
// browses before acting on a contract. Listings are cached since they
// change rarely and are read on every request form.
type DirectoryService struct {
	repo     directoryRepository
	cache    directoryCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewDirectoryService constructs DirectoryService. A nil cache disables
// caching.
func NewDirectoryService(repo directoryRepository, cache directoryCache, cacheTTL time.Duration, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Advisors returns the advisor directory and whether it was served from
// cache.
func (s *DirectoryService) Advisors(ctx context.Context) ([]models.AdvisorSummary, bool, error) {
	if s.cache != nil {
		var cached []models.AdvisorSummary
		if err := s.cache.Get(ctx, cacheKeyAdvisors, &cached); err == nil {
			return cached, true, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("advisor directory cache read failed", zap.Error(err))
		}
	}

	advisors, err := s.repo.ListAdvisors(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to list advisors")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyAdvisors, advisors, s.cacheTTL); err != nil {
			s.logger.Warn("advisor directory cache write failed", zap.Error(err))
		}
	}
	return advisors, false, nil
}

// Students returns the student directory and whether it was served from
// cache.
func (s *DirectoryService) Students(ctx context.Context) ([]models.StudentSummary, bool, error) {
	if s.cache != nil {
		var cached []models.StudentSummary
		if err := s.cache.Get(ctx, cacheKeyStudents, &cached); err == nil {
			return cached, true, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("student directory cache read failed", zap.Error(err))
		}
	}

	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to list students")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyStudents, students, s.cacheTTL); err != nil {
			s.logger.Warn("student directory cache write failed", zap.Error(err))
		}
	}
	return students, false, nil
}

// AdvisorDetail returns one advisor account for the admin console.
func (s *DirectoryService) AdvisorDetail(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "advisor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load advisor")
	}
	if user.Role != models.RoleAdvisor {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "advisor not found")
	}
	return user, nil
}
