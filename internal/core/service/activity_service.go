package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists one audit-feed entry. Called from dispatcher workers only.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	a := &domain.Activity{
		ActorID:    in.ActorID,
		ActorEmail: in.ActorEmail,
		Action:     in.Action,
		Entity:     in.Entity,
		EntityID:   in.EntityID,
		OccurredAt: in.OccurredAt,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return err
	}
	s.log.Debug().
		Str("actor", in.ActorEmail).
		Str("action", in.Action).
		Str("entity", in.Entity).
		Msg("activity recorded")
	return nil
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
