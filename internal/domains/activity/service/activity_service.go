package service

import (
	"context"
	"strings"

	"police-records-backend/internal/domains/activity"
	"police-records-backend/internal/shared/apperror"
)

type activityService struct {
	repo activity.Repository
}

func NewActivityService(repo activity.Repository) activity.Service {
	return &activityService{
		repo: repo,
	}
}

func (s *activityService) ListByCNP(ctx context.Context, cnp string) ([]activity.PersonActivity, error) {
	activities, err := s.repo.ListByCNP(ctx, strings.TrimSpace(cnp))
	if err != nil {
		return nil, err
	}

	if len(activities) == 0 {
		return nil, apperror.NewNotFound("NO_ACTIVITIES", "No activities found for this CNP")
	}

	return activities, nil
}

func (s *activityService) SearchInstitutions(ctx context.Context, name string) ([]activity.Institution, error) {
	institutions, err := s.repo.SearchInstitutions(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	if len(institutions) == 0 {
		return nil, apperror.NewNotFound("NO_INSTITUTIONS", "No institutions match this name")
	}

	return institutions, nil
}
