package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/linskybing/report-hub/internal/repository"
)

type StatisticsService struct {
	Repos *repository.Repos
}

func NewStatisticsService(repos *repository.Repos) *StatisticsService {
	return &StatisticsService{Repos: repos}
}

// GetStatistics counts reports per status, across every project or for one.
// Each status is counted on its own inside a single transaction.
func (s *StatisticsService) GetStatistics(ctx context.Context, projectID *uuid.UUID) (submission.Statistics, error) {
	if projectID != nil {
		if err := projectExists(ctx, s.Repos, *projectID); err != nil {
			return submission.Statistics{}, err
		}
	}

	counts := submission.Counts{}
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		for _, st := range submission.Statuses {
			n, err := tx.Submission.CountByStatus(ctx, st, projectID)
			if err != nil {
				return err
			}
			counts[st] = n
		}
		return nil
	})
	if err != nil {
		return submission.Statistics{}, err
	}
	return submission.NewStatistics(counts), nil
}
