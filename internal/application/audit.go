package application

import (
	"context"
	"log"

	"github.com/linskybing/report-hub/internal/domain/audit"
	"github.com/linskybing/report-hub/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(ctx, params)
}

func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) error {
	n, err := s.Repos.Audit.DeleteOldAuditLogs(ctx, days)
	if err != nil {
		return err
	}
	log.Printf("[audit] removed %d entries older than %d days", n, days)
	return nil
}
