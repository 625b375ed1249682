package utils

import (
	"context"
	"encoding/json"
	"log"

	"github.com/linskybing/report-hub/internal/domain/audit"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/pkg/types"
)

// LogAudit writes one audit row through repo. Pass a transaction-bound repo
// to commit the row together with the change it describes.
var LogAudit = func(
	ctx context.Context,
	repo repository.AuditRepo,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
) error {
	caller, _ := types.CallerFrom(ctx)

	entry := &audit.AuditLog{
		Actor:        caller.ID(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      marshalAudit(before),
		NewData:      marshalAudit(after),
		IPAddress:    caller.IP,
		UserAgent:    caller.UserAgent,
		Description:  description,
	}
	return repo.CreateAuditLog(ctx, entry)
}

func marshalAudit(v any) []byte {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("Audit marshal error: %v", err)
		return nil
	}
	return b
}
