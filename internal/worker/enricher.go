package worker

import (
	"context"
	"fmt"

	"scamwatch/internal/lookup"
	"scamwatch/internal/report"
	"scamwatch/pkg/domain"
	"scamwatch/pkg/logger"
	"scamwatch/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EnrichmentWorker is a River worker that enriches a fresh consolidated scam
// aggregate with a risk snapshot from the lookup providers. It runs every
// enabled provider for the aggregate's identifier and stores the worst verdict
// together with the highest risk score.
type EnrichmentWorker struct {
	river.WorkerDefaults[report.EnrichJobArgs]

	// storage reads the aggregate and persists the risk snapshot.
	storage storage.Storage
	// lookup fans the identifier out to the configured providers.
	lookup lookup.Service
}

// NewEnrichmentWorker constructs an EnrichmentWorker using the provided
// storage and lookup service.
func NewEnrichmentWorker(storage storage.Storage, lookup lookup.Service) *EnrichmentWorker {
	return &EnrichmentWorker{
		storage: storage,
		lookup:  lookup,
	}
}

// lookupTypeFor maps a scam type to the provider lookup type used for
// enrichment. Business names have no lookup counterpart and report false.
func lookupTypeFor(scamType domain.ScamType) (domain.LookupType, bool) {
	switch scamType {
	case domain.ScamTypePhone:
		return domain.LookupTypePhone, true
	case domain.ScamTypeEmail:
		return domain.LookupTypeEmail, true
	default:
		return "", false
	}
}

// Work executes a single enrichment job. A vanished aggregate cancels the job;
// an aggregate without a lookupable identifier type completes without a
// snapshot. Provider failures are already degraded by the lookup service, so
// an all-unknown outcome still records the snapshot taken.
func (e *EnrichmentWorker) Work(ctx context.Context, job *river.Job[report.EnrichJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("consolidatedID", job.Args.ConsolidatedID))

	id, err := uuid.Parse(job.Args.ConsolidatedID)
	if err != nil {
		return river.JobCancel(fmt.Errorf("invalid consolidated ID: %w", err)) //nolint: wrapcheck
	}

	agg, err := e.storage.ConsolidatedByID(ctx, domain.ConsolidatedID(id))
	if err != nil {
		return fmt.Errorf("could not get consolidated scam: %w", err)
	}
	if agg == nil {
		return river.JobCancel(fmt.Errorf("consolidated scam %s not found", id)) //nolint: wrapcheck
	}

	lookupType, ok := lookupTypeFor(agg.Type)
	if !ok {
		logger.Debug(ctx, "scam type has no lookup counterpart, skipping enrichment",
			zap.String("scamType", string(agg.Type)))

		return nil
	}

	results, err := e.lookup.Lookup(ctx, lookupType, agg.Identifier)
	if err != nil {
		logger.Error(ctx, "error looking up identifier", zap.Error(err))

		return fmt.Errorf("could not look up identifier: %w", err)
	}
	if len(results) == 0 {
		logger.Debug(ctx, "no providers configured, skipping enrichment")

		return nil
	}

	status := domain.LookupStatusUnknown
	score := 0
	for _, res := range results {
		if res.Status.Severity() > status.Severity() {
			status = res.Status
		}
		if res.RiskScore > score {
			score = res.RiskScore
		}
	}

	if err := e.storage.UpdateConsolidatedRisk(ctx, agg.ID, score, status); err != nil {
		return fmt.Errorf("could not update consolidated risk: %w", err)
	}

	logger.Info(ctx, "consolidated scam enriched",
		zap.Int("riskScore", score),
		zap.String("riskStatus", string(status)))

	return nil
}
