package report

import (
	"context"
	"fmt"
	"time"

	"scamwatch/internal/config"
	"scamwatch/pkg/domain"
	"scamwatch/pkg/serrors"
	"scamwatch/pkg/storage"

	"github.com/google/uuid"
)

// Options configure how reports are consolidated and how enrichment jobs are
// enqueued. These settings are typically derived from application configuration.
type Options struct {
	// EnrichMaxAttempts is the maximum number of attempts the background worker
	// should make when processing an enrichment job before marking it failed.
	EnrichMaxAttempts int
	// EnrichUniquePeriod is the lookback window during which enrichment of the
	// same aggregate is considered a duplicate instead of enqueueing a new job.
	EnrichUniquePeriod time.Duration
	// SearchLimit caps the number of consolidated aggregates returned by a search.
	SearchLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		EnrichMaxAttempts:  cfg.Enrichment.MaxAttempts,
		EnrichUniquePeriod: cfg.Enrichment.UniquePeriod,
		SearchLimit:        cfg.Lookup.SearchLimit,
	}
}

// service is the concrete implementation of the Service interface.
// It coordinates persistence with the storage layer and job enqueueing.
type service struct {
	// options holds runtime configuration that affects consolidation and search.
	options Options
	// storage is the persistence layer used to store reports and manage jobs.
	storage storage.Storage
}

// Submit stores a new report and, when it carries an identifier, folds it into
// its consolidated aggregate within the same transaction. The first report of
// a fresh aggregate also enqueues a background enrichment job; a missing or
// empty identifier skips consolidation but the report is still accepted.
func (s service) Submit(ctx context.Context, report domain.ScamReport) (*domain.ScamReport, error) {
	switch report.Type {
	case domain.ScamTypePhone, domain.ScamTypeEmail, domain.ScamTypeBusiness:
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown scam type %q", report.Type)
	}
	if report.Description == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "description is required")
	}
	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now().UTC()
	}

	var stored *domain.ScamReport
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreReports(ctx, report)
		if err != nil {
			return fmt.Errorf("could not store report: %w", err)
		}
		stored = &res[0]

		value, ok := stored.Identifier()
		if !ok {
			return nil
		}

		agg, err := tx.UpsertConsolidatedScam(ctx,
			stored.Type,
			NormalizeIdentifier(stored.Type, value),
			stored.ReportedAt)
		if err != nil {
			return fmt.Errorf("could not upsert consolidated scam: %w", err)
		}

		if err := tx.LinkReportConsolidation(ctx, stored.ID, agg.ID); err != nil {
			return fmt.Errorf("could not link report consolidation: %w", err)
		}

		// a fresh aggregate has never been looked up against the providers,
		// enrich it in the background. Existing aggregates keep their snapshot.
		if agg.ReportCount == 1 {
			if _, err := tx.AddJob(ctx, EnrichJobArgs{
				ConsolidatedID:  uuid.UUID(agg.ID).String(),
				maxAttempts:     s.options.EnrichMaxAttempts,
				uniqueJobPeriod: s.options.EnrichUniquePeriod,
			}, nil); err != nil {
				return fmt.Errorf("could not add enrichment job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit report: %w", err)
	}

	return stored, nil
}

// Report fetches a single report by ID for the given user. It returns a
// not-found error when no matching report exists.
func (s service) Report(ctx context.Context,
	userID domain.UserID,
	id domain.ReportID) (*domain.ScamReport, error) {
	res, err := s.storage.UserReportByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report not found")
	}

	return res, nil
}

// UserReports returns a page of reports for the given user. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (s service) UserReports(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.ScamReport, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserReports(ctx, userID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user reports: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Reports, next, nil
}

// Verify sets the verification flag on a report. Verifying a report also marks
// every aggregate it was folded into as verified; un-verifying only touches
// the report itself, the aggregate flag is one-way.
func (s service) Verify(ctx context.Context,
	adminID domain.UserID,
	id domain.ReportID,
	verified bool) (*domain.ScamReport, error) {
	var updated *domain.ScamReport
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.UpdateReportByID(ctx, id, storage.ReportUpdates{
			Verified:   &verified,
			VerifiedBy: &adminID,
		})
		if err != nil {
			return fmt.Errorf("could not update report: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "report not found")
		}
		updated = res

		if verified {
			if err := tx.MarkVerifiedByReport(ctx, id); err != nil {
				return fmt.Errorf("could not mark consolidations verified: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Publish sets the publication flag on a report. It returns a not-found error
// when no matching report exists.
func (s service) Publish(ctx context.Context,
	adminID domain.UserID,
	id domain.ReportID,
	published bool) (*domain.ScamReport, error) {
	res, err := s.storage.UpdateReportByID(ctx, id, storage.ReportUpdates{
		Published:   &published,
		PublishedBy: &adminID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update report: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report not found")
	}

	return res, nil
}

// SearchScams returns consolidated aggregates of the given type matching the
// query, most recently seen first, capped by the configured search limit.
func (s service) SearchScams(ctx context.Context,
	scamType domain.ScamType,
	query string) ([]domain.ConsolidatedScam, error) {
	switch scamType {
	case domain.ScamTypePhone, domain.ScamTypeEmail, domain.ScamTypeBusiness:
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown scam type %q", scamType)
	}

	res, err := s.storage.SearchConsolidatedScams(ctx, scamType, query, s.options.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("could not search consolidated scams: %w", err)
	}

	return res, nil
}

// New creates a new Service instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Service {
	return &service{
		options: options,
		storage: storage,
	}
}
