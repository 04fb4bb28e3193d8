package lookup

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"scamwatch/pkg/domain"
	"scamwatch/pkg/logger"
	"scamwatch/pkg/metrics"
	"scamwatch/pkg/provider"
	"scamwatch/pkg/provider/abuseipdb"
	"scamwatch/pkg/provider/generic"
	"scamwatch/pkg/provider/ipqs"
	"scamwatch/pkg/provider/virustotal"
	"scamwatch/pkg/serrors"
	"scamwatch/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// testInputs are the canned values used by TestConfig per lookup type.
var testInputs = map[domain.LookupType]string{ //nolint: gochecknoglobals
	domain.LookupTypePhone: "+1234567890",
	domain.LookupTypeEmail: "test@example.com",
	domain.LookupTypeURL:   "https://example.com",
	domain.LookupTypeIP:    "8.8.8.8",
}

// service is the concrete implementation of the Service interface. It fans a
// lookup out to the configured providers and normalizes failures into
// degraded results.
type service struct {
	// storage is the persistence layer for provider configurations.
	storage storage.Storage

	// named clients for the built-in integrations; generic handles everything else.
	generic    provider.Client
	ipqs       provider.Client
	virustotal provider.Client
	abuseipdb  provider.Client

	// lookupDuration measures the latency of one provider call.
	lookupDuration metric.Float64Histogram
	// lookupFailures counts provider calls that degraded to an unknown result.
	lookupFailures metric.Int64Counter
}

// New creates a new Service backed by the provided storage. Outbound provider
// calls share the given http.Client; instruments are registered on the given
// meter provider.
func New(storage storage.Storage, httpClient *http.Client, mp metric.MeterProvider) (Service, error) {
	meter := mp.Meter("scamwatch/lookup")

	duration, err := meter.Float64Histogram(metrics.LookupDurationMetric,
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	failures, err := meter.Int64Counter(metrics.LookupFailuresMetric)
	if err != nil {
		return nil, fmt.Errorf("could not create failure counter: %w", err)
	}

	return &service{
		storage:        storage,
		generic:        generic.New(httpClient),
		ipqs:           ipqs.New(httpClient),
		virustotal:     virustotal.New(httpClient),
		abuseipdb:      abuseipdb.New(httpClient),
		lookupDuration: duration,
		lookupFailures: failures,
	}, nil
}

// clientFor selects the client implementation for a provider config. A
// non-empty parameter mapping always selects the generic templated client;
// otherwise the canonical name picks a built-in integration, falling back to
// generic with synthesized parameters.
func (s service) clientFor(cfg domain.ProviderConfig) provider.Client {
	if strings.TrimSpace(cfg.ParameterMapping) != "" {
		return s.generic
	}

	switch cfg.CanonicalName() {
	case "ipqs":
		return s.ipqs
	case "virustotal":
		return s.virustotal
	case "abuseipdb":
		return s.abuseipdb
	default:
		return s.generic
	}
}

// callProvider runs one provider call bounded by the config's timeout and
// degrades any failure into an "unknown" result so one broken provider never
// hides the others.
func (s service) callProvider(ctx context.Context,
	lookupType domain.LookupType,
	value string,
	cfg domain.ProviderConfig) domain.ScamLookupResult {
	callCtx, cancel := context.WithTimeout(ctx, cfg.CallTimeout())
	defer cancel()

	start := time.Now()
	res, err := s.clientFor(cfg).Lookup(callCtx, lookupType, value, cfg)
	s.lookupDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("provider", cfg.Name)))
	if err != nil {
		s.lookupFailures.Add(ctx, 1,
			metric.WithAttributes(attribute.String("provider", cfg.Name)))
		logger.Warn(ctx, "provider lookup failed",
			zap.String("provider", cfg.Name),
			zap.Error(err))

		return domain.ScamLookupResult{
			Input:      value,
			Provider:   cfg.Name,
			Reputation: "error",
			Status:     domain.LookupStatusUnknown,
			Details:    map[string]any{"error": err.Error()},
			CheckedAt:  time.Now().UTC(),
		}
	}

	return *res
}

// Lookup fans the value out to every enabled provider for the lookup type and
// collects the results in configuration order.
func (s service) Lookup(ctx context.Context,
	lookupType domain.LookupType,
	value string) ([]domain.ScamLookupResult, error) {
	switch lookupType {
	case domain.LookupTypePhone, domain.LookupTypeEmail, domain.LookupTypeURL, domain.LookupTypeIP:
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown lookup type %q", lookupType)
	}
	if strings.TrimSpace(value) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "value is required")
	}

	cfgs, err := s.storage.EnabledProviderConfigs(ctx, lookupType)
	if err != nil {
		return nil, fmt.Errorf("could not get provider configs: %w", err)
	}

	results := make([]domain.ScamLookupResult, len(cfgs))
	var wg sync.WaitGroup
	for i, cfg := range cfgs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.callProvider(ctx, lookupType, value, cfg)
		}()
	}
	wg.Wait()

	return results, nil
}

// TestConfig runs one lookup against a single config using the canned input
// for its lookup type. Provider failures are returned as degraded results so
// admins can see exactly what went wrong.
func (s service) TestConfig(ctx context.Context,
	id domain.ProviderConfigID) (*domain.ScamLookupResult, error) {
	cfg, err := s.storage.ProviderConfigByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get provider config: %w", err)
	}
	if cfg == nil {
		return nil, serrors.With(serrors.ErrNotFound, "provider config not found")
	}

	input, ok := testInputs[cfg.LookupType]
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown lookup type %q", cfg.LookupType)
	}

	res := s.callProvider(ctx, cfg.LookupType, input, *cfg)

	return &res, nil
}

// ProviderConfigs returns all provider configurations.
func (s service) ProviderConfigs(ctx context.Context) ([]domain.ProviderConfig, error) {
	res, err := s.storage.ProviderConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list provider configs: %w", err)
	}

	return res, nil
}

// ProviderConfig fetches a single configuration by ID. It returns a not-found
// error when no matching config exists.
func (s service) ProviderConfig(ctx context.Context,
	id domain.ProviderConfigID) (*domain.ProviderConfig, error) {
	res, err := s.storage.ProviderConfigByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get provider config: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "provider config not found")
	}

	return res, nil
}

// CreateProviderConfig validates and stores a new provider configuration.
func (s service) CreateProviderConfig(ctx context.Context,
	cfg domain.ProviderConfig) (*domain.ProviderConfig, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "base URL is required")
	}
	if err := validateLookupType(cfg.LookupType); err != nil {
		return nil, err
	}

	res, err := s.storage.StoreProviderConfigs(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not store provider config: %w", err)
	}

	return &res[0], nil
}

// UpdateProviderConfig applies a partial update to a configuration. It returns
// a not-found error when no matching config exists.
func (s service) UpdateProviderConfig(ctx context.Context,
	id domain.ProviderConfigID,
	updates storage.ProviderConfigUpdates) (*domain.ProviderConfig, error) {
	if updates.LookupType != nil {
		if err := validateLookupType(*updates.LookupType); err != nil {
			return nil, err
		}
	}

	res, err := s.storage.UpdateProviderConfigByID(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update provider config: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "provider config not found")
	}

	return res, nil
}

// DeleteProviderConfig soft-deletes a configuration. It returns a not-found
// error when no matching config exists.
func (s service) DeleteProviderConfig(ctx context.Context, id domain.ProviderConfigID) error {
	res, err := s.storage.DeleteProviderConfig(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete provider config: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "provider config not found")
	}

	return nil
}

func validateLookupType(t domain.LookupType) error {
	switch t {
	case domain.LookupTypePhone, domain.LookupTypeEmail, domain.LookupTypeURL, domain.LookupTypeIP:
		return nil
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown lookup type %q", t)
	}
}
