// Package hunt coordinates concurrent probe dispatch across the platform
// catalog for one or more identifiers.
package hunt

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/catalog"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/config"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/probe"
)

// Coordinator fans probes out over a bounded worker pool. One coordinator
// is safe for concurrent use; each hunt opens its own transport session.
type Coordinator struct {
	catalog *catalog.Catalog
	cfg     *config.Config
	agents  *probe.UserAgentPool
	logger  *slog.Logger

	// limiter paces successive identifiers in multi-identifier hunts.
	limiter *rate.Limiter

	// transport, when non-nil, replaces the real network. Tests only.
	transport http.RoundTripper
}

// NewCoordinator builds a coordinator over the given catalog and
// configuration.
func NewCoordinator(cat *catalog.Catalog, cfg *config.Config, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if cfg.BatchDelay > 0 {
		limit = rate.Every(cfg.BatchDelay)
	}
	return &Coordinator{
		catalog: cat,
		cfg:     cfg,
		agents:  probe.NewUserAgentPool(cfg.UserAgents),
		logger:  logger,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// NewCoordinatorWithTransport is NewCoordinator with the network replaced
// by rt. Tests use it to run hunts against a scripted transport.
func NewCoordinatorWithTransport(cat *catalog.Catalog, cfg *config.Config, logger *slog.Logger, rt http.RoundTripper) *Coordinator {
	c := NewCoordinator(cat, cfg, logger)
	c.transport = rt
	return c
}

func (c *Coordinator) openSession() *probe.Session {
	if c.transport != nil {
		return probe.NewSessionWithTransport(c.cfg, c.transport)
	}
	return probe.NewSession(c.cfg)
}

func (c *Coordinator) closeSession(s *probe.Session) {
	if err := s.Close(); err != nil {
		c.logger.Warn("session close failed", "error", err)
	}
}

// dispatch probes every definition for the identifier over one session.
// Results land in their dispatch slot, so order matches defs regardless of
// completion order. The in-flight probe count never exceeds MaxWorkers.
func (c *Coordinator) dispatch(ctx context.Context, s *probe.Session, identifier string, defs []catalog.Definition) []model.ProbeResult {
	results := make([]model.ProbeResult, len(defs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxWorkers)
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			results[i] = probe.Execute(gctx, s, identifier, def, c.agents.Pick(), 0)
			return nil
		})
	}
	// Workers never return errors; failures are carried in the results.
	_ = g.Wait()
	return results
}

// HuntCategory probes one category and returns only the confirmed hits.
func (c *Coordinator) HuntCategory(ctx context.Context, identifier string, cat catalog.Category) ([]model.ProbeResult, error) {
	full, err := c.HuntCategoryFull(ctx, identifier, cat)
	if err != nil {
		return nil, err
	}
	return onlyFound(full), nil
}

// HuntCategoryFull probes one category and returns every result, including
// misses and failures. Callers that need telemetry use this variant.
func (c *Coordinator) HuntCategoryFull(ctx context.Context, identifier string, cat catalog.Category) ([]model.ProbeResult, error) {
	defs, err := c.catalog.List(cat)
	if err != nil {
		return nil, fmt.Errorf("hunt category %q: %w", cat, err)
	}
	s := c.openSession()
	defer c.closeSession(s)
	return c.dispatch(ctx, s, identifier, defs), nil
}

// HuntAll probes every category for one identifier and groups the hits by
// category in fixed enumeration order. The adult category is excluded from
// dispatch entirely unless includeRestricted is set. Every hunted category
// appears in the report, found results or not.
func (c *Coordinator) HuntAll(ctx context.Context, identifier string, includeRestricted bool) (model.HuntReport, error) {
	report := model.HuntReport{
		Identifier: identifier,
		Categories: make(map[string][]model.ProbeResult),
	}

	s := c.openSession()
	defer c.closeSession(s)

	for _, cat := range catalog.Categories() {
		if cat == catalog.CategoryAdult && !includeRestricted {
			continue
		}
		defs, err := c.catalog.List(cat)
		if err != nil {
			return model.HuntReport{}, fmt.Errorf("hunt %q: %w", identifier, err)
		}
		found := onlyFound(c.dispatch(ctx, s, identifier, defs))
		report.Categories[string(cat)] = found
		report.CategoryOrder = append(report.CategoryOrder, string(cat))
	}

	c.logger.Info("hunt complete",
		"identifier", identifier,
		"found", report.TotalFound(),
		"categories", len(report.CategoryOrder))
	return report, nil
}

// HuntMany runs HuntAll for each identifier in order, pacing successive
// identifiers with the configured batch delay. A cancelled context stops
// the run and returns the reports finished so far alongside the error.
func (c *Coordinator) HuntMany(ctx context.Context, identifiers []string, includeRestricted bool) ([]model.HuntReport, error) {
	reports := make([]model.HuntReport, 0, len(identifiers))
	for _, id := range identifiers {
		if err := c.limiter.Wait(ctx); err != nil {
			return reports, fmt.Errorf("hunt batch: %w", err)
		}
		report, err := c.HuntAll(ctx, id, includeRestricted)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func onlyFound(results []model.ProbeResult) []model.ProbeResult {
	found := make([]model.ProbeResult, 0, len(results))
	for _, r := range results {
		if r.Status == model.StatusFound {
			found = append(found, r)
		}
	}
	return found
}
