// Package orchestrator implements the fetch orchestration core: it calls
// the backend client, pipes raw records through risk scoring and commits
// the result (or the error) into the owning domain store. At most one fetch
// is in flight per domain; the stores enforce it and the orchestrator
// respects the rejection.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/pkg/domain"
	"github.com/Ottocr/GEMS/pkg/gemsapi"
	"github.com/Ottocr/GEMS/pkg/logger"
	"github.com/Ottocr/GEMS/pkg/metrics"
	"github.com/Ottocr/GEMS/pkg/serrors"
	"github.com/Ottocr/GEMS/pkg/store"
)

// Domain names used for store identification, logging and metrics labels.
const (
	DomainDashboard      = "dashboard"
	DomainRiskManagement = "riskManagement"
	DomainAssetDetail    = "assetDetail"
)

type orchestrator struct {
	client  gemsapi.Client
	fetches *metrics.FetchRecorder // nil disables metrics

	dashboard *store.Store[domain.DashboardData]
	riskView  *store.Store[domain.RiskView]
	assetView *store.Store[domain.AssetView]
}

// New creates an Orchestrator owning fresh, idle domain stores. fetches may
// be nil when metrics are not wanted (one-shot CLI commands).
func New(client gemsapi.Client, fetches *metrics.FetchRecorder) Orchestrator {
	return &orchestrator{
		client:    client,
		fetches:   fetches,
		dashboard: store.New[domain.DashboardData](DomainDashboard),
		riskView:  store.New[domain.RiskView](DomainRiskManagement),
		assetView: store.New[domain.AssetView](DomainAssetDetail),
	}
}

// runFetch drives one full fetch cycle against st: begin, call fn, commit.
// Transport and non-2xx errors land in the store as a failed state with the
// previous data retained; an authentication expiry bypasses the failed
// state entirely (the store is cleared and the error propagates to the
// session layer). A rejected begin means a fetch is already in flight.
func runFetch[T any](ctx context.Context,
	o *orchestrator,
	st *store.Store[T],
	fn func(ctx context.Context) (T, error)) error {
	ctx = logger.WithFields(ctx, zap.String("domain", st.Name()))

	ticket, err := st.BeginFetch()
	if err != nil {
		o.fetches.Record(ctx, st.Name(), metrics.OutcomeRejected, 0)
		logger.Debug(ctx, "fetch rejected, another one is in flight")

		return fmt.Errorf("could not begin fetch: %w", err)
	}

	start := time.Now()
	data, err := fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		o.fetches.Record(ctx, st.Name(), metrics.OutcomeFailure, elapsed)

		if errors.Is(err, serrors.ErrUnauthorized) {
			// Cross-cutting signal: not a domain failure. Reset the store so
			// no stale context survives the forced re-login.
			st.Clear()
			logger.Warn(ctx, "authentication expired during fetch")

			return fmt.Errorf("authentication expired: %w", err)
		}

		_ = st.Fail(ticket, err)
		logger.Error(ctx, "domain fetch failed", zap.Error(err))

		return fmt.Errorf("could not fetch %s: %w", st.Name(), err)
	}

	if err := st.Succeed(ticket, data); err != nil {
		// The cycle was superseded (selection changed, store cleared) while
		// the response was in flight; dropping the result is the point.
		logger.Debug(ctx, "discarding superseded fetch result", zap.Error(err))

		return fmt.Errorf("fetch superseded: %w", err)
	}

	o.fetches.Record(ctx, st.Name(), metrics.OutcomeSuccess, elapsed)
	logger.Info(ctx, "domain snapshot committed",
		zap.Float64("latency", elapsed.Seconds()))

	return nil
}

func (o *orchestrator) LoadDashboard(ctx context.Context) error {
	return runFetch(ctx, o, o.dashboard, func(ctx context.Context) (domain.DashboardData, error) {
		res, err := o.client.DashboardData(ctx)
		if err != nil {
			return domain.DashboardData{}, err
		}

		return mapDashboard(res), nil
	})
}

func (o *orchestrator) LoadCountries(ctx context.Context) error {
	return runFetch(ctx, o, o.riskView, func(ctx context.Context) (domain.RiskView, error) {
		res, err := o.client.SecurityManagerData(ctx, 0)
		if err != nil {
			return domain.RiskView{}, err
		}

		// The country list replaces the whole view; a previously selected
		// country's data does not survive a list reload.
		return domain.RiskView{Countries: mapCountries(res.Countries)}, nil
	})
}

func (o *orchestrator) LoadCountryDetail(ctx context.Context, countryID int64) error {
	ctx = logger.WithFields(ctx, zap.Int64("countryId", countryID))

	return runFetch(ctx, o, o.riskView, func(ctx context.Context) (domain.RiskView, error) {
		res, err := o.client.SecurityManagerData(ctx, countryID)
		if err != nil {
			return domain.RiskView{}, err
		}

		// Compose the new snapshot from the surviving country list plus the
		// freshly fetched selection; the store itself always replaces whole
		// snapshots, so nothing from the previous selection can leak in.
		prev := o.riskView.Snapshot().Data

		return mapCountryDetail(prev, countryID, res), nil
	})
}

func (o *orchestrator) LoadAssets(ctx context.Context) error {
	return runFetch(ctx, o, o.assetView, func(ctx context.Context) (domain.AssetView, error) {
		records, err := o.client.Assets(ctx)
		if err != nil {
			return domain.AssetView{}, err
		}

		prev := o.assetView.Snapshot().Data

		return domain.AssetView{
			Assets:     mapAssets(records),
			Current:    prev.Current,
			Barriers:   prev.Barriers,
			RiskMatrix: prev.RiskMatrix,
		}, nil
	})
}

func (o *orchestrator) LoadAssetDetail(ctx context.Context, assetID int64) error {
	ctx = logger.WithFields(ctx, zap.Int64("assetId", assetID))

	return runFetch(ctx, o, o.assetView, func(ctx context.Context) (domain.AssetView, error) {
		res, err := o.client.AssetDetail(ctx, assetID)
		if err != nil {
			return domain.AssetView{}, err
		}

		prev := o.assetView.Snapshot().Data

		return mapAssetView(prev, res), nil
	})
}

// ReportBarrierIssue is a pure write: the orchestrator does not refresh the
// asset-detail domain afterwards. Keeping write and read paths decoupled is
// deliberate; callers re-invoke LoadAssetDetail when they want fresh data.
func (o *orchestrator) ReportBarrierIssue(ctx context.Context, report gemsapi.BarrierIssueReport) error {
	if err := o.client.ReportBarrierIssue(ctx, report); err != nil {
		return fmt.Errorf("could not report barrier issue: %w", err)
	}

	logger.Info(ctx, "barrier issue reported",
		zap.Int64("assetId", report.AssetID),
		zap.Int64("barrierId", report.BarrierID),
		zap.String("impact", string(report.ImpactRating)))

	return nil
}

func (o *orchestrator) UpdateVulnerabilityAnswer(ctx context.Context, assetID, questionID int64, answer string) error {
	if err := o.client.UpdateVulnerabilityAnswer(ctx, assetID, questionID, answer); err != nil {
		return fmt.Errorf("could not update vulnerability answer: %w", err)
	}

	logger.Info(ctx, "vulnerability answer updated",
		zap.Int64("assetId", assetID),
		zap.Int64("questionId", questionID))

	return nil
}

func (o *orchestrator) ClearCountrySelection() { o.riskView.Clear() }

func (o *orchestrator) ClearAssetView() { o.assetView.Clear() }

func (o *orchestrator) Dashboard() store.Snapshot[domain.DashboardData] {
	return o.dashboard.Snapshot()
}

func (o *orchestrator) RiskView() store.Snapshot[domain.RiskView] {
	return o.riskView.Snapshot()
}

func (o *orchestrator) AssetView() store.Snapshot[domain.AssetView] {
	return o.assetView.Snapshot()
}
