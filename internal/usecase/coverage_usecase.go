package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/pkg/metrics"
	"github.com/tile-explorer/internal/pkg/polyline"
	"github.com/tile-explorer/internal/pkg/utils"
	"github.com/tile-explorer/internal/tiles"
)

// CoverageOptions параметры расчёта покрытия
type CoverageOptions struct {
	DefaultWindow int
	Workers       int
	CacheTTL      time.Duration
}

// CoverageUseCase считает посещённые тайлы, максимальный квадрат и кластер
type CoverageUseCase struct {
	rideRepo  repository.RideRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	opts      CoverageOptions
	now       func() time.Time
}

// NewCoverageUseCase создает новый экземпляр CoverageUseCase
func NewCoverageUseCase(
	rideRepo repository.RideRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	opts CoverageOptions,
) *CoverageUseCase {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &CoverageUseCase{
		rideRepo:  rideRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}
}

// ResolveWindow подставляет окно по умолчанию и проверяет его
func (uc *CoverageUseCase) ResolveWindow(window int) (int, error) {
	if window == 0 {
		window = uc.opts.DefaultWindow
	}
	if err := tiles.ValidateWindow(window); err != nil {
		return 0, apperrors.ErrInvalidWindowSize.WithDetails(map[string]interface{}{"window": window})
	}
	return window, nil
}

// GetCoverage возвращает документ покрытия, используя кеш когда возможно.
// Второе значение true, если документ взят из кеша.
func (uc *CoverageUseCase) GetCoverage(ctx context.Context, window int) (*domain.Coverage, bool, error) {
	window, err := uc.ResolveWindow(window)
	if err != nil {
		return nil, false, err
	}

	cached, err := uc.cacheRepo.GetCoverage(ctx, window)
	if err == nil && cached != nil {
		uc.logger.Debug("Coverage fetched from cache", zap.Int("window", window))
		return cached, true, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get coverage from cache", zap.Error(err))
	}

	coverage, err := uc.Compute(ctx, window)
	if err != nil {
		return nil, false, err
	}

	if err := uc.cacheRepo.SetCoverage(ctx, coverage, uc.opts.CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache coverage", zap.Error(err))
	}

	return coverage, false, nil
}

// Compute строит документ покрытия по всем сохранённым поездкам, минуя кеш
func (uc *CoverageUseCase) Compute(ctx context.Context, window int) (*domain.Coverage, error) {
	window, err := uc.ResolveWindow(window)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rides, err := uc.rideRepo.List(ctx, domain.RideFilter{})
	if err != nil {
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}

	traces, skipped, err := uc.extractTraces(ctx, rides)
	if err != nil {
		return nil, err
	}

	analysis, err := tiles.Analyze(traces, window)
	switch {
	case errors.Is(err, tiles.ErrNoRides):
		return nil, apperrors.ErrNoRides
	case errors.Is(err, tiles.ErrInvalidWindow):
		return nil, apperrors.ErrInvalidWindowSize.Wrap(err)
	case err != nil:
		return nil, fmt.Errorf("analyze coverage: %w", err)
	}

	coverage := uc.buildCoverage(rides, analysis, window, skipped)

	took := time.Since(start)
	metrics.CoverageDuration.Observe(took.Seconds())
	metrics.TilesVisited.Set(float64(analysis.Visited.Len()))
	metrics.MaxBlockSide.Set(float64(analysis.Block.Side))

	uc.logger.Info("Coverage computed",
		zap.Int("window", window),
		zap.Int("rides", len(rides)),
		zap.Int("skipped", len(skipped)),
		zap.Int("tiles", analysis.Visited.Len()),
		zap.Stringer("seed", analysis.Seed),
		zap.Int("max_block", analysis.Block.Side),
		zap.Int("cluster", analysis.Cluster.Len()),
		zap.Duration("took", took))

	return coverage, nil
}

// extractTraces декодирует маршруты и строит трассы тайлов параллельно.
// Порядок трасс совпадает с порядком поездок; поездки с битым маршрутом пропускаются.
func (uc *CoverageUseCase) extractTraces(ctx context.Context, rides []*domain.Ride) ([]tiles.Trace, []int64, error) {
	results := make([]tiles.Trace, len(rides))
	failed := make([]bool, len(rides))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.Workers)

	for i, ride := range rides {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			route, err := polyline.Decode(ride.Polyline)
			if err != nil {
				uc.logger.Warn("Skipping ride with undecodable route",
					zap.Int64("ride_id", ride.ID),
					zap.Error(err))
				failed[i] = true
				return nil
			}
			results[i] = tiles.ExtractTrace(route)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("extract traces: %w", err)
	}

	traces := make([]tiles.Trace, 0, len(rides))
	var skipped []int64
	for i, tr := range results {
		if failed[i] {
			skipped = append(skipped, rides[i].ID)
			metrics.RidesSkipped.Inc()
			continue
		}
		traces = append(traces, tr)
	}
	return traces, skipped, nil
}

func (uc *CoverageUseCase) buildCoverage(rides []*domain.Ride, a *tiles.Analysis, window int, skipped []int64) *domain.Coverage {
	summaries := make([]domain.RideSummary, len(rides))
	for i, r := range rides {
		summaries[i] = r.Summary()
	}

	return &domain.Coverage{
		Rides:   summaries,
		Tiles:   tileFeatures(a.Visited),
		Cluster: tileFeatures(a.Cluster),
		MaxBlock: domain.MaxBlock{
			Square:  tiles.BlockPolygon(a.Block.TopLeft, a.Block.Side),
			Side:    a.Block.Side,
			TopLeft: a.Block.TopLeft,
		},
		Seed:        a.Seed,
		SeedVisits:  a.Frequency,
		WindowSize:  window,
		SkippedRide: skipped,
		GeneratedAt: uc.now().UTC(),
	}
}

func tileFeatures(set tiles.TileSet) []domain.TileFeature {
	sorted := set.Sorted()
	features := make([]domain.TileFeature, len(sorted))
	for i, t := range sorted {
		features[i] = domain.NewTileFeature(t)
	}
	return features
}

// Warm пересчитывает и кеширует покрытие для заданных окон
func (uc *CoverageUseCase) Warm(ctx context.Context, windows []int) error {
	for _, w := range windows {
		coverage, err := uc.Compute(ctx, w)
		if errors.Is(err, apperrors.ErrNoRides) {
			uc.logger.Debug("Nothing to warm, no rides yet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("warm window %d: %w", w, err)
		}
		if err := uc.cacheRepo.SetCoverage(ctx, coverage, uc.opts.CacheTTL); err != nil {
			return apperrors.ErrCacheError.Wrap(err)
		}
	}
	return nil
}

// Invalidate удаляет все закешированные документы покрытия
func (uc *CoverageUseCase) Invalidate(ctx context.Context) error {
	if err := uc.cacheRepo.InvalidateCoverage(ctx); err != nil {
		return apperrors.ErrCacheError.Wrap(err)
	}
	return nil
}

// TilePolygon возвращает полигон одного тайла
func (uc *CoverageUseCase) TilePolygon(x, y int) (*domain.TileFeature, error) {
	if !utils.ValidateTile(x, y) {
		return nil, apperrors.ErrInvalidTileCoordinates.WithDetails(map[string]interface{}{
			"x": x, "y": y, "max": tiles.GridSize - 1,
		})
	}
	f := domain.NewTileFeature(tiles.TileCoord{X: x, Y: y})
	return &f, nil
}
