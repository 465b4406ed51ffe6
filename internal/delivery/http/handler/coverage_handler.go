package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/pkg/utils"
	"github.com/tile-explorer/internal/pkg/validator"
	"github.com/tile-explorer/internal/usecase/dto"
)

// CoverageHandler - обработчик запросов покрытия тайлами
type CoverageHandler struct {
	coverageUC CoverageService
	logger     *zap.Logger
}

// NewCoverageHandler - создание нового CoverageHandler
func NewCoverageHandler(coverageUC CoverageService, logger *zap.Logger) *CoverageHandler {
	return &CoverageHandler{
		coverageUC: coverageUC,
		logger:     logger,
	}
}

func (h *CoverageHandler) parseWindow(c *fiber.Ctx) (int, error) {
	var q dto.CoverageQuery
	if err := c.QueryParser(&q); err != nil {
		return 0, apperrors.ErrInvalidWindowSize.WithDetails(map[string]interface{}{"window": c.Query("window")})
	}
	if err := validator.Validate(&q); err != nil {
		return 0, apperrors.ErrInvalidWindowSize.WithDetails(map[string]interface{}{"window": q.Window})
	}
	return q.Window, nil
}

// GetCoverage godoc
// @Summary Покрытие тайлами
// @Description Посещённые тайлы zoom 14, максимальный полностью посещённый квадрат и кластер внутренних тайлов
// @Tags Coverage
// @Produce json
// @Param window query int false "Размер окна поиска квадрата (чётное число)" default(80)
// @Success 200 {object} utils.SuccessResponse{data=domain.Coverage}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/coverage [get]
func (h *CoverageHandler) GetCoverage(c *fiber.Ctx) error {
	start := time.Now()

	window, err := h.parseWindow(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	coverage, cached, err := h.coverageUC.GetCoverage(c.Context(), window)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, coverage, &utils.Meta{
		Total:    len(coverage.Tiles),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
		Cached:   cached,
	})
}

// GetCoverageGeoJSON godoc
// @Summary Покрытие в формате GeoJSON
// @Description FeatureCollection: тайлы (kind=tile), кластер (kind=cluster) и максимальный квадрат (kind=maxblock)
// @Tags Coverage
// @Produce json
// @Param window query int false "Размер окна поиска квадрата (чётное число)" default(80)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/coverage.geojson [get]
func (h *CoverageHandler) GetCoverageGeoJSON(c *fiber.Ctx) error {
	window, err := h.parseWindow(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.coverageUC.GetGeoJSON(c.Context(), window)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := c.JSON(fc); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/geo+json")
	return nil
}

// GetTilePolygon godoc
// @Summary Полигон тайла
// @Description Углы тайла zoom 14 в порядке [top,left], [top,right], [bottom,right], [bottom,left]
// @Tags Coverage
// @Produce json
// @Param x path int true "X тайла"
// @Param y path int true "Y тайла"
// @Success 200 {object} utils.SuccessResponse{data=domain.TileFeature}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tiles/{x}/{y}/polygon [get]
func (h *CoverageHandler) GetTilePolygon(c *fiber.Ctx) error {
	x, errX := c.ParamsInt("x")
	y, errY := c.ParamsInt("y")
	if errX != nil || errY != nil {
		return utils.SendError(c, apperrors.ErrInvalidTileCoordinates.WithDetails(map[string]interface{}{
			"x": c.Params("x"), "y": c.Params("y"),
		}))
	}

	feature, err := h.coverageUC.TilePolygon(x, y)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, feature, nil)
}
