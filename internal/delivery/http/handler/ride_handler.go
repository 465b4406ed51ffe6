package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/pkg/utils"
	"github.com/tile-explorer/internal/pkg/validator"
	"github.com/tile-explorer/internal/usecase/dto"
)

// RideHandler - обработчик запросов поездок
type RideHandler struct {
	rideUC RideService
	logger *zap.Logger
}

// NewRideHandler - создание нового RideHandler
func NewRideHandler(rideUC RideService, logger *zap.Logger) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
		logger: logger,
	}
}

// ListRides godoc
// @Summary Список поездок
// @Description Метаданные поездок и закодированные маршруты, по возрастанию даты
// @Tags Rides
// @Produce json
// @Param since query string false "Начало периода, RFC3339"
// @Param until query string false "Конец периода, RFC3339"
// @Param limit query int false "Максимальное количество"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RideSummary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/rides [get]
func (h *RideHandler) ListRides(c *fiber.Ctx) error {
	var q dto.RideListQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, validationError(err))
	}

	rides, err := h.rideUC.ListRides(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, rides, &utils.Meta{Total: len(rides), Limit: q.Limit})
}

// CreateRide godoc
// @Summary Сохранить поездку
// @Description Сохраняет поездку (upsert по id) и сбрасывает кеш покрытия
// @Tags Rides
// @Accept json
// @Produce json
// @Param request body dto.CreateRideRequest true "Поездка"
// @Success 201 {object} utils.SuccessResponse{data=domain.RideSummary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/rides [post]
func (h *RideHandler) CreateRide(c *fiber.Ctx) error {
	var req dto.CreateRideRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"body": err.Error()}))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, validationError(err))
	}

	ride, err := h.rideUC.CreateRide(c.Context(), req)
	if err != nil {
		h.logger.Warn("Failed to create ride", zap.Int64("ride_id", req.ID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, ride)
}
