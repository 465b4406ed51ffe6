package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/pkg/utils"
	"github.com/tile-explorer/internal/pkg/validator"
	"github.com/tile-explorer/internal/usecase/dto"
)

// SyncHandler - синхронизация поездок с внешним API
type SyncHandler struct {
	syncUC SyncService
	logger *zap.Logger
}

// NewSyncHandler - создание нового SyncHandler
func NewSyncHandler(syncUC SyncService, logger *zap.Logger) *SyncHandler {
	return &SyncHandler{
		syncUC: syncUC,
		logger: logger,
	}
}

// Sync godoc
// @Summary Синхронизация поездок
// @Description Загружает новые активности типа Ride. Токен берётся из тела запроса или заголовка Authorization: Bearer; вместо токена можно передать OAuth code
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body dto.SyncRequest false "Токен или OAuth код"
// @Success 200 {object} utils.SuccessResponse{data=dto.SyncResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse "details.stored - id поездок, сохранённых до сбоя"
// @Router /api/v1/sync [post]
func (h *SyncHandler) Sync(c *fiber.Ctx) error {
	var req dto.SyncRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{"body": err.Error()}))
		}
	}
	if req.AccessToken == "" {
		if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
			req.AccessToken = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, validationError(err))
	}

	result, err := h.syncUC.Sync(c.Context(), req)
	if err != nil {
		h.logger.Error("Sync failed", zap.Error(err))
		// поездки, сохранённые до сбоя, отдаём в деталях ошибки
		if appErr, ok := apperrors.From(err); ok && result != nil && len(result.Stored) > 0 {
			err = appErr.WithDetails(map[string]interface{}{"stored": result.Stored})
		}
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Stored)})
}
