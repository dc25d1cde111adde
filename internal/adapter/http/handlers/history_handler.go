package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "patoz_consumer/internal/adapter/http/dto/response"
	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase"
	"patoz_consumer/pkg"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the maintenance log, display-sorted.

type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// ListHistory returns all history items, or the items of one device when the
// device_id query parameter is set.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	var (
		items []entities.HistoryItem
		err   error
	)
	if deviceID := strings.TrimSpace(c.Query("device_id")); deviceID != "" {
		items, err = h.usecase.ListByDevice(c.Request.Context(), deviceID)
	} else {
		items, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistoryItems(items))
}

func (h *HistoryHandler) GetHistoryItem(c *gin.Context) {
	item, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistoryItem(item))
}

func mapHistoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHistoryID), errors.Is(err, usecase.ErrInvalidDeviceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHistoryNotFound):
		return pkg.NewDomainErrorSimple("HISTORY_NOT_FOUND", "History item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
