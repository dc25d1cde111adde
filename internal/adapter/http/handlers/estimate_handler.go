package handlers

import (
	"errors"
	"log"
	"net/http"

	response "patoz_consumer/internal/adapter/http/dto/response"
	"patoz_consumer/internal/usecase"
	"patoz_consumer/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles HTTP requests for the vendor estimate catalog and
// the confirm flow.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListIncoming returns the open vendor bids for a device. The list is empty
// once the device has left the registered stage.
func (h *EstimateHandler) ListIncoming(c *gin.Context) {
	estimates, err := h.usecase.ListIncoming(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetails(estimates))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetail(estimate))
}

// ConfirmEstimate confirms one bid for the device and starts the repair.
func (h *EstimateHandler) ConfirmEstimate(c *gin.Context) {
	deviceID := c.Param("id")
	estimateID := c.Param("estimate_id")

	estimate, err := h.usecase.Confirm(c.Request.Context(), deviceID, estimateID)
	if err != nil {
		log.Printf("[estimate][handler] confirm failed device_id=%s estimate_id=%s err=%v", deviceID, estimateID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[estimate][handler] confirm success device_id=%s estimate_id=%s", deviceID, estimate.ID)

	c.JSON(http.StatusOK, response.FromEstimateDetail(estimate))
}

func (h *EstimateHandler) GetConfirmedEstimate(c *gin.Context) {
	estimate, err := h.usecase.Confirmed(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetail(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidDeviceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoConfirmedEstimate):
		return pkg.NewDomainErrorSimple("NO_CONFIRMED_ESTIMATE", "No estimate confirmed for this device", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateAlreadyConfirmed):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_CONFIRMED", "An estimate is already confirmed for this repair", http.StatusConflict)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Repairing starts only through estimate confirmation", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
