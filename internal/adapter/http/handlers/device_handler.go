package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "patoz_consumer/internal/adapter/http/dto/request"
	response "patoz_consumer/internal/adapter/http/dto/response"
	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase"
	"patoz_consumer/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDevicePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// DeviceHandler handles HTTP requests for the device fleet: registration,
// selection, ordering and the repair lifecycle hooks.

type DeviceHandler struct {
	usecase usecase.IDeviceUseCase
}

func NewDeviceHandler(uc usecase.IDeviceUseCase) *DeviceHandler {
	return &DeviceHandler{usecase: uc}
}

// RegisterDevice registers a scooter by serial number and selects it.
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var payload request.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	device, err := h.usecase.Register(c.Request.Context(), payload.ResolveSerialNumber())
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDevice(device))
}

func (h *DeviceHandler) ListDevices(c *gin.Context) {
	devices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevices(devices))
}

func (h *DeviceHandler) GetDevice(c *gin.Context) {
	device, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevice(device))
}

func (h *DeviceHandler) GetSelectedDevice(c *gin.Context) {
	device, err := h.usecase.Selected(c.Request.Context())
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevice(device))
}

func (h *DeviceHandler) SelectDevice(c *gin.Context) {
	var payload request.SelectDeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	device, err := h.usecase.Select(c.Request.Context(), payload.ResolveDeviceID())
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevice(device))
}

// ReorderDevices replaces the device order with the supplied permutation.
func (h *DeviceHandler) ReorderDevices(c *gin.Context) {
	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	devices, err := h.usecase.Reorder(c.Request.Context(), payload.ResolveDeviceIDs())
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevices(devices))
}

func (h *DeviceHandler) MoveDeviceUp(c *gin.Context) {
	h.moveDevice(c, h.usecase.MoveUp)
}

func (h *DeviceHandler) MoveDeviceDown(c *gin.Context) {
	h.moveDevice(c, h.usecase.MoveDown)
}

func (h *DeviceHandler) moveDevice(c *gin.Context, mover func(ctx context.Context, id string) ([]entities.Device, error)) {
	devices, err := mover(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevices(devices))
}

// SubmitInquiry registers a repair intake for the selected device.
func (h *DeviceHandler) SubmitInquiry(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.SubmitInquiry(c.Request.Context(), payload.ResolveIntake(), payload.ResolveSymptoms())
	if err != nil {
		log.Printf("[device][handler] inquiry failed err=%v", err)
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[device][handler] inquiry registered device_id=%s history_id=%s", item.DeviceID, item.ID)

	c.JSON(http.StatusCreated, response.FromHistoryItem(item))
}

func (h *DeviceHandler) UpdateServiceStatus(c *gin.Context) {
	var payload request.ServiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	device, err := h.usecase.UpdateServiceStatus(c.Request.Context(), c.Param("id"), payload.ResolveServiceStatus())
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevice(device))
}

// AdvanceStage moves the repair lifecycle to the named next stage.
func (h *DeviceHandler) AdvanceStage(c *gin.Context) {
	var payload request.AdvanceStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	stage, ok := payload.ResolveStage()
	if !ok {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	device, err := h.usecase.AdvanceStage(c.Request.Context(), c.Param("id"), stage)
	if err != nil {
		log.Printf("[device][handler] advance failed device_id=%s stage=%s err=%v", c.Param("id"), stage, err)
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[device][handler] advance success device_id=%s stage=%s", device.ID, device.Stage())

	c.JSON(http.StatusOK, response.FromDevice(device))
}

func (h *DeviceHandler) GetTimeline(c *gin.Context) {
	steps, err := h.usecase.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimeline(steps))
}

func mapDeviceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceID),
		errors.Is(err, usecase.ErrInvalidSerialNumber),
		errors.Is(err, usecase.ErrSerialNumberTooShort),
		errors.Is(err, usecase.ErrInvalidInquiry),
		errors.Is(err, usecase.ErrInvalidServiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoDevices):
		return pkg.NewDomainErrorSimple("NO_DEVICES", "No devices registered", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoDeviceSelected):
		return pkg.NewDomainErrorSimple("NO_DEVICE_SELECTED", "No device selected", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidReorder):
		return pkg.NewDomainErrorSimple("INVALID_REORDER", "Reorder must be a permutation of the registered devices", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStageTransition):
		return pkg.NewDomainErrorSimple("INVALID_STAGE_TRANSITION", "Stage is not the immediate successor", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Repairing starts only through estimate confirmation", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
