package routes

import (
	"patoz_consumer/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDevices   = "/devices"
	PathInquiries = "/inquiries"
	PathHistory   = "/history"
	PathEstimates = "/estimates"
	PathStores    = "/stores"
)

func addConsumerRoutes(
	rg *gin.RouterGroup,
	deviceHandler *handlers.DeviceHandler,
	historyHandler *handlers.HistoryHandler,
	estimateHandler *handlers.EstimateHandler,
	storeHandler *handlers.StoreHandler,
) {
	devices := rg.Group(PathDevices)
	{
		devices.POST("", deviceHandler.RegisterDevice)
		devices.GET("", deviceHandler.ListDevices)
		devices.GET("/selected", deviceHandler.GetSelectedDevice)
		devices.PATCH("/selected", deviceHandler.SelectDevice)
		devices.PATCH("/reorder", deviceHandler.ReorderDevices)
		devices.GET("/:id", deviceHandler.GetDevice)
		devices.PATCH("/:id/move-up", deviceHandler.MoveDeviceUp)
		devices.PATCH("/:id/move-down", deviceHandler.MoveDeviceDown)
		devices.PATCH("/:id/status", deviceHandler.UpdateServiceStatus)
		devices.PATCH("/:id/advance", deviceHandler.AdvanceStage)
		devices.GET("/:id/timeline", deviceHandler.GetTimeline)

		// Estimate catalog scoped to a device's open repair request.
		devices.GET("/:id/estimates", estimateHandler.ListIncoming)
		devices.GET("/:id/estimates/confirmed", estimateHandler.GetConfirmedEstimate)
		devices.POST("/:id/estimates/:estimate_id/confirm", estimateHandler.ConfirmEstimate)
	}

	inquiries := rg.Group(PathInquiries)
	{
		inquiries.POST("", deviceHandler.SubmitInquiry)
	}

	history := rg.Group(PathHistory)
	{
		history.GET("", historyHandler.ListHistory)
		history.GET("/:id", historyHandler.GetHistoryItem)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/:id", estimateHandler.GetEstimate)
	}

	stores := rg.Group(PathStores)
	{
		stores.GET("", storeHandler.ListStores)
	}
}
