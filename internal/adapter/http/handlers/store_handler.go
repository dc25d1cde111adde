package handlers

import (
	"net/http"
	"strconv"

	response "patoz_consumer/internal/adapter/http/dto/response"
	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase"
	"patoz_consumer/pkg"

	"github.com/gin-gonic/gin"
)

// StoreHandler serves the partner-store finder.

type StoreHandler struct {
	usecase usecase.IStoreUseCase
}

func NewStoreHandler(uc usecase.IStoreUseCase) *StoreHandler {
	return &StoreHandler{usecase: uc}
}

// ListStores lists partner stores. Query parameters:
//
//	sales=true       only stores that sell devices
//	repair=true      only stores that repair devices
//	in_viewport=true project onto the map viewport (lat/lon/lat_delta/lon_delta
//	                 override the default Seoul region)
func (h *StoreHandler) ListStores(c *gin.Context) {
	filter := usecase.StoreFilter{
		SalesOnly:  c.Query("sales") == "true",
		RepairOnly: c.Query("repair") == "true",
	}

	if c.Query("in_viewport") != "true" {
		stores, err := h.usecase.List(c.Request.Context(), filter)
		if err != nil {
			appErr := mapStoreError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromStores(stores))
		return
	}

	region, ok := parseRegionQuery(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	markers, err := h.usecase.ListInViewport(c.Request.Context(), region, filter)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStoreMarkers(markers))
}

// parseRegionQuery reads an optional viewport from query parameters. All
// four must be present together; none present means the default region.
func parseRegionQuery(c *gin.Context) (*entities.Region, bool) {
	raw := [4]string{c.Query("lat"), c.Query("lon"), c.Query("lat_delta"), c.Query("lon_delta")}
	if raw[0] == "" && raw[1] == "" && raw[2] == "" && raw[3] == "" {
		return nil, true
	}

	vals := [4]float64{}
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return nil, false
	}

	return &entities.Region{
		Latitude:       vals[0],
		Longitude:      vals[1],
		LatitudeDelta:  vals[2],
		LongitudeDelta: vals[3],
	}, true
}

func mapStoreError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
