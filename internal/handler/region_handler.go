package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"region-directory/internal/directory"
	"region-directory/internal/validation"
	"region-directory/pkg/model"
)

// Query parameters accepted by GET /v1/regions, checked in this order
const (
	queryName          = "name"
	queryNameBeginning = "name-beginning"
	queryShortName     = "short-name"
)

// RegionHandler handles region-related HTTP requests
type RegionHandler struct {
	service *directory.Service
	logger  *zap.Logger
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(service *directory.Service, logger *zap.Logger) *RegionHandler {
	return &RegionHandler{
		service: service,
		logger:  logger,
	}
}

// AddRegion handles POST /v1/regions
func (h *RegionHandler) AddRegion(c *gin.Context) {
	dto, ok := h.bindRegion(c)
	if !ok {
		return
	}

	if err := h.service.Add(c.Request.Context(), dto); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, model.MutationResponse{Successful: true, Value: &dto})
}

// GetRegions handles GET /v1/regions, optionally filtered by
// name, name-beginning or short-name
func (h *RegionHandler) GetRegions(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		regions []model.RegionDTO
		err     error
	)

	if name, ok := c.GetQuery(queryName); ok {
		if err = validation.Name(name); err == nil {
			regions, err = h.service.GetByName(ctx, name)
		}
	} else if prefix, ok := c.GetQuery(queryNameBeginning); ok {
		if err = validation.NameBeginning(prefix); err == nil {
			regions, err = h.service.GetByNameBeginning(ctx, prefix)
		}
	} else if shortName, ok := c.GetQuery(queryShortName); ok {
		if err = validation.ShortName(shortName); err == nil {
			regions, err = h.service.GetByShortName(ctx, shortName)
		}
	} else {
		regions, err = h.service.GetAll(ctx)
	}

	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, regions)
}

// GetRegion handles GET /v1/regions/:id
func (h *RegionHandler) GetRegion(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ID(id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	region, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, region)
}

// UpdateRegion handles PUT /v1/regions/:id
func (h *RegionHandler) UpdateRegion(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ID(id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	dto, ok := h.bindRegion(c)
	if !ok {
		return
	}

	if err := h.service.UpdateByID(c.Request.Context(), id, dto); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, model.MutationResponse{Successful: true, Value: &dto})
}

// DeleteRegion handles DELETE /v1/regions/:id
func (h *RegionHandler) DeleteRegion(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ID(id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, model.MutationResponse{Successful: true})
}

// bindRegion decodes and validates a JSON region body. On failure the
// response is already written.
func (h *RegionHandler) bindRegion(c *gin.Context) (model.RegionDTO, bool) {
	var dto model.RegionDTO

	if c.ContentType() != gin.MIMEJSON {
		abortWithMessage(c, http.StatusUnsupportedMediaType, msgUnsupportedMediaType)
		return dto, false
	}

	if err := c.ShouldBindJSON(&dto); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			respondError(c, h.logger, err)
			return dto, false
		}
		h.logger.Debug("unreadable request body", zap.Error(err))
		abortWithMessage(c, http.StatusBadRequest, msgUnformedJSON)
		return dto, false
	}

	return dto, true
}
