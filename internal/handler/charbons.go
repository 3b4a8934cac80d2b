package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
)

type CharbonHandler struct {
	svc *service.CharbonService
}

func NewCharbonHandler(svc *service.CharbonService) *CharbonHandler {
	return &CharbonHandler{svc: svc}
}

type charbonQuery struct {
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
	CourseType string `form:"course_type"`
	Course     string `form:"course"`
	Sort       string `form:"sort"`
	MinDate    *int64 `form:"min_date"`
	MaxDate    *int64 `form:"max_date"`
}

// List godoc
// @Summary List charbons
// @Tags charbons
// @Produce json
// @Param limit query int false "Page size (1-100)" default(10)
// @Param offset query int false "Offset" default(0)
// @Param course_type query string false "meca, info, elec or math"
// @Param course query string false "Course id"
// @Param sort query string false "date_asc, date_desc, duration_asc or duration_desc" default(date_desc)
// @Param min_date query int false "Earliest datetime (unix seconds)"
// @Param max_date query int false "Latest datetime (unix seconds)"
// @Success 200 {array} model.CharbonView
// @Failure 400 {object} model.ErrorResponse
// @Router /charbons [get]
func (h *CharbonHandler) List(c *gin.Context) {
	var q charbonQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBadRequest(c, "invalid query")
		return
	}

	res, err := h.svc.List(c.Request.Context(), model.CharbonFilter{
		Limit:      q.Limit,
		Offset:     q.Offset,
		CourseType: model.CourseType(q.CourseType),
		CourseID:   q.Course,
		Sort:       model.CharbonSort(q.Sort),
		MinDate:    q.MinDate,
		MaxDate:    q.MaxDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Get godoc
// @Summary Get a charbon
// @Tags charbons
// @Produce json
// @Param id path int true "Charbon ID"
// @Success 200 {object} model.CharbonView
// @Failure 404 {object} model.ErrorResponse
// @Router /charbons/{id} [get]
func (h *CharbonHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary Create a charbon
// @Description The duration is derived from the YouTube replay link.
// @Tags charbons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CharbonRequest true "Charbon"
// @Success 201 {object} model.CharbonView
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /charbons [post]
func (h *CharbonHandler) Create(c *gin.Context) {
	var req model.CharbonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Update godoc
// @Summary Replace a charbon
// @Tags charbons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Charbon ID"
// @Param request body model.CharbonRequest true "Charbon"
// @Success 200 {object} model.CharbonView
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /charbons/{id} [put]
func (h *CharbonHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.CharbonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}
	res, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete godoc
// @Summary Delete a charbon
// @Tags charbons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Charbon ID"
// @Success 200 {object} object
// @Failure 404 {object} model.ErrorResponse
// @Router /charbons/{id} [delete]
func (h *CharbonHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
