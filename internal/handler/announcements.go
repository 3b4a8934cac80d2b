package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
)

type AnnouncementHandler struct {
	svc *service.AnnouncementService
}

func NewAnnouncementHandler(svc *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

type announcementQuery struct {
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
	Sort   string `form:"sort"`
}

// List godoc
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Param limit query int false "Page size (1-100)" default(10)
// @Param offset query int false "Offset" default(0)
// @Param sort query string false "date_asc, date_desc, name_asc or name_desc" default(date_desc)
// @Success 200 {array} model.Announcement
// @Failure 400 {object} model.ErrorResponse
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	var q announcementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBadRequest(c, "invalid query")
		return
	}
	res, err := h.svc.List(c.Request.Context(), model.AnnouncementFilter{
		Limit:  q.Limit,
		Offset: q.Offset,
		Sort:   model.AnnouncementSort(q.Sort),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Get godoc
// @Summary Get an announcement
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} model.Announcement
// @Failure 404 {object} model.ErrorResponse
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
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
// @Summary Create an announcement
// @Description Content is sanitized; only user-generated-content safe HTML is kept.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AnnouncementRequest true "Announcement"
// @Success 201 {object} model.Announcement
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req model.AnnouncementRequest
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
// @Summary Replace an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body model.AnnouncementRequest true "Announcement"
// @Success 200 {object} model.Announcement
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.AnnouncementRequest
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
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} object
// @Failure 404 {object} model.ErrorResponse
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
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
