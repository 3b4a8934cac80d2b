package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
)

type ExerciseHandler struct {
	svc *service.ExerciseService
}

func NewExerciseHandler(svc *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{svc: svc}
}

// List godoc
// @Summary List exercises
// @Description Content is omitted; fetch a single exercise to read it.
// @Tags exercises
// @Produce json
// @Success 200 {array} model.ExerciseView
// @Router /exercises [get]
func (h *ExerciseHandler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Get godoc
// @Summary Get an exercise with its content
// @Tags exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} model.ExerciseView
// @Failure 404 {object} model.ErrorResponse
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) Get(c *gin.Context) {
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
// @Summary Create an exercise
// @Description content is the base64 encoded document.
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ExerciseRequest true "Exercise"
// @Success 201 {object} model.ExerciseView
// @Failure 400 {object} model.ErrorResponse
// @Router /exercises [post]
func (h *ExerciseHandler) Create(c *gin.Context) {
	var req model.ExerciseRequest
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

// Delete godoc
// @Summary Delete an exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} object
// @Failure 404 {object} model.ErrorResponse
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) Delete(c *gin.Context) {
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
