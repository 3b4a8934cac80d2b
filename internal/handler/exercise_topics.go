package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
)

type ExerciseTopicHandler struct {
	svc *service.ExerciseTopicService
}

func NewExerciseTopicHandler(svc *service.ExerciseTopicService) *ExerciseTopicHandler {
	return &ExerciseTopicHandler{svc: svc}
}

// List godoc
// @Summary List exercise topics
// @Tags exercises
// @Produce json
// @Success 200 {array} model.ExerciseTopicView
// @Router /exercise_topics [get]
func (h *ExerciseTopicHandler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Get godoc
// @Summary Get an exercise topic
// @Tags exercises
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} model.ExerciseTopicView
// @Failure 404 {object} model.ErrorResponse
// @Router /exercise_topics/{id} [get]
func (h *ExerciseTopicHandler) Get(c *gin.Context) {
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
// @Summary Create an exercise topic
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ExerciseTopicRequest true "Topic"
// @Success 201 {object} model.ExerciseTopicView
// @Failure 400 {object} model.ErrorResponse
// @Router /exercise_topics [post]
func (h *ExerciseTopicHandler) Create(c *gin.Context) {
	var req model.ExerciseTopicRequest
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
// @Summary Replace an exercise topic
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param request body model.ExerciseTopicRequest true "Topic"
// @Success 200 {object} model.ExerciseTopicView
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /exercise_topics/{id} [put]
func (h *ExerciseTopicHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.ExerciseTopicRequest
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
// @Summary Delete an exercise topic
// @Description Exercises of the topic are deleted with it.
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 200 {object} object
// @Failure 404 {object} model.ErrorResponse
// @Router /exercise_topics/{id} [delete]
func (h *ExerciseTopicHandler) Delete(c *gin.Context) {
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
