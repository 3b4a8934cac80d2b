package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
)

type ActionneurHandler struct {
	svc *service.ActionneurService
}

func NewActionneurHandler(svc *service.ActionneurService) *ActionneurHandler {
	return &ActionneurHandler{svc: svc}
}

// List godoc
// @Summary List actionneurs
// @Tags actionneurs
// @Produce json
// @Success 200 {array} model.Actionneur
// @Router /actionneurs [get]
func (h *ActionneurHandler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary Register an actionneur
// @Tags actionneurs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateActionneurRequest true "Actionneur"
// @Success 201 {object} model.Actionneur
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /actionneurs [post]
func (h *ActionneurHandler) Create(c *gin.Context) {
	var req model.CreateActionneurRequest
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
// @Summary Remove an actionneur
// @Tags actionneurs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discord user ID"
// @Success 200 {object} object
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /actionneurs/{id} [delete]
func (h *ActionneurHandler) Delete(c *gin.Context) {
	id, err := model.ParseSnowflake(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
