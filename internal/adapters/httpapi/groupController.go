package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GroupController struct{ gc GroupUseCase }

func NewGroupController(gc GroupUseCase) *GroupController {
	return &GroupController{gc: gc}
}

func (ctl *GroupController) Create(c *gin.Context) {
	var req struct {
		Slug        string `json:"slug" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.gc.Create(c.Request.Context(), req.Slug, req.Title, req.Description)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
