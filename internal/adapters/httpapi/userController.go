package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.uc.Register(c.Request.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *UserController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.uc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, res)
}
