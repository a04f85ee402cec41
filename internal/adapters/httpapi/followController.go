package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FollowController struct{ fc FollowUseCase }

func NewFollowController(fc FollowUseCase) *FollowController {
	return &FollowController{fc: fc}
}

func (ctl *FollowController) Follow(c *gin.Context) {
	followerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	if err := ctl.fc.Follow(c.Request.Context(), followerID, c.Param("username")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "following"})
}

func (ctl *FollowController) Unfollow(c *gin.Context) {
	followerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	if err := ctl.fc.Unfollow(c.Request.Context(), followerID, c.Param("username")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "not following"})
}
