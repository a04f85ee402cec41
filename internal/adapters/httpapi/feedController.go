package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FeedController struct {
	fc  FeedUseCase
	flc FollowUseCase
}

func NewFeedController(fc FeedUseCase, flc FollowUseCase) *FeedController {
	return &FeedController{fc: fc, flc: flc}
}

func (ctl *FeedController) HomeFeed(c *gin.Context) {
	page, err := ctl.fc.HomeFeed(c.Request.Context(), pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *FeedController) GroupFeed(c *gin.Context) {
	page, err := ctl.fc.GroupFeed(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// AuthorFeed also reports whether the current viewer follows this author, when
// a session is present.
func (ctl *FeedController) AuthorFeed(c *gin.Context) {
	username := c.Param("username")
	page, err := ctl.fc.AuthorFeed(c.Request.Context(), username, pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	following := false
	if viewerID, ok := currentUserID(c); ok {
		following, _ = ctl.flc.IsFollowing(c.Request.Context(), viewerID, username)
	}

	c.JSON(http.StatusOK, gin.H{"page": page, "following": following})
}

func (ctl *FeedController) FollowingFeed(c *gin.Context) {
	followerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	page, err := ctl.fc.FollowingFeed(c.Request.Context(), followerID, pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
