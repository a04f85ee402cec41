package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

type postRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group_slug"`
	Image     string `json:"image"`
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	authorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), authorID, req.Text, req.GroupSlug, req.Image)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) EditPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	editorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.EditPost(c.Request.Context(), postID, editorID, req.Text, req.GroupSlug, req.Image)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, comments, err := ctl.pc.GetPost(c.Request.Context(), postID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "comments": comments})
}

func (ctl *PostController) AddComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	authorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.AddComment(c.Request.Context(), postID, authorID, req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
