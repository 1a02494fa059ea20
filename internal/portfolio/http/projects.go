package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Projects not found")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) saveProject(c *gin.Context) {
	var in domain.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	p, err := h.projects.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"_id":         p.ID,
		"title":       p.Title,
		"description": p.Description,
		"imageUrl":    p.ImageURL,
		"tags":        p.Tags,
		"githubUrl":   p.GithubURL,
		"liveUrl":     p.LiveURL,
		"createdAt":   p.CreatedAt,
	})
}

func (h *Handler) updateProject(c *gin.Context) {
	var in domain.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	p, err := h.projects.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}
