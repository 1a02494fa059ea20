package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

func (h *Handler) sendContact(c *gin.Context) {
	var in domain.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	if _, err := h.contacts.Send(c.Request.Context(), in); err != nil {
		h.writeError(c, err, "Message not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}

func (h *Handler) listContacts(c *gin.Context) {
	items, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Messages not found")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) deleteContact(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Message not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted"})
}
