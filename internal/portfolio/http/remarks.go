package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

type approvalReq struct {
	IsApproved *bool `json:"isApproved"`
}

func (h *Handler) listRemarks(c *gin.Context) {
	items, err := h.remarks.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Remarks not found")
		return
	}
	c.JSON(http.StatusOK, items)
}

// addRemark ignores any isApproved in the body; RemarkInput has no such field.
func (h *Handler) addRemark(c *gin.Context) {
	var in domain.RemarkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}

	r, err := h.remarks.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "Remark not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "remark": r})
}

func (h *Handler) toggleApproval(c *gin.Context) {
	var req approvalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if req.IsApproved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isApproved must be a boolean", "code": CodeValidation})
		return
	}

	r, err := h.remarks.SetApproval(c.Request.Context(), c.Param("id"), *req.IsApproved)
	if err != nil {
		h.writeError(c, err, "Remark not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "remark": r})
}

func (h *Handler) deleteRemark(c *gin.Context) {
	if err := h.remarks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Remark not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Remark deleted"})
}
