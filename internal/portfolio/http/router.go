package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the routes any visitor may call.
func (h *Handler) RegisterPublic(rg gin.IRouter) {
	rg.GET("/projects", h.listProjects)
	rg.GET("/remarks", h.listRemarks)
	rg.POST("/addremark", h.addRemark)
	rg.POST("/contact", h.sendContact)
}

// RegisterAdmin attaches the curation routes. rg is expected to carry the admin auth middleware.
func (h *Handler) RegisterAdmin(rg gin.IRouter) {
	rg.POST("/saveproject", h.saveProject)
	rg.PUT("/updateproject/:id", h.updateProject)
	rg.DELETE("/deleteproject/:id", h.deleteProject)

	rg.PUT("/toggleapproval/:id", h.toggleApproval)
	rg.DELETE("/deleteremark/:id", h.deleteRemark)

	rg.GET("/contacts", h.listContacts)
	rg.DELETE("/deletecontact/:id", h.deleteContact)
}
