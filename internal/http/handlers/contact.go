package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castororo/Rajabakkiam-traders/internal/config"
	"github.com/castororo/Rajabakkiam-traders/internal/http/flash"
	"github.com/castororo/Rajabakkiam-traders/internal/http/render"
	"github.com/castororo/Rajabakkiam-traders/internal/http/validation"
	"github.com/castororo/Rajabakkiam-traders/pkg/view"
)

// ContactHandler serves the contact page and its enquiry form. The
// form is a marketing stub: it validates, thanks the visitor, and
// keeps nothing.
type ContactHandler struct {
	Business config.Business
	Flash    *flash.Codec
}

func NewContactHandler(b config.Business, fl *flash.Codec) *ContactHandler {
	return &ContactHandler{Business: b, Flash: fl}
}

type contactInput struct {
	Name    string `form:"name" binding:"required,min=2,max=100"`
	Email   string `form:"email" binding:"omitempty,email,max=255"`
	Phone   string `form:"phone" binding:"omitempty,max=32"`
	Message string `form:"message" binding:"required,min=5,max=2000"`
}

func (h *ContactHandler) Get(c *gin.Context) {
	c.HTML(http.StatusOK, "contact", view.ContactPage{
		Page: render.NewPage(c, h.Business, "Contact Us", "contact"),
	})
}

func (h *ContactHandler) Post(c *gin.Context) {
	var in contactInput
	if err := c.ShouldBind(&in); err != nil {
		fields := validation.FromBindError(err, &in)
		msg := fields.First("name", "email", "phone", "message", "_")
		render.RedirectWithFlash(c, h.Flash, "/contact", view.FlashError, msg)
		return
	}

	render.RedirectWithFlashTitle(c, h.Flash, "/contact", view.FlashSuccess,
		"Message Sent!", "We'll get back to you within 24 hours.")
}
