package library

import (
	"fmt"

	"gitee.com/flycash/campaign-platform/internal/errs"
	"gitee.com/flycash/campaign-platform/internal/service/contact"
	"gitee.com/flycash/campaign-platform/internal/service/draft"
	"gitee.com/flycash/campaign-platform/internal/service/template"
	"gitee.com/flycash/campaign-platform/internal/web"
	"github.com/gin-gonic/gin"
)

// Handler serves the address book, saved templates and drafts.
type Handler struct {
	contactSvc  contact.Service
	templateSvc template.Service
	draftSvc    draft.Service
}

func NewHandler(contactSvc contact.Service, templateSvc template.Service, draftSvc draft.Service) *Handler {
	return &Handler{
		contactSvc:  contactSvc,
		templateSvc: templateSvc,
		draftSvc:    draftSvc,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	contacts := r.Group("/contacts")
	contacts.GET("", h.ListContacts)
	contacts.POST("", h.AddContact)
	contacts.DELETE("/:name", h.DeleteContact)

	templates := r.Group("/templates")
	templates.GET("", h.ListTemplates)
	templates.GET("/:title", h.GetTemplate)
	templates.POST("", h.SaveTemplate)
	templates.DELETE("/:title", h.DeleteTemplate)

	drafts := r.Group("/drafts")
	drafts.GET("", h.ListDrafts)
	drafts.POST("", h.SaveDraft)
	drafts.DELETE("/:key", h.DeleteDraft)
}

func bind[T any](c *gin.Context) (T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		web.Error(c, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err))
		return req, false
	}
	return req, true
}

func (h *Handler) ListContacts(c *gin.Context) {
	res, err := h.contactSvc.List(c.Request.Context())
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, res)
}

func (h *Handler) AddContact(c *gin.Context) {
	req, ok := bind[ContactReq](c)
	if !ok {
		return
	}
	res, err := h.contactSvc.Add(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, res)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	if err := h.contactSvc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, nil)
}

func (h *Handler) ListTemplates(c *gin.Context) {
	res, err := h.templateSvc.List(c.Request.Context())
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, res)
}

func (h *Handler) GetTemplate(c *gin.Context) {
	res, err := h.templateSvc.Get(c.Request.Context(), c.Param("title"))
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, res)
}

func (h *Handler) SaveTemplate(c *gin.Context) {
	req, ok := bind[TemplateReq](c)
	if !ok {
		return
	}
	res, err := h.templateSvc.Save(c.Request.Context(), req.Title, req.Body)
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, res)
}

func (h *Handler) DeleteTemplate(c *gin.Context) {
	if err := h.templateSvc.Delete(c.Request.Context(), c.Param("title")); err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, nil)
}

func (h *Handler) ListDrafts(c *gin.Context) {
	res, err := h.draftSvc.List(c.Request.Context())
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, res)
}

func (h *Handler) SaveDraft(c *gin.Context) {
	req, ok := bind[DraftReq](c)
	if !ok {
		return
	}
	res, err := h.draftSvc.Save(c.Request.Context(), req.Message)
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, res)
}

func (h *Handler) DeleteDraft(c *gin.Context) {
	if err := h.draftSvc.Delete(c.Request.Context(), c.Param("key")); err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, nil)
}
