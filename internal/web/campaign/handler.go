package campaign

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	campaignsvc "gitee.com/flycash/campaign-platform/internal/service/campaign"
	"gitee.com/flycash/campaign-platform/internal/service/contact"
	"gitee.com/flycash/campaign-platform/internal/service/dispatch"
	"gitee.com/flycash/campaign-platform/internal/service/history"
	"gitee.com/flycash/campaign-platform/internal/service/importer"
	"gitee.com/flycash/campaign-platform/internal/service/scheduler"
	"gitee.com/flycash/campaign-platform/internal/web"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	dispatchSvc *dispatch.Service
	queue       *scheduler.JobQueue
	campaignSvc campaignsvc.Service
	historySvc  history.Service
	contactSvc  contact.Service
}

func NewHandler(
	dispatchSvc *dispatch.Service,
	queue *scheduler.JobQueue,
	campaignSvc campaignsvc.Service,
	historySvc history.Service,
	contactSvc contact.Service,
) *Handler {
	return &Handler{
		dispatchSvc: dispatchSvc,
		queue:       queue,
		campaignSvc: campaignSvc,
		historySvc:  historySvc,
		contactSvc:  contactSvc,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/campaigns/send", h.Send)
	r.GET("/campaigns", h.ListCampaigns)
	r.GET("/jobs", h.ListJobs)
	r.DELETE("/jobs/:id", h.CancelJob)
	r.GET("/history", h.ListHistory)
	r.GET("/history/export", h.ExportHistory)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		web.Error(c, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err))
		return
	}
	ctx := c.Request.Context()

	imported := append([]domain.Recipient(nil), req.Recipients...)
	if strings.TrimSpace(req.CSV) != "" {
		parsed, err := importer.ParseCSV(strings.NewReader(req.CSV))
		if err != nil {
			web.Error(c, err)
			return
		}
		imported = append(parsed, imported...)
	}

	var contacts []domain.Contact
	if req.UseContacts {
		var err error
		contacts, err = h.contactSvc.List(ctx)
		if err != nil {
			web.Error(c, err)
			return
		}
	}

	sendReq := dispatch.SendRequest{
		Message:      req.Message,
		Imported:     imported,
		Contacts:     contacts,
		CampaignName: req.CampaignName,
	}
	if req.SendAt != nil {
		sendReq.SendAt = *req.SendAt
	}
	out, err := h.dispatchSvc.RequestSend(ctx, sendReq)
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, out)
}

func (h *Handler) ListCampaigns(c *gin.Context) {
	groups, err := h.campaignSvc.Groups(c.Request.Context())
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, groups)
}

func (h *Handler) ListJobs(c *gin.Context) {
	web.OK(c, h.queue.Pending())
}

func (h *Handler) CancelJob(c *gin.Context) {
	if err := h.queue.Cancel(c.Param("id")); err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, nil)
}

func (h *Handler) ListHistory(c *gin.Context) {
	attempts, err := h.historySvc.All(c.Request.Context())
	if err != nil {
		web.Error(c, err)
		return
	}
	web.OK(c, slice.Map(attempts, func(_ int, src domain.DeliveryAttempt) HistoryEntry {
		return HistoryEntry{
			Time:    src.Time.Format(history.TimeLayout),
			Phone:   src.Phone,
			Message: src.Message,
			Status:  src.Outcome.String(),
		}
	}))
}

func (h *Handler) ExportHistory(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.historySvc.Export(c.Request.Context(), &buf); err != nil {
		web.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="sms_history.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
