package emails

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"resume-chat-backend/internal/shared/server/respond"
)

var addressShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Handler wires the email endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches email routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/email/send", h.send)
	rg.GET("/email/logs", h.logs)
}

type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.To == "" {
		respond.Error(c, http.StatusBadRequest, "to is required (recipient email)")
		return
	}
	if req.Subject == "" {
		respond.Error(c, http.StatusBadRequest, "subject is required")
		return
	}
	if req.Body == "" {
		respond.Error(c, http.StatusBadRequest, "body is required")
		return
	}
	if !addressShape.MatchString(req.To) {
		respond.Error(c, http.StatusBadRequest, "to must be a valid email address")
		return
	}

	if _, err := h.Svc.Send(c.Request.Context(), req.To, req.Subject, req.Body); err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"data":    gin.H{"sentTo": req.To},
	})
}

func (h *Handler) logs(c *gin.Context) {
	entries, err := h.Svc.Recent(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to fetch email logs")
		return
	}
	if entries == nil {
		entries = []LogEntry{}
	}
	respond.OK(c, gin.H{
		"success": true,
		"data":    entries,
	})
}
