package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-chat-backend/internal/resumes"
	"resume-chat-backend/internal/shared/server/respond"
)

// Handler wires the chat endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the chat route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.ask)
}

func (h *Handler) ask(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ResumeID) == "" {
		respond.Error(c, http.StatusBadRequest, "resumeId is required")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respond.Error(c, http.StatusBadRequest, "question is required")
		return
	}

	resp, err := h.Svc.Ask(c.Request.Context(), req.ResumeID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to answer question")
		}
		return
	}

	respond.OK(c, resp)
}
