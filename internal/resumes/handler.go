package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-chat-backend/internal/extract"
	"resume-chat-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc           *Service
	MaxUploadSize int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadSize int64) *Handler {
	return &Handler{Svc: svc, MaxUploadSize: maxUploadSize}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/upload", h.upload)
	rg.GET("/resume/list", h.list)
	rg.GET("/resume", h.latest)
	rg.DELETE("/resume/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	if h.MaxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadSize)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	res, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, mimeType, data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "Unsupported file type")
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to process resume")
		}
		return
	}

	respond.OK(c, UploadResponse{
		ResumeID:     res.ID,
		OriginalName: res.OriginalName,
		UploadedAt:   res.UploadedAt,
	})
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	resp := make([]InfoResponse, 0, len(all))
	for _, res := range all {
		resp = append(resp, toInfo(res))
	}
	respond.OK(c, resp)
}

func (h *Handler) latest(c *gin.Context) {
	res, err := h.Svc.Latest(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "No resume uploaded yet")
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to fetch resume")
		}
		return
	}
	respond.OK(c, toInfo(res))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to delete resume")
		}
		return
	}
	respond.OK(c, DeleteResponse{
		Message:  "Resume deleted successfully",
		ResumeID: id,
	})
}
