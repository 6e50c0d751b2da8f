package emails

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp.Error.Message
}

func TestSendValidation(t *testing.T) {
	repo := NewMemoryRepo()
	r := newTestRouter(&Service{Repo: repo, Mailer: &stubMailer{}})

	tests := []struct {
		name    string
		payload map[string]string
		wantMsg string
	}{
		{
			name:    "missing to",
			payload: map[string]string{"subject": "s", "body": "b"},
			wantMsg: "to is required (recipient email)",
		},
		{
			name:    "missing subject",
			payload: map[string]string{"to": "jane@example.com", "body": "b"},
			wantMsg: "subject is required",
		},
		{
			name:    "missing body",
			payload: map[string]string{"to": "jane@example.com", "subject": "s"},
			wantMsg: "body is required",
		},
		{
			name:    "malformed address",
			payload: map[string]string{"to": "not-an-address", "subject": "s", "body": "b"},
			wantMsg: "to must be a valid email address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/v1/email/send", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w))
		})
	}

	// Rejected requests never reach the log.
	logs, err := repo.ListRecent(context.Background(), 20)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestSendAndListLogs(t *testing.T) {
	repo := NewMemoryRepo()
	r := newTestRouter(&Service{Repo: repo, Mailer: &stubMailer{}})

	w := postJSON(t, r, "/api/v1/email/send", map[string]string{
		"to":      "jane@example.com",
		"subject": "Opportunity",
		"body":    "We liked your resume.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var sendResp struct {
		Success bool `json:"success"`
		Data    struct {
			SentTo string `json:"sentTo"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sendResp))
	assert.True(t, sendResp.Success)
	assert.Equal(t, "jane@example.com", sendResp.Data.SentTo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/email/logs", nil)
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code)

	var logsResp struct {
		Success bool       `json:"success"`
		Data    []LogEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &logsResp))
	assert.True(t, logsResp.Success)
	require.Len(t, logsResp.Data, 1)
	assert.Equal(t, StatusSent, logsResp.Data[0].Status)
	assert.Equal(t, "Opportunity", logsResp.Data[0].Subject)
}

func TestListLogsEmpty(t *testing.T) {
	r := newTestRouter(&Service{Repo: NewMemoryRepo(), Mailer: &stubMailer{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/email/logs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool       `json:"success"`
		Data    []LogEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}
