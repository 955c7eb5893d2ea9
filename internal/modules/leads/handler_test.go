package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"loanhelp/internal/database"
	"loanhelp/internal/pkg/mailer"
	"loanhelp/internal/repository"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail bool
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("send failed")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Message(nil), s.sent...)
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *recordingSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	sender := &recordingSender{}
	service := NewService(repository.NewLeadRepository(db), sender, testConfig())
	handler := NewHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)

	return router, db, sender
}

func performRequest(router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type submitResponse struct {
	OK      bool   `json:"ok"`
	State   string `json:"state"`
	Message string `json:"message"`
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) submitResponse {
	t.Helper()
	var out submitResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func leadCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table("leads").Count(&count).Error)
	return count
}

func TestSubmitLead_Success(t *testing.T) {
	router, db, sender := setupRouter(t)

	resp := performRequest(router, validRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	out := decode(t, resp)
	assert.True(t, out.OK)
	assert.Equal(t, "TX", out.State)

	require.Equal(t, int64(1), leadCount(t, db))

	var row struct {
		Email     string
		Phone     string
		IPAddress string `gorm:"column:ip_address"`
		UserAgent string `gorm:"column:user_agent"`
	}
	require.NoError(t, db.Table("leads").Take(&row).Error)
	assert.Equal(t, "maria.lopez@example.com", row.Email)
	assert.Equal(t, "5551234567", row.Phone)
	assert.NotEmpty(t, row.IPAddress)
	assert.Equal(t, "test-agent", row.UserAgent)

	msgs := sender.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "inbox@mgphq.com", msgs[0].To)
	assert.Contains(t, msgs[0].Subject, "[HIGH]")
	assert.Equal(t, "maria.lopez@example.com", msgs[1].To)
}

func TestSubmitLead_Honeypot(t *testing.T) {
	router, db, sender := setupRouter(t)

	req := validRequest()
	req.Honeypot = "filled by bot"

	resp := performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)

	// success-shaped response with an empty state, no record, no emails
	out := decode(t, resp)
	assert.True(t, out.OK)
	assert.Equal(t, "", out.State)
	assert.Equal(t, int64(0), leadCount(t, db))
	assert.Empty(t, sender.messages())
}

func TestSubmitLead_ValidationFailure(t *testing.T) {
	router, db, _ := setupRouter(t)

	req := validRequest()
	req.Phone = "555-123"

	resp := performRequest(router, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	out := decode(t, resp)
	assert.False(t, out.OK)
	assert.Equal(t, "10-digit phone number required", out.Message)
	assert.Equal(t, int64(0), leadCount(t, db))
}

func TestSubmitLead_MalformedJSON(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	out := decode(t, resp)
	assert.False(t, out.OK)
	assert.Equal(t, "Please check your info and try again.", out.Message)
}

func TestSubmitLead_DuplicateWindow(t *testing.T) {
	router, db, _ := setupRouter(t)

	resp := performRequest(router, validRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	// same email again inside the window
	resp = performRequest(router, validRequest())
	require.Equal(t, http.StatusTooManyRequests, resp.Code)
	out := decode(t, resp)
	assert.False(t, out.OK)
	assert.Equal(t, "You already submitted recently. Please wait 24 hours and try again.", out.Message)
	assert.Equal(t, int64(1), leadCount(t, db))

	// age the existing record past the window; the next submission passes
	aged := time.Now().UTC().Add(-25 * time.Hour)
	require.NoError(t, db.Exec("UPDATE leads SET created_at = ?", aged).Error)

	resp = performRequest(router, validRequest())
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(2), leadCount(t, db))
}

func TestSubmitLead_PersistenceFailure(t *testing.T) {
	router, db, sender := setupRouter(t)

	require.NoError(t, db.Exec("DROP TABLE leads").Error)

	resp := performRequest(router, validRequest())
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	out := decode(t, resp)
	assert.False(t, out.OK)
	assert.Equal(t, "We couldn't submit your request. Please try again.", out.Message)
	assert.Empty(t, sender.messages())
}

func TestSubmitLead_EmailFailureStillSucceeds(t *testing.T) {
	router, db, sender := setupRouter(t)
	sender.fail = true

	resp := performRequest(router, validRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	out := decode(t, resp)
	assert.True(t, out.OK)
	assert.Equal(t, "TX", out.State)
	assert.Equal(t, int64(1), leadCount(t, db))
	assert.Empty(t, sender.messages())
}
