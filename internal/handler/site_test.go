package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submitContact runs the contact handler with nil repositories. Every case
// here must be rejected by validation before any repository call, otherwise
// the handler would panic.
func submitContact(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &SiteHandler{}
	require.NoError(t, h.SubmitContact(c))
	return rec
}

func TestSubmitContact_RejectsShortName(t *testing.T) {
	rec := submitContact(t, `{"name":"A","email":"a@example.com","message":"hello there, long enough"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name must be at least 2 characters")
}

func TestSubmitContact_RejectsWhitespaceName(t *testing.T) {
	rec := submitContact(t, `{"name":"   ","email":"a@example.com","message":"hello there, long enough"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContact_RejectsBadEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "a@", "@example.com"} {
		rec := submitContact(t, `{"name":"Ada","email":"`+email+`","message":"hello there, long enough"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "email %q", email)
		assert.Contains(t, rec.Body.String(), "valid email is required")
	}
}

func TestSubmitContact_RejectsShortMessage(t *testing.T) {
	rec := submitContact(t, `{"name":"Ada","email":"a@example.com","message":"too short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message must be at least 10 characters")
}

func TestSubmitContact_RejectsMalformedBody(t *testing.T) {
	rec := submitContact(t, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
