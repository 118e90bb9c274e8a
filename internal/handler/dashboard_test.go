package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyamorozov/portfolio-cms/internal/repository"
)

func TestDashboard_DegradesAndLogsFailingFetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	// The three section fetches run concurrently, so expectations cannot
	// be ordered.
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM projects").WillReturnError(errors.New("projects table gone"))
	mock.ExpectQuery("FROM skills").WillReturnRows(sqlmock.NewRows([]string{
		"id", "name", "category", "level", "icon_url", "color", "sort_order", "is_featured", "created_at", "updated_at"}))
	mock.ExpectQuery("FROM contacts").WillReturnRows(sqlmock.NewRows([]string{
		"id", "name", "email", "subject", "message", "ip_address", "user_agent", "is_read", "created_at"}))

	e := echo.New()
	var logs bytes.Buffer
	e.Logger.SetOutput(&logs)
	e.Logger.SetLevel(log.WARN)
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &AdminHandler{
		ProjectRepo: repository.NewProjectRepo(db),
		SkillRepo:   repository.NewSkillRepo(db),
		ContactRepo: repository.NewContactRepo(db),
	}
	require.NoError(t, h.Dashboard(c))

	// Degraded, not failed: zero stats with a 200.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"projects":0`)
	assert.Contains(t, rec.Body.String(), `"recent_contacts":[]`)

	// The log names the fetch that failed, not just the context state.
	assert.Contains(t, logs.String(), "projects table gone")
}
