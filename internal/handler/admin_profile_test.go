package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyamorozov/portfolio-cms/internal/repository"
)

// patchProfileImages runs the image-association handler against a mocked
// database. Each case registers the exact statements it expects; an update
// touching a column the body never mentioned fails the expectation check.
func patchProfileImages(t *testing.T, body string, expect func(sqlmock.Sqlmock)) *httptest.ResponseRecorder {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	expect(mock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/profile/images", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &AdminHandler{ProfileRepo: repository.NewProfileRepo(db)}
	require.NoError(t, h.SetProfileImages(c))
	require.NoError(t, mock.ExpectationsWereMet())
	return rec
}

func TestSetProfileImages_OmittedFieldLeftUntouched(t *testing.T) {
	rec := patchProfileImages(t, `{"hero_image_id":7}`, func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT id FROM profiles").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE profiles SET hero_image_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`)).
			WithArgs(int64(7), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("LEFT JOIN images hi").WillReturnError(sql.ErrNoRows)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetProfileImages_ExplicitNullClears(t *testing.T) {
	rec := patchProfileImages(t, `{"about_image_id":null}`, func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT id FROM profiles").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE profiles SET about_image_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`)).
			WithArgs(nil, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("LEFT JOIN images hi").WillReturnError(sql.ErrNoRows)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetProfileImages_MissingProfile(t *testing.T) {
	rec := patchProfileImages(t, `{"hero_image_id":7}`, func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT id FROM profiles").WillReturnError(sql.ErrNoRows)
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
