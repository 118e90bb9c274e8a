package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	profCreated = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	profUpdated = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var profileCols = []string{"id", "full_name", "title", "bio", "email", "phone", "location", "avatar_url",
	"linkedin_url", "github_url", "twitter_url", "website_url", "resume_url",
	"hero_title", "hero_subtitle", "hero_description", "hero_image_id", "about_image_id",
	"created_at", "updated_at"}

var imageCols = []string{"id", "name", "description", "url", "alt_text", "section", "storage_path",
	"is_active", "sort_order", "created_at", "updated_at"}

// profileRow is one profiles row with a hero image reference and no about
// image, matching imageRow below.
func profileRow() []driver.Value {
	return []driver.Value{int64(1), "Ada Lovelace", "Engineer", "I write engines.", "ada@example.com",
		nil, "London", nil,
		nil, nil, nil, nil, nil,
		nil, nil, nil, int64(7), nil,
		profCreated, profUpdated}
}

func imageRow() []driver.Value {
	return []driver.Value{int64(7), "portrait", nil, "https://cdn.example.com/p.png", "Ada at her desk",
		"hero", "images/p.png", true, int64(0), profCreated, profUpdated}
}

func nullImageRow() []driver.Value {
	return []driver.Value{nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil}
}

// joinedProfileRows builds the single-round-trip result: profile columns
// followed by the hero and about image columns.
func joinedProfileRows() *sqlmock.Rows {
	cols := append(append(append([]string{}, profileCols...), imageCols...), imageCols...)
	vals := append(append(profileRow(), imageRow()...), nullImageRow()...)
	return sqlmock.NewRows(cols).AddRow(vals...)
}

func TestProfileGet_EmptyStoreIsNilNotError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepo(db)

	mock.ExpectQuery("LEFT JOIN images hi").WillReturnError(sql.ErrNoRows)

	p, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	// An empty table is a valid state, not a capability failure: the next
	// read still issues the joined select.
	mock.ExpectQuery("LEFT JOIN images hi").WillReturnError(sql.ErrNoRows)
	p, err = repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileGet_JoinAndSplitShapesAgree(t *testing.T) {
	ctx := context.Background()

	joinDB, joinMock := newMockDB(t)
	joined := NewProfileRepo(joinDB)
	joinMock.ExpectQuery("LEFT JOIN images hi").WillReturnRows(joinedProfileRows())

	fromJoin, err := joined.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, fromJoin)

	splitDB, splitMock := newMockDB(t)
	split := NewProfileRepo(splitDB)
	// The joined select fails for a non-row reason, so the repo falls back
	// to independent lookups.
	splitMock.ExpectQuery("LEFT JOIN images hi").WillReturnError(errors.New("joins not supported"))
	splitMock.ExpectQuery("FROM profiles ORDER BY updated_at DESC").
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow(profileRow()...))
	splitMock.ExpectQuery(regexp.QuoteMeta("FROM images WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(imageCols).AddRow(imageRow()...))

	fromSplit, err := split.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, fromSplit)

	assert.Equal(t, fromJoin, fromSplit)
	require.NotNil(t, fromSplit.HeroImage)
	assert.Nil(t, fromSplit.AboutImage)

	// The failed join is remembered; the next read goes straight to the
	// multi-query path.
	splitMock.ExpectQuery("FROM profiles ORDER BY updated_at DESC").
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow(profileRow()...))
	splitMock.ExpectQuery(regexp.QuoteMeta("FROM images WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(imageCols).AddRow(imageRow()...))
	again, err := split.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, fromJoin, again)

	assert.NoError(t, joinMock.ExpectationsWereMet())
	assert.NoError(t, splitMock.ExpectationsWereMet())
}

func TestProfileUpsert_CreatesWhenNoProfileExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepo(db)

	mock.ExpectQuery("SELECT id FROM profiles").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("Ada Lovelace", "Engineer", "I write engines.", "ada@example.com",
			nil, "London", nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("LEFT JOIN images hi").WillReturnRows(joinedProfileRows())

	loc := "London"
	p, err := repo.Upsert(context.Background(), ProfileDraft{
		FullName: "Ada Lovelace",
		Title:    "Engineer",
		Bio:      "I write engines.",
		Email:    "ada@example.com",
		Location: &loc,
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Ada Lovelace", p.FullName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileSetImages_HeroOnlyLeavesAboutUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepo(db)

	heroID := uint64(7)
	mock.ExpectQuery("SELECT id FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE profiles SET hero_image_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`)).
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("LEFT JOIN images hi").WillReturnRows(joinedProfileRows())

	p, err := repo.SetImages(context.Background(), ImageRef{ID: &heroID, Set: true}, ImageRef{})
	require.NoError(t, err)
	require.NotNil(t, p)

	// ExpectationsWereMet proves the statement never mentioned about_image_id.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileSetImages_ExplicitNullClears(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepo(db)

	mock.ExpectQuery("SELECT id FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE profiles SET about_image_id=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`)).
		WithArgs(nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("LEFT JOIN images hi").WillReturnRows(joinedProfileRows())

	_, err := repo.SetImages(context.Background(), ImageRef{}, ImageRef{ID: nil, Set: true})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileSetImages_MissingProfile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepo(db)

	mock.ExpectQuery("SELECT id FROM profiles").WillReturnError(sql.ErrNoRows)

	heroID := uint64(7)
	_, err := repo.SetImages(context.Background(), ImageRef{ID: &heroID, Set: true}, ImageRef{})
	assert.ErrorIs(t, err, ErrNoProfile)

	assert.NoError(t, mock.ExpectationsWereMet())
}
