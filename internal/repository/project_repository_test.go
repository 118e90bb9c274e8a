package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

var projectCols = []string{"id", "title", "description", "short_description", "image_url", "demo_url",
	"repo_url", "tech_stack", "status", "is_featured", "sort_order", "created_at", "updated_at"}

func projectRows(statuses ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows(projectCols)
	for i, status := range statuses {
		rows.AddRow(int64(i+1), "Project", "Long description", "Short", nil, nil, nil,
			[]byte(`["Go","Echo"]`), status, false, int64(i), profCreated, profUpdated)
	}
	return rows
}

func TestProjectList_PublishedOnlyByDefault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ?")).
		WithArgs(model.ProjectStatusPublished).
		WillReturnRows(projectRows(model.ProjectStatusPublished))

	out, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, model.ProjectStatusPublished, out[0].Status)
	assert.Equal(t, []string{"Go", "Echo"}, out[0].TechStack)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectList_IncludeUnpublishedWidensSelect(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepo(db)

	// No WHERE clause: drafts come back alongside published rows.
	mock.ExpectQuery(regexp.QuoteMeta("FROM projects ORDER BY sort_order")).
		WillReturnRows(projectRows(model.ProjectStatusPublished, model.ProjectStatusDraft))

	out, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, model.ProjectStatusDraft, out[1].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}
