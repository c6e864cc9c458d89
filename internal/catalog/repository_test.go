// AngelaMos | 2026
// repository_test.go

package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/carvault/internal/core"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Postgres placeholder style so Rebind produces $N like production.
	return &repository{db: sqlx.NewDb(db, "pgx")}, mock
}

func modelRows(now time.Time, ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "year_introduced", "year_discontinued", "description",
		"country", "designer", "body_style", "image_url",
		"created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(
			id, "Model "+id, 2000, 0, "desc",
			"Germany", "", "coupe", "",
			now, now,
		)
	}
	return rows
}

func submodelRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "model_id", "name", "engine_type", "horsepower", "torque",
		"transmission", "year", "image_url", "weight", "acceleration",
		"top_speed", "fuel_economy", "position", "created_at", "updated_at",
	})
}

func TestGetModelWithSubmodels(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM models WHERE id =")).
		WithArgs("m3").
		WillReturnRows(modelRows(now, "m3"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM submodels")).
		WithArgs("m3").
		WillReturnRows(submodelRows(now).AddRow(
			"e46", "m3", "E46 CSL", "S54", 360, 370,
			"SMG II", 2003, "", nil, nil,
			nil, "", 0, now, now,
		))

	model, err := repo.GetModel(context.Background(), "m3")
	require.NoError(t, err)
	assert.Equal(t, "Model m3", model.Name)
	require.Len(t, model.Submodels, 1)
	assert.Equal(t, "E46 CSL", model.Submodels[0].Name)
	assert.Nil(t, model.Submodels[0].Weight)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetModelNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM models WHERE id =")).
		WithArgs("nope").
		WillReturnRows(modelRows(time.Now()))

	_, err := repo.GetModel(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSubmodelNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM submodels")).
		WithArgs("m3", "nope").
		WillReturnRows(submodelRows(time.Now()))

	_, err := repo.GetSubmodel(context.Background(), "m3", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteModelNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM models")).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteModel(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubmodelKeyedByPair(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM submodels")).
		WithArgs("m3", "e46").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteSubmodel(context.Background(), "m3", "e46")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPopularModelsGroupsSubmodels(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN")).
		WithArgs(2).
		WillReturnRows(modelRows(now, "m3", "m5"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM submodels")).
		WithArgs("m3", "m5").
		WillReturnRows(submodelRows(now).
			AddRow(
				"e46", "m3", "E46 CSL", "S54", 360, 370,
				"SMG II", 2003, "", nil, nil,
				nil, "", 0, now, now,
			).
			AddRow(
				"e39", "m5", "E39", "S62", 400, 500,
				"manual", 1998, "", nil, nil,
				nil, "", 0, now, now,
			))

	models, err := repo.ListPopularModels(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, models, 2)
	require.Len(t, models[0].Submodels, 1)
	assert.Equal(t, "E46 CSL", models[0].Submodels[0].Name)
	require.Len(t, models[1].Submodels, 1)
	assert.Equal(t, "E39", models[1].Submodels[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateModelInsertsSubmodelsInOneTx(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO models")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(now, now))

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO submodels")).
		WillReturnRows(sqlmock.NewRows([]string{
			"position", "created_at", "updated_at",
		}).AddRow(0, now, now))

	mock.ExpectCommit()

	model := &Model{
		ID:             "m3",
		Name:           "M3",
		YearIntroduced: 1986,
		Description:    "desc",
		Submodels: []Submodel{{
			ID:           "e46",
			ModelID:      "m3",
			Name:         "E46 CSL",
			EngineType:   "S54",
			Horsepower:   360,
			Torque:       370,
			Transmission: "SMG II",
			Year:         2003,
		}},
	}

	err := repo.CreateModel(context.Background(), model)
	require.NoError(t, err)
	assert.Equal(t, 0, model.Submodels[0].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}
