// AngelaMos | 2026
// repository_test.go

package likes

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestAddLikeInserts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_likes")).
		WithArgs("u1", "m3", "e46").
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.AddLike(context.Background(), "u1", "m3", "e46")
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLikeDuplicateIsNoOp(t *testing.T) {
	repo, mock := newMockRepo(t)

	// ON CONFLICT DO NOTHING reports zero rows affected.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_likes")).
		WithArgs("u1", "m3", "e46").
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.AddLike(context.Background(), "u1", "m3", "e46")
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveLikeDeletes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_likes")).
		WithArgs("u1", "m3", "e46").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.RemoveLike(context.Background(), "u1", "m3", "e46")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveLikeAbsentPair(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_likes")).
		WithArgs("u1", "m3", "e46").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.RemoveLike(context.Background(), "u1", "m3", "e46")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserExists(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.UserExists(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPairsOrderedBySeq(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"user_id", "model_id", "submodel_id", "seq", "created_at",
	}).
		AddRow("u1", "m5", "e39", int64(1), now).
		AddRow("u1", "m3", "e46", int64(2), now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_likes")).
		WithArgs("u1").
		WillReturnRows(rows)

	pairs, err := repo.ListPairs(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "m5", pairs[0].ModelID)
	assert.Equal(t, "e39", pairs[0].SubmodelID)
	assert.Equal(t, "m3", pairs[1].ModelID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDetailedScansJoinedRows(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"model_id", "model_name",
		"id", "submodel_model_id", "name", "engine_type",
		"horsepower", "torque", "transmission", "year", "image_url",
		"weight", "acceleration", "top_speed", "fuel_economy",
		"position", "created_at", "updated_at",
	}).AddRow(
		"m3", "M3",
		"e46", "m3", "E46 CSL", "S54 inline-6",
		360, 370, "SMG II", 2003, "",
		1385, 4.9, 250, "",
		0, now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_likes ul")).
		WithArgs("u1").
		WillReturnRows(rows)

	liked, err := repo.ListDetailed(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, "M3", liked[0].ModelName)
	assert.Equal(t, "E46 CSL", liked[0].Submodel.Name)
	assert.Equal(t, 360, liked[0].Submodel.Horsepower)
	require.NotNil(t, liked[0].Submodel.Weight)
	assert.Equal(t, 1385, *liked[0].Submodel.Weight)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDetailedEmptySet(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_likes ul")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"model_id", "model_name",
			"id", "submodel_model_id", "name", "engine_type",
			"horsepower", "torque", "transmission", "year", "image_url",
			"weight", "acceleration", "top_speed", "fuel_economy",
			"position", "created_at", "updated_at",
		}))

	liked, err := repo.ListDetailed(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
