package store

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/mapster-agent/internal/logger"
	"github.com/MKhiriev/mapster-agent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItineraryRepo(t *testing.T) (ItineraryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewItineraryRepository(newDBFromSQL(db), logger.Nop()), mock
}

func itineraryRows() *sqlmock.Rows {
	return sqlmock.NewRows(itineraryColumns)
}

func TestItineraryRepository_GetAll(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	query, _, err := buildSelectItinerariesQuery()
	require.NoError(t, err)

	mock.ExpectQuery(quoted(query)).WillReturnRows(itineraryRows().
		AddRow("b", "u1", "Rome", "walk", `[{"name":"Colosseo","latitude":41.89,"longitude":12.49}]`,
			"2024-03-01 08:00:00", "2024-03-05 10:20:30", int64(4), int64(2), []byte("img"), "webp", int64(0)).
		AddRow("a", "u1", "gone", "", `[]`,
			"2024-01-01 00:00:00", "2024-02-01 00:00:00", int64(0), int64(0), nil, "", int64(1)))

	items, err := repo.GetAll(testContext())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "b", items[0].ID)
	require.Len(t, items[0].Waypoints, 1)
	assert.Equal(t, "Colosseo", items[0].Waypoints[0].Name)
	assert.Equal(t, time.Date(2024, time.March, 5, 10, 20, 30, 0, time.UTC), items[0].LastModified)
	assert.Equal(t, []byte("img"), items[0].Image)
	assert.False(t, items[0].Deleted)

	assert.True(t, items[1].Deleted)
	assert.Empty(t, items[1].Waypoints)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItineraryRepository_GetAll_Empty(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	query, _, _ := buildSelectItinerariesQuery()

	mock.ExpectQuery(quoted(query)).WillReturnRows(itineraryRows())

	items, err := repo.GetAll(testContext())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItineraryRepository_GetAll_QueryError(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	query, _, _ := buildSelectItinerariesQuery()

	mock.ExpectQuery(quoted(query)).WillReturnError(errors.New("disk I/O error"))

	items, err := repo.GetAll(testContext())
	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestItineraryRepository_GetAll_CorruptedWaypoints(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	query, _, _ := buildSelectItinerariesQuery()

	mock.ExpectQuery(quoted(query)).WillReturnRows(itineraryRows().
		AddRow("a", "u1", "x", "", `{not json`, "", "2024-02-01 00:00:00", int64(0), int64(0), nil, "", int64(0)))

	_, err := repo.GetAll(testContext())
	assert.ErrorIs(t, err, ErrCorruptedRecord)
}

func TestItineraryRepository_Get(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	query, _, _ := buildSelectItineraryQuery("a")

	mock.ExpectQuery(quoted(query)).WithArgs("a").WillReturnRows(itineraryRows().
		AddRow("a", "u1", "Paris", "", `[]`, "2024-01-01 00:00:00", "2024-02-01 00:00:00", int64(1), int64(0), nil, "", false))

	item, err := repo.Get(testContext(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Paris", item.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItineraryRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	query, _, _ := buildSelectItineraryQuery("missing")

	mock.ExpectQuery(quoted(query)).WithArgs("missing").WillReturnRows(itineraryRows())

	_, err := repo.Get(testContext(), "missing")
	assert.ErrorIs(t, err, ErrItineraryNotFound)
}

func TestItineraryRepository_UpsertMany(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	items := []models.Itinerary{
		{ID: "a", Name: "one", LastModified: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)},
		{ID: "b", Name: "two", LastModified: time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC), Deleted: true,
			Waypoints: []models.Waypoint{{Name: "p", Latitude: 1, Longitude: 2}}},
	}

	mock.ExpectBegin()
	for _, it := range items {
		row, err := newItineraryRow(it)
		require.NoError(t, err)
		query, args, err := buildUpsertItineraryQuery(row)
		require.NoError(t, err)
		mock.ExpectExec(quoted(query)).WithArgs(driverArgs(args)...).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.UpsertMany(testContext(), items...))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItineraryRepository_UpsertMany_Empty(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	require.NoError(t, repo.UpsertMany(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet(), "no statement is issued for an empty batch")
}

func TestItineraryRepository_UpsertMany_RollsBackOnError(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	items := []models.Itinerary{
		{ID: "a", LastModified: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)},
		{ID: "b", LastModified: time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)},
	}

	rowA, _ := newItineraryRow(items[0])
	queryA, argsA, _ := buildUpsertItineraryQuery(rowA)
	rowB, _ := newItineraryRow(items[1])
	queryB, argsB, _ := buildUpsertItineraryQuery(rowB)

	mock.ExpectBegin()
	mock.ExpectExec(quoted(queryA)).WithArgs(driverArgs(argsA)...).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(quoted(queryB)).WithArgs(driverArgs(argsB)...).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.UpsertMany(testContext(), items...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItineraryRepository_UpsertMany_BeginError(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("database is closed"))

	err := repo.UpsertMany(testContext(), models.Itinerary{ID: "a"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestItineraryRepository_Clear(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	query, _, _ := buildDeleteItinerariesQuery()

	mock.ExpectExec(quoted(query)).WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.Clear(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItineraryRepository_Clear_Error(t *testing.T) {
	repo, mock := newTestItineraryRepo(t)
	query, _, _ := buildDeleteItinerariesQuery()

	mock.ExpectExec(quoted(query)).WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, repo.Clear(testContext()), ErrExecutingStatement)
}

func TestItineraryRepository_MaxLastModified(t *testing.T) {
	query, _, _ := buildMaxLastModifiedQuery()

	tests := []struct {
		name    string
		value   any
		want    time.Time
		wantOK  bool
		wantErr error
	}{
		{name: "empty store", value: nil},
		{name: "stored value", value: "2024-03-05 10:20:30", want: time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC), wantOK: true},
		{name: "garbage", value: "yesterday", wantErr: ErrCorruptedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestItineraryRepo(t)
			mock.ExpectQuery(quoted(query)).
				WillReturnRows(sqlmock.NewRows([]string{"MAX(last_modified)"}).AddRow(tt.value))

			got, ok, err := repo.MaxLastModified(testContext())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got))
		})
	}
}
