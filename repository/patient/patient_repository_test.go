package patient

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/patient-registry/constant"
	"github.com/muhammadheryan/patient-registry/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var patientColumns = []string{"id", "fullname", "position", "email", "phone_no", "country", "city", "gender"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, PatientRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	conn := sqlx.NewDb(db, "sqlmock")
	return conn, mock, NewPatientRepository(conn)
}

func samplePatient() *model.PatientEntity {
	return &model.PatientEntity{
		FullName:     "Jane Doe",
		Position:     constant.PositionDataScientist,
		Email:        "jane@example.com",
		Phone:        "+919876543210",
		Country:      "India",
		City:         "Pune",
		Gender:       constant.GenderFemale,
		PasswordHash: "$2a$10$hash",
	}
}

func TestList_OrderedByIDWithoutPassword(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(patientColumns).
		AddRow(1, "Jane Doe", "Data Scientist", "jane@example.com", "+919876543210", "India", "Pune", "Female").
		AddRow(2, "John Smith", "UX Designer", "john@example.com", "+14155550123", "USA", "Austin", "Male")

	mock.ExpectQuery(regexp.QuoteMeta(listPatientBase + " ORDER BY id")).
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), &model.PatientFilter{})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, constant.PositionDataScientist, items[0].Position)
	assert.Equal(t, "+14155550123", items[1].Phone)
	assert.Empty(t, items[0].PasswordHash)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Search(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("AND (LOWER(fullname) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!') ORDER BY id")).
		WithArgs("%jane%", "%jane%").
		WillReturnRows(sqlmock.NewRows(patientColumns))

	items, err := repo.List(context.Background(), &model.PatientFilter{Search: " Jane "})

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_SearchWildcardsMatchLiterally(t *testing.T) {
	tests := []struct {
		search string
		term   string
	}{
		{search: "%", term: "%!%%"},
		{search: "_", term: "%!_%"},
		{search: "50%_Off!", term: "%50!%!_off!!%"},
		{search: `a\b`, term: `%a\b%`},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			db, mock, repo := setupMockDB(t)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta("LIKE ? ESCAPE '!'")).
				WithArgs(tt.term, tt.term).
				WillReturnRows(sqlmock.NewRows(patientColumns))

			_, err := repo.List(context.Background(), &model.PatientFilter{Search: tt.search})

			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestList_RowErrorIsClassified(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows(patientColumns).
			AddRow(1, "Jane Doe", "Data Scientist", "jane@example.com", "+919876543210", "India", "Pune", "Female").
			RowError(0, mysql.ErrInvalidConn))

	items, err := repo.List(context.Background(), nil)

	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScanError(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows(append(patientColumns, "unexpected")).
			AddRow(1, "Jane Doe", "Data Scientist", "jane@example.com", "+919876543210", "India", "Pune", "Female", "x"))

	items, err := repo.List(context.Background(), nil)

	assert.Nil(t, items)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_StoreUnavailable(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WillReturnError(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})

	items, err := repo.List(context.Background(), nil)

	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getPatientQuery)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(patientColumns).
			AddRow(7, "Jane Doe", "Data Scientist", "jane@example.com", "+919876543210", "India", "Pune", "Female"))

	entity, err := repo.Get(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, int64(7), entity.ID)
	assert.Equal(t, constant.GenderFemale, entity.Gender)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFoundReturnsNil(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getPatientQuery)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(patientColumns))

	entity, err := repo.Get(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, entity)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByEmail(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(countByEmailQuery)).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	data := samplePatient()
	mock.ExpectExec(regexp.QuoteMeta(insertPatientQuery)).
		WithArgs("Jane Doe", "Data Scientist", "jane@example.com", "+919876543210", "India", "Pune", "Female", "$2a$10$hash").
		WillReturnResult(sqlmock.NewResult(12, 1))

	affected, err := repo.Create(context.Background(), data)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, int64(12), data.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEntry(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertPatientQuery)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'jane@example.com' for key 'uq_patient_email'"})

	affected, err := repo.Create(context.Background(), samplePatient())

	assert.Zero(t, affected)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_WithoutPasswordLeavesPasswordColumn(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	data := samplePatient()
	data.PasswordHash = ""

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE patient_registration SET fullname = ?, position = ?, email = ?, phone_no = ?, country = ?, city = ?, gender = ? WHERE id = ?")).
		WithArgs("Jane Doe", "Data Scientist", "jane@example.com", "+919876543210", "India", "Pune", "Female", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(context.Background(), 3, data)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_WithPassword(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("gender = ?, password_hash = ? WHERE id = ?")).
		WithArgs("Jane Doe", "Data Scientist", "jane@example.com", "+919876543210", "India", "Pune", "Female", "$2a$10$hash", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(context.Background(), 3, samplePatient())

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_UnknownIDAffectsNothing(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE patient_registration`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Update(context.Background(), 404, samplePatient())

	require.NoError(t, err)
	assert.Zero(t, affected)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "existing row", affected: 1},
		{name: "already absent", affected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, repo := setupMockDB(t)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta(deletePatientQuery)).
				WithArgs(int64(5)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.Delete(context.Background(), 5)

			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClassify(t *testing.T) {
	assert.ErrorIs(t, classify(&mysql.MySQLError{Number: 1062}), ErrDuplicateEmail)
	assert.ErrorIs(t, classify(mysql.ErrInvalidConn), ErrStoreUnavailable)
	assert.ErrorIs(t, classify(mysql.ErrInvalidConn), mysql.ErrInvalidConn)

	other := errors.New("syntax error")
	assert.Equal(t, other, classify(other))
}
