package patient

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/patient-registry/model"
)

var (
	// ErrDuplicateEmail is returned when the unique email index rejects a write.
	ErrDuplicateEmail = errors.New("duplicate email")
	// ErrStoreUnavailable wraps failures to reach the database.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// likeEscaper makes a search term match literally. '!' is the LIKE ESCAPE
// character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type SQL struct {
	conn *sqlx.DB
}

type PatientRepository interface {
	List(ctx context.Context, filter *model.PatientFilter) ([]model.PatientEntity, error)
	Get(ctx context.Context, id int64) (*model.PatientEntity, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, data *model.PatientEntity) (int64, error)
	Update(ctx context.Context, id int64, data *model.PatientEntity) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

func NewPatientRepository(conn *sqlx.DB) PatientRepository {
	return &SQL{conn: conn}
}

const (
	patientTable = "patient_registration"

	// password_hash is never selected
	listPatientBase    = `SELECT id, fullname, position, email, phone_no, country, city, gender FROM patient_registration WHERE true`
	getPatientQuery    = `SELECT id, fullname, position, email, phone_no, country, city, gender FROM patient_registration WHERE id = ?`
	countByEmailQuery  = `SELECT COUNT(*) FROM patient_registration WHERE email = ?`
	insertPatientQuery = `INSERT INTO patient_registration (fullname, position, email, phone_no, country, city, gender, password_hash) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	deletePatientQuery = `DELETE FROM patient_registration WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, filter *model.PatientFilter) ([]model.PatientEntity, error) {
	query := listPatientBase
	args := make([]any, 0, 2)

	if filter != nil && strings.TrimSpace(filter.Search) != "" {
		term := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(filter.Search))) + "%"
		query += " AND (LOWER(fullname) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!')"
		args = append(args, term, term)
	}
	query += " ORDER BY id"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	items := make([]model.PatientEntity, 0)
	for rows.Next() {
		var it model.PatientEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, classify(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return items, nil
}

func (s *SQL) Get(ctx context.Context, id int64) (*model.PatientEntity, error) {
	var entity model.PatientEntity
	if err := s.conn.QueryRowxContext(ctx, getPatientQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, classify(err)
	}
	return &entity, nil
}

func (s *SQL) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, countByEmailQuery, email); err != nil {
		return 0, classify(err)
	}
	return count, nil
}

func (s *SQL) Create(ctx context.Context, data *model.PatientEntity) (int64, error) {
	result, err := s.conn.ExecContext(ctx, insertPatientQuery,
		data.FullName, string(data.Position), data.Email, data.Phone,
		data.Country, data.City, string(data.Gender), data.PasswordHash)
	if err != nil {
		return 0, classify(err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	data.ID = lastID

	return result.RowsAffected()
}

func (s *SQL) Update(ctx context.Context, id int64, data *model.PatientEntity) (int64, error) {
	query, args := buildUpdatePatientQuery(id, data)
	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(err)
	}
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := s.conn.ExecContext(ctx, deletePatientQuery, id)
	if err != nil {
		return 0, classify(err)
	}
	return result.RowsAffected()
}

// classify maps driver errors onto the package sentinels, keeping the
// original error in the chain.
func classify(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, myErr.Message)
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}
