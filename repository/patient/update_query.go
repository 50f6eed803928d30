package patient

import (
	"strings"

	"github.com/muhammadheryan/patient-registry/model"
)

// updateQuery assembles a parameterized UPDATE. Values only ever travel as
// bind arguments; column names come from this package's constants.
type updateQuery struct {
	table   string
	columns []string
	args    []any
	where   string
	whereID int64
}

func newUpdateQuery(table string) *updateQuery {
	return &updateQuery{table: table}
}

func (q *updateQuery) setText(column, value string) *updateQuery {
	q.columns = append(q.columns, column)
	q.args = append(q.args, value)
	return q
}

func (q *updateQuery) whereInt(column string, value int64) *updateQuery {
	q.where = column
	q.whereID = value
	return q
}

func (q *updateQuery) build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(q.table)
	sb.WriteString(" SET ")
	for i, col := range q.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col)
		sb.WriteString(" = ?")
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(q.where)
	sb.WriteString(" = ?")

	args := make([]any, 0, len(q.args)+1)
	args = append(args, q.args...)
	args = append(args, q.whereID)
	return sb.String(), args
}

// buildUpdatePatientQuery always sets the profile columns and adds the
// password column only when a new hash is present.
func buildUpdatePatientQuery(id int64, data *model.PatientEntity) (string, []any) {
	q := newUpdateQuery(patientTable).
		setText("fullname", data.FullName).
		setText("position", string(data.Position)).
		setText("email", data.Email).
		setText("phone_no", data.Phone).
		setText("country", data.Country).
		setText("city", data.City).
		setText("gender", string(data.Gender))

	if data.PasswordHash != "" {
		q.setText("password_hash", data.PasswordHash)
	}

	return q.whereInt("id", id).build()
}
