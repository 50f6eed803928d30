package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/patient-registry/constant"
	appmocks "github.com/muhammadheryan/patient-registry/mocks/application/patient"
	"github.com/muhammadheryan/patient-registry/model"
	"github.com/muhammadheryan/patient-registry/transport"
	cerr "github.com/muhammadheryan/patient-registry/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func serve(t *testing.T, app *appmocks.PatientApp, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	transport.NewTransport(app, []string{"*"}).ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestListPatients(t *testing.T) {
	app := appmocks.NewPatientApp(t)
	app.
		On("ListPatients", mock.Anything, &model.PatientFilter{}).
		Return([]model.PatientEntity{
			{ID: 1, FullName: "Jane Doe", Position: constant.PositionDataScientist, Email: "jane@example.com", PasswordHash: "secret-hash"},
		}, nil).
		Once()

	rec, env := serve(t, app, http.MethodGet, "/api/patientdetails", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Jane Doe", items[0]["Fullname"])
	assert.EqualValues(t, 1, items[0]["ID"])
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, items[0], "EPassword")
}

func TestListPatients_EmptyIsArray(t *testing.T) {
	app := appmocks.NewPatientApp(t)
	app.
		On("ListPatients", mock.Anything, &model.PatientFilter{Search: "jane"}).
		Return([]model.PatientEntity{}, nil).
		Once()

	rec, env := serve(t, app, http.MethodGet, "/api/patientdetails?search=jane", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestListPatients_StoreUnavailable(t *testing.T) {
	app := appmocks.NewPatientApp(t)
	app.
		On("ListPatients", mock.Anything, mock.Anything).
		Return(nil, cerr.SetCustomError(constant.ErrStoreUnavailable)).
		Once()

	rec, env := serve(t, app, http.MethodGet, "/api/patientdetails", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrStoreUnavailable], env.Error)
}

func TestGetPatient(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		ret        *model.PatientEntity
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "success",
			id:         "7",
			ret:        &model.PatientEntity{ID: 7, FullName: "Jane Doe"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non numeric id",
			id:         "abc",
			err:        cerr.SetCustomError(constant.ErrInvalidID),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid ID format",
		},
		{
			name:       "not found",
			id:         "99",
			err:        cerr.SetCustomError(constant.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Patient not found",
		},
		{
			name:       "unclassified error",
			id:         "7",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Server Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appmocks.NewPatientApp(t)
			app.On("GetPatient", mock.Anything, tt.id).Return(tt.ret, tt.err).Once()

			rec, env := serve(t, app, http.MethodGet, "/api/patientdetails/"+tt.id, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.err == nil, env.Success)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.Message)
			}
		})
	}
}

func TestCreatePatient(t *testing.T) {
	body := `{"FullName":"Jane Doe","Position":"Data Scientist","Email":"jane@example.com","Phone_no":"+919876543210",
		"Country":"India","City":"Pune","Gender":"Female","EPassword":"abc12!","Confirm_EPassword":"abc12!"}`

	app := appmocks.NewPatientApp(t)
	app.
		On("CreatePatient", mock.Anything, mock.MatchedBy(func(req *model.CreatePatientRequest) bool {
			return req.FullName == "Jane Doe" &&
				req.Phone == "+919876543210" &&
				req.Password == "abc12!" &&
				req.ConfirmPassword == "abc12!"
		})).
		Return(int64(1), nil).
		Once()

	rec, env := serve(t, app, http.MethodPost, "/api/patientdetails", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Registration successful!", env.Message)
	assert.JSONEq(t, `1`, string(env.Data))
}

func TestCreatePatient_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing field", err: cerr.SetCustomError(constant.ErrMissingField), wantStatus: http.StatusBadRequest},
		{name: "validation", err: cerr.SetCustomErrorMessage(constant.ErrValidation, "Invalid email"), wantStatus: http.StatusBadRequest},
		{name: "duplicate email", err: cerr.SetCustomError(constant.ErrDuplicateEmail), wantStatus: http.StatusConflict},
		{name: "internal", err: cerr.SetCustomError(constant.ErrInternal), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appmocks.NewPatientApp(t)
			app.On("CreatePatient", mock.Anything, mock.Anything).Return(int64(0), tt.err).Once()

			rec, env := serve(t, app, http.MethodPost, "/api/patientdetails", `{"FullName":"x"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.err.Error(), env.Message)
		})
	}
}

func TestCreatePatient_MalformedBody(t *testing.T) {
	app := appmocks.NewPatientApp(t)

	rec, env := serve(t, app, http.MethodPost, "/api/patientdetails", `{"FullName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Error)
}

func TestUpdatePatient_WithoutPassword(t *testing.T) {
	body := `{"Fullname":"Jane Doe","Position":"UX Designer","Email":"jane@example.com","Phone_no":"+919876543210",
		"Country":"India","City":"Mumbai","Gender":"Female"}`

	app := appmocks.NewPatientApp(t)
	app.
		On("UpdatePatient", mock.Anything, "3", mock.MatchedBy(func(req *model.UpdatePatientRequest) bool {
			return req.FullName == "Jane Doe" && req.City == "Mumbai" && req.Password == ""
		})).
		Return(int64(1), nil).
		Once()

	rec, env := serve(t, app, http.MethodPut, "/api/patientdetails/3", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Patient updated successfully!", env.Message)
	assert.JSONEq(t, `1`, string(env.Data))
}

func TestDeletePatient(t *testing.T) {
	app := appmocks.NewPatientApp(t)
	app.On("DeletePatient", mock.Anything, "5").Return(int64(0), nil).Once()

	rec, env := serve(t, app, http.MethodDelete, "/api/patientdetails/5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `0`, string(env.Data))
}

func TestDeletePatient_InvalidID(t *testing.T) {
	app := appmocks.NewPatientApp(t)
	app.On("DeletePatient", mock.Anything, "x1").Return(int64(0), cerr.SetCustomError(constant.ErrInvalidID)).Once()

	rec, env := serve(t, app, http.MethodDelete, "/api/patientdetails/x1", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid ID format", env.Message)
}

func TestRequestIDIsPropagated(t *testing.T) {
	app := appmocks.NewPatientApp(t)
	app.On("DeletePatient", mock.Anything, "5").Return(int64(1), nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/patientdetails/5", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()

	transport.NewTransport(app, []string{"*"}).ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestUnsupportedMethod(t *testing.T) {
	app := appmocks.NewPatientApp(t)

	rec, _ := serve(t, app, http.MethodPatch, "/api/patientdetails/5", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	app := appmocks.NewPatientApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/patientdetails/5", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()

	transport.NewTransport(app, []string{"*"}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPatientForm(t *testing.T) {
	app := appmocks.NewPatientApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	transport.NewTransport(app, []string{"*"}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PATIENT LIST")
}
