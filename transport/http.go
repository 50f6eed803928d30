package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	patientapp "github.com/muhammadheryan/patient-registry/application/patient"
	"github.com/muhammadheryan/patient-registry/constant"
	"github.com/muhammadheryan/patient-registry/model"
	"github.com/muhammadheryan/patient-registry/utils/errors"
	"github.com/muhammadheryan/patient-registry/utils/logger"
	"github.com/muhammadheryan/patient-registry/web"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	PatientApp patientapp.PatientApp
}

func NewTransport(PatientApp patientapp.PatientApp, allowedOrigins []string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		PatientApp: PatientApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := mux.PathPrefix("/api/patientdetails").Subrouter()
	api.HandleFunc("", rh.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("", rh.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/{id}", rh.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/{id}", rh.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/{id}", rh.DeletePatient).Methods(http.MethodDelete)

	// patient form
	mux.PathPrefix("/").Handler(web.Handler()).Methods(http.MethodGet, http.MethodHead)

	// middleware
	mux.Use(LoggingMiddleware())

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)

	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(cors(mux))
}

// ListPatients handler
// @Summary List patients
// @Description List every patient ordered by id, optionally filtered by name or email
// @Tags Patient
// @Produce json
// @Param search query string false "Name or email substring"
// @Success 200 {object} Response{data=[]model.PatientEntity}
// @Failure 500 {object} Response
// @Router /api/patientdetails [get]
func (s *RestHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.PatientFilter{Search: r.URL.Query().Get("search")}
	res, err := s.PatientApp.ListPatients(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", res)
}

// GetPatient handler
// @Summary Get patient
// @Tags Patient
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} Response{data=model.PatientEntity}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /api/patientdetails/{id} [get]
func (s *RestHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.PatientApp.GetPatient(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", res)
}

// CreatePatient handler
// @Summary Register patient
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body model.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} Response{data=int}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Failure 500 {object} Response
// @Router /api/patientdetails [post]
func (s *RestHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	affected, err := s.PatientApp.CreatePatient(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Registration successful!", affected)
}

// UpdatePatient handler
// @Summary Update patient
// @Description Replace the profile fields; EPassword is optional and only changes the password when set
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param request body model.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} Response{data=int}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Failure 500 {object} Response
// @Router /api/patientdetails/{id} [put]
func (s *RestHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	affected, err := s.PatientApp.UpdatePatient(ctx, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Patient updated successfully!", affected)
}

// DeletePatient handler
// @Summary Delete patient
// @Description Hard delete; a missing id answers 200 with zero affected rows
// @Tags Patient
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} Response{data=int}
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /api/patientdetails/{id} [delete]
func (s *RestHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	affected, err := s.PatientApp.DeletePatient(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Patient deleted successfully!", affected)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	logger.Error("panic recovered", zap.Any("panic", v))
}
