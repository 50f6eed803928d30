package model

import "github.com/muhammadheryan/patient-registry/constant"

// PatientEntity represents the patient_registration table entity
type PatientEntity struct {
	ID           int64             `db:"id" json:"ID"`
	FullName     string            `db:"fullname" json:"Fullname"`
	Position     constant.Position `db:"position" json:"Position"`
	Email        string            `db:"email" json:"Email"`
	Phone        string            `db:"phone_no" json:"Phone_no"`
	Country      string            `db:"country" json:"Country"`
	City         string            `db:"city" json:"City"`
	Gender       constant.Gender   `db:"gender" json:"Gender"`
	PasswordHash string            `db:"password_hash" json:"-"`
}

// PatientFilter for listing patients
type PatientFilter struct {
	// Search matches a case-insensitive substring of the full name or email.
	Search string
}

// CreatePatientRequest for registering a patient.
// JSON keys match case-insensitively, so both "FullName" and "Fullname" bind.
type CreatePatientRequest struct {
	FullName        string `json:"FullName" validate:"required"`
	Position        string `json:"Position" validate:"required"`
	Email           string `json:"Email" validate:"required"`
	Phone           string `json:"Phone_no" validate:"required"`
	Country         string `json:"Country" validate:"required"`
	City            string `json:"City" validate:"required"`
	Gender          string `json:"Gender" validate:"required"`
	Password        string `json:"EPassword" validate:"required"`
	ConfirmPassword string `json:"Confirm_EPassword" validate:"required"`
}

// UpdatePatientRequest for editing a patient. An empty Password keeps the
// stored one.
type UpdatePatientRequest struct {
	FullName        string `json:"Fullname" validate:"required"`
	Position        string `json:"Position" validate:"required"`
	Email           string `json:"Email" validate:"required"`
	Phone           string `json:"Phone_no" validate:"required"`
	Country         string `json:"Country" validate:"required"`
	City            string `json:"City" validate:"required"`
	Gender          string `json:"Gender" validate:"required"`
	Password        string `json:"EPassword,omitempty"`
	ConfirmPassword string `json:"Confirm_EPassword,omitempty"`
}
