package errors_test

import (
	"net/http"
	"testing"

	"github.com/muhammadheryan/patient-registry/constant"
	cerr "github.com/muhammadheryan/patient-registry/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	tests := []struct {
		name     string
		err      cerr.CustomError
		wantMsg  string
		wantHTTP int
		wantCode string
	}{
		{
			name:     "duplicate email is a conflict",
			err:      cerr.SetCustomError(constant.ErrDuplicateEmail),
			wantMsg:  "This email address is already registered.",
			wantHTTP: http.StatusConflict,
			wantCode: "0008",
		},
		{
			name:     "not found",
			err:      cerr.SetCustomError(constant.ErrNotFound),
			wantMsg:  "Patient not found",
			wantHTTP: http.StatusNotFound,
			wantCode: "0003",
		},
		{
			name:     "store unavailable is a server error",
			err:      cerr.SetCustomError(constant.ErrStoreUnavailable),
			wantMsg:  "database unavailable, try again",
			wantHTTP: http.StatusInternalServerError,
			wantCode: "0002",
		},
		{
			name:     "validation message override",
			err:      cerr.SetCustomErrorMessage(constant.ErrValidation, "Invalid email"),
			wantMsg:  "Invalid email",
			wantHTTP: http.StatusBadRequest,
			wantCode: "0007",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.wantHTTP, tt.err.ErrorHTTPCode())
			assert.Equal(t, tt.wantCode, tt.err.ErrorCode())
		})
	}
}
