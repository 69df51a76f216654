package dto

import (
	"testing"

	"github.com/sananasgarov/NummixAzBackend/utils"
)

func TestResetPasswordRequestPolicy(t *testing.T) {
	cases := []struct {
		name    string
		req     ResetPasswordRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  ResetPasswordRequest{Email: "admin@nummix.az", Code: "123456", NewPassword: "abc123"},
		},
		{
			name:    "password too short",
			req:     ResetPasswordRequest{Email: "admin@nummix.az", Code: "123456", NewPassword: "abc12"},
			wantErr: true,
		},
		{
			name:    "code too short",
			req:     ResetPasswordRequest{Email: "admin@nummix.az", Code: "12345", NewPassword: "abc123"},
			wantErr: true,
		},
		{
			name:    "code not numeric",
			req:     ResetPasswordRequest{Email: "admin@nummix.az", Code: "12345a", NewPassword: "abc123"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     ResetPasswordRequest{Code: "123456", NewPassword: "abc123"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := utils.ValidateStruct(tc.req)
			if tc.wantErr && len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			if !tc.wantErr && len(errs) != 0 {
				t.Fatalf("unexpected validation errors: %v", errs)
			}
		})
	}
}

func TestContactRequestValidation(t *testing.T) {
	ok := ContactRequest{FullName: "Orxan Aliyev", Email: "orxan@example.com", Message: "Hello"}
	if errs := utils.ValidateStruct(ok); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}

	// Company name is the only optional field.
	missing := ContactRequest{CompanyName: "Acme"}
	errs := utils.ValidateStruct(missing)
	for _, field := range []string{"fullName", "email", "message"} {
		if errs[field] == "" {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
}
