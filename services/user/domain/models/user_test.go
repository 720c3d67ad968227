package models

import (
	"errors"
	"testing"

	userdomain "github.com/ghuser/thoron/services/user/domain"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"Admin", RoleAdmin, false},
		{"Dispatcher", RoleDispatcher, false},
		{"Driver", RoleDriver, false},
		{"Customer", RoleCustomer, false},
		{"admin", "", true},
		{"Owner", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				if !errors.Is(err, userdomain.ErrInvalidRole) {
					t.Fatalf("expected ErrInvalidRole, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseRole(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
}
