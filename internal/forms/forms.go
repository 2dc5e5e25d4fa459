// Package forms holds the pre-submission checks shared by the bidder and admin flows.
package forms

import (
	"fmt"
	"strings"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"
)

// RequireCredentials checks a login form
func RequireCredentials(creds model.Credentials) error {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return fmt.Errorf("%w - username and password are required", auctionerrors.ErrMissingField)
	}
	return nil
}

// RequireRegistration checks a sign-up form
func RequireRegistration(reg model.Registration) error {
	if strings.TrimSpace(reg.Name) == "" || strings.TrimSpace(reg.Username) == "" || reg.Password == "" {
		return fmt.Errorf("%w - name, username and password are required", auctionerrors.ErrMissingField)
	}
	return nil
}

// RequirePasswordChange checks a change-password form
func RequirePasswordChange(change model.PasswordChange) error {
	if change.OldPassword == "" || change.NewPassword == "" {
		return fmt.Errorf("%w - old and new password are required", auctionerrors.ErrMissingField)
	}
	if change.OldPassword == change.NewPassword {
		return auctionerrors.ErrPasswordUnchanged
	}
	return nil
}

// Rupees prints whole amounts without decimals
func Rupees(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
