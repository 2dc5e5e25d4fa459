package forms

import (
	"testing"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRequireCredentials(t *testing.T) {
	t.Parallel()

	require.NoError(t, RequireCredentials(model.Credentials{Username: "a", Password: "b"}))
	require.ErrorIs(t, RequireCredentials(model.Credentials{Username: "  ", Password: "b"}), auctionerrors.ErrMissingField)
	require.ErrorIs(t, RequireCredentials(model.Credentials{Username: "a"}), auctionerrors.ErrMissingField)
}

func TestRequireRegistration(t *testing.T) {
	t.Parallel()

	require.NoError(t, RequireRegistration(model.Registration{Name: "A", Username: "a", Password: "p"}))
	require.ErrorIs(t, RequireRegistration(model.Registration{Username: "a", Password: "p"}), auctionerrors.ErrMissingField)
}

func TestRequirePasswordChange(t *testing.T) {
	t.Parallel()

	require.NoError(t, RequirePasswordChange(model.PasswordChange{OldPassword: "a", NewPassword: "b"}))
	require.ErrorIs(t, RequirePasswordChange(model.PasswordChange{OldPassword: "a", NewPassword: "a"}), auctionerrors.ErrPasswordUnchanged)
	require.ErrorIs(t, RequirePasswordChange(model.PasswordChange{NewPassword: "b"}), auctionerrors.ErrMissingField)
}

func TestRupees(t *testing.T) {
	t.Parallel()

	require.Equal(t, "500", Rupees(500))
	require.Equal(t, "100000", Rupees(100000))
	require.Equal(t, "10.50", Rupees(10.5))
}
