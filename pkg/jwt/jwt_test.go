package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Onboarding-api/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("s3cret", "user-1", "recruiter", "onboarding-api", 5)
	require.NoError(t, err)

	userID, role, err := jwt.Parse("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "recruiter", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("s3cret", "user-1", "admin", "onboarding-api", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("s3cret", "user-1", "admin", "onboarding-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("s3cret", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "admin", "onboarding-api", 5)
	assert.Error(t, err)
}
