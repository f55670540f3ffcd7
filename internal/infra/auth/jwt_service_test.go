package auth

import (
	"testing"
	"time"

	"tutorhub/config"
	"tutorhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	require.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	user := &entity.User{
		ID:          uuid.New(),
		Email:       "user@example.com",
		Name:        "Some User",
		PhoneNumber: "0912345678",
		DateOfBirth: &dob,
		Role:        entity.RoleClient,
	}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Some User", claims.Name)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "0912345678", claims.PhoneNumber)
	assert.Equal(t, "1995-06-15", claims.DateOfBirth)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other-secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.User{ID: uuid.New(), Role: entity.RoleClient})
	require.NoError(t, err)

	_, err = verifier.Validate(token)

	require.Error(t, err)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, err = svc.Validate("not.a.token")

	require.Error(t, err)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	// a non-positive TTL falls back to the default, so build the service directly
	svc := &jwtService{secret: "test-secret", ttl: -time.Hour}

	token, err := svc.Issue(&entity.User{ID: uuid.New(), Role: entity.RoleClient})
	require.NoError(t, err)

	_, err = svc.Validate(token)

	require.Error(t, err)
}
