package validator

import (
	"testing"

	domainerrors "tutorhub/internal/domain/errors"
	"tutorhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	return validationErr.Fields()
}

func TestValidate_SignUp_AllMissing(t *testing.T) {
	v := New()

	fields := validationFields(t, v.Validate(&usecase.SignUpInput{}))

	assert.Equal(t, map[string]string{
		"email":           "email is required",
		"password":        "password is required",
		"confirmPassword": "confirmPassword is required",
		"name":            "name is required",
	}, fields)
}

func TestValidate_SignUp_CollectsEveryFailingField(t *testing.T) {
	v := New()

	input := &usecase.SignUpInput{
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
		Name:            "Some User",
		PhoneNumber:     "12345",
		DateOfBirth:     "15/06/1995",
	}

	fields := validationFields(t, v.Validate(input))

	assert.Equal(t, map[string]string{
		"email":           "email is not valid",
		"password":        "password is too weak",
		"confirmPassword": "password and confirmPassword does not match",
		"phoneNumber":     "phoneNumber is invalid",
		"dateOfBirth":     "dateOfBirth is invalid",
	}, fields)
}

func TestValidate_SignUp_Valid(t *testing.T) {
	v := New()

	input := &usecase.SignUpInput{
		Email:           "user@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Name:            "Some User",
		PhoneNumber:     "0912345678",
		DateOfBirth:     "1995-06-15",
	}

	assert.NoError(t, v.Validate(input))
}

func TestValidate_SignUp_OptionalFieldsMayBeEmpty(t *testing.T) {
	v := New()

	input := &usecase.SignUpInput{
		Email:           "user@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Name:            "Some User",
	}

	assert.NoError(t, v.Validate(input))
}

func TestValidate_SignIn_PresenceOnly(t *testing.T) {
	v := New()

	fields := validationFields(t, v.Validate(&usecase.SignInInput{}))

	assert.Equal(t, map[string]string{
		"email":    "email is required",
		"password": "password is required",
	}, fields)

	// no format rules on sign-in: any non-empty values pass
	assert.NoError(t, v.Validate(&usecase.SignInInput{Email: "whatever", Password: "x"}))
}

func TestValidate_MentorPayload_Presence(t *testing.T) {
	v := New()

	fields := validationFields(t, v.Validate(&usecase.MentorPayload{}))

	assert.Equal(t, map[string]string{
		"userId":                  "userId is required",
		"numberOfYearsExperience": "numberOfYearsExperience is required",
		"currentJob":              "currentJob is required",
		"specialities":            "specialities is required",
	}, fields)
}

func TestValidate_MentorPayload_Formats(t *testing.T) {
	v := New()

	input := &usecase.MentorPayload{
		UserID:                  "not-a-uuid",
		NumberOfYearsExperience: 1.3,
		CurrentJob:              "Astronaut",
		Specialities:            []string{"Go", "Go"},
	}

	fields := validationFields(t, v.Validate(input))

	assert.Equal(t, map[string]string{
		"userId":                  "userId is invalid",
		"numberOfYearsExperience": "numberOfYearsExperience is invalid",
		"currentJob":              "currentJob is invalid",
		"specialities":            "specialities is invalid",
	}, fields)
}

func TestValidate_MentorPayload_EmptySpecialities(t *testing.T) {
	v := New()

	input := &usecase.MentorPayload{
		UserID:                  "0df41f34-9b30-4e0e-811a-f1e0b4f6b1a1",
		NumberOfYearsExperience: 2.5,
		CurrentJob:              "Web Developer",
		Specialities:            []string{},
	}

	fields := validationFields(t, v.Validate(input))

	assert.Equal(t, "specialities is invalid", fields["specialities"])
}

func TestValidate_MentorPayload_Valid(t *testing.T) {
	v := New()

	input := &usecase.MentorPayload{
		UserID:                  "0df41f34-9b30-4e0e-811a-f1e0b4f6b1a1",
		NumberOfYearsExperience: 0.5,
		CurrentJob:              "Full-stack Developer",
		Specialities:            []string{"Go", "React"},
	}

	assert.NoError(t, v.Validate(input))
}
