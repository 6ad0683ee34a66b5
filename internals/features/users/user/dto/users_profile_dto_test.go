package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internals/features/users/user/model"
)

func sampleUserAndProfile() (model.User, model.UserProfile) {
	phone := "+1234567890"
	resume := "https://example.com/resume.pdf"
	headline := "Backend engineer"

	user := model.User{
		ID:       uuid.New(),
		UserName: "jdoe",
		Email:    "jdoe@example.com",
		Role:     "candidate",
		IsActive: true,
	}
	profile := model.UserProfile{
		UserID:    user.ID,
		Headline:  &headline,
		Phone:     &phone,
		ResumeURL: &resume,
		IsBanned:  true,
	}
	return user, profile
}

func TestToPublicProfileDTO_HidesPrivateFields(t *testing.T) {
	user, profile := sampleUserAndProfile()

	raw, err := json.Marshal(ToPublicProfileDTO(user, &profile))
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &asMap))

	assert.NotContains(t, asMap, "email")
	assert.NotContains(t, asMap, "phone")
	assert.NotContains(t, asMap, "resume_url")
	assert.NotContains(t, asMap, "is_banned")

	assert.Equal(t, "jdoe", asMap["user_name"])
	assert.Equal(t, "Backend engineer", asMap["headline"])
}

func TestToProfileDTO_OwnerSeesEverything(t *testing.T) {
	user, profile := sampleUserAndProfile()

	out := ToProfileDTO(user, &profile)
	assert.Equal(t, "jdoe@example.com", out.Email)
	require.NotNil(t, out.Phone)
	assert.Equal(t, "+1234567890", *out.Phone)
	require.NotNil(t, out.ResumeURL)
}

func TestToProfileDTO_NilProfile(t *testing.T) {
	user, _ := sampleUserAndProfile()

	out := ToProfileDTO(user, nil)
	assert.Equal(t, user.ID.String(), out.UserID)
	assert.Nil(t, out.Headline)
	assert.Nil(t, out.UpdatedAt)
}
