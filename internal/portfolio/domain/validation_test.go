package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Project(t *testing.T) {
	err := Validate(ProjectInput{Title: "A"}.Normalize())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrInvalidRating))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("description"))
	assert.True(t, verr.HasField("githubUrl"))
	assert.False(t, verr.HasField("title"))

	ok := ProjectInput{Title: "A", Description: "d", GithubURL: "https://github.com/a"}
	assert.NoError(t, Validate(ok))
}

func TestValidate_WhitespaceCountsAsMissing(t *testing.T) {
	err := Validate(ProjectInput{Title: "   ", Description: "d", GithubURL: "g"}.Normalize())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("title"))
}

func TestValidate_RemarkRating(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		err := Validate(RemarkInput{ClientName: "A", Comment: "x", Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, Validate(RemarkInput{ClientName: "A", Comment: "x", Rating: rating}))
	}
}

func TestValidate_ContactEmail(t *testing.T) {
	in := ContactInput{FirstName: "A", LastName: "B", Email: "not-an-email", Subject: "s", Message: "m"}
	err := Validate(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")

	in.Email = "a@example.com"
	assert.NoError(t, Validate(in))
}
