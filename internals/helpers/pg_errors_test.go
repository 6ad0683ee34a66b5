package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_applications_opportunity_candidate"}

	assert.True(t, IsUniqueViolation(dup, ""))
	assert.True(t, IsUniqueViolation(dup, "uq_applications_opportunity_candidate"))
	assert.False(t, IsUniqueViolation(dup, "uq_quizzes_opportunity_id"))

	// wrapped errors still match
	wrapped := fmt.Errorf("create failed: %w", dup)
	assert.True(t, IsUniqueViolation(wrapped, "uq_applications_opportunity_candidate"))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("plain error"), ""))
	assert.False(t, IsUniqueViolation(nil, ""))
}
