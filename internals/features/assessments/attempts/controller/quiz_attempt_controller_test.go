package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"talenthub_backend/internals/constants"
	helper "talenthub_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newSubmitApp(ctrl *QuizAttemptController, candidateID uuid.UUID) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", candidateID.String())
		c.Locals("userRole", constants.RoleCandidate)
		return c.Next()
	})
	app.Post("/attempts/:id/submit", ctrl.SubmitAttempt)
	return app
}

func TestSubmitAttempt_AlreadySubmitted(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewQuizAttemptController(db)

	candidateID := uuid.New()
	attemptID := uuid.New()
	submittedAt := time.Now().Add(-time.Hour)

	mock.ExpectQuery(`SELECT .* FROM "quiz_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quiz_id", "candidate_id", "submitted_at"}).
			AddRow(attemptID.String(), uuid.New().String(), candidateID.String(), submittedAt))

	app := newSubmitApp(ctrl, candidateID)

	req := httptest.NewRequest("POST", "/attempts/"+attemptID.String()+"/submit", strings.NewReader(`{"answers":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Quiz already submitted")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAttempt_ConcurrentSubmissionLosesRace(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewQuizAttemptController(db)

	candidateID := uuid.New()
	attemptID := uuid.New()
	quizID := uuid.New()
	questionID := uuid.New()

	// the pre-check still sees an open attempt
	mock.ExpectQuery(`SELECT .* FROM "quiz_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quiz_id", "candidate_id", "submitted_at"}).
			AddRow(attemptID.String(), quizID.String(), candidateID.String(), nil))

	mock.ExpectQuery(`SELECT .* FROM "quizzes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "opportunity_id", "title", "duration_minutes", "passing_score", "is_active"}).
			AddRow(quizID.String(), uuid.New().String(), "Screening quiz", 30, 70, true))
	mock.ExpectQuery(`SELECT .* FROM "quiz_questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quiz_id", "question_text", "options", "correct_answer", "points", "question_order"}).
			AddRow(questionID.String(), quizID.String(), "Pick a", []byte(`[{"label":"A","value":"a"}]`), "a", 1, 0))

	// another request submitted between the pre-check and the update:
	// the conditional update matches zero rows and the submission is rejected
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "quiz_attempts"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	app := newSubmitApp(ctrl, candidateID)

	body := fmt.Sprintf(`{"answers":[{"question_id":%q,"selected_answer":"a"}]}`, questionID.String())
	req := httptest.NewRequest("POST", "/attempts/"+attemptID.String()+"/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Quiz already submitted")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAttempt_NotOwnAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewQuizAttemptController(db)

	attemptID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "quiz_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quiz_id", "candidate_id", "submitted_at"}).
			AddRow(attemptID.String(), uuid.New().String(), uuid.New().String(), nil))

	// caller is a different candidate
	app := newSubmitApp(ctrl, uuid.New())

	req := httptest.NewRequest("POST", "/attempts/"+attemptID.String()+"/submit", strings.NewReader(`{"answers":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}
