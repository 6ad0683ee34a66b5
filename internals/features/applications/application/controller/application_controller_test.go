package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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

func newTestApp(method, path string, handler fiber.Handler, userID uuid.UUID, role string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)
		return c.Next()
	})
	app.Add(method, path, handler)
	return app
}

func TestCreateApplication_ConcurrentDuplicateMapsToBadRequest(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewApplicationController(db)

	candidateID := uuid.New()
	oppID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "opportunities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "recruiter_id"}).
			AddRow(oppID.String(), "published", uuid.New().String()))

	// pre-check sees no row; the insert then loses the race on the unique index
	mock.ExpectQuery(`SELECT .* FROM "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_applications_opportunity_candidate"})

	app := newTestApp(fiber.MethodPost, "/applications", ctrl.CreateApplication, candidateID, constants.RoleCandidate)

	body := strings.NewReader(fmt.Sprintf(`{"opportunity_id":%q}`, oppID.String()))
	req := httptest.NewRequest("POST", "/applications", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "You have already applied to this opportunity")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplication_UnpublishedOpportunityRejected(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewApplicationController(db)

	oppID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "opportunities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "recruiter_id"}).
			AddRow(oppID.String(), "closed", uuid.New().String()))

	app := newTestApp(fiber.MethodPost, "/applications", ctrl.CreateApplication, uuid.New(), constants.RoleCandidate)

	body := strings.NewReader(fmt.Sprintf(`{"opportunity_id":%q}`, oppID.String()))
	req := httptest.NewRequest("POST", "/applications", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "This opportunity is not accepting applications")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetApplicationByID_MalformedIDIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	ctrl := NewApplicationController(db)

	// a non-uuid path param never reaches the database
	app := newTestApp(fiber.MethodGet, "/applications/:id", ctrl.GetApplicationByID, uuid.New(), constants.RoleCandidate)

	resp, err := app.Test(httptest.NewRequest("GET", "/applications/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Application not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}
