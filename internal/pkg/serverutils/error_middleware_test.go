package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"babybook-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appReturning(err error) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/", func(ctx *fiber.Ctx) error {
		return err
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, ErrorBody) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	var body ErrorBody
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res.StatusCode, body
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unauthenticated", apperror.Unauthenticated(), fiber.StatusUnauthorized},
		{"unauthorized", apperror.Unauthorized(""), fiber.StatusForbidden},
		{"not found", apperror.NotFound(""), fiber.StatusNotFound},
		{"validation", apperror.Validation(nil), fiber.StatusUnprocessableEntity},
		{"persistence", apperror.Persistence(errors.New("boom")), fiber.StatusBadGateway},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doRequest(t, appReturning(tc.err))
			assert.Equal(t, tc.status, status)
			assert.False(t, body.Success)
		})
	}
}

func TestErrorHandlerSurfacesStoreMessage(t *testing.T) {
	storeErr := errors.New(`duplicate key value violates unique constraint "idx_family_members_family_email"`)
	status, body := doRequest(t, appReturning(apperror.Persistence(storeErr)))

	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Contains(t, body.Message, "duplicate key value")
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	_, body := doRequest(t, appReturning(errors.New("pq: secret dsn detail")))
	assert.Equal(t, "internal server error", body.Message)
}

func TestErrorHandlerCarriesViolations(t *testing.T) {
	status, body := doRequest(t, appReturning(apperror.Validation([]apperror.FieldViolation{
		{Field: "weight_kg", Rule: "gt", Message: "must be greater than 0"},
	})))

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	require.Len(t, body.Violations, 1)
	assert.Equal(t, "weight_kg", body.Violations[0].Field)
}
