package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("update: %w", ErrBusiness("user_not_found"))

	assert.True(t, IsBusiness(err, "user_not_found"))
	assert.False(t, IsBusiness(err, "service_not_found"))
	assert.False(t, IsBusiness(errors.New("boom"), "user_not_found"))
	assert.Equal(t, "user_not_found", ErrBusiness("user_not_found").Error())
}

func TestPgViolations(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}

func TestValidation_WritesFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	Validation(c, map[string][]string{"email": {"must be a valid email address"}})

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body HTTPError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Code)
	assert.Equal(t, []string{"must be a valid email address"}, body.Fields["email"])
}

func TestWrite_OmitsEmptyFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	Unauthorized(c, "invalid_credentials", "Invalid credentials")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error_code":"invalid_credentials","message":"Invalid credentials"}`, rr.Body.String())
}
