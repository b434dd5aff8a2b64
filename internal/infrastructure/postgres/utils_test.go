package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro")))
}

func TestLikePattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%apple%", likePattern("apple"))
	assert.Equal(t, `%50\%%`, likePattern("50%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
}

func TestMigrations_Embebidas(t *testing.T) {
	content, err := migrationsFS.ReadFile("migrations/001_init.sql")
	assert.NoError(t, err)
	for _, table := range []string{"users", "customers", "products", "invoices", "invoice_lines", "settings"} {
		assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
