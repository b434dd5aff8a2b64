package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/supermack-billing/pkg/money"
)

func TestNewFormatter_CodigoInvalido(t *testing.T) {
	_, err := money.NewFormatter("XX", language.English)
	assert.Error(t, err)
}

func TestFormat_PrefijoMoneda(t *testing.T) {
	f, err := money.NewFormatter("LKR", language.English)
	require.NoError(t, err)

	out := f.Format(decimal.RequireFromString("1250.75"))
	assert.True(t, strings.HasPrefix(out, "LKR "), "se esperaba prefijo LKR, obtenido %q", out)
	assert.Contains(t, out, "250.75")
	assert.Equal(t, "LKR", f.Code())
}

func TestMustFormatter_Panic(t *testing.T) {
	assert.Panics(t, func() { money.MustFormatter("nope") })
}
