package countries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-payouts/internal/core/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)

	us, ok := c.Get("US")
	require.True(t, ok)
	assert.Equal(t, "USD", us.CurrencyCode)

	_, ok = c.Get("UK")
	assert.True(t, ok)
	_, ok = c.Get("us")
	assert.False(t, ok, "lookup is case sensitive")
	_, ok = c.Get("ZZ")
	assert.False(t, ok)

	all := c.All()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code, all[i].Code)
	}
	all[0].Code = "mutated"
	assert.NotEqual(t, "mutated", c.All()[0].Code)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"malformed", `{"countries": [`, "decode"},
		{"empty", `{"countries": []}`, "empty"},
		{"blank code", `{"countries": [{"COUNTRY": "Nowhere", "COUNTRY_CODE": " "}]}`, "no code"},
		{"duplicate", `{"countries": [{"COUNTRY_CODE": "US"}, {"COUNTRY_CODE": "US"}]}`, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.json")
	data := `{"countries": [{"COUNTRY": "Freedonia", "COUNTRY_CODE": "FD", "CURRENCY_CODE": "FDD", "NAME_OF_CURRENCY": "Freedonian Dollar"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.CountryRecord{{
		Code: "FD", Name: "Freedonia", CurrencyCode: "FDD", CurrencyName: "Freedonian Dollar",
	}}, c.All())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	c, err = LoadFile("")
	require.NoError(t, err)
	_, ok := c.Get("US")
	assert.True(t, ok)
}

func TestCatalogBacksValidator(t *testing.T) {
	c, err := New([]domain.CountryRecord{{Code: "US"}})
	require.NoError(t, err)
	v := domain.NewCountryValidator(c)

	_, err = v.Validate("US")
	assert.NoError(t, err)
	_, err = v.Validate("ZZ")
	assert.ErrorIs(t, err, domain.ErrInvalidCountryCode)
}
