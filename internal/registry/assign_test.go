package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jardins-api/internal/domain"
)

func TestValidateAttribution(t *testing.T) {
	parcelles := parcellesFrom("12", "12 bis")
	jardiniers := []domain.Jardinier{
		{ID: "dupont", Nom: "Dupont", NumeroParcelle: "12"},
		{ID: "martin", Nom: "Martin"},
	}

	t.Run("empty numero always passes", func(t *testing.T) {
		assert.NoError(t, ValidateAttribution(jardiniers, parcelles, "martin", ""))
		assert.NoError(t, ValidateAttribution(jardiniers, parcelles, "martin", "   "))
	})

	t.Run("unknown parcelle rejected", func(t *testing.T) {
		err := ValidateAttribution(jardiniers, parcelles, "martin", "99")
		assert.ErrorIs(t, err, ErrParcelleInconnue)
	})

	t.Run("held parcelle rejected", func(t *testing.T) {
		err := ValidateAttribution(jardiniers, parcelles, "martin", "12")
		assert.ErrorIs(t, err, ErrParcelleAttribuee)
	})

	t.Run("free parcelle accepted", func(t *testing.T) {
		assert.NoError(t, ValidateAttribution(jardiniers, parcelles, "martin", "12 bis"))
	})

	t.Run("own parcelle stays valid while editing", func(t *testing.T) {
		assert.NoError(t, ValidateAttribution(jardiniers, parcelles, "dupont", "12"))
	})

	t.Run("new jardinier cannot take a held parcelle", func(t *testing.T) {
		err := ValidateAttribution(jardiniers, parcelles, "", "12")
		assert.ErrorIs(t, err, ErrParcelleAttribuee)
	})

	t.Run("whitespace normalized before matching", func(t *testing.T) {
		assert.NoError(t, ValidateAttribution(jardiniers, parcelles, "martin", " 12   bis "))
	})
}

func TestAvailableParcelles(t *testing.T) {
	parcelles := parcellesFrom("10", "2", "12")
	jardiniers := []domain.Jardinier{
		{ID: "dupont", NumeroParcelle: "12"},
		{ID: "martin", NumeroParcelle: "2"},
	}

	t.Run("held parcelles excluded, natural order", func(t *testing.T) {
		got := AvailableParcelles(jardiniers, parcelles, "")
		assert.Equal(t, []string{"10"}, numeros(got))
	})

	t.Run("editing keeps own parcelle in the list", func(t *testing.T) {
		got := AvailableParcelles(jardiniers, parcelles, "dupont")
		assert.Equal(t, []string{"10", "12"}, numeros(got))
	})

	t.Run("everything free when nobody holds", func(t *testing.T) {
		got := AvailableParcelles(nil, parcelles, "")
		require.Len(t, got, 3)
		assert.Equal(t, []string{"2", "10", "12"}, numeros(got))
	})
}
