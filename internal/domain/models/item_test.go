package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbodj/frigo/internal/domain/models"
)

func validItem() models.Item {
	return models.Item{
		ID:     "3017620422003",
		Name:   "Lait d'amande",
		Qty:    2,
		Amount: "1L",
		Exp:    "2025-12-25",
	}
}

func TestValidateAcceptsCompleteItem(t *testing.T) {
	assert.NoError(t, validItem().Validate())
}

func TestValidateAcceptsLegacyExpiration(t *testing.T) {
	it := validItem()
	it.Exp = "Exp: 25/12/2025"
	assert.NoError(t, it.Validate())
}

func TestValidateCombinesAllViolations(t *testing.T) {
	it := models.Item{ID: "  ", Name: " ", Qty: 0, Exp: "pas une date"}

	err := it.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Contains(t, err.Error(), "nom")
	assert.Contains(t, err.Error(), "quantité (≥1)")
	assert.Contains(t, err.Error(), "date de péremption")
	assert.Contains(t, err.Error(), "code-barres")
}

func TestValidateRejectsZeroQuantity(t *testing.T) {
	it := validItem()
	it.Qty = 0

	err := it.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestDisplayImageFallsBackToPlaceholder(t *testing.T) {
	it := validItem()
	assert.Equal(t, models.PlaceholderImageURL, it.DisplayImage())

	it.ImageURL = "https://images.openfoodfacts.org/some.jpg"
	assert.Equal(t, "https://images.openfoodfacts.org/some.jpg", it.DisplayImage())
}
