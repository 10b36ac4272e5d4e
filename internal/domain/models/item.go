package models

import (
	"fmt"
	"strings"

	"github.com/mbodj/frigo/pkg/dates"
)

// PlaceholderImageURL is shown for items without a product picture.
const PlaceholderImageURL = "https://cpng.pikpng.com/pngl/s/597-5973859_unknown-png-png-download-unknown-png-clipart.png"

// Item is one tracked refrigerator product, keyed by its barcode. The wire
// field names are fixed for compatibility with the legacy persisted layout.
type Item struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Qty      int    `json:"qty" bson:"qty"`
	Amount   string `json:"amount" bson:"amount"`
	Exp      string `json:"exp" bson:"exp"`
	ImageURL string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

// DisplayImage returns the item picture, substituting the fixed placeholder
// when none was recorded.
func (i Item) DisplayImage() string {
	if i.ImageURL != "" {
		return i.ImageURL
	}
	return PlaceholderImageURL
}

// Validate re-asserts the add-flow precondition before an upsert: non-empty
// barcode and name after trimming, quantity of at least one and a parseable
// expiration date. All violations are reported as a single combined message.
func (i Item) Validate() error {
	var missing []string

	if strings.TrimSpace(i.Name) == "" {
		missing = append(missing, "nom")
	}
	if i.Qty < 1 {
		missing = append(missing, "quantité (≥1)")
	}
	if _, ok := dates.ParseFlexible(i.Exp); !ok {
		missing = append(missing, "date de péremption")
	}
	if strings.TrimSpace(i.ID) == "" {
		missing = append(missing, "code-barres")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: champs requis: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
