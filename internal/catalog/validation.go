package catalog

import (
	"math"
	"strings"

	"github.com/wingscafe/tracker/internal/shared"
)

// parseDraft validates d and converts it into a Product without an id.
func parseDraft(d ProductDraft) (Product, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	if err := shared.ValidateStruct(d); err != nil {
		return Product{}, err
	}
	price, err := d.Price.Float()
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return Product{}, shared.FieldError("price", "number")
	}
	if price < 0 {
		return Product{}, shared.FieldError("price", "gte=0")
	}
	qty, err := d.Quantity.Int()
	if err != nil {
		return Product{}, shared.FieldError("quantity", "integer")
	}
	if qty < 0 {
		return Product{}, shared.FieldError("quantity", "gte=0")
	}
	return Product{
		Name:        d.Name,
		Description: strings.TrimSpace(d.Description),
		Category:    Category(d.Category),
		Price:       price,
		Quantity:    qty,
	}, nil
}
