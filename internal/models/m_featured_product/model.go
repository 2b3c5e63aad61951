package m_featured_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the featured_products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a featured product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ProductID,
			Position,
			IsDiscountActive,
			DiscountType,
			DiscountValue,
			StartsAt,
			EndsAt,
			CreatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.Position,
			data.IsDiscountActive,
			data.DiscountType,
			data.DiscountValue,
			data.StartsAt,
			data.EndsAt,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a featured product.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
