package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/parts-pricing-service/internal/models/m_discount_group"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_featured_product"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_group_category_discount"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_group_combo_discount"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_group_manufacturer_discount"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_group_member"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_product"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_user"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_user_category_discount"
)

func apply(t *testing.T, client *spanner.Client, muts ...*spanner.Mutation) {
	t.Helper()
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to apply fixture mutations")
}

// CreateTestUser inserts a user with the given account type and flat discount,
// returning its id.
func CreateTestUser(t *testing.T, client *spanner.Client, accountType string, flatDiscount float64) string {
	t.Helper()

	userID := uuid.New().String()
	apply(t, client, m_user.NewModel().InsertMut(&m_user.Data{
		UserID:          userID,
		Email:           userID + "@example.com",
		AccountType:     accountType,
		DiscountPercent: flatDiscount,
	}))
	return userID
}

// CreateTestB2BUser inserts a B2B user with the given flat discount.
func CreateTestB2BUser(t *testing.T, client *spanner.Client, flatDiscount float64) string {
	t.Helper()
	return CreateTestUser(t, client, m_user.AccountTypeB2B, flatDiscount)
}

// AddPersonalCategoryDiscount inserts a per-user category rule.
func AddPersonalCategoryDiscount(t *testing.T, client *spanner.Client, userID, categoryID string, percent float64) {
	t.Helper()
	apply(t, client, m_user_category_discount.NewModel().InsertMut(&m_user_category_discount.Data{
		UserID:          userID,
		CategoryID:      categoryID,
		DiscountPercent: percent,
	}))
}

// CreateTestGroup inserts a discount group and returns its id.
func CreateTestGroup(t *testing.T, client *spanner.Client, name string, priority int64, strategy string) string {
	t.Helper()

	groupID := uuid.New().String()
	apply(t, client, m_discount_group.NewModel().InsertMut(&m_discount_group.Data{
		GroupID:          groupID,
		Name:             name,
		Priority:         priority,
		StackingStrategy: strategy,
	}))
	return groupID
}

// AddGroupMember enrolls a user in a discount group.
func AddGroupMember(t *testing.T, client *spanner.Client, userID, groupID string) {
	t.Helper()
	apply(t, client, m_group_member.NewModel().InsertMut(&m_group_member.Data{
		UserID:  userID,
		GroupID: groupID,
	}))
}

// AddGroupCategoryDiscount inserts a group category rule.
func AddGroupCategoryDiscount(t *testing.T, client *spanner.Client, groupID, categoryID string, percent float64) {
	t.Helper()
	apply(t, client, m_group_category_discount.NewModel().InsertMut(&m_group_category_discount.Data{
		GroupID:         groupID,
		CategoryID:      categoryID,
		DiscountPercent: percent,
	}))
}

// AddGroupManufacturerDiscount inserts a group manufacturer rule.
func AddGroupManufacturerDiscount(t *testing.T, client *spanner.Client, groupID, manufacturerID string, percent float64) {
	t.Helper()
	apply(t, client, m_group_manufacturer_discount.NewModel().InsertMut(&m_group_manufacturer_discount.Data{
		GroupID:         groupID,
		ManufacturerID:  manufacturerID,
		DiscountPercent: percent,
	}))
}

// AddGroupComboDiscount inserts a group category+manufacturer rule.
func AddGroupComboDiscount(t *testing.T, client *spanner.Client, groupID, categoryID, manufacturerID string, percent float64) {
	t.Helper()
	apply(t, client, m_group_combo_discount.NewModel().InsertMut(&m_group_combo_discount.Data{
		GroupID:         groupID,
		CategoryID:      categoryID,
		ManufacturerID:  manufacturerID,
		DiscountPercent: percent,
	}))
}

// CreateTestProduct inserts a product priced as numerator/denominator and
// returns its id. Pass an empty manufacturerID for products without one.
func CreateTestProduct(t *testing.T, client *spanner.Client, name, categoryID, manufacturerID string, numerator, denominator int64) string {
	t.Helper()

	productID := uuid.New().String()
	data := &m_product.Data{
		ProductID:            productID,
		Name:                 name,
		CategoryID:           categoryID,
		ListPriceNumerator:   numerator,
		ListPriceDenominator: denominator,
	}
	if manufacturerID != "" {
		data.ManufacturerID = spanner.NullString{StringVal: manufacturerID, Valid: true}
	}
	apply(t, client, m_product.NewModel().InsertMut(data))
	return productID
}

// FeatureProduct marks a product as featured with a live percentage discount.
func FeatureProduct(t *testing.T, client *spanner.Client, productID string, discountType string, value float64, startsAt, endsAt *time.Time) {
	t.Helper()

	data := &m_featured_product.Data{
		ProductID:        productID,
		Position:         1,
		IsDiscountActive: true,
		DiscountType:     spanner.NullString{StringVal: discountType, Valid: true},
		DiscountValue:    spanner.NullFloat64{Float64: value, Valid: true},
	}
	if startsAt != nil {
		data.StartsAt = spanner.NullTime{Time: *startsAt, Valid: true}
	}
	if endsAt != nil {
		data.EndsAt = spanner.NullTime{Time: *endsAt, Valid: true}
	}
	apply(t, client, m_featured_product.NewModel().InsertMut(data))
}

// FeatureProductWithoutDiscount marks a product as featured with no
// promotional price.
func FeatureProductWithoutDiscount(t *testing.T, client *spanner.Client, productID string) {
	t.Helper()
	apply(t, client, m_featured_product.NewModel().InsertMut(&m_featured_product.Data{
		ProductID:        productID,
		Position:         1,
		IsDiscountActive: false,
	}))
}
