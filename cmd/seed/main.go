// Command seed loads a small demo dataset into the pricing database: a B2B
// customer with personal and group discounts, a few products, and one
// featured promotion. Intended for the emulator.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

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

var spannerDB = flag.String("database",
	"projects/test-project/instances/dev-instance/databases/parts-pricing-db",
	"Full Spanner database path")

func main() {
	flag.Parse()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("create Spanner client: %v", err)
	}
	defer client.Close()

	if err := seed(ctx, client); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("Seed data loaded")
}

func seed(ctx context.Context, client *spanner.Client) error {
	userID := uuid.NewString()
	fleetGroupID := uuid.NewString()
	wholesaleGroupID := uuid.NewString()

	brakePadsID := uuid.NewString()
	oilFilterID := uuid.NewString()
	sparkPlugID := uuid.NewString()

	userModel := m_user.NewModel()
	personalModel := m_user_category_discount.NewModel()
	groupModel := m_discount_group.NewModel()
	memberModel := m_group_member.NewModel()
	groupCategoryModel := m_group_category_discount.NewModel()
	groupManufacturerModel := m_group_manufacturer_discount.NewModel()
	groupComboModel := m_group_combo_discount.NewModel()
	productModel := m_product.NewModel()
	featuredModel := m_featured_product.NewModel()

	promoStart := time.Now().Add(-24 * time.Hour)
	promoEnd := time.Now().Add(7 * 24 * time.Hour)

	mutations := []*spanner.Mutation{
		userModel.InsertMut(&m_user.Data{
			UserID:          userID,
			Email:           "fleet-buyer@example.com",
			AccountType:     m_user.AccountTypeB2B,
			DiscountPercent: 5,
		}),
		personalModel.InsertMut(&m_user_category_discount.Data{
			UserID:          userID,
			CategoryID:      "brakes",
			DiscountPercent: 8,
		}),

		groupModel.InsertMut(&m_discount_group.Data{
			GroupID:          fleetGroupID,
			Name:             "Fleet Customers",
			Priority:         1,
			StackingStrategy: "PRIORITY",
		}),
		groupModel.InsertMut(&m_discount_group.Data{
			GroupID:          wholesaleGroupID,
			Name:             "Wholesale",
			Priority:         2,
			StackingStrategy: "PRIORITY",
		}),
		memberModel.InsertMut(&m_group_member.Data{UserID: userID, GroupID: fleetGroupID}),
		memberModel.InsertMut(&m_group_member.Data{UserID: userID, GroupID: wholesaleGroupID}),

		groupCategoryModel.InsertMut(&m_group_category_discount.Data{
			GroupID:         fleetGroupID,
			CategoryID:      "brakes",
			DiscountPercent: 12,
		}),
		groupManufacturerModel.InsertMut(&m_group_manufacturer_discount.Data{
			GroupID:         fleetGroupID,
			ManufacturerID:  "bosch",
			DiscountPercent: 10,
		}),
		groupComboModel.InsertMut(&m_group_combo_discount.Data{
			GroupID:         fleetGroupID,
			CategoryID:      "brakes",
			ManufacturerID:  "bosch",
			DiscountPercent: 15,
		}),
		groupCategoryModel.InsertMut(&m_group_category_discount.Data{
			GroupID:         wholesaleGroupID,
			CategoryID:      "filters",
			DiscountPercent: 20,
		}),

		productModel.InsertMut(&m_product.Data{
			ProductID:            brakePadsID,
			Name:                 "Ceramic Brake Pad Set",
			CategoryID:           "brakes",
			ManufacturerID:       spanner.NullString{StringVal: "bosch", Valid: true},
			ListPriceNumerator:   8999,
			ListPriceDenominator: 100,
		}),
		productModel.InsertMut(&m_product.Data{
			ProductID:            oilFilterID,
			Name:                 "Engine Oil Filter",
			CategoryID:           "filters",
			ManufacturerID:       spanner.NullString{StringVal: "mann", Valid: true},
			ListPriceNumerator:   1299,
			ListPriceDenominator: 100,
		}),
		productModel.InsertMut(&m_product.Data{
			ProductID:            sparkPlugID,
			Name:                 "Iridium Spark Plug",
			CategoryID:           "ignition",
			ListPriceNumerator:   2450,
			ListPriceDenominator: 100,
		}),

		featuredModel.InsertMut(&m_featured_product.Data{
			ProductID:        sparkPlugID,
			Position:         1,
			IsDiscountActive: true,
			DiscountType:     spanner.NullString{StringVal: "PERCENTAGE", Valid: true},
			DiscountValue:    spanner.NullFloat64{Float64: 25, Valid: true},
			StartsAt:         spanner.NullTime{Time: promoStart, Valid: true},
			EndsAt:           spanner.NullTime{Time: promoEnd, Valid: true},
		}),
	}

	if _, err := client.Apply(ctx, mutations); err != nil {
		return err
	}

	log.Printf("user: %s", userID)
	log.Printf("products: brakes=%s filters=%s featured=%s", brakePadsID, oilFilterID, sparkPlugID)
	return nil
}
