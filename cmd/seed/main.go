package main

import (
	"context"
	"log"
	"os"
	"time"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds the baseline marketplace configuration: commission percentages
// per listing kind and a bank-transfer payment method. Safe to re-run;
// commission settings upsert and an existing active payment setting is
// left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	log.Println("Seeding commission settings...")
	now := time.Now()
	settings := []*entity.CommissionSetting{
		{
			Id:          uuid.New(),
			ListingKind: entity.ListingKindRent,
			Percentage:  10,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Id:          uuid.New(),
			ListingKind: entity.ListingKindSale,
			Percentage:  3,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, s := range settings {
		if err := uow.CommissionRepository().Upsert(ctx, s); err != nil {
			log.Fatalf("Error: Failed to seed commission setting for %s: %v", s.ListingKind, err)
		}
		log.Printf("  %s -> %.0f%%", s.ListingKind, s.Percentage)
	}

	log.Println("Seeding payment setting...")
	active, err := uow.PaymentSettingRepository().FindActive(ctx)
	if err != nil {
		log.Fatal("Error: Failed to check active payment setting:", err)
	}
	if active != nil {
		log.Printf("  Active %s configuration already present, skipping", active.PaymentMethod)
	} else {
		setting := &entity.PaymentSetting{
			Id:            uuid.New(),
			PaymentMethod: entity.PaymentMethodBankTransfer,
			IsActive:      true,
			BankName:      "Deutsche Bank",
			AccountHolder: "Estate Listing GmbH",
			Iban:          "DE89370400440532013000",
			BicSwift:      "DEUTDEFF",
			AdditionalInstructions: "Payments are reconciled within two business days. " +
				"Always include the payment reference.",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.PaymentSettingRepository().Save(ctx, setting); err != nil {
			log.Fatal("Error: Failed to seed payment setting:", err)
		}
		log.Println("  bank_transfer configuration created")
	}

	log.Println("✅ Seed complete")
}
