package main

import (
	"context"
	"log"
	"time"

	"loanhelp/internal/database"
	"loanhelp/internal/domain"
	"loanhelp/internal/repository"
)

// Seeds a local database with sample leads for development.
func main() {
	db, err := database.Connect("leads.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM leads")

	repo := repository.NewLeadRepository(db)
	ctx := context.Background()

	samples := []domain.Lead{
		{
			Name:          "Maria Lopez",
			Email:         "maria.lopez@example.com",
			Phone:         "5551234567",
			State:         "TX",
			PropertyState: "TX",
			HomeType:      domain.HomeTypeUsed,
			CreditRange:   domain.CreditFair,
			Timeline:      domain.TimelineImmediate,
			SourcePage:    "/states/texas",
		},
		{
			Name:           "James Carter",
			Email:          "james.carter@example.com",
			Phone:          "5559876543",
			State:          "FL",
			PropertyState:  "GA",
			HomeType:       domain.HomeTypeNew,
			CreditRange:    domain.CreditGood,
			Timeline:       domain.TimelineOneToThree,
			AdditionalInfo: "Looking at a new double-wide, land already owned.",
			SourcePage:     "/calculator",
		},
		{
			Name:          "Dana Whitfield",
			Email:         "dana.w@example.com",
			Phone:         "5550001111",
			State:         "OH",
			PropertyState: "OH",
			HomeType:      domain.HomeTypeUsed,
			CreditRange:   domain.CreditPoor,
			Timeline:      domain.TimelineResearching,
			SourcePage:    "/bad-credit",
			// old enough to be outside any duplicate window
			CreatedAt: time.Now().UTC().Add(-72 * time.Hour),
		},
	}

	for i := range samples {
		if err := repo.Create(ctx, &samples[i]); err != nil {
			log.Fatal("seed lead failed:", err)
		}
		log.Printf("seeded lead id=%s email=%s", samples[i].ID, samples[i].Email)
	}

	log.Println("Done.")
}
