// Command seed loads a set of demo orders into the database so the
// fulfillment workflow can be exercised end to end without a storefront.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/T0MGL/0rdefy-sub010/internal/adapters/out/postgres/orderrepo"
	"github.com/T0MGL/0rdefy-sub010/internal/adapters/out/postgres/sessionrepo"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type demoLine struct {
	productName string
	quantity    int
}

type demoOrder struct {
	number       string
	customerName string
	lines        []demoLine
}

// Demo orders deliberately share products across orders so a session
// aggregates them into consolidated pick requirements.
var demoOrders = []demoOrder{
	{"ORD-1001", "Dana Smith", []demoLine{{"Ceramic Mug", 2}, {"Poster A2", 1}}},
	{"ORD-1002", "Alex Chen", []demoLine{{"Ceramic Mug", 1}, {"Tote Bag", 2}}},
	{"ORD-1003", "Kim Lee", []demoLine{{"Poster A2", 3}}},
	{"ORD-1004", "Sam Rivera", []demoLine{{"Tote Bag", 1}, {"Sticker Pack", 5}}},
	{"ORD-1005", "Noor Haddad", []demoLine{{"Ceramic Mug", 4}, {"Sticker Pack", 2}}},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on process environment")
	}

	db := mustConnectDB()

	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&sessionrepo.SessionDTO{},
		&sessionrepo.MemberDTO{},
		&sessionrepo.PickRequirementDTO{},
		&sessionrepo.PackingLineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := orderrepo.NewGormOrderRepository(db, noopTracker{})

	// Stable product IDs per name so shared products aggregate correctly
	productIDs := make(map[string]kernel.UUID)
	productID := func(name string) kernel.UUID {
		if id, ok := productIDs[name]; ok {
			return id
		}
		id := kernel.NewUUID()
		productIDs[name] = id
		return id
	}

	ctx := context.Background()
	for _, demo := range demoOrders {
		lines := make([]order.Line, 0, len(demo.lines))
		for _, dl := range demo.lines {
			line, lineErr := order.NewLine(productID(dl.productName), dl.productName, dl.quantity)
			if lineErr != nil {
				log.Fatalf("Failed to build line for %s: %v", demo.number, lineErr)
			}
			lines = append(lines, line)
		}

		ord, orderErr := order.NewOrder(kernel.NewUUID(), demo.number, demo.customerName, lines)
		if orderErr != nil {
			log.Fatalf("Failed to build order %s: %v", demo.number, orderErr)
		}

		if addErr := repo.Add(ctx, ord); addErr != nil {
			log.Fatalf("Failed to store order %s: %v", demo.number, addErr)
		}

		log.Infof("Seeded order %s for %s (%d lines)", demo.number, demo.customerName, len(lines))
	}

	log.Infof("Seeded %d orders across %d products", len(demoOrders), len(productIDs))
}

func mustConnectDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envVariable("DB_HOST", "localhost"),
		envVariable("DB_PORT", "5432"),
		envVariable("DB_USER", "postgres"),
		envVariable("DB_PASSWORD", "postgres"),
		envVariable("DB_NAME", "fulfillment"),
		envVariable("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func envVariable(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// noopTracker satisfies the repository's aggregate tracking outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
