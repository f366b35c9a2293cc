package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/teesvolubiks/volubiks-cms-backend/config"
	"github.com/teesvolubiks/volubiks-cms-backend/models"
	"github.com/teesvolubiks/volubiks-cms-backend/store"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the store with a demo catalog and a randomized order log
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VOLUBIKS CMS - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	client, err := config.ConnectRedis()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("✓ Connected to Redis")

	products := demoCatalog()
	orders := demoOrders(products)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := writeBlob(ctx, client, store.ProductsKey, products); err != nil {
		log.Fatalf("Failed to write product catalog: %v", err)
	}
	log.Printf("✓ Wrote %d products to '%s'", len(products), store.ProductsKey)

	if err := writeBlob(ctx, client, store.OrdersKey, orders); err != nil {
		log.Fatalf("Failed to write order log: %v", err)
	}
	log.Printf("✓ Wrote %d orders to '%s'", len(orders), store.OrdersKey)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Data Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Products: %d\n", len(products))
	fmt.Printf("Orders:   %d (spread over the last 4 months)\n", len(orders))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the CMS server: go run main.go")
	fmt.Println("2. Open GET /api/v1/admin/dashboard/overview")
	fmt.Println("3. Explore /api/v1/admin/analytics/sales and /customers")
	fmt.Println()
}

// writeBlob marshals v and stores it as a single JSON blob under key
func writeBlob(ctx context.Context, client *redis.Client, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, raw, 0).Err()
}

// demoCatalog builds a small jewelry catalog with a mix of stock levels
func demoCatalog() []models.Product {
	return []models.Product{
		newProduct("aurora-ring", "Aurora Ring", "Rings", 249.99, 12),
		newProduct("luna-ring", "Luna Ring", "Rings", 189.50, 3),
		newProduct("celeste-necklace", "Celeste Necklace", "Necklaces", 329.00, 8),
		newProduct("orion-necklace", "Orion Necklace", "Necklaces", 459.99, 0),
		newProduct("stella-earrings", "Stella Earrings", "Earrings", 149.00, 20),
		newProduct("nova-earrings", "Nova Earrings", "Earrings", 219.75, 5),
		newProduct("atlas-bracelet", "Atlas Bracelet", "Bracelets", 279.25, 15),
		newProduct("vega-bracelet", "Vega Bracelet", "Bracelets", 199.99, 2),
	}
}

func newProduct(slug, name, category string, price float64, inventory int) models.Product {
	return models.Product{
		ID:          uuid.NewString(),
		Slug:        slug,
		Name:        name,
		Description: fmt.Sprintf("Handcrafted %s from the Volubiks atelier.", name),
		Category:    category,
		Price:       price,
		Currency:    "USD",
		Images:      []string{fmt.Sprintf("/images/%s.jpg", slug)},
		Inventory:   inventory,
	}
}

// demoOrders generates a randomized order log spread over the last 4 months,
// covering every status so the dashboard and analytics have data to chew on
func demoOrders(products []models.Product) []models.Order {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	customers := []models.ShippingInfo{
		{FullName: "Amara Okafor", Email: "amara.okafor@example.com", Phone: "+2348012345678", Address: "14 Marina Road", City: "Lagos", Country: "Nigeria"},
		{FullName: "Jonas Weber", Email: "jonas.weber@example.com", Phone: "+4915123456789", Address: "Hauptstrasse 9", City: "Berlin", Country: "Germany"},
		{FullName: "Priya Nair", Email: "priya.nair@example.com", Phone: "+919812345678", Address: "22 MG Road", City: "Bengaluru", Country: "India"},
		{FullName: "Sofia Marques", Email: "sofia.marques@example.com", Phone: "+351912345678", Address: "Rua das Flores 3", City: "Porto", Country: "Portugal"},
		{FullName: "Daniel Osei", Email: "daniel.osei@example.com", Phone: "+233241234567", Address: "7 Liberation Ave", City: "Accra", Country: "Ghana"},
	}

	statuses := []string{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}
	methods := []string{"card", "bank_transfer", "paypal"}

	now := time.Now().UTC()
	orders := make([]models.Order, 0, 40)

	for i := 0; i < 40; i++ {
		placed := now.Add(-time.Duration(rng.Intn(120*24)) * time.Hour)

		itemCount := 1 + rng.Intn(3)
		items := make([]models.OrderItem, 0, itemCount)
		subtotal := 0.0
		for j := 0; j < itemCount; j++ {
			p := products[rng.Intn(len(products))]
			qty := 1 + rng.Intn(3)
			items = append(items, models.OrderItem{
				ID:       p.ID,
				Name:     p.Name,
				Image:    p.Images[0],
				Price:    p.Price,
				Quantity: qty,
			})
			subtotal += p.Price * float64(qty)
		}
		vat := subtotal * 0.075

		orders = append(orders, models.Order{
			ID:            fmt.Sprintf("ORD-%s", uuid.NewString()[:8]),
			Date:          placed.Format(time.RFC3339),
			CreatedAt:     placed.Format(time.RFC3339),
			UpdatedAt:     placed.Format(time.RFC3339),
			Shipping:      customers[rng.Intn(len(customers))],
			Items:         items,
			Subtotal:      subtotal,
			VAT:           vat,
			Total:         subtotal + vat,
			Status:        statuses[i%len(statuses)],
			PaymentMethod: methods[rng.Intn(len(methods))],
			PaymentStatus: "paid",
		})
	}

	return orders
}
