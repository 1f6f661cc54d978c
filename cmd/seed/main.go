// Command seed fills a development database with accounts and catalog
// listings so every reservation flow can be exercised by hand.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"travelhub/config"
	"travelhub/database"
	"travelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedPassword = "$Password1234"
	providers    = 3
	customers    = 5
)

func main() {
	config.LoadConfig()
	if config.IsProduction() {
		log.Fatal("refusing to seed a production database")
	}

	// Initialize the database connection.
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	now := time.Now().UTC()

	users := []any{seedUser("admin-1", "Admin", "admin@example.com", models.RoleAdmin, string(hashed), now)}
	for i := 1; i <= providers; i++ {
		u := seedUser(fmt.Sprintf("prov-%d", i), fmt.Sprintf("Provider %d", i),
			fmt.Sprintf("provider_%d@example.com", i), models.RoleProvider, string(hashed), now)
		u.BusinessName = fmt.Sprintf("Northern Trails %d", i)
		users = append(users, u)
	}
	for i := 1; i <= customers; i++ {
		users = append(users, seedUser(fmt.Sprintf("cust-%d", i), fmt.Sprintf("Customer %d", i),
			fmt.Sprintf("customer_%d@example.com", i), models.RoleCustomer, string(hashed), now))
	}

	var services, tours, vehicles, restaurants []any
	for i := 1; i <= providers; i++ {
		owner := fmt.Sprintf("prov-%d", i)

		services = append(services,
			models.Service{
				ID: fmt.Sprintf("svc-hotel-%d", i), ProviderID: owner, Name: fmt.Sprintf("Pearl Continental %d", i),
				Type: models.ServiceHotel, Price: 12000, City: "Lahore", Status: models.ServiceStatusActive,
				RoomTypes: []models.RoomType{
					{Name: "Standard", Sleeps: 2, Beds: "1 Queen", PricePerNight: 12000, TotalRooms: 20, AvailableRooms: 20},
					{Name: "Deluxe", Sleeps: 3, Beds: "1 King", PricePerNight: 18000, TotalRooms: 8, AvailableRooms: 8},
				},
				CreatedAt: now, UpdatedAt: now,
			},
			models.Service{
				ID: fmt.Sprintf("svc-tour-%d", i), ProviderID: owner, Name: fmt.Sprintf("Hunza Valley Trip %d", i),
				Type: models.ServiceTour, Price: 25000, City: "Gilgit", Status: models.ServiceStatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
			models.Service{
				ID: fmt.Sprintf("svc-event-%d", i), ProviderID: owner, Name: fmt.Sprintf("Banquet Hall %d", i),
				Type: models.ServiceEvent, Price: 150000, City: "Karachi", Status: models.ServiceStatusActive,
				EventType: "wedding", CreatedAt: now, UpdatedAt: now,
			},
		)
		tours = append(tours, models.Tour{
			ID: fmt.Sprintf("tour-%d", i), OwnerID: owner, Name: fmt.Sprintf("Skardu Explorer %d", i),
			Category: "adventure", Cities: "Skardu, Shigar", Price: 30000,
		})
		vehicles = append(vehicles, models.Vehicle{
			ID: fmt.Sprintf("veh-%d", i), OwnerID: owner, Brand: "Toyota", Model: "Corolla",
			Type: "sedan", VehicleNumber: fmt.Sprintf("LEA-%03d", i), Location: "Islamabad", Price: 8000,
		})
		restaurants = append(restaurants, models.Restaurant{
			ID: fmt.Sprintf("rest-%d", i), OwnerID: owner, Name: fmt.Sprintf("Monal %d", i),
			Address: "Pir Sohawa Road", TableCount: 25, PricePerGuest: 3500, Status: models.RestaurantStatusApproved,
		})
	}

	for _, batch := range []struct {
		name string
		docs []any
	}{
		{"users", users},
		{"services", services},
		{"tours", tours},
		{"vehicles", vehicles},
		{"restaurants", restaurants},
	} {
		if err := replaceAll(ctx, db.Collection(batch.name), batch.docs); err != nil {
			log.Fatalf("Failed to seed %s: %v", batch.name, err)
		}
		fmt.Printf("Seeded %d %s\n", len(batch.docs), batch.name)
	}
	fmt.Printf("All accounts use the password %q\n", seedPassword)
}

func seedUser(id, name, email string, role models.Role, hash string, now time.Time) models.User {
	return models.User{
		ID: id, Name: name, Email: email, Role: role, PasswordHash: hash,
		Phone: "+923000000000", IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
}

// replaceAll clears coll and inserts docs.
func replaceAll(ctx context.Context, coll *mongo.Collection, docs []any) error {
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", coll.Name(), err)
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}
