package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/voyago-backend/internal/config"
	"github.com/voyago/voyago-backend/internal/database"
	"github.com/voyago/voyago-backend/internal/repository/postgres"
)

// Users are provisioned with this tool, not through the API.
func main() {
	var (
		email    = flag.String("email", "", "User email")
		password = flag.String("password", "", "User password")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatal("Failed to generate password hash:", err)
	}

	users := postgres.NewUserRepository(db.DB)
	user, err := users.Create(context.Background(), *email, string(hash))
	if err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("Created user %d (%s)\n", user.ID, user.Email)
}
