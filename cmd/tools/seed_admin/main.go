package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/auth"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/db"
)

func main() {
	email := flag.String("email", "", "administrator email")
	flag.Parse()

	if *email == "" {
		fmt.Println("Usage: seed_admin -email admin@example.org (password from ADMIN_PASSWORD)")
		os.Exit(1)
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		fmt.Println("Missing ADMIN_PASSWORD environment variable")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	id, err := auth.NewService(pool).CreateAdmin(ctx, *email, password)
	if err != nil {
		log.Fatalf("Creating admin: %v", err)
	}
	fmt.Printf("Admin %s ready (id %s)\n", *email, id)
}
