package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-bucketlist-api/config"
	"github.com/oksasatya/go-bucketlist-api/internal/application"
	pginfra "github.com/oksasatya/go-bucketlist-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
)

const (
	demoUser     = "robley"
	demoEmail    = "robley@gori.com"
	demoPassword = "test_password"
	demoList     = "Go to Dar"
	demoItem     = "I need to go soon"
)

// Seeds a demo user with one bucket list. Running it twice is harmless.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	store := pginfra.NewStore(pool)

	auth := application.NewAuthService(store, nil, logger, nil, cfg.AppName)
	lists := application.NewBucketListService(store, logger)
	items := application.NewItemService(store, logger)

	u, err := auth.Register(ctx, application.RegisterInput{Username: demoUser, Email: demoEmail, Password: demoPassword})
	switch {
	case errors.Is(err, application.ErrConflict):
		u, err = store.Users().GetByUsername(ctx, demoUser)
		if err != nil {
			log.Fatalf("failed to load existing user: %v", err)
		}
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d username=%s password=%s\n", u.ID, demoUser, demoPassword)

	bl, err := lists.Create(ctx, u.ID, demoList)
	if errors.Is(err, application.ErrDuplicateBucketList) {
		fmt.Printf("bucketlist %q already exists\n", demoList)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed bucketlist: %v", err)
	}
	if _, err := items.Create(ctx, u.ID, bl.ID, demoItem); err != nil {
		log.Fatalf("failed to seed item: %v", err)
	}
	fmt.Printf("seeded bucketlist: id=%d name=%q\n", bl.ID, bl.Name)
}
