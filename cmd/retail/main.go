package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/georgemunganga/retail/internal/config"
	"github.com/georgemunganga/retail/internal/console"
	"github.com/georgemunganga/retail/internal/database"
	"github.com/georgemunganga/retail/internal/modules/auth"
	"github.com/georgemunganga/retail/internal/modules/inventory"
	"github.com/georgemunganga/retail/internal/modules/order"
	"github.com/georgemunganga/retail/internal/modules/report"
	"github.com/georgemunganga/retail/internal/modules/supply"
	"github.com/georgemunganga/retail/internal/modules/user"
	"github.com/georgemunganga/retail/internal/workflow"
	"github.com/google/uuid"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, config.ErrUsage) {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := log.New(os.Stderr, fmt.Sprintf("[retail %s] ", uuid.NewString()), log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Connecting to database %s on port %d...", cfg.DBName, cfg.DBPort)
	db, err := database.Open(ctx, cfg)
	if err != nil {
		fmt.Println()
		logger.Printf("connect: %v", err)
		return 1
	}
	fmt.Println("Done")
	defer func() {
		fmt.Print("Disconnecting from database...")
		_ = db.Close()
		fmt.Println("Done\n\nBye !")
	}()

	hasher, err := auth.NewHasher(cfg.PasswordScheme)
	if err != nil {
		logger.Print(err)
		return 1
	}

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo, hasher, auth.CanEditUser)
	authService := auth.NewService(userRepo, hasher)

	// ── Stores & Inventory ──────────────────────────────────
	inventoryService := inventory.NewService(
		inventory.NewStorePostgresRepository(db),
		inventory.NewProductPostgresRepository(db),
		inventory.NewWarehousePostgresRepository(db),
		cfg.StoreRadius,
	)

	// ── Orders, Supply & Reports ────────────────────────────
	orderService := order.NewService(order.NewPostgresRepository(db), cfg.StoreRadius)
	supplyService := supply.NewService(supply.NewPostgresRepository(db))
	reportService := report.NewService(report.NewPostgresRepository(db))

	// ── Session ─────────────────────────────────────────────
	term := console.NewTerminal(os.Stdin, os.Stdout, console.WithClearScreen(cfg.ClearScreen))
	engine := workflow.New(term, workflow.Services{
		Users:     userService,
		Auth:      authService,
		Inventory: inventoryService,
		Orders:    orderService,
		Supply:    supplyService,
		Reports:   reportService,
	}, logger)

	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("session: %v", err)
		return 1
	}
	return 0
}
