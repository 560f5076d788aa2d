package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/yuigaoka/hasudeck/hasudeck"
	"github.com/yuigaoka/hasudeck/hasudeck/database"
	"github.com/yuigaoka/hasudeck/hasudeck/database/repositories"
	"github.com/yuigaoka/hasudeck/hasudeck/logger"
	"github.com/yuigaoka/hasudeck/hasudeck/search"
	"github.com/yuigaoka/hasudeck/internal/domain/catalog"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting HasuDeck",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	checkOnly := flag.Bool("check", false, "verify database connectivity and schema, then exit")
	query := flag.String("search", "", "run a card search against the catalog and print the results")
	flag.Parse()

	cfg, err := hasudeck.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	dbConfig := database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	}

	db, err := database.New(ctx, dbConfig)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	slog.Info("Initializing database schema...")
	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	if *checkOnly {
		if err := db.Ping(ctx); err != nil {
			slog.Error("Database check failed", slog.Any("error", err))
			os.Exit(-1)
		}
		logger.LogSystem("Database check passed")
		return
	}

	cardRepo := repositories.NewCardRepository(db.BunDB())
	eventRepo := repositories.NewEventRepository(db.BunDB())
	deckRepo := repositories.NewDeckRepository(db.BunDB())

	catalogService := catalog.NewService(repositories.NewCatalogRepository(cardRepo, eventRepo))

	if *query != "" {
		runSearch(ctx, catalogService, *query)
		return
	}

	count, err := cardRepo.GetCardCount(ctx)
	if err != nil {
		slog.Error("Failed to count cards", slog.Any("error", err))
		os.Exit(-1)
	}
	decks, err := deckRepo.GetAll(ctx)
	if err != nil {
		slog.Error("Failed to load decks", slog.Any("error", err))
		os.Exit(-1)
	}
	logger.LogSystem("Catalog ready",
		slog.Int64("cards", count),
		slog.Int("decks", len(decks)))
}

func runSearch(ctx context.Context, svc catalog.Service, query string) {
	result, err := svc.SearchCards(ctx,
		&search.CardFilter{Keyword: query},
		catalog.SortSpec{By: search.SortByReleaseDate, Order: search.OrderDesc},
	)
	if err != nil {
		slog.Error("Search failed", slog.Any("error", err))
		os.Exit(-1)
	}

	for _, card := range result.Cards {
		fmt.Printf("%s\t%s\t%s\t%s\n", card.ID, card.Rarity, card.Name, card.ReleaseDate)
	}
	if len(result.Cards) == 0 {
		fmt.Println("no cards matched")
		for _, card := range result.Suggestions {
			fmt.Printf("did you mean: %s\n", card.Name)
		}
	}
}
