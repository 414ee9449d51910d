package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jkelleher/presspool/internal/models"
	"github.com/jkelleher/presspool/pkg/config"
	"github.com/jkelleher/presspool/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	command := os.Args[1]

	switch command {
	case "up":
		if err := runMigrations(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := seedData(db); err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func runMigrations(db *database.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Hole{},
		&models.Round{},
		&models.RoundPlayer{},
		&models.Score{},
		&models.Game{},
		&models.GamePlayer{},
		&models.Press{},
		&models.Settlement{},
	); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_rounds_status ON rounds(status)",
		"CREATE INDEX IF NOT EXISTS idx_settlements_round ON settlements(round_id)",
		"CREATE INDEX IF NOT EXISTS idx_presses_state ON presses(game_id, state)",
	}
	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func dropTables(db *database.DB) error {
	// Drop tables in reverse order to handle foreign key constraints
	tables := []string{
		"settlements",
		"presses",
		"game_players",
		"games",
		"scores",
		"round_players",
		"rounds",
		"holes",
		"courses",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

func seedData(db *database.DB) error {
	course := models.Course{
		Name:  "Pebble Creek Municipal",
		City:  "Austin",
		State: "TX",
	}
	if err := db.Create(&course).Error; err != nil {
		return fmt.Errorf("failed to seed course: %w", err)
	}

	pars := []int{4, 5, 3, 4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 5, 3, 4, 4}
	strokeIndexes := []int{7, 3, 17, 1, 11, 15, 5, 9, 13, 8, 18, 2, 10, 4, 6, 16, 12, 14}
	for i := 0; i < 18; i++ {
		hole := models.Hole{
			CourseID:    course.ID,
			Number:      i + 1,
			Par:         pars[i],
			StrokeIndex: strokeIndexes[i],
		}
		if err := db.Create(&hole).Error; err != nil {
			return fmt.Errorf("failed to seed hole %d: %w", i+1, err)
		}
	}

	names := []string{"Alice Romero", "Ben Okafor", "Carla Nguyen", "Dave Petrov"}
	handicaps := []int{4, 9, 13, 18}
	users := make([]models.User, len(names))
	for i, name := range names {
		users[i] = models.User{
			DisplayName: name,
			Email:       fmt.Sprintf("player%d@presspool.dev", i+1),
		}
		if err := db.Create(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}

	round := models.Round{
		CourseID:  course.ID,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Status:    models.RoundInProgress,
		CreatedBy: users[0].ID,
	}
	if err := db.Create(&round).Error; err != nil {
		return fmt.Errorf("failed to seed round: %w", err)
	}

	players := make([]models.RoundPlayer, len(users))
	for i, u := range users {
		hcp := handicaps[i]
		players[i] = models.RoundPlayer{
			RoundID:        round.ID,
			UserID:         u.ID,
			DisplayName:    u.DisplayName,
			CourseHandicap: &hcp,
			Position:       i + 1,
		}
		if err := db.Create(&players[i]).Error; err != nil {
			return fmt.Errorf("failed to seed round player: %w", err)
		}
	}

	games := []struct {
		gameType models.GameType
		betCents int64
		members  []uuid.UUID
	}{
		{models.GameNassau, 500, []uuid.UUID{players[0].ID, players[1].ID}},
		{models.GameSkins, 200, []uuid.UUID{players[0].ID, players[1].ID, players[2].ID, players[3].ID}},
		{models.GameWolf, 100, []uuid.UUID{players[0].ID, players[1].ID, players[2].ID, players[3].ID}},
	}
	for _, g := range games {
		game := models.Game{
			RoundID:  round.ID,
			Type:     g.gameType,
			BetCents: g.betCents,
		}
		if err := db.Create(&game).Error; err != nil {
			return fmt.Errorf("failed to seed %s game: %w", g.gameType, err)
		}
		for slot, playerID := range g.members {
			gp := models.GamePlayer{GameID: game.ID, PlayerID: playerID, Slot: slot}
			if err := db.Create(&gp).Error; err != nil {
				return fmt.Errorf("failed to seed game player: %w", err)
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"course": course.Name,
		"round":  round.ID,
	}).Info("Seeded demo round")
	return nil
}
