package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jkelleher/presspool/internal/models"
	"github.com/jkelleher/presspool/pkg/database"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	db := &database.DB{DB: gormDB}
	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

// fixture is a seeded two-player nassau round: A beats B on every front nine
// hole, the back nine is all ties. At a $5 bet A takes the front and the
// overall, so the expected settlement is B pays A $10.
type fixture struct {
	round   models.Round
	users   []models.User
	players []models.RoundPlayer
	game    models.Game
}

func seedNassauRound(t *testing.T, db *database.DB) *fixture {
	t.Helper()

	course := models.Course{Name: "Test Links"}
	require.NoError(t, db.Create(&course).Error)
	for n := 1; n <= 18; n++ {
		require.NoError(t, db.Create(&models.Hole{
			CourseID:    course.ID,
			Number:      n,
			Par:         4,
			StrokeIndex: n,
		}).Error)
	}

	f := &fixture{}
	for _, name := range []string{"Annie", "Bryce"} {
		u := models.User{DisplayName: name, Email: fmt.Sprintf("%s@test.dev", name)}
		require.NoError(t, db.Create(&u).Error)
		f.users = append(f.users, u)
	}

	f.round = models.Round{
		CourseID:  course.ID,
		Date:      time.Now().UTC(),
		Status:    models.RoundInProgress,
		CreatedBy: f.users[0].ID,
	}
	require.NoError(t, db.Create(&f.round).Error)

	for i, u := range f.users {
		rp := models.RoundPlayer{
			RoundID:     f.round.ID,
			UserID:      u.ID,
			DisplayName: u.DisplayName,
			Position:    i + 1,
		}
		require.NoError(t, db.Create(&rp).Error)
		f.players = append(f.players, rp)
	}

	f.game = models.Game{RoundID: f.round.ID, Type: models.GameNassau, BetCents: 500}
	require.NoError(t, db.Create(&f.game).Error)
	for slot, rp := range f.players {
		require.NoError(t, db.Create(&models.GamePlayer{
			GameID:   f.game.ID,
			PlayerID: rp.ID,
			Slot:     slot,
		}).Error)
	}

	for n := 1; n <= 18; n++ {
		strokesA, strokesB := 4, 4
		if n <= 9 {
			strokesB = 5
		}
		recordScore(t, db, f.round, f.players[0], n, strokesA)
		recordScore(t, db, f.round, f.players[1], n, strokesB)
	}
	return f
}

func recordScore(t *testing.T, db *database.DB, round models.Round, player models.RoundPlayer, hole, strokes int) {
	t.Helper()
	s := strokes
	require.NoError(t, db.Create(&models.Score{
		RoundID:    round.ID,
		PlayerID:   player.ID,
		HoleNumber: hole,
		Strokes:    &s,
	}).Error)
}
