package main

import (
	"context"
	"log"
	"time"

	"ssakpotato/internal/fridge"
	"ssakpotato/internal/models"
	"ssakpotato/internal/repository"
	"ssakpotato/pkg/auth"
	"ssakpotato/pkg/config"
	"ssakpotato/pkg/logger"
	"ssakpotato/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@ssakpotato.com"
	demoPassword = "demo1234"
)

// seedItem is one demo fridge entry; expiresIn counts days from now.
type seedItem struct {
	name      string
	quantity  string
	category  fridge.Category
	storage   fridge.StorageMethod
	expiresIn int
}

var demoItems = []seedItem{
	{"우유", "1L", fridge.CategoryDairy, fridge.StorageFridge, 2},
	{"계란", "10개", fridge.CategoryDairy, fridge.StorageFridge, 10},
	{"두부", "1모", fridge.CategoryProcessed, fridge.StorageFridge, 1},
	{"양파", "3개", fridge.CategoryVegetable, fridge.StorageRoomTemp, 14},
	{"삼겹살", "600g", fridge.CategoryMeat, fridge.StorageFreezer, -1},
}

// seed creates a demo account with a small fridge so the client and the
// dashboard have something to show on a fresh database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	itemRepo := repository.NewItemRepository(db, appLogger)

	appLogger.Info("Seeding demo data")

	user, err := userRepo.GetByEmail(ctx, demoEmail)
	if err != nil {
		user, err = createDemoUser(ctx, userRepo)
		if err != nil {
			appLogger.Fatal("Failed to create demo user", zap.Error(err))
		}
		appLogger.Info("Demo user created", zap.String("email", demoEmail))
	} else {
		appLogger.Info("Demo user already exists", zap.String("email", demoEmail))
	}

	existing, err := itemRepo.CountByUser(ctx, user.ID)
	if err != nil {
		appLogger.Fatal("Failed to count items", zap.Error(err))
	}
	if existing > 0 {
		appLogger.Info("Demo fridge already seeded", zap.Int("items", existing))
		return
	}

	now := time.Now()
	for _, s := range demoItems {
		purchase := now.AddDate(0, 0, -1)
		expiration := now.AddDate(0, 0, s.expiresIn)

		item := &models.FridgeItem{
			ID:             uuid.New(),
			UserID:         user.ID,
			IngredientName: s.name,
			Quantity:       s.quantity,
			StorageMethod:  s.storage.Code(),
			Category:       string(s.category),
			PurchaseDate:   &purchase,
			ExpirationDate: &expiration,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			appLogger.Fatal("Failed to seed item", zap.String("name", s.name), zap.Error(err))
		}
		appLogger.Info("Seeded item",
			zap.String("name", s.name),
			zap.String("category", string(s.category)),
		)
	}

	appLogger.Info("Demo data seeded", zap.Int("items", len(demoItems)))
}

func createDemoUser(ctx context.Context, userRepo *repository.UserRepository) (*models.User, error) {
	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Username:  "demo",
		Email:     demoEmail,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
