package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ssakpotato/internal/dto"
	"ssakpotato/internal/fridge"
	"ssakpotato/internal/models"
	"ssakpotato/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidDate  = errors.New("invalid date format, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// expiringWindowDays is how far ahead the dashboard looks for items that
// need to be used soon.
const expiringWindowDays = 3

type FridgeService struct {
	itemRepo *repository.ItemRepository
	logger   *zap.Logger
}

func NewFridgeService(itemRepo *repository.ItemRepository, logger *zap.Logger) *FridgeService {
	return &FridgeService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (s *FridgeService) Create(ctx context.Context, userID uuid.UUID, req *dto.ItemRequest) (*dto.ItemResponse, error) {
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &models.FridgeItem{
		ID:             uuid.New(),
		UserID:         userID,
		IngredientName: req.IngredientName,
		Quantity:       req.Quantity,
		StorageMethod:  fridge.ParseStorageMethod(req.StorageMethod).Code(),
		Category:       string(fridge.ParseCategory(req.Category)),
		PurchaseDate:   purchaseDate,
		ExpirationDate: expirationDate,
		Memo:           req.Memo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info("Fridge item created",
		zap.String("item_id", item.ID.String()),
		zap.String("ingredient", item.IngredientName),
	)

	return s.toResponse(item, now), nil
}

func (s *FridgeService) Get(ctx context.Context, userID, itemID uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return s.toResponse(item, time.Now()), nil
}

func (s *FridgeService) List(ctx context.Context, userID uuid.UUID) ([]*dto.ItemResponse, error) {
	items, err := s.itemRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

// ListByCategory accepts either the category code (MEAT, DAIRY, ...) or its
// Korean display name.
func (s *FridgeService) ListByCategory(ctx context.Context, userID uuid.UUID, category string) ([]*dto.ItemResponse, error) {
	items, err := s.itemRepo.ListByCategory(ctx, userID, string(fridge.ParseCategory(category)))
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

// ListExpiring returns items whose expiration date falls between today and
// three days from now.
func (s *FridgeService) ListExpiring(ctx context.Context, userID uuid.UUID) ([]*dto.ItemResponse, error) {
	from := midnightToday()
	to := from.AddDate(0, 0, expiringWindowDays)

	items, err := s.itemRepo.ListExpiring(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *FridgeService) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.itemRepo.CountByUser(ctx, userID)
}

func (s *FridgeService) Update(ctx context.Context, userID, itemID uuid.UUID, req *dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	item.IngredientName = req.IngredientName
	item.Quantity = req.Quantity
	item.StorageMethod = fridge.ParseStorageMethod(req.StorageMethod).Code()
	item.Category = string(fridge.ParseCategory(req.Category))
	item.PurchaseDate = purchaseDate
	item.ExpirationDate = expirationDate
	item.Memo = req.Memo
	item.UpdatedAt = time.Now()

	if err := s.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return s.toResponse(item, item.UpdatedAt), nil
}

func (s *FridgeService) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	err := s.itemRepo.Delete(ctx, itemID, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrItemNotFound
	}
	return err
}

// Dashboard aggregates status counts over the whole fridge plus the list of
// items expiring within the next three days.
func (s *FridgeService) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	items, err := s.itemRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := &dto.DashboardResponse{
		TotalItems:    len(items),
		ExpiringItems: []dto.ExpiringItemResponse{},
	}

	for _, item := range items {
		switch fridge.Status(item.ExpirationDate, now) {
		case fridge.StatusExpired:
			resp.ExpiredCount++
		case fridge.StatusWarning:
			resp.WarningCount++
			resp.ExpiringItems = append(resp.ExpiringItems, dto.ExpiringItemResponse{
				ItemID:         item.ID.String(),
				IngredientName: item.IngredientName,
				ExpirationDate: item.ExpirationDate.Format(dateLayout),
			})
		default:
			resp.FreshCount++
		}
	}

	return resp, nil
}

func (s *FridgeService) toResponses(items []*models.FridgeItem) []*dto.ItemResponse {
	now := time.Now()
	responses := make([]*dto.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, s.toResponse(item, now))
	}
	return responses
}

func (s *FridgeService) toResponse(item *models.FridgeItem, now time.Time) *dto.ItemResponse {
	resp := &dto.ItemResponse{
		ItemID:         item.ID.String(),
		IngredientName: item.IngredientName,
		Quantity:       item.Quantity,
		StorageMethod:  item.StorageMethod,
		Category:       fridge.Category(item.Category).Code(),
		Memo:           item.Memo,
		Status:         string(fridge.Status(item.ExpirationDate, now)),
	}
	if item.PurchaseDate != nil {
		resp.PurchaseDate = item.PurchaseDate.Format(dateLayout)
	}
	if item.ExpirationDate != nil {
		resp.ExpirationDate = item.ExpirationDate.Format(dateLayout)
	}
	return resp
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

func midnightToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
