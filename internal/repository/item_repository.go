package repository

import (
	"context"
	"time"

	"ssakpotato/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var itemColumns = []string{
	"id", "user_id", "ingredient_name", "quantity", "storage_method",
	"category", "purchase_date", "expiration_date", "memo", "created_at", "updated_at",
}

type ItemRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewItemRepository(db *pgxpool.Pool, logger *zap.Logger) *ItemRepository {
	return &ItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *models.FridgeItem) error {
	query := squirrel.Insert("refrigerator_items").
		Columns(itemColumns...).
		Values(
			item.ID, item.UserID, item.IngredientName, item.Quantity, item.StorageMethod,
			item.Category, item.PurchaseDate, item.ExpirationDate, item.Memo, item.CreatedAt, item.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ItemRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.FridgeItem, error) {
	query := squirrel.Select(itemColumns...).
		From("refrigerator_items").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, sql, args...)
	return scanItem(row)
}

// ListByUser returns all items ordered by expiration date, soonest first.
func (r *ItemRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FridgeItem, error) {
	query := squirrel.Select(itemColumns...).
		From("refrigerator_items").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("expiration_date ASC NULLS LAST", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

func (r *ItemRepository) ListByCategory(ctx context.Context, userID uuid.UUID, category string) ([]*models.FridgeItem, error) {
	query := squirrel.Select(itemColumns...).
		From("refrigerator_items").
		Where(squirrel.Eq{"user_id": userID, "category": category}).
		OrderBy("expiration_date ASC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

// ListExpiring returns items whose expiration date falls inside [from, to].
func (r *ItemRepository) ListExpiring(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.FridgeItem, error) {
	query := squirrel.Select(itemColumns...).
		From("refrigerator_items").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"expiration_date": from}).
		Where(squirrel.LtOrEq{"expiration_date": to}).
		OrderBy("expiration_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

func (r *ItemRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("refrigerator_items").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *models.FridgeItem) error {
	query := squirrel.Update("refrigerator_items").
		Set("ingredient_name", item.IngredientName).
		Set("quantity", item.Quantity).
		Set("storage_method", item.StorageMethod).
		Set("category", item.Category).
		Set("purchase_date", item.PurchaseDate).
		Set("expiration_date", item.ExpirationDate).
		Set("memo", item.Memo).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID, "user_id": item.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("refrigerator_items").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ItemRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.FridgeItem, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.FridgeItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*models.FridgeItem, error) {
	var item models.FridgeItem
	err := row.Scan(
		&item.ID, &item.UserID, &item.IngredientName, &item.Quantity, &item.StorageMethod,
		&item.Category, &item.PurchaseDate, &item.ExpirationDate, &item.Memo, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
