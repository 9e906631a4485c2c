package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ssakpotato/internal/dto"
	"ssakpotato/internal/fridge"

	"go.uber.org/zap"
)

const itemsEndpoint = "/api/refrigerator/items"

func (c *Client) ListItems(ctx context.Context) ([]dto.ItemResponse, error) {
	return c.listItems(ctx, itemsEndpoint)
}

func (c *Client) GetItem(ctx context.Context, itemID string) (*dto.ItemResponse, error) {
	raw, err := c.request(ctx, http.MethodGet, itemsEndpoint+"/"+itemID, nil)
	if err != nil {
		return nil, err
	}

	var item dto.ItemResponse
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &item, nil
}

func (c *Client) AddItem(ctx context.Context, req dto.ItemRequest) (*dto.ItemResponse, error) {
	raw, err := c.request(ctx, http.MethodPost, itemsEndpoint, req)
	if err != nil {
		return nil, err
	}

	var item dto.ItemResponse
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, itemID string, req dto.ItemRequest) (*dto.ItemResponse, error) {
	raw, err := c.request(ctx, http.MethodPut, itemsEndpoint+"/"+itemID, req)
	if err != nil {
		return nil, err
	}

	var item dto.ItemResponse
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	_, err := c.request(ctx, http.MethodDelete, itemsEndpoint+"/"+itemID, nil)
	return err
}

// ExpiringItems lists items whose expiration date is within the server's
// warning window.
func (c *Client) ExpiringItems(ctx context.Context) ([]dto.ItemResponse, error) {
	return c.listItems(ctx, itemsEndpoint+"/expiring")
}

func (c *Client) ItemsByCategory(ctx context.Context, category fridge.Category) ([]dto.ItemResponse, error) {
	return c.listItems(ctx, itemsEndpoint+"/category/"+category.Code())
}

func (c *Client) CountItems(ctx context.Context) (int, error) {
	raw, err := c.request(ctx, http.MethodGet, itemsEndpoint+"/count", nil)
	if err != nil {
		return 0, err
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return 0, fmt.Errorf("failed to decode count: %w", err)
	}
	return resp.Count, nil
}

func (c *Client) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	raw, err := c.request(ctx, http.MethodGet, "/api/refrigerator/dashboard", nil)
	if err != nil {
		return nil, err
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard: %w", err)
	}
	return &resp, nil
}

// AddBulk commits confirmed drafts one by one, in order. The first failure
// stops the run: already-committed drafts stay committed and the rest are
// never sent. The item list is refetched afterwards either way, so the
// caller always sees the server's actual state alongside the error.
func (c *Client) AddBulk(ctx context.Context, drafts []fridge.Draft) ([]dto.ItemResponse, error) {
	var commitErr error

	for i, draft := range drafts {
		if _, err := c.AddItem(ctx, DraftToRequest(draft)); err != nil {
			c.logger.Warn("Bulk commit stopped",
				zap.Int("committed", i),
				zap.Int("total", len(drafts)),
				zap.Error(err),
			)
			commitErr = fmt.Errorf("failed to add %q: %w", draft.Name, err)
			break
		}
	}

	items, listErr := c.ListItems(ctx)
	if commitErr != nil {
		return items, commitErr
	}
	return items, listErr
}

func (c *Client) listItems(ctx context.Context, endpoint string) ([]dto.ItemResponse, error) {
	raw, err := c.request(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var items []dto.ItemResponse
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

// DraftToRequest converts an edited draft into the wire shape the server
// expects, mapping the Korean category and storage names to their codes.
func DraftToRequest(d fridge.Draft) dto.ItemRequest {
	return dto.ItemRequest{
		IngredientName: d.Name,
		Quantity:       d.Amount,
		StorageMethod:  d.Storage.Code(),
		Category:       d.Category.Code(),
		PurchaseDate:   d.PurchaseDate,
		ExpirationDate: d.ExpireDate,
		Memo:           d.Memo,
	}
}
