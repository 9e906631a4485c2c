package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ssakpotato/internal/dto"
)

// GenerateRecipe asks the recipe service for a dish built around the given
// ingredients. The response envelope is returned as is: on failure it
// carries fallback suggestions rather than an error.
func (c *Client) GenerateRecipe(ctx context.Context, req *dto.GenerateRecipeRequest) (*dto.GenerateRecipeResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.aiBaseURL+"/api/generate-recipe", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("recipe request failed: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := c.decodeResponse(httpResp)
	if err != nil {
		return nil, err
	}

	var resp dto.GenerateRecipeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode recipe response: %w", err)
	}
	return &resp, nil
}
