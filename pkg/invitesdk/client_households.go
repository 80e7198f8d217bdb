package invitesdk

import (
	"context"
	"net/http"
)

// CreateHousehold creates a household owned by the caller.
func (c *SDKClient) CreateHousehold(ctx context.Context, name string) (*Household, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/households", HouseholdCreateRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var out Household
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListHouseholds returns the households the caller belongs to.
func (c *SDKClient) ListHouseholds(ctx context.Context) (*HouseholdListResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/households", nil)
	if err != nil {
		return nil, err
	}

	var out HouseholdListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
