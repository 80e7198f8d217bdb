package invites_test

import (
	"net/http"
	"testing"

	"github.com/bosshelper/backend/pkg/invitesdk"
	"github.com/stretchr/testify/require"
)

// TestCreateAndListHouseholds tests the complete household flow:
// 1. Create a household as a fresh user
// 2. Verify the creator is the boss
// 3. List households and find it there
func TestCreateAndListHouseholds(t *testing.T) {
	baseURL, cleanup := setupInviteContainer(t)
	defer cleanup()

	client := clientFor(t, baseURL, "user-boss-1", "Alex")

	household := createHousehold(t, client, "Smith Family")

	t.Logf("Household created: %s (ID: %s)", household.Name, household.ID)

	list, err := client.ListHouseholds(t.Context())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Len(t, list.Households, 1)
	require.Equal(t, household.ID, list.Households[0].ID)
	require.Equal(t, "boss", list.Households[0].Role)

	t.Logf("Household listing returned the new household with role boss")
}

// TestHouseholdListIsScopedToCaller verifies a user only sees their own
// households.
func TestHouseholdListIsScopedToCaller(t *testing.T) {
	baseURL, cleanup := setupInviteContainer(t)
	defer cleanup()

	bossClient := clientFor(t, baseURL, "user-boss-2", "Alex")
	otherClient := clientFor(t, baseURL, "user-other-2", "Sam")

	createHousehold(t, bossClient, "Boss Household")

	list, err := otherClient.ListHouseholds(t.Context())
	require.NoError(t, err)
	require.Empty(t, list.Households, "Stranger should not see another user's household")

	t.Logf("Household listing correctly scoped to the caller")
}

// TestCreateHouseholdValidation verifies an empty name is rejected.
func TestCreateHouseholdValidation(t *testing.T) {
	baseURL, cleanup := setupInviteContainer(t)
	defer cleanup()

	client := clientFor(t, baseURL, "user-boss-3", "Alex")

	_, err := client.CreateHousehold(t.Context(), "   ")
	assertAPIError(t, err, http.StatusBadRequest, invitesdk.ErrorCodeInvalidRequest,
		"Creating a household with a blank name")

	t.Logf("Blank household name correctly rejected")
}

// TestHouseholdsRequireAuthentication verifies both household endpoints
// reject unauthenticated callers.
func TestHouseholdsRequireAuthentication(t *testing.T) {
	baseURL, cleanup := setupInviteContainer(t)
	defer cleanup()

	client := invitesdk.NewSDKClient(baseURL) // no token

	_, err := client.CreateHousehold(t.Context(), "No Auth Household")
	requireUnauthorized(t, err, "Creating a household without a token")

	_, err = client.ListHouseholds(t.Context())
	requireUnauthorized(t, err, "Listing households without a token")

	t.Logf("Household endpoints correctly require authentication")
}

// requireUnauthorized checks that an error carries a 401 status.
func requireUnauthorized(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *invitesdk.APIError
	require.ErrorAs(t, err, &apiErr, "%s - should return APIError", context)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode, context)
}
