package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bosshelper/backend/internal/invites/domain"
	"github.com/bosshelper/backend/internal/invites/service"
	"github.com/bosshelper/backend/pkg/httpx"
	"github.com/bosshelper/backend/pkg/invitesdk"
	"github.com/bosshelper/backend/pkg/slogx"
)

type HouseholdsHandler struct {
	HouseholdService *service.HouseholdService
}

// HandleCreate godoc
//
//	@Summary		Create Household
//	@Description	Create a household owned by the caller. The caller becomes its boss.
//	@Tags			Households
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.HouseholdCreateRequest	true	"Household to create"
//	@Success		200		{object}	invitesdk.Household					"id, name, role"
//	@Failure		400		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	invitesdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/households [post].
func (h *HouseholdsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req invitesdk.HouseholdCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			invitesdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized,
			invitesdk.ErrorCodeUnauthorized, "Authentication required")
		return
	}

	household, err := h.HouseholdService.CreateHousehold(ctx, userID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidHouseholdName) {
			httpx.WriteError(w, http.StatusBadRequest,
				invitesdk.ErrorCodeInvalidRequest, "name is required")
			return
		}
		log.Error("failed to create household", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			invitesdk.ErrorCodeServerError, "Failed to create household")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.Household{
		ID:   household.ID,
		Name: household.Name,
		Role: string(domain.RoleBoss),
	})
}

// HandleList godoc
//
//	@Summary		List Households
//	@Description	List the households the caller belongs to, with the caller's role in each.
//	@Tags			Households
//	@Produce		json
//	@Success		200	{object}	invitesdk.HouseholdListResponse	"households"
//	@Failure		401	{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/households [get].
func (h *HouseholdsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized,
			invitesdk.ErrorCodeUnauthorized, "Authentication required")
		return
	}

	list, err := h.HouseholdService.ListHouseholds(ctx, userID)
	if err != nil {
		log.Error("failed to list households", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			invitesdk.ErrorCodeServerError, "Failed to list households")
		return
	}

	out := invitesdk.HouseholdListResponse{Households: make([]invitesdk.Household, 0, len(list))}
	for _, hw := range list {
		out.Households = append(out.Households, invitesdk.Household{
			ID:   hw.Household.ID,
			Name: hw.Household.Name,
			Role: string(hw.Role),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}
