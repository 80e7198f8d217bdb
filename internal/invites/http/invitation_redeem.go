package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bosshelper/backend/internal/invites/service"
	"github.com/bosshelper/backend/pkg/httpx"
	"github.com/bosshelper/backend/pkg/invitesdk"
	"github.com/bosshelper/backend/pkg/slogx"
)

type InvitationRedeemHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Invitation Code
//	@Description	Submit a received six-digit code together with the contact it was sent to. On success the caller becomes a member of the invitation's household with the invited role.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.RedeemRequest		true	"Redemption request"
//	@Success		200		{object}	invitesdk.RedeemResponse	"household_id, role"
//	@Failure		400		{object}	invitesdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	invitesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	invitesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	invitesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/redeem [post].
func (h *InvitationRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req invitesdk.RedeemRequest
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

	invitation, err := h.InvitationService.RedeemInvitation(ctx, userID, req.Contact, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteError(w, http.StatusBadRequest,
				invitesdk.ErrorCodeInvalidRequest, "Contact and a six-digit code are required")
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteError(w, http.StatusNotFound,
				invitesdk.ErrorCodeNotFound, "No matching invitation")
		default:
			log.Error("failed to redeem invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				invitesdk.ErrorCodeServerError, "Failed to redeem invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.RedeemResponse{
		HouseholdID: invitation.HouseholdID,
		Role:        string(invitation.Role),
	})
}
