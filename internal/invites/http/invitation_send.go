package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bosshelper/backend/internal/invites/domain"
	"github.com/bosshelper/backend/internal/invites/notify"
	"github.com/bosshelper/backend/internal/invites/service"
	"github.com/bosshelper/backend/pkg/httpx"
	"github.com/bosshelper/backend/pkg/invitesdk"
	"github.com/bosshelper/backend/pkg/slogx"
)

type InvitationSendHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Send Household Invitation
//	@Description	Mint a one-time six-digit invitation code, persist its hash, and deliver it to the contact over email or SMS. Only household bosses may invite. The code never appears in the response.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.InvitationRequest		true	"Invitation request"
//	@Success		200		{object}	invitesdk.InvitationResponse	"invitation_id, household_id, role, contact_kind, expires_at"
//	@Failure		400		{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	invitesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationSendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req invitesdk.InvitationRequest
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

	invitation, err := h.InvitationService.SendInvitation(ctx, userID, service.SendInvitationParams{
		HouseholdID: req.HouseholdID,
		Role:        domain.Role(req.Role),
		Contact:     req.Contact,
		ContactKind: domain.ContactKind(req.ContactKind),
		TTLMinutes:  req.TTLMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteError(w, http.StatusBadRequest,
				invitesdk.ErrorCodeInvalidRequest, "Missing or malformed request fields")
		case errors.Is(err, service.ErrInvalidContact):
			httpx.WriteError(w, http.StatusBadRequest,
				invitesdk.ErrorCodeInvalidRequest, "Contact does not match the requested contact kind")
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteError(w, http.StatusBadRequest,
				invitesdk.ErrorCodeInvalidRequest, "Role must be 'helper' or 'boss'")
		case errors.Is(err, service.ErrHouseholdNotFound):
			httpx.WriteError(w, http.StatusNotFound,
				invitesdk.ErrorCodeNotFound, "Household not found")
		case errors.Is(err, service.ErrNotBoss):
			httpx.WriteError(w, http.StatusForbidden,
				invitesdk.ErrorCodeForbidden, "Only household bosses may invite")
		case errors.Is(err, notify.ErrNotConfigured):
			log.Error("invitation provider not configured", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				invitesdk.ErrorCodeConfigError, "Notification provider is not configured")
		case errors.Is(err, service.ErrDispatchFailed):
			log.Error("invitation dispatch failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				invitesdk.ErrorCodeDispatchError, "Invitation could not be delivered")
		default:
			log.Error("failed to send invitation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				invitesdk.ErrorCodeServerError, "Failed to send invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.InvitationResponse{
		InvitationID: invitation.ID,
		HouseholdID:  invitation.HouseholdID,
		Role:         string(invitation.Role),
		ContactKind:  string(invitation.ContactKind),
		ExpiresAt:    invitation.ExpiresAt,
	})
}
