package invitesdk

import (
	"context"
	"net/http"
)

// SendInvitation mints and delivers an invitation code. Requires a token for
// a household boss.
func (c *SDKClient) SendInvitation(ctx context.Context, req InvitationRequest) (*InvitationResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/invitations", req)
	if err != nil {
		return nil, err
	}

	var out InvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// RedeemInvitation submits a received code and joins the household it was
// issued for.
func (c *SDKClient) RedeemInvitation(ctx context.Context, req RedeemRequest) (*RedeemResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/invitations/redeem", req)
	if err != nil {
		return nil, err
	}

	var out RedeemResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
