// Package invitesdk is a small Go client for the Boss Helper invite service.
// It wraps the HTTP API with typed requests and responses and is what the
// end-to-end tests drive the service with.
//
// Usage:
//
//	client := invitesdk.NewSDKClient("http://localhost:8080")
//	client.Token = accessToken
//	resp, err := client.SendInvitation(ctx, invitesdk.InvitationRequest{
//		HouseholdID: householdID,
//		Contact:     "helper@example.com",
//		ContactKind: "email",
//	})
package invitesdk
