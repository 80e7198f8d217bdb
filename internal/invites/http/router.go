package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bosshelper/backend/internal/invites/service"
	"github.com/bosshelper/backend/internal/invites/store"
	"github.com/bosshelper/backend/pkg/httpx"
	"github.com/bosshelper/backend/pkg/jwtx"
	"github.com/bosshelper/backend/pkg/slogx"

	_ "github.com/bosshelper/backend/api/invites" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	InvitationService *service.InvitationService
	HouseholdService  *service.HouseholdService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain. CORS sits before auth so browser
	// preflights are answered without credentials.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvitations()
	r.registerHouseholds()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Boss Helper Invite Service API
//	@version		0.1.0
//	@description	Household invitation issuance and redemption for the Boss Helper app.
//	@description
//	@description				Invitation codes are one-time six-digit codes delivered over email or SMS;
//	@description				only a hash of the code is ever stored.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvitations() {
	sendHandler := &InvitationSendHandler{InvitationService: r.InvitationService}
	redeemHandler := &InvitationRedeemHandler{InvitationService: r.InvitationService}

	// POST /v1/invitations - strict rate limit by user (sends real email/SMS)
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(sendHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	// POST /v1/invitations/redeem - strict rate limit by IP (code guessing)
	r.Mux.Handle("POST /v1/invitations/redeem",
		httpx.Chain(redeemHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerHouseholds() {
	h := &HouseholdsHandler{HouseholdService: r.HouseholdService}

	r.Mux.Handle("POST /v1/households",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/households",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
