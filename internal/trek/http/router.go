package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/search"
	"github.com/BishowDevkota/trekking-company/internal/trek/service"
	"github.com/BishowDevkota/trekking-company/internal/trek/store"
	"github.com/BishowDevkota/trekking-company/pkg/httpx"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"

	_ "github.com/BishowDevkota/trekking-company/api/trek" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store  store.Store
	assets assets.Host
	index  search.Index // Optional: nil when no search cluster is configured

	TokenService   *service.TokenService
	SessionService *service.SessionService
	RegionService  *service.RegionService
	TrekService    *service.TrekService
	ImageService   *service.ImageService

	// SecureCookies adds the Secure attribute to the refresh cookie. Only
	// enabled in production where the site is served over TLS.
	SecureCookies bool
}

func NewRouter(
	buildVersion string,
	st store.Store,
	host assets.Host,
	index search.Index,
	requestTimeout time.Duration,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		assets:       host,
		index:        index,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Timeout(requestTimeout),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRegions()
	r.registerTreks()
	r.registerUploads()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Trekking Company API
//	@version		0.1.0
//	@description	Content and admin authentication API for the trekking website.
//	@description
//	@description				Admins sign in for a short lived HS256 access token. A refresh token is kept in an HttpOnly cookie and is used to mint new access tokens.
//
//	@contact.name				Trekking Company
//	@contact.url				https://github.com/BishowDevkota/trekking-company
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// admin guards a write route: a valid access token carrying the admin role.
func (r *Router) admin(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.TokenService.AccessVerifier()),
		httpx.RequireRole(domain.RoleAdmin),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		SessionService: r.SessionService,
		SecureCookies:  r.SecureCookies,
	}

	r.Mux.HandleFunc("POST /auth/sign-in", h.HandleSignIn)
	r.Mux.HandleFunc("POST /auth/sign-up", h.HandleSignUp)
	r.Mux.HandleFunc("POST /auth/verify", h.HandleVerify)
	r.Mux.HandleFunc("POST /auth/refresh", h.HandleRefresh)
	r.Mux.HandleFunc("POST /auth/sign-out", h.HandleSignOut)
}

func (r *Router) registerRegions() {
	h := &RegionsHandler{RegionService: r.RegionService}

	r.Mux.HandleFunc("GET /api/trekking", h.HandleList)
	r.Mux.Handle("POST /api/trekking", r.admin(h.HandleCreate))
	r.Mux.Handle("PUT /api/trekking", r.admin(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/trekking", r.admin(h.HandleDelete))
}

func (r *Router) registerTreks() {
	h := &TreksHandler{TrekService: r.TrekService}

	r.Mux.HandleFunc("GET /api/treks", h.HandleListAll)
	r.Mux.HandleFunc("GET /api/search", h.HandleSearch)

	r.Mux.HandleFunc("GET /api/trekking/{region}", h.HandleListByRegion)
	r.Mux.Handle("POST /api/trekking/{region}", r.admin(h.HandleCreate))

	r.Mux.HandleFunc("GET /api/trekking/{region}/{trek}", h.HandleGet)
	r.Mux.Handle("PUT /api/trekking/{region}/{trek}", r.admin(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/trekking/{region}/{trek}", r.admin(h.HandleDelete))

	// Both forms remove a single gallery image; the PATCH one predates the
	// dedicated gallery route.
	r.Mux.Handle("PATCH /api/trekking/{region}/{trek}", r.admin(h.HandleDeleteGalleryImage))
	r.Mux.Handle("DELETE /api/trekking/{region}/{trek}/gallery", r.admin(h.HandleDeleteGalleryImage))
}

func (r *Router) registerUploads() {
	h := &UploadHandler{ImageService: r.ImageService}

	r.Mux.Handle("POST /api/upload", r.admin(h.HandleUpload))
	r.Mux.Handle("DELETE /api/upload", r.admin(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.assets, r.index))
}
