package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/config"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/middleware"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

// NewRouter creates the HTTP router with all portal routes. Page routes are
// registered once per locale prefix; the role gates are routing convenience
// on top of the upstream API's own authorization.
func NewRouter(h *Handler, cfg *config.Config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Public API routes
	mux.HandleFunc("POST /api/v1/login", h.Login)
	mux.HandleFunc("POST /api/v1/apply", h.Apply)
	mux.HandleFunc("GET /api/v1/session", h.Session)
	mux.HandleFunc("GET /api/v1/documents", h.DownloadDocument)
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Offer and application management (HR role)
	requireRH := middleware.RequireRole(model.UserRoleRH)
	mux.Handle("POST /api/v1/offers", requireRH(http.HandlerFunc(h.CreateOffer)))
	mux.Handle("PUT /api/v1/offers/{id}", requireRH(http.HandlerFunc(h.UpdateOffer)))
	mux.Handle("DELETE /api/v1/offers/{id}", requireRH(http.HandlerFunc(h.DeleteOffer)))
	mux.Handle("GET /api/v1/applications", requireRH(http.HandlerFunc(h.ListApplications)))
	mux.Handle("DELETE /api/v1/applications/{id}", requireRH(http.HandlerFunc(h.DeleteApplication)))

	// User and log management (admin role)
	requireAdmin := middleware.RequireRole(model.UserRoleAdmin)
	mux.Handle("GET /api/v1/users", requireAdmin(http.HandlerFunc(h.ListUsers)))
	mux.Handle("POST /api/v1/users", requireAdmin(http.HandlerFunc(h.CreateUser)))
	mux.Handle("PUT /api/v1/users/{id}", requireAdmin(http.HandlerFunc(h.UpdateUser)))
	mux.Handle("DELETE /api/v1/users/{id}", requireAdmin(http.HandlerFunc(h.DeleteUser)))
	mux.Handle("GET /api/v1/logs", requireAdmin(http.HandlerFunc(h.ListLogs)))

	// Page routes, once per locale prefix. The unprefixed tree is the
	// default-English mode; /en and /fr are the explicit modes.
	for _, prefix := range []string{"", "/en", "/fr"} {
		if prefix == "" {
			mux.HandleFunc("GET /{$}", h.Home)
		} else {
			mux.HandleFunc("GET "+prefix, h.Home)
			mux.HandleFunc("GET "+prefix+"/{$}", h.Home)
		}
		mux.HandleFunc("GET "+prefix+"/offer/{id}", h.OfferDetail)
		mux.HandleFunc("GET "+prefix+"/about", h.About)
		mux.Handle("GET "+prefix+"/rh-dashboard", requireRH(http.HandlerFunc(h.RHDashboard)))
		mux.Handle("GET "+prefix+"/admin-dashboard", requireAdmin(http.HandlerFunc(h.AdminDashboard)))
	}

	// Everything else goes home.
	mux.HandleFunc("/", h.RedirectHome)

	// Apply global middleware
	return middleware.CORS(cfg.CORS.AllowedOrigin)(
		middleware.JSON(
			middleware.Logger(logger)(mux)))
}
