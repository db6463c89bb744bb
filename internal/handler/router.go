package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wishkeeper/internal/handler/api"
	"wishkeeper/internal/handler/middleware"
	"wishkeeper/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	shareHandler *api.ShareHandler,
	purchaseHandler *api.PurchaseHandler,
	listHandler *api.ListHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, shareHandler, purchaseHandler, listHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	shareHandler *api.ShareHandler,
	purchaseHandler *api.PurchaseHandler,
	listHandler *api.ListHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		locations := apiGroup.Group("/locations")
		locations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(locations, []route{
				{Method: http.MethodPost, Path: "", Handler: listHandler.CreateLocation},
				{Method: http.MethodDelete, Path: "/:id", Handler: listHandler.DeleteLocation},
			})
		}

		lists := apiGroup.Group("/lists")
		{
			// Reads allow anonymous guest-token principals.
			optional := lists.Group("")
			optional.Use(authMiddleware.OptionalAuth())
			addRoutes(optional, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: listHandler.GetListItems},
			})

			authRequired := lists.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: listHandler.CreateList},
				{Method: http.MethodDelete, Path: "/:id", Handler: listHandler.DeleteList},
				{Method: http.MethodPut, Path: "/:id/visibility", Handler: listHandler.SetListPublic},
				{Method: http.MethodPost, Path: "/:id/items", Handler: listHandler.CreateItem},
				{Method: http.MethodPost, Path: "/:id/guest-link", Handler: shareHandler.CreateGuestLink},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: listHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/:id", Handler: listHandler.DeleteItem},
				{Method: http.MethodPost, Path: "/:id/reserve", Handler: purchaseHandler.Reserve},
				{Method: http.MethodDelete, Path: "/:id/reserve", Handler: purchaseHandler.Release},
				{Method: http.MethodPost, Path: "/:id/purchase", Handler: purchaseHandler.ConfirmPurchase},
				{Method: http.MethodDelete, Path: "/:id/purchase", Handler: purchaseHandler.UnmarkPurchase},
			})
		}

		shares := apiGroup.Group("/shares")
		shares.Use(authMiddleware.RequireAuth())
		{
			addRoutes(shares, []route{
				{Method: http.MethodPost, Path: "", Handler: shareHandler.CreateShare},
				{Method: http.MethodGet, Path: "", Handler: shareHandler.ListShares},
				{Method: http.MethodPost, Path: "/batch", Handler: shareHandler.ShareWithMany},
				{Method: http.MethodDelete, Path: "/:id", Handler: shareHandler.RevokeShare},
			})
		}

		invites := apiGroup.Group("/invites")
		invites.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invites, []route{
				{Method: http.MethodPost, Path: "", Handler: shareHandler.CreateInviteCode},
				{Method: http.MethodPost, Path: "/redeem", Handler: shareHandler.RedeemInviteCode},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: purchaseHandler.MyReservations},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
