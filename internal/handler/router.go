package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelcart/internal/handler/api"
	"hotelcart/internal/handler/middleware"
	"hotelcart/internal/pkg/config"
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
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	catalogHandler *api.CatalogHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cartHandler, checkoutHandler, catalogHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	catalogHandler *api.CatalogHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Catalog is public and sessionless
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rooms", Handler: catalogHandler.ListRooms},
			{Method: http.MethodGet, Path: "/menu", Handler: catalogHandler.ListMenuItems},
			{Method: http.MethodGet, Path: "/addons", Handler: catalogHandler.ListAddons},
		})

		cart := apiGroup.Group("/cart")
		cart.Use(sessionMiddleware.EnsureSession())
		{
			addRoutes(cart, []route{
				{Method: http.MethodPost, Path: "/rooms", Handler: cartHandler.AddRoom},
				{Method: http.MethodGet, Path: "/rooms", Handler: cartHandler.RoomCartSummary},
				{Method: http.MethodPatch, Path: "/rooms/dates", Handler: cartHandler.RescheduleAllRooms},
				{Method: http.MethodPatch, Path: "/rooms/:roomId", Handler: cartHandler.RescheduleRoom},
				{Method: http.MethodDelete, Path: "/rooms/:roomId", Handler: cartHandler.RemoveRoom},

				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodGet, Path: "/items", Handler: cartHandler.OrderCartSummary},
				{Method: http.MethodPatch, Path: "/items/:itemId", Handler: cartHandler.UpdateItemQuantity},
				{Method: http.MethodDelete, Path: "/items/:itemId", Handler: cartHandler.RemoveItem},

				{Method: http.MethodPut, Path: "/addons/:addonId", Handler: cartHandler.PutAddon},
				{Method: http.MethodDelete, Path: "/addons/:addonId", Handler: cartHandler.RemoveAddon},

				{Method: http.MethodDelete, Path: "", Handler: cartHandler.ClearCart},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(sessionMiddleware.EnsureSession())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/booking", Handler: checkoutHandler.CheckoutBooking},
				{Method: http.MethodPost, Path: "/order", Handler: checkoutHandler.CheckoutOrder},
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
