package httpserver

import (
	"log"
	"time"

	"catring/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	router.Use(cors.New(corsCfg))
	if deps.Metrics != nil {
		router.Use(requestMetrics(deps.Metrics))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	}

	router.POST("/register", registerHandler(deps.CustomerSvc))
	router.POST("/login", loginHandler(deps.CustomerSvc))

	router.GET("/products", listProductsHandler(deps.CatalogSvc))
	router.GET("/products/:id", getProductHandler(deps.CatalogSvc))

	authed := router.Group("/", authMiddleware(deps.CustomerSvc))
	{
		authed.POST("/logout", logoutHandler(deps.CustomerSvc))
		authed.GET("/me", profileHandler(deps.CustomerSvc))
		authed.PUT("/me", updateProfileHandler(deps.CustomerSvc))

		authed.GET("/cart", getCartHandler(deps.CartSvc))
		authed.POST("/cart/items", addCartItemHandler(deps.CartSvc))
		authed.PUT("/cart/items/:productId", setCartQuantityHandler(deps.CartSvc))
		authed.DELETE("/cart/items/:productId", removeCartItemHandler(deps.CartSvc))

		authed.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
		authed.GET("/orders", listOrdersHandler(deps.OrderSvc))
		authed.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
		authed.POST("/orders/:id/cancel", cancelOrderHandler(deps.OrderSvc))
	}

	caterer := router.Group("/", authMiddleware(deps.CustomerSvc), requireCaterer())
	{
		caterer.POST("/products", createProductHandler(deps.CatalogSvc))
		caterer.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
		caterer.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))
		caterer.GET("/caterer/products", catererProductsHandler(deps.CatalogSvc))
		caterer.GET("/caterer/orders", catererOrdersHandler(deps.OrderSvc))
		caterer.PUT("/caterer/orders/:id/status", orderStatusHandler(deps.OrderSvc))
	}

	return router, nil
}
