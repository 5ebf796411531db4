package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/cart"
	"github.com/example/fashionstore/internal/catalog"
	"github.com/example/fashionstore/internal/checkout"
	"github.com/example/fashionstore/internal/config"
	"github.com/example/fashionstore/internal/currency"
	"github.com/example/fashionstore/internal/handlers"
	"github.com/example/fashionstore/internal/identity"
	"github.com/example/fashionstore/internal/middleware"
	"github.com/example/fashionstore/internal/otp"
	"github.com/example/fashionstore/internal/session"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, store session.Store) {
	conv := currency.New(cfg.ExchangeRate)
	products := catalog.NewStore(db)
	carts := cart.NewService(store, products)
	pipeline := checkout.NewPipeline(checkout.NewGormOrderStore(db), carts, products)
	otps := otp.NewService(otp.NewGormStore(db), otp.NewGormUserSource(db))
	ids := identity.NewService(identity.NewGormStore(db))

	authHandler := handlers.NewAuthHandler(db, cfg, otps, ids)
	catalogHandler := handlers.NewCatalogHandler(products, conv)
	cartHandler := handlers.NewCartHandler(carts, conv)
	orderHandler := handlers.NewOrderHandler(db, pipeline)
	profileHandler := handlers.NewProfileHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, products, conv)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/otp/request", authHandler.RequestOtp)
	auth.Post("/otp/login", authHandler.OtpLogin)

	// Catalog routes
	productsGroup := api.Group("/products")
	productsGroup.Get("/", catalogHandler.ListProducts)
	productsGroup.Get("/:id", catalogHandler.GetProduct)

	// Cart routes, keyed by the opaque session token
	cartGroup := api.Group("/cart", middleware.SessionMiddleware())
	cartGroup.Get("/", cartHandler.ViewCart)
	cartGroup.Post("/items/:id", cartHandler.AddToCart)
	cartGroup.Put("/items/:id", cartHandler.UpdateCart)
	cartGroup.Delete("/items/:id", cartHandler.RemoveFromCart)
	cartGroup.Delete("/", cartHandler.ClearCart)

	// Checkout accepts guests; an authenticated user gets the order linked.
	api.Post("/checkout",
		middleware.SessionMiddleware(),
		middleware.OptionalAuth(cfg),
		orderHandler.Checkout)

	// Order confirmation is reachable by guests via the order UUID.
	api.Get("/orders/confirmation/:id", orderHandler.GetConfirmation)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/orders", orderHandler.ListMyOrders)
	protected.Get("/orders/:id", orderHandler.GetMyOrder)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)

	// Admin routes, gated by the admin role
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly(db))
	admin.Get("/dashboard", adminHandler.DashboardStats)
	admin.Get("/orders", adminHandler.ListAllOrders)
	admin.Get("/orders/:id", adminHandler.GetOrderDetail)
	admin.Get("/users", adminHandler.ListAllUsers)
	admin.Get("/products", adminHandler.ListProducts)
}
