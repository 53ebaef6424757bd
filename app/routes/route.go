package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/cache"
	"github.com/vastra-store/vastra/app/configs"
	"github.com/vastra-store/vastra/app/handlers"
	"github.com/vastra-store/vastra/app/metrics"
	"github.com/vastra-store/vastra/app/middlewares"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/services"
	"github.com/vastra-store/vastra/app/utils/cartstore"
	"gorm.io/gorm"
)

// Deps carries the externally-constructed collaborators into the router.
type Deps struct {
	DB      *gorm.DB
	Env     configs.ENV
	Storage services.Storage
	Cache   *cache.Cache

	// UploadsDir serves static files when disk storage is active; empty
	// disables the route.
	UploadsDir string
}

// NewRouter wires every route and wraps the whole tree, 404 fallback and
// CORS preflight included, in the shared middleware chain.
func NewRouter(deps Deps) http.Handler {
	rnd := render.New()
	validate := validator.New()

	categoryRepo := repositories.NewCategoryRepository(deps.DB)
	productRepo := repositories.NewProductRepository(deps.DB)
	userRepo := repositories.NewUserRepository(deps.DB)
	cartRepo := repositories.NewCartRepository(deps.DB)
	orderRepo := repositories.NewOrderRepository(deps.DB)

	tokens := services.NewTokenService(deps.Env.JWTSecret)
	checkoutSvc := services.NewCheckoutService(cartRepo, productRepo, orderRepo, userRepo, deps.Env.StorePhone)
	guestBackend := cartstore.NewSessionBackend([]byte(deps.Env.SessionKey))

	adminAuthHandler := handlers.NewAdminAuthHandler(rnd, tokens, deps.Env.AdminEmail, deps.Env.AdminPassword)
	categoryHandler := handlers.NewCategoryHandler(rnd, categoryRepo)
	productHandler := handlers.NewProductHandler(rnd, productRepo, deps.Storage, deps.Cache)
	authHandler := handlers.NewAuthHandler(rnd, userRepo, tokens, validate)
	userHandler := handlers.NewUserHandler(rnd, userRepo, orderRepo)
	cartHandler := handlers.NewCartHandler(rnd, cartRepo)
	publicHandler := handlers.NewPublicHandler(rnd, categoryRepo, productRepo, deps.Cache)
	guestCartHandler := handlers.NewGuestCartHandler(rnd, guestBackend, productRepo)
	checkoutHandler := handlers.NewCheckoutHandler(rnd, checkoutSvc)

	admin := middlewares.AdminAuthMiddleware(rnd, tokens, deps.Env.AdminEmail)
	user := middlewares.UserAuthMiddleware(rnd, tokens)

	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("API is running..."))
	}).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Admin login
	router.HandleFunc("/api/user/admin", adminAuthHandler.Login).Methods("POST")

	// Category management (admin token, bearer header)
	router.Handle("/api/category", admin(http.HandlerFunc(categoryHandler.Create))).Methods("POST")
	router.Handle("/api/category/sub", admin(http.HandlerFunc(categoryHandler.AddSubCategory))).Methods("POST")
	router.HandleFunc("/api/category", categoryHandler.List).Methods("GET")
	router.Handle("/api/category/subcategory-sizes", admin(http.HandlerFunc(categoryHandler.UpdateSubCategorySizes))).Methods("PUT")
	router.HandleFunc("/api/category/subcategory-sizes", categoryHandler.GetSubCategorySizes).Methods("GET")
	router.Handle("/api/category/{id}", admin(http.HandlerFunc(categoryHandler.Delete))).Methods("DELETE")

	// Product management
	router.Handle("/api/product", admin(http.HandlerFunc(productHandler.Add))).Methods("POST")
	router.HandleFunc("/api/product", productHandler.List).Methods("GET")
	router.HandleFunc("/api/product/{id}", productHandler.Get).Methods("GET")
	router.Handle("/api/product/{id}", admin(http.HandlerFunc(productHandler.Remove))).Methods("DELETE")

	// Storefront: auth + public reads
	router.HandleFunc("/api/v1/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/v1/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/v1/categories", publicHandler.GetCategories).Methods("GET")
	router.HandleFunc("/api/v1/categories/{id}/subcategories", publicHandler.GetSubCategories).Methods("GET")
	router.HandleFunc("/api/v1/products", publicHandler.GetProducts).Methods("GET")
	router.HandleFunc("/api/v1/products/{id}", publicHandler.GetProduct).Methods("GET")

	// Storefront: authenticated (user token, plain `token` header)
	router.Handle("/api/v1/profile", user(http.HandlerFunc(userHandler.GetProfile))).Methods("GET")
	router.Handle("/api/v1/profile", user(http.HandlerFunc(userHandler.UpdateProfile))).Methods("PUT")
	router.Handle("/api/v1/address", user(http.HandlerFunc(userHandler.AddAddress))).Methods("POST")
	router.Handle("/api/v1/orders", user(http.HandlerFunc(userHandler.GetOrders))).Methods("GET")
	router.Handle("/api/v1/cart", user(http.HandlerFunc(cartHandler.Get))).Methods("GET")
	router.Handle("/api/v1/cart", user(http.HandlerFunc(cartHandler.Add))).Methods("POST")
	router.Handle("/api/v1/cart", user(http.HandlerFunc(cartHandler.Update))).Methods("PUT")
	router.Handle("/api/v1/cart/{productId}", user(http.HandlerFunc(cartHandler.Remove))).Methods("DELETE")
	router.Handle("/api/v1/checkout", user(http.HandlerFunc(checkoutHandler.Checkout))).Methods("POST")

	// Storefront: guest cart (cookie session)
	router.HandleFunc("/api/v1/guest-cart", guestCartHandler.Get).Methods("GET")
	router.HandleFunc("/api/v1/guest-cart", guestCartHandler.Add).Methods("POST")
	router.HandleFunc("/api/v1/guest-cart", guestCartHandler.Update).Methods("PUT")

	if deps.UploadsDir != "" {
		router.PathPrefix("/uploads/products/").Handler(
			http.StripPrefix("/uploads/products/", http.FileServer(http.Dir(deps.UploadsDir))))
	}

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = rnd.JSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Route not found",
		})
	})

	var handler http.Handler = router
	handler = middlewares.CORSMiddleware(deps.Env.FrontendURL)(handler)
	handler = metrics.Middleware(handler)
	handler = middlewares.LoggingMiddleware(handler)
	handler = middlewares.RecoveryMiddleware(rnd)(handler)
	return handler
}
