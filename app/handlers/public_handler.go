package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/cache"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/utils/logger"
)

// PublicHandler serves the unauthenticated storefront reads.
type PublicHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	cache        *cache.Cache
}

func NewPublicHandler(rnd *render.Render, categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl, productCache *cache.Cache) *PublicHandler {
	return &PublicHandler{
		render:       rnd,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        productCache,
	}
}

func (h *PublicHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		logger.Get().Errorf("PublicCategories: %v", err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}
	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"categories": categories,
	})
}

func (h *PublicHandler) GetSubCategories(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryRepo.FindByID(r.Context(), id)
	if err != nil {
		logger.Get().Errorf("PublicSubCategories: lookup failed for %s: %v", id, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}
	if category == nil {
		respondError(h.render, w, apperrors.NotFound("Category not found"))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"subCategories": category.SubCategories,
	})
}

// GetProducts filters by the optional category, subCategory and bestSeller
// query parameters. Listings are served from the cache when one is
// configured; mutations invalidate it.
func (h *PublicHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ProductFilter{
		Category:    r.URL.Query().Get("category"),
		SubCategory: r.URL.Query().Get("subCategory"),
		BestSeller:  r.URL.Query().Get("bestSeller") == "true",
	}

	key := fmt.Sprintf("products:list:c=%s&s=%s&b=%t", filter.Category, filter.SubCategory, filter.BestSeller)

	var products []models.Product
	hit, err := h.cache.Get(r.Context(), key, &products)
	if err != nil {
		logger.Get().Warnf("PublicProducts: cache read failed: %v", err)
	}
	if !hit {
		products, err = h.productRepo.Filter(r.Context(), filter)
		if err != nil {
			logger.Get().Errorf("PublicProducts: %v", err)
			respondError(h.render, w, apperrors.Server("Internal Server Error", err))
			return
		}
		if err := h.cache.Set(r.Context(), key, products, cache.ProductListTTL); err != nil {
			logger.Get().Warnf("PublicProducts: cache write failed: %v", err)
		}
	}

	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"products": products,
	})
}

func (h *PublicHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.FindByID(r.Context(), id)
	if err != nil {
		logger.Get().Errorf("PublicProduct: lookup failed for %s: %v", id, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}
	if product == nil {
		respondError(h.render, w, apperrors.NotFound("Product not found"))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"product": product,
	})
}
