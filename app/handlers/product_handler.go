package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/cache"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/services"
	"github.com/vastra-store/vastra/app/utils/logger"
)

const maxUploadSize = 32 << 20

type ProductHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepositoryImpl
	storage     services.Storage
	cache       *cache.Cache
}

func NewProductHandler(rnd *render.Render, productRepo repositories.ProductRepositoryImpl, storage services.Storage, productCache *cache.Cache) *ProductHandler {
	return &ProductHandler{
		render:      rnd,
		productRepo: productRepo,
		storage:     storage,
		cache:       productCache,
	}
}

// Add uploads every image before persisting. A failed upload surfaces as a
// generic server error and already-uploaded images are not rolled back.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(h.render, w, apperrors.Validation("Invalid request body"))
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	priceRaw := r.FormValue("price")
	category := r.FormValue("category")
	subCategory := r.FormValue("subCategory")

	if name == "" || description == "" || priceRaw == "" || category == "" || subCategory == "" {
		respondError(h.render, w, apperrors.Validation("All fields (name, description, price, category, subcategory) are required"))
		return
	}

	price, err := decimal.NewFromString(priceRaw)
	if err != nil || price.IsNegative() {
		respondError(h.render, w, apperrors.Validation("Price must be a non-negative number"))
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		files = r.MultipartForm.File["images[]"]
	}
	if len(files) == 0 {
		respondError(h.render, w, apperrors.Validation("At least one product image is required"))
		return
	}

	// Malformed sizes decode to an empty list rather than failing the request.
	sizes := models.DecodeSizes(r.FormValue("sizes"))

	var imageURLs models.StringList
	var uploadErr error
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			uploadErr = err
			continue
		}
		url, err := h.storage.Upload(r.Context(), file, header.Filename)
		file.Close()
		if err != nil {
			logger.Get().Errorf("ProductAdd: upload failed for %s: %v", header.Filename, err)
			uploadErr = err
			continue
		}
		imageURLs = append(imageURLs, url)
	}
	if uploadErr != nil {
		respondError(h.render, w, apperrors.Server("Server error while adding product", uploadErr))
		return
	}

	product := &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		SubCategory: subCategory,
		Sizes:       sizes,
		BestSeller:  r.FormValue("bestSeller") == "true",
		Images:      imageURLs,
		Date:        time.Now(),
	}
	if err := h.productRepo.Create(r.Context(), product); err != nil {
		logger.Get().Errorf("ProductAdd: create failed for %q: %v", name, err)
		respondError(h.render, w, apperrors.Server("Server error while adding product", err))
		return
	}

	h.invalidateCache(r)

	respondSuccess(h.render, w, http.StatusOK, "Product added successfully", map[string]interface{}{
		"product": product,
	})
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		logger.Get().Errorf("ProductList: %v", err)
		respondError(h.render, w, apperrors.Server("Server error while fetching products", err))
		return
	}
	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"products": products,
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.FindByID(r.Context(), id)
	if err != nil {
		logger.Get().Errorf("ProductGet: lookup failed for %s: %v", id, err)
		respondError(h.render, w, apperrors.Server("Server error", err))
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

// Remove attempts a storage delete for every image. Failures are logged and
// the record is deleted regardless.
func (h *ProductHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.FindByID(r.Context(), id)
	if err != nil {
		logger.Get().Errorf("ProductRemove: lookup failed for %s: %v", id, err)
		respondError(h.render, w, apperrors.Server("Server error while deleting product", err))
		return
	}
	if product == nil {
		respondError(h.render, w, apperrors.NotFound("Product not found"))
		return
	}

	for _, url := range product.Images {
		if err := h.storage.Delete(r.Context(), url); err != nil {
			logger.Get().Warnf("ProductRemove: storage delete failed for %s: %v", url, err)
		}
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		logger.Get().Errorf("ProductRemove: delete failed for %s: %v", id, err)
		respondError(h.render, w, apperrors.Server("Server error while deleting product", err))
		return
	}

	h.invalidateCache(r)

	respondSuccess(h.render, w, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) invalidateCache(r *http.Request) {
	if err := h.cache.DeleteByPattern(r.Context(), cache.ProductListPattern); err != nil {
		logger.Get().Warnf("ProductHandler: cache invalidation failed: %v", err)
	}
}
