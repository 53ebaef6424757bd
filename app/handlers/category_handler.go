package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/utils/logger"
)

type CategoryHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryHandler(rnd *render.Render, categoryRepo repositories.CategoryRepositoryImpl) *CategoryHandler {
	return &CategoryHandler{render: rnd, categoryRepo: categoryRepo}
}

// Create rejects blank names and exact-match (post-trim) duplicates. The
// duplicate check races with concurrent creates; the unique index on the
// name column is the backstop.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		respondError(h.render, w, apperrors.Validation("Category name is required"))
		return
	}
	name := strings.TrimSpace(body.Name)

	existing, err := h.categoryRepo.FindByName(r.Context(), name)
	if err != nil {
		logger.Get().Errorf("CategoryCreate: lookup failed for %q: %v", name, err)
		respondError(h.render, w, apperrors.Server("Server error while adding category", err))
		return
	}
	if existing != nil {
		respondError(h.render, w, apperrors.Conflict("Category already exists"))
		return
	}

	category := &models.Category{Name: name, SubCategories: []models.SubCategory{}}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		logger.Get().Errorf("CategoryCreate: create failed for %q: %v", name, err)
		respondError(h.render, w, apperrors.Server("Server error while adding category", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "Category added successfully", map[string]interface{}{
		"category": category,
	})
}

// AddSubCategory compares sibling names case-insensitively.
func (h *CategoryHandler) AddSubCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CategoryID  string `json:"categoryId"`
		SubCategory string `json:"subCategory"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
		body.CategoryID == "" || strings.TrimSpace(body.SubCategory) == "" {
		respondError(h.render, w, apperrors.Validation("Category ID and Subcategory name are required"))
		return
	}
	subName := strings.TrimSpace(body.SubCategory)

	category, err := h.categoryRepo.FindByID(r.Context(), body.CategoryID)
	if err != nil {
		logger.Get().Errorf("AddSubCategory: lookup failed for %s: %v", body.CategoryID, err)
		respondError(h.render, w, apperrors.Server("Server error while adding subcategory", err))
		return
	}
	if category == nil {
		respondError(h.render, w, apperrors.NotFound("Category not found"))
		return
	}

	for _, sub := range category.SubCategories {
		if strings.EqualFold(sub.Name, subName) {
			respondError(h.render, w, apperrors.Conflict("Subcategory already exists"))
			return
		}
	}

	sub := &models.SubCategory{Name: subName, SizeOptions: models.StringList{}}
	if err := h.categoryRepo.AddSubCategory(r.Context(), category.ID, sub); err != nil {
		logger.Get().Errorf("AddSubCategory: create failed for %s/%q: %v", category.ID, subName, err)
		respondError(h.render, w, apperrors.Server("Server error while adding subcategory", err))
		return
	}
	category.SubCategories = append(category.SubCategories, *sub)

	respondSuccess(h.render, w, http.StatusOK, "Subcategory added successfully", map[string]interface{}{
		"category": category,
	})
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		logger.Get().Errorf("CategoryList: %v", err)
		respondError(h.render, w, apperrors.Server("Server error while fetching categories", err))
		return
	}
	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"categories": categories,
	})
}

// Delete does not cascade to products; they keep their denormalized names.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryRepo.FindByID(r.Context(), id)
	if err != nil {
		logger.Get().Errorf("CategoryDelete: lookup failed for %s: %v", id, err)
		respondError(h.render, w, apperrors.Server("Server error while deleting category", err))
		return
	}
	if category == nil {
		respondError(h.render, w, apperrors.NotFound("Category not found"))
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		logger.Get().Errorf("CategoryDelete: delete failed for %s: %v", id, err)
		respondError(h.render, w, apperrors.Server("Server error while deleting category", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "Category deleted successfully", nil)
}

// UpdateSubCategorySizes replaces the size list wholesale; it never merges.
func (h *CategoryHandler) UpdateSubCategorySizes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CategoryID      string   `json:"categoryId"`
		SubCategoryName string   `json:"subCategoryName"`
		Sizes           []string `json:"sizes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
		body.CategoryID == "" || strings.TrimSpace(body.SubCategoryName) == "" || body.Sizes == nil {
		respondError(h.render, w, apperrors.Validation("Invalid input data"))
		return
	}

	category, subCategory, err := h.findSubCategory(r, body.CategoryID, body.SubCategoryName)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	if err := h.categoryRepo.UpdateSubCategorySizes(r.Context(), subCategory.ID, models.StringList(body.Sizes)); err != nil {
		logger.Get().Errorf("UpdateSubCategorySizes: update failed for %s: %v", subCategory.ID, err)
		respondError(h.render, w, apperrors.Server("Server error while updating sizes", err))
		return
	}
	subCategory.SizeOptions = models.StringList(body.Sizes)

	respondSuccess(h.render, w, http.StatusOK, "Subcategory sizes updated successfully", map[string]interface{}{
		"category": category,
	})
}

func (h *CategoryHandler) GetSubCategorySizes(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("categoryId")
	subCategoryName := r.URL.Query().Get("subCategoryName")
	if categoryID == "" || strings.TrimSpace(subCategoryName) == "" {
		respondError(h.render, w, apperrors.Validation("Missing parameters"))
		return
	}

	_, subCategory, err := h.findSubCategory(r, categoryID, subCategoryName)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	sizes := subCategory.SizeOptions
	if sizes == nil {
		sizes = models.StringList{}
	}
	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"sizes": sizes,
	})
}

func (h *CategoryHandler) findSubCategory(r *http.Request, categoryID, subCategoryName string) (*models.Category, *models.SubCategory, error) {
	category, err := h.categoryRepo.FindByID(r.Context(), categoryID)
	if err != nil {
		logger.Get().Errorf("findSubCategory: lookup failed for %s: %v", categoryID, err)
		return nil, nil, apperrors.Server("Server error while fetching sizes", err)
	}
	if category == nil {
		return nil, nil, apperrors.NotFound("Category not found")
	}

	wanted := strings.TrimSpace(subCategoryName)
	for i := range category.SubCategories {
		if strings.EqualFold(category.SubCategories[i].Name, wanted) {
			return category, &category.SubCategories[i], nil
		}
	}
	return nil, nil, apperrors.NotFound("Subcategory not found")
}
