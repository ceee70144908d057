package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gradius/bitplanner/internal/domain"
	"github.com/gradius/bitplanner/internal/logger"
	"github.com/gradius/bitplanner/internal/planner"
)

// HandleGetRecipe returns a single recipe by id
func HandleGetRecipe(catalog planner.RecipeCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := strconv.Atoi(chi.URLParam(r, "recipeID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		recipe, err := catalog.GetRecipeByID(r.Context(), recipeID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, recipe)
	}
}

// HandleItemRecipes lists the recipes that produce an item
func HandleItemRecipes(items planner.ItemCatalog, recipes planner.RecipeCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		// 404 for unknown items rather than an empty list
		if _, err := items.GetItemByID(r.Context(), itemID); err != nil {
			respondServiceError(w, err)
			return
		}

		candidates, err := recipes.GetProducersOf(r.Context(), itemID)
		if err != nil {
			log.Error("Failed to list item recipes", "error", err, "itemID", itemID)
			respondServiceError(w, err)
			return
		}

		producers := make([]*domain.Recipe, 0, len(candidates))
		for _, candidate := range candidates {
			recipe, err := recipes.GetRecipeByID(r.Context(), candidate.RecipeID)
			if err != nil {
				log.Error("Failed to load producing recipe", "error", err, "recipeID", candidate.RecipeID)
				respondServiceError(w, err)
				return
			}
			producers = append(producers, recipe)
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"item_id": itemID,
			"recipes": producers,
		})
	}
}
