package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gradius/bitplanner/internal/domain"
	"github.com/gradius/bitplanner/internal/logger"
	"github.com/gradius/bitplanner/internal/metrics"
	"github.com/gradius/bitplanner/internal/planner"
)

// treeParams holds the parsed query parameters shared by the tree endpoints.
type treeParams struct {
	amount   int
	maxDepth int
}

// parseTreeParams reads amount and max_depth from the query string. amount
// defaults to 1, max_depth to 0 which means the planner's default.
func parseTreeParams(r *http.Request) (treeParams, error) {
	params := treeParams{amount: 1}

	if raw := r.URL.Query().Get("amount"); raw != "" {
		amount, err := strconv.Atoi(raw)
		if err != nil || amount <= 0 {
			return params, domain.ErrInvalidAmount
		}
		params.amount = amount
	}

	if raw := r.URL.Query().Get("max_depth"); raw != "" {
		maxDepth, err := strconv.Atoi(raw)
		if err != nil || maxDepth <= 0 {
			return params, domain.ErrInvalidMaxDepth
		}
		params.maxDepth = maxDepth
	}

	return params, nil
}

// HandleItemTree resolves the full production tree for an item
func HandleItemTree(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		params, err := parseTreeParams(r)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		tree, err := svc.ResolveByItem(r.Context(), itemID, params.amount, params.maxDepth)
		if err != nil {
			log.Error("Failed to resolve item tree", "error", err, "itemID", itemID)
			respondServiceError(w, err)
			return
		}

		metrics.RecordTreeResolved(metrics.RootItem, len(tree.Steps), len(tree.BaseMaterials), tree.Truncated)
		respondJSON(w, http.StatusOK, tree)
	}
}

// HandleRecipeTree resolves the production tree for a specific recipe
func HandleRecipeTree(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		recipeID, err := strconv.Atoi(chi.URLParam(r, "recipeID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		params, err := parseTreeParams(r)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		tree, err := svc.ResolveByRecipe(r.Context(), recipeID, params.amount, params.maxDepth)
		if err != nil {
			log.Error("Failed to resolve recipe tree", "error", err, "recipeID", recipeID)
			respondServiceError(w, err)
			return
		}

		metrics.RecordTreeResolved(metrics.RootRecipe, len(tree.Steps), len(tree.BaseMaterials), tree.Truncated)
		respondJSON(w, http.StatusOK, tree)
	}
}
