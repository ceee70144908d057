package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gradius/bitplanner/internal/logger"
	"github.com/gradius/bitplanner/internal/metrics"
	"github.com/gradius/bitplanner/internal/planner"
	"github.com/gradius/bitplanner/internal/search"
)

// HandleGetItem returns a single item's description record
func HandleGetItem(catalog planner.ItemCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		item, err := catalog.GetItemByID(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// HandleSearchItems searches items by name
func HandleSearchItems(svc search.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		query := r.URL.Query().Get("q")

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			limit = parsed
		}

		results, err := svc.SearchItems(r.Context(), query, limit)
		if err != nil {
			log.Warn("Item search failed", "error", err, "query", query)
			respondServiceError(w, err)
			return
		}

		metrics.SearchesPerformed.Inc()
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"query":   query,
			"results": results,
		})
	}
}
