package handler

import (
	"net/http"

	"github.com/gradius/bitplanner/internal/logger"
)

// CachePurger clears cached catalog entries
type CachePurger interface {
	Purge()
}

// HandleCacheRefresh drops all cached catalog lookups so a completed
// game-data re-import becomes visible without waiting for TTL expiry
func HandleCacheRefresh(cache CachePurger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		cache.Purge()

		log.Info("Catalog cache purged")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Catalog cache purged"})
	}
}
