package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gradius/bitplanner/internal/domain"
	"github.com/gradius/bitplanner/internal/logger"
	"github.com/gradius/bitplanner/internal/metrics"
	"github.com/gradius/bitplanner/internal/project"
)

// CreateProjectRequest represents the expected body of the create project request
type CreateProjectRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// ProjectItemRequest represents the body for adding or updating a project item
type ProjectItemRequest struct {
	ItemID int `json:"item_id" validate:"required"`
	Count  int `json:"count" validate:"required,gt=0"`
}

// HandleCreateProject creates a crafting project and returns both uuids
func HandleCreateProject(svc project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create project request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondValidationError(w, err)
			return
		}

		created, err := svc.CreateProject(r.Context(), req.Name)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		metrics.ProjectsCreated.Inc()
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetProject fetches a project by either of its uuids
func HandleGetProject(svc project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fetched, err := svc.GetProject(r.Context(), chi.URLParam(r, "projectUUID"))
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, fetched)
	}
}

// HandleAddProjectItem adds a target item to a project
func HandleAddProjectItem(svc project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ProjectItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode project item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondValidationError(w, err)
			return
		}

		if err := svc.AddItem(r.Context(), chi.URLParam(r, "projectUUID"), req.ItemID, req.Count); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item added"})
	}
}

// HandleUpdateProjectItem changes the count of an item in a project
func HandleUpdateProjectItem(svc project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		var req struct {
			Count int `json:"count" validate:"required,gt=0"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode project item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondValidationError(w, err)
			return
		}

		if err := svc.UpdateItemCount(r.Context(), chi.URLParam(r, "projectUUID"), itemID, req.Count); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item updated"})
	}
}

// HandleRemoveProjectItem removes a target item from a project
func HandleRemoveProjectItem(svc project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := svc.RemoveItem(r.Context(), chi.URLParam(r, "projectUUID"), itemID); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item removed"})
	}
}

// HandleGetProjectItems lists a project's target items
func HandleGetProjectItems(svc project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetItems(r.Context(), chi.URLParam(r, "projectUUID"))
		if err != nil {
			respondServiceError(w, err)
			return
		}

		if items == nil {
			items = []domain.ProjectItem{}
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"items": items,
		})
	}
}
