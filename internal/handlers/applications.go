package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"garinhca/models"
)

// ApplyTenderHandler обрабатывает POST /api/tenders/{tenderId}/apply.
// Повторный отклик той же пары (tenderId, userId) - 409.
func (h *Handler) ApplyTenderHandler(w http.ResponseWriter, r *http.Request) {
	tenderID := chi.URLParam(r, "tenderId")

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	userID := body.UserID
	if userID == "" {
		user, ok := h.Users.Current()
		if !ok {
			http.Error(w, "Missing userId", http.StatusBadRequest)
			return
		}
		userID = user.ID
	}

	if _, ok := h.Tenders.GetByID(tenderID); !ok {
		http.Error(w, "Tender not found", http.StatusNotFound)
		return
	}

	applied, err := h.Apps.Apply(r.Context(), tenderID, userID)
	if err != nil {
		h.Notifier.Failure("failed to submit application", zap.String("tenderId", tenderID), zap.Error(err))
		http.Error(w, "Failed to submit application", http.StatusInternalServerError)
		return
	}
	if !applied {
		h.Notifier.Failure("duplicate application", zap.String("tenderId", tenderID), zap.String("userId", userID))
		http.Error(w, "You have already applied to this tender", http.StatusConflict)
		return
	}

	h.Notifier.Success("application submitted", zap.String("tenderId", tenderID), zap.String("userId", userID))
	writeJSON(w, http.StatusOK, map[string]bool{"applied": true})
}

// HasAppliedHandler сообщает, откликался ли пользователь на тендер
func (h *Handler) HasAppliedHandler(w http.ResponseWriter, r *http.Request) {
	tenderID := chi.URLParam(r, "tenderId")
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"applied": h.Apps.HasApplied(tenderID, userID)})
}

// GetUserApplicationsHandler возвращает отклики пользователя
func (h *Handler) GetUserApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Apps.ListByUser(userID))
}

// GetTenderApplicationsHandler возвращает отклики на тендер.
// Доступно автору тендера и админам.
func (h *Handler) GetTenderApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	tenderID := chi.URLParam(r, "tenderId")

	user, ok := h.Users.Current()
	if !ok {
		http.Error(w, "Login required", http.StatusUnauthorized)
		return
	}

	tender, ok := h.Tenders.GetByID(tenderID)
	if !ok {
		http.Error(w, "Tender not found", http.StatusNotFound)
		return
	}
	if !canManageTender(user, tender) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	writeJSON(w, http.StatusOK, h.Apps.ListByTender(tenderID))
}

// userTenderIDs - множество тендеров автора, для подсчета входящих откликов
func userTenderIDs(tenders []models.Tender) map[string]bool {
	ids := make(map[string]bool, len(tenders))
	for _, t := range tenders {
		ids[t.ID] = true
	}
	return ids
}
