package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"garinhca/models"
)

// CreateTenderHandler обрабатывает POST /api/tenders/new запрос
func (h *Handler) CreateTenderHandler(w http.ResponseWriter, r *http.Request) {
	// Ограничение размера тела: imageUrl может быть data URI
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	defer r.Body.Close()

	var input models.NewTender
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := validateNewTender(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tender, err := h.Tenders.Create(r.Context(), input)
	if err != nil {
		h.Notifier.Failure("failed to post tender", zap.Error(err))
		http.Error(w, "Failed to create tender", http.StatusInternalServerError)
		return
	}

	h.Notifier.Success("tender posted", zap.String("tenderId", tender.ID))
	writeJSON(w, http.StatusOK, tender)
}

// validateNewTender проверяет обязательные поля и категорию
func validateNewTender(t *models.NewTender) error {
	if t.Title == "" || len(t.Title) > 100 {
		return errors.New("title is required and max length 100")
	}
	if t.Description == "" || len(t.Description) > 500 {
		return errors.New("description is required and max length 500")
	}
	switch t.Category {
	case models.CategoryGovernment, models.CategoryPrivate:
		// ok
	default:
		return errors.New("invalid category")
	}
	if t.Email == "" {
		return errors.New("email is required")
	}
	if t.Location == "" {
		return errors.New("location is required")
	}
	if t.Budget == "" {
		return errors.New("budget is required")
	}
	if t.ExpiryDate.IsZero() {
		return errors.New("expiryDate is required")
	}
	if t.PosterID == "" {
		return errors.New("posterId is required")
	}
	return nil
}

// GetTendersHandler возвращает активные тендеры с фильтром по подстроке
// и категории, от новых к старым
func (h *Handler) GetTendersHandler(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r)

	category := r.URL.Query().Get("category")
	switch category {
	case "", models.CategoryGovernment, models.CategoryPrivate:
		// ok
	default:
		http.Error(w, "Invalid category parameter", http.StatusBadRequest)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	tenders := h.Tenders.Search(query, category, h.Now())
	writeJSON(w, http.StatusOK, paginateTenders(tenders, params))
}

// GetUserTendersHandler возвращает тендеры пользователя userId
func (h *Handler) GetUserTendersHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	tenders := h.Tenders.ListByPoster(userID)
	sort.SliceStable(tenders, func(i, j int) bool {
		return tenders[i].CreatedAt.After(tenders[j].CreatedAt)
	})
	writeJSON(w, http.StatusOK, tenders)
}

// GetTenderHandler возвращает тендер по id. Истекший тендер по прямой
// ссылке по-прежнему доступен.
func (h *Handler) GetTenderHandler(w http.ResponseWriter, r *http.Request) {
	tenderID := chi.URLParam(r, "tenderId")

	tender, ok := h.Tenders.GetByID(tenderID)
	if !ok {
		http.Error(w, "Tender not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tender)
}

// EditTenderHandler обрабатывает PATCH /api/tenders/{tenderId}/edit
func (h *Handler) EditTenderHandler(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	defer r.Body.Close()

	var patch models.TenderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if patch.Category != nil &&
		*patch.Category != models.CategoryGovernment && *patch.Category != models.CategoryPrivate {
		http.Error(w, "Invalid category", http.StatusBadRequest)
		return
	}

	found, err := h.Tenders.Update(r.Context(), tenderID, patch)
	if err != nil {
		h.Notifier.Failure("failed to update tender", zap.String("tenderId", tenderID), zap.Error(err))
		http.Error(w, "Failed to update tender", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Tender not found", http.StatusNotFound)
		return
	}

	updated, _ := h.Tenders.GetByID(tenderID)
	h.Notifier.Success("tender updated", zap.String("tenderId", tenderID))
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTenderHandler удаляет тендер вместе с его откликами.
// Повторное удаление отвечает тем же 204.
func (h *Handler) DeleteTenderHandler(w http.ResponseWriter, r *http.Request) {
	tenderID := chi.URLParam(r, "tenderId")

	user, ok := h.Users.Current()
	if !ok {
		http.Error(w, "Login required", http.StatusUnauthorized)
		return
	}

	if tender, ok := h.Tenders.GetByID(tenderID); ok {
		if !canManageTender(user, tender) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
	}

	if err := h.Tenders.Delete(r.Context(), tenderID); err != nil {
		h.Notifier.Failure("failed to delete tender", zap.String("tenderId", tenderID), zap.Error(err))
		http.Error(w, "Failed to delete tender", http.StatusInternalServerError)
		return
	}
	if err := h.Apps.RemoveByTender(r.Context(), tenderID); err != nil {
		h.Notifier.Failure("failed to remove applications", zap.String("tenderId", tenderID), zap.Error(err))
		http.Error(w, "Failed to delete tender", http.StatusInternalServerError)
		return
	}

	h.Notifier.Success("tender deleted", zap.String("tenderId", tenderID))
	w.WriteHeader(http.StatusNoContent)
}
