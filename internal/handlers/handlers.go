package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"garinhca/internal/notify"
	"garinhca/models"
)

// Handler связывает HTTP-маршруты с хранилищем
type Handler struct {
	Tenders  TenderStore
	Apps     ApplicationStore
	Users    UserStore
	Notifier notify.Notifier
	Now      func() time.Time
}

// NewHandler создает новый Handler
func NewHandler(tenders TenderStore, apps ApplicationStore, users UserStore, n notify.Notifier) *Handler {
	return &Handler{
		Tenders:  tenders,
		Apps:     apps,
		Users:    users,
		Notifier: n,
		Now:      time.Now,
	}
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type ListParams struct {
	Limit  int
	Offset int
}

// parseListParams парсит limit и offset из query, с дефолтами и ограничениями
func parseListParams(r *http.Request) ListParams {
	params := ListParams{Limit: 20, Offset: 0}

	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 && l <= 100 {
			params.Limit = l
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if o, err := strconv.Atoi(v); err == nil && o >= 0 {
			params.Offset = o
		}
	}
	return params
}

func paginateTenders(tenders []models.Tender, p ListParams) []models.Tender {
	if p.Offset >= len(tenders) {
		return []models.Tender{}
	}
	end := p.Offset + p.Limit
	if end > len(tenders) {
		end = len(tenders)
	}
	return tenders[p.Offset:end]
}

// canManageTender проверяет, что пользователь - автор тендера или админ.
// Проверка прав живет здесь, на вызывающей стороне, а не в хранилище.
func canManageTender(u models.User, t models.Tender) bool {
	return u.ID == t.PosterID || models.IsAdmin(u.Role)
}
