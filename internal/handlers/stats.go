package handlers

import (
	"net/http"

	"garinhca/models"
)

// StatsHandler возвращает агрегаты для админ-панели. Только для админов.
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Users.Current()
	if !ok {
		http.Error(w, "Login required", http.StatusUnauthorized)
		return
	}
	if !models.IsAdmin(user.Role) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	now := h.Now()
	stats := models.Stats{
		TotalApplications: len(h.Apps.List()),
	}
	for _, t := range h.Tenders.List() {
		stats.TotalTenders++
		switch t.Category {
		case models.CategoryGovernment:
			stats.GovernmentTenders++
		case models.CategoryPrivate:
			stats.PrivateTenders++
		}
		if t.ExpiryDate.Before(now) {
			stats.ExpiredTenders++
		} else {
			stats.ActiveTenders++
		}
	}

	writeJSON(w, http.StatusOK, stats)
}

// DashboardSummary - счетчики личного кабинета
type DashboardSummary struct {
	PostedTenders        int `json:"postedTenders"`
	ActiveTenders        int `json:"activeTenders"`
	ExpiredTenders       int `json:"expiredTenders"`
	ApplicationsReceived int `json:"applicationsReceived"`
	ApplicationsSent     int `json:"applicationsSent"`
}

// DashboardHandler возвращает счетчики для пользователя userId:
// авторам - размещенные тендеры и входящие отклики, соискателям - отправленные
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	now := h.Now()
	posted := h.Tenders.ListByPoster(userID)

	var summary DashboardSummary
	summary.PostedTenders = len(posted)
	for _, t := range posted {
		if t.ExpiryDate.Before(now) {
			summary.ExpiredTenders++
		} else {
			summary.ActiveTenders++
		}
	}

	mine := userTenderIDs(posted)
	for _, a := range h.Apps.List() {
		if mine[a.TenderID] {
			summary.ApplicationsReceived++
		}
		if a.UserID == userID {
			summary.ApplicationsSent++
		}
	}

	writeJSON(w, http.StatusOK, summary)
}
