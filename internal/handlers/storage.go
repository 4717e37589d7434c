package handlers

import (
	"context"
	"time"

	"garinhca/models"
)

// Интерфейсы хранилища, которые потребляют обработчики.
// Реализации - в пакете store.

type TenderStore interface {
	Create(ctx context.Context, input models.NewTender) (models.Tender, error)
	GetByID(id string) (models.Tender, bool)
	Update(ctx context.Context, id string, patch models.TenderPatch) (bool, error)
	Delete(ctx context.Context, id string) error
	List() []models.Tender
	ListActive(now time.Time) []models.Tender
	ListByPoster(posterID string) []models.Tender
	Search(query, category string, now time.Time) []models.Tender
}

type ApplicationStore interface {
	Apply(ctx context.Context, tenderID, userID string) (bool, error)
	HasApplied(tenderID, userID string) bool
	ListByUser(userID string) []models.Application
	ListByTender(tenderID string) []models.Application
	List() []models.Application
	RemoveByTender(ctx context.Context, tenderID string) error
}

type UserStore interface {
	Login(ctx context.Context, email, password string) (models.User, bool, error)
	Register(ctx context.Context, name, email, password, role string) (models.User, bool, error)
	Current() (models.User, bool)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch models.UserPatch) (bool, error)
}
