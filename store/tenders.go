package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"garinhca/models"
)

// TenderRepository владеет коллекцией тендеров: загружает ее один раз при
// создании и пишет в Blob после каждой мутации. Последняя запись побеждает,
// если два процесса делят один бэкенд - известное ограничение.
type TenderRepository struct {
	mu      sync.RWMutex
	blob    Blob
	tenders []models.Tender
	now     func() time.Time
	newID   func() string
}

type TenderOption func(*TenderRepository)

// WithTenderClock подменяет источник времени (для тестов)
func WithTenderClock(now func() time.Time) TenderOption {
	return func(r *TenderRepository) { r.now = now }
}

// WithTenderIDs подменяет генератор идентификаторов (для тестов)
func WithTenderIDs(newID func() string) TenderOption {
	return func(r *TenderRepository) { r.newID = newID }
}

func NewTenderRepository(ctx context.Context, blob Blob, opts ...TenderOption) *TenderRepository {
	r := &TenderRepository{
		blob:  blob,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	r.tenders = LoadCollection(ctx, blob, KeyTenders, SeedTenders())
	return r
}

// Create назначает новый ID и CreatedAt, добавляет тендер и сохраняет
// коллекцию. Валидация полей - забота вызывающей стороны.
func (r *TenderRepository) Create(ctx context.Context, input models.NewTender) (models.Tender, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := models.Tender{
		ID:          r.newID(),
		Title:       input.Title,
		Category:    input.Category,
		Email:       input.Email,
		Location:    input.Location,
		Budget:      input.Budget,
		ExpiryDate:  input.ExpiryDate,
		Description: input.Description,
		PosterName:  input.PosterName,
		PosterID:    input.PosterID,
		CreatedAt:   r.now(),
		Status:      input.Status,
		ImageURL:    input.ImageURL,
	}
	if t.Status == "" {
		t.Status = models.StatusOpen
	}

	r.tenders = append(r.tenders, t)
	if err := SaveCollection(ctx, r.blob, KeyTenders, r.tenders); err != nil {
		// откатываем, чтобы память не расходилась с хранилищем
		r.tenders = r.tenders[:len(r.tenders)-1]
		return models.Tender{}, err
	}
	return t, nil
}

// GetByID ищет тендер по идентификатору. Отсутствие - ожидаемый случай,
// а не ошибка.
func (r *TenderRepository) GetByID(id string) (models.Tender, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tenders {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tender{}, false
}

// Update накладывает заполненные поля patch поверх существующей записи.
// Возвращает false, если тендер не найден.
func (r *TenderRepository) Update(ctx context.Context, id string, patch models.TenderPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tenders {
		if r.tenders[i].ID != id {
			continue
		}
		prev := r.tenders[i]
		applyTenderPatch(&r.tenders[i], patch)
		if err := SaveCollection(ctx, r.blob, KeyTenders, r.tenders); err != nil {
			r.tenders[i] = prev
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func applyTenderPatch(t *models.Tender, p models.TenderPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Email != nil {
		t.Email = *p.Email
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Budget != nil {
		t.Budget = *p.Budget
	}
	if p.ExpiryDate != nil {
		t.ExpiryDate = *p.ExpiryDate
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.ImageURL != nil {
		t.ImageURL = *p.ImageURL
	}
}

// Delete удаляет тендер. Удаление отсутствующего ID - no-op.
func (r *TenderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// фильтруем в новый срез: при ошибке записи старый остается нетронутым
	kept := make([]models.Tender, 0, len(r.tenders))
	for _, t := range r.tenders {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(r.tenders) {
		return nil
	}
	if err := SaveCollection(ctx, r.blob, KeyTenders, kept); err != nil {
		return err
	}
	r.tenders = kept
	return nil
}

// List возвращает снимок всей коллекции
func (r *TenderRepository) List() []models.Tender {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.tenders)
}

// ListActive возвращает тендеры с expiryDate >= now. Истекшие записи
// скрываются из выдачи, но не удаляются. Порядок - забота вызывающего.
func (r *TenderRepository) ListActive(now time.Time) []models.Tender {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := []models.Tender{}
	for _, t := range r.tenders {
		if !t.ExpiryDate.Before(now) {
			active = append(active, t)
		}
	}
	return active
}

// ListByPoster возвращает тендеры, размещенные пользователем
func (r *TenderRepository) ListByPoster(posterID string) []models.Tender {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mine := []models.Tender{}
	for _, t := range r.tenders {
		if t.PosterID == posterID {
			mine = append(mine, t)
		}
	}
	return mine
}

// Search фильтрует активные тендеры по подстроке (название, описание,
// локация) и категории, сортируя от новых к старым.
func (r *TenderRepository) Search(query, category string, now time.Time) []models.Tender {
	q := strings.ToLower(query)

	found := []models.Tender{}
	for _, t := range r.ListActive(now) {
		if category != "" && t.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) &&
			!strings.Contains(strings.ToLower(t.Location), q) {
			continue
		}
		found = append(found, t)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].CreatedAt.After(found[j].CreatedAt)
	})
	return found
}
