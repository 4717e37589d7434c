package store

import (
	"context"
	"sync"
	"time"

	"garinhca/models"
)

// ApplicationLedger владеет коллекцией откликов и следит за инвариантом:
// не более одного отклика на пару (tenderId, userId). Уникальность
// обеспечивается при записи, а не ограничением хранилища.
type ApplicationLedger struct {
	mu   sync.RWMutex
	blob Blob
	apps []models.Application
	now  func() time.Time
}

type LedgerOption func(*ApplicationLedger)

// WithLedgerClock подменяет источник времени (для тестов)
func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(l *ApplicationLedger) { l.now = now }
}

func NewApplicationLedger(ctx context.Context, blob Blob, opts ...LedgerOption) *ApplicationLedger {
	l := &ApplicationLedger{
		blob: blob,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.apps = LoadCollection(ctx, blob, KeyApplications, []models.Application{})
	return l
}

// Apply записывает отклик. Возвращает false без мутации, если пара
// (tenderId, userId) уже есть. Линейный поиск: коллекция небольшая.
func (l *ApplicationLedger) Apply(ctx context.Context, tenderID, userID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.exists(tenderID, userID) {
		return false, nil
	}

	l.apps = append(l.apps, models.Application{
		TenderID:  tenderID,
		UserID:    userID,
		AppliedAt: l.now(),
	})
	if err := SaveCollection(ctx, l.blob, KeyApplications, l.apps); err != nil {
		// откатываем, чтобы память не расходилась с хранилищем
		l.apps = l.apps[:len(l.apps)-1]
		return false, err
	}
	return true, nil
}

func (l *ApplicationLedger) exists(tenderID, userID string) bool {
	for _, a := range l.apps {
		if a.TenderID == tenderID && a.UserID == userID {
			return true
		}
	}
	return false
}

// HasApplied сообщает, откликался ли пользователь на тендер
func (l *ApplicationLedger) HasApplied(tenderID, userID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.exists(tenderID, userID)
}

// ListByUser возвращает отклики пользователя, без гарантий порядка
func (l *ApplicationLedger) ListByUser(userID string) []models.Application {
	l.mu.RLock()
	defer l.mu.RUnlock()

	mine := []models.Application{}
	for _, a := range l.apps {
		if a.UserID == userID {
			mine = append(mine, a)
		}
	}
	return mine
}

// ListByTender возвращает отклики на тендер
func (l *ApplicationLedger) ListByTender(tenderID string) []models.Application {
	l.mu.RLock()
	defer l.mu.RUnlock()

	found := []models.Application{}
	for _, a := range l.apps {
		if a.TenderID == tenderID {
			found = append(found, a)
		}
	}
	return found
}

// List возвращает снимок всех откликов
func (l *ApplicationLedger) List() []models.Application {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneSlice(l.apps)
}

// RemoveByTender удаляет отклики на тендер. Вызывается при каскадном
// удалении тендера; для отсутствующего tenderID - no-op.
func (l *ApplicationLedger) RemoveByTender(ctx context.Context, tenderID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// фильтруем в новый срез: при ошибке записи старый остается нетронутым
	kept := make([]models.Application, 0, len(l.apps))
	for _, a := range l.apps {
		if a.TenderID != tenderID {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(l.apps) {
		return nil
	}
	if err := SaveCollection(ctx, l.blob, KeyApplications, kept); err != nil {
		return err
	}
	l.apps = kept
	return nil
}
