package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Ключи коллекций. Имена исторические, из первой версии приложения.
const (
	KeyTenders      = "garinhca_tenders"
	KeyApplications = "garinhca_applications"
	KeyCurrentUser  = "garinhca_user"
)

// ErrNotFound возвращается бэкендом, если ключ отсутствует
var ErrNotFound = errors.New("store: key not found")

// Blob - долговременное key-value хранилище. Каждая коллекция
// сериализуется и перезаписывается целиком, без частичных записей
// и транзакций между ключами.
type Blob interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// LoadCollection читает коллекцию по ключу. Отсутствующий ключ, ошибка
// бэкенда, битый JSON и литерал null не считаются ошибкой: возвращается
// копия fallback. Результат всегда не-nil.
func LoadCollection[T any](ctx context.Context, b Blob, key string, fallback []T) []T {
	data, err := b.Load(ctx, key)
	if err != nil {
		return cloneSlice(fallback)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return cloneSlice(fallback)
	}
	return items
}

func cloneSlice[T any](src []T) []T {
	out := make([]T, 0, len(src))
	return append(out, src...)
}

// SaveCollection сериализует и полностью перезаписывает коллекцию
func SaveCollection[T any](ctx context.Context, b Blob, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := b.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
