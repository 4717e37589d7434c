package store_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"garinhca/models"
	"garinhca/store"
)

var testTime = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTenderRepo(t *testing.T) *store.TenderRepository {
	return store.NewTenderRepository(
		context.Background(),
		store.NewFileBlob(t.TempDir()),
		store.WithTenderClock(func() time.Time { return testTime }),
	)
}

func newTenderInput(title string) models.NewTender {
	return models.NewTender{
		Title:       title,
		Category:    models.CategoryPrivate,
		Email:       "poster@example.com",
		Location:    "Remote",
		Budget:      "$1,000",
		ExpiryDate:  testTime.AddDate(0, 1, 0),
		Description: "Test tender",
		PosterName:  "Poster",
		PosterID:    "poster-1",
	}
}

func TestCreateAssignsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newTenderRepo(t)

	seen := map[string]bool{}
	for _, existing := range repo.List() {
		seen[existing.ID] = true
	}

	for i := 0; i < 100; i++ {
		tender, err := repo.Create(ctx, newTenderInput(fmt.Sprintf("Tender %d", i)))
		require.NoError(t, err)
		require.False(t, seen[tender.ID], "duplicate id %s", tender.ID)
		seen[tender.ID] = true
		require.Equal(t, testTime, tender.CreatedAt)
		require.Equal(t, models.StatusOpen, tender.Status)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	repo := newTenderRepo(t)

	tender, err := repo.Create(ctx, newTenderInput("Original"))
	require.NoError(t, err)

	title := "Renamed"
	budget := "$2,000"
	found, err := repo.Update(ctx, tender.ID, models.TenderPatch{Title: &title, Budget: &budget})
	require.NoError(t, err)
	require.True(t, found)

	updated, ok := repo.GetByID(tender.ID)
	require.True(t, ok)
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, "$2,000", updated.Budget)
	// поля вне patch не трогаются
	require.Equal(t, tender.Description, updated.Description)
	require.Equal(t, tender.Location, updated.Location)
	require.Equal(t, tender.Email, updated.Email)
	// неизменяемые поля patch выразить не может
	require.Equal(t, tender.ID, updated.ID)
	require.Equal(t, tender.CreatedAt, updated.CreatedAt)
	require.Equal(t, tender.PosterID, updated.PosterID)
}

func TestUpdateMissingTender(t *testing.T) {
	repo := newTenderRepo(t)

	title := "Renamed"
	found, err := repo.Update(context.Background(), "no-such-id", models.TenderPatch{Title: &title})
	require.NoError(t, err)
	require.False(t, found)
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTenderRepo(t)

	tender, err := repo.Create(ctx, newTenderInput("To delete"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, tender.ID))
	_, ok := repo.GetByID(tender.ID)
	require.False(t, ok)

	before := len(repo.List())
	require.NoError(t, repo.Delete(ctx, tender.ID))
	require.Len(t, repo.List(), before)
}

func TestListActiveByExpiry(t *testing.T) {
	ctx := context.Background()
	repo := newTenderRepo(t)
	for _, seeded := range repo.List() {
		require.NoError(t, repo.Delete(ctx, seeded.ID))
	}

	expired := newTenderInput("Expired")
	expired.ExpiryDate = testTime.AddDate(0, 0, -1)
	onBoundary := newTenderInput("On boundary")
	onBoundary.ExpiryDate = testTime
	future := newTenderInput("Future")
	future.ExpiryDate = testTime.AddDate(0, 0, 1)

	for _, input := range []models.NewTender{expired, onBoundary, future} {
		_, err := repo.Create(ctx, input)
		require.NoError(t, err)
	}

	active := repo.ListActive(testTime)
	require.Len(t, active, 2)
	for _, tender := range active {
		require.NotEqual(t, "Expired", tender.Title)
	}

	// истекший тендер скрыт из выдачи, но не удален
	require.Len(t, repo.List(), 3)
}

func TestSearchFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	blob := store.NewFileBlob(t.TempDir())
	clock := testTime
	repo := store.NewTenderRepository(ctx, blob,
		store.WithTenderClock(func() time.Time {
			clock = clock.Add(time.Hour)
			return clock
		}),
	)
	for _, seeded := range repo.List() {
		require.NoError(t, repo.Delete(ctx, seeded.ID))
	}

	first := newTenderInput("Harbor dredging")
	first.Category = models.CategoryGovernment
	second := newTenderInput("Office cleaning")
	second.Location = "Harbor district"
	third := newTenderInput("Stale harbor works")
	third.ExpiryDate = testTime.AddDate(0, 0, -1)

	for _, input := range []models.NewTender{first, second, third} {
		_, err := repo.Create(ctx, input)
		require.NoError(t, err)
	}
	now := testTime

	// подстрока ищется в названии и локации, истекшие скрыты
	found := repo.Search("harbor", "", now)
	require.Len(t, found, 2)
	// от новых к старым
	require.Equal(t, "Office cleaning", found[0].Title)
	require.Equal(t, "Harbor dredging", found[1].Title)

	found = repo.Search("harbor", models.CategoryGovernment, now)
	require.Len(t, found, 1)
	require.Equal(t, "Harbor dredging", found[0].Title)

	require.Empty(t, repo.Search("no such text", "", now))
}

func TestRepositoryRestartRoundTrip(t *testing.T) {
	ctx := context.Background()
	blob := store.NewFileBlob(t.TempDir())
	clock := func() time.Time { return testTime }

	repo := store.NewTenderRepository(ctx, blob, store.WithTenderClock(clock))
	_, err := repo.Create(ctx, newTenderInput("Survives restart"))
	require.NoError(t, err)

	// новый репозиторий над тем же blob - имитация перезапуска процесса
	reloaded := store.NewTenderRepository(ctx, blob, store.WithTenderClock(clock))
	require.Equal(t, repo.List(), reloaded.List())
}

func TestCreateRollsBackOnSaveError(t *testing.T) {
	ctx := context.Background()
	blob := &brokenBlob{Blob: store.NewFileBlob(t.TempDir())}
	repo := store.NewTenderRepository(ctx, blob,
		store.WithTenderClock(func() time.Time { return testTime }),
	)
	before := repo.List()

	blob.saveErr = errors.New("backend unavailable")
	_, err := repo.Create(ctx, newTenderInput("Never persisted"))
	require.Error(t, err)
	// неудавшаяся запись не оседает в памяти
	require.Equal(t, before, repo.List())

	blob.saveErr = nil
	created, err := repo.Create(ctx, newTenderInput("Persisted"))
	require.NoError(t, err)
	require.Len(t, repo.List(), len(before)+1)

	// следующая успешная запись не протаскивает откаченный тендер
	reloaded := store.NewTenderRepository(ctx, blob)
	require.Len(t, reloaded.List(), len(before)+1)
	_, ok := reloaded.GetByID(created.ID)
	require.True(t, ok)
}

func TestUpdateRollsBackOnSaveError(t *testing.T) {
	ctx := context.Background()
	blob := &brokenBlob{Blob: store.NewFileBlob(t.TempDir())}
	repo := store.NewTenderRepository(ctx, blob,
		store.WithTenderClock(func() time.Time { return testTime }),
	)

	tender, err := repo.Create(ctx, newTenderInput("Stable title"))
	require.NoError(t, err)

	blob.saveErr = errors.New("backend unavailable")
	title := "Never applied"
	found, err := repo.Update(ctx, tender.ID, models.TenderPatch{Title: &title})
	require.Error(t, err)
	require.True(t, found)

	current, ok := repo.GetByID(tender.ID)
	require.True(t, ok)
	require.Equal(t, "Stable title", current.Title)
}

func TestDeleteRollsBackOnSaveError(t *testing.T) {
	ctx := context.Background()
	blob := &brokenBlob{Blob: store.NewFileBlob(t.TempDir())}
	repo := store.NewTenderRepository(ctx, blob,
		store.WithTenderClock(func() time.Time { return testTime }),
	)

	tender, err := repo.Create(ctx, newTenderInput("Still here"))
	require.NoError(t, err)

	blob.saveErr = errors.New("backend unavailable")
	require.Error(t, repo.Delete(ctx, tender.ID))

	_, ok := repo.GetByID(tender.ID)
	require.True(t, ok)
}

func TestCorruptBlobFallsBackToSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.KeyTenders+".json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	repo := store.NewTenderRepository(context.Background(), store.NewFileBlob(dir))
	require.Equal(t, store.SeedTenders(), repo.List())
}
