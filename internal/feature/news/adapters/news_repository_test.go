package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"crypto_dashboard/internal/feature/news/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&NewsModel{}), "failed to migrate table")
	return db
}

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func item(url, source string, at time.Time, coins ...string) entity.NewsItem {
	return entity.NewsItem{Title: "Headline for " + url, URL: url, Source: source, PublishedAt: at, RelatedCoins: coins}
}

func TestNewsRepository_AddNewsItem_DuplicateURL(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()

	ok, err := repo.AddNewsItem(ctx, item("https://example.com/a", "CoinDesk", t0))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AddNewsItem(ctx, item("https://example.com/a", "CryptoNews", t0.Add(time.Hour)))
	require.NoError(t, err)
	assert.False(t, ok, "duplicate url is not inserted")

	var n int64
	require.NoError(t, db.Model(&NewsModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestNewsRepository_RecentNews(t *testing.T) {
	t.Parallel()

	repo := NewNewsRepository(setupTestDB(t))
	ctx := context.Background()

	for i, src := range []string{"CoinDesk", "CryptoNews", "CoinDesk", "TokenPost"} {
		_, err := repo.AddNewsItem(ctx, item("https://example.com/"+string(rune('a'+i)), src, t0.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	all, err := repo.RecentNews(ctx, 3, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "https://example.com/d", all[0].URL, "newest first")
	assert.Equal(t, "https://example.com/b", all[2].URL)
	assert.NotZero(t, all[0].ID)
	assert.False(t, all[0].CollectedAt.IsZero())

	cd, err := repo.RecentNews(ctx, 10, "CoinDesk")
	require.NoError(t, err)
	require.Len(t, cd, 2)
	assert.Equal(t, "https://example.com/c", cd[0].URL)
}

func TestNewsRepository_NewsByCoin(t *testing.T) {
	t.Parallel()

	repo := NewNewsRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.AddNewsItem(ctx, item("https://example.com/1", "CoinDesk", t0, "BTC", "ETH"))
	require.NoError(t, err)
	_, err = repo.AddNewsItem(ctx, item("https://example.com/2", "CoinDesk", t0.Add(time.Minute), "ETH"))
	require.NoError(t, err)
	_, err = repo.AddNewsItem(ctx, item("https://example.com/3", "CoinDesk", t0.Add(2*time.Minute)))
	require.NoError(t, err)

	got, err := repo.NewsByCoin(ctx, "eth", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://example.com/2", got[0].URL)
	assert.Equal(t, []string{"BTC", "ETH"}, got[1].RelatedCoins)

	got, err = repo.NewsByCoin(ctx, "SOL", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "비트", truncate("비트코인", 2))
}
