package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordkitchen/foodtruck-manager/internal/dto"
)

func TestCache(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	c := New(client, time.Hour, zerolog.Nop())
	ctx := context.Background()

	t.Run("SetAndGetList", func(t *testing.T) {
		rows := []dto.ProductRow{
			{Name: "Smash burger", Price: 119, Category: "Main", Ingredients: []string{"Beef patty", "Brioche bun"}},
		}
		c.SetList(ctx, KeyProducts, rows)

		var got []dto.ProductRow
		hit := c.GetList(ctx, KeyProducts, &got)
		assert.True(t, hit)
		require.Len(t, got, 1)
		assert.Equal(t, "Smash burger", got[0].Name)
		assert.Equal(t, []string{"Beef patty", "Brioche bun"}, got[0].Ingredients)
	})

	t.Run("MissReturnsFalse", func(t *testing.T) {
		var got []dto.BookingRow
		hit := c.GetList(ctx, KeyBookings, &got)
		assert.False(t, hit)
	})

	t.Run("Invalidate", func(t *testing.T) {
		c.SetList(ctx, KeyProducts, []dto.ProductRow{{Name: "Fries"}})
		c.Invalidate(ctx, KeyProducts)

		var got []dto.ProductRow
		hit := c.GetList(ctx, KeyProducts, &got)
		assert.False(t, hit)
	})
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	ctx := context.Background()

	var nilCache *Cache
	assert.False(t, nilCache.GetList(ctx, KeyProducts, &[]dto.ProductRow{}))
	nilCache.SetList(ctx, KeyProducts, []dto.ProductRow{})
	nilCache.Invalidate(ctx, KeyProducts)

	disabled := New(nil, time.Hour, zerolog.Nop())
	assert.False(t, disabled.GetList(ctx, KeyProducts, &[]dto.ProductRow{}))
	disabled.SetList(ctx, KeyProducts, []dto.ProductRow{})
	disabled.Invalidate(ctx, KeyProducts)
}
