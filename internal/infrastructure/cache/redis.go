package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nsushman/Project-Vealth/internal/carousel"
	"github.com/nsushman/Project-Vealth/internal/domain"
)

type SessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

func (c *SessionCache) SaveRefresh(ctx context.Context, uid string, refreshToken string) error {
	// Храним 7 дней
	return c.client.Set(ctx, "refresh_token:"+refreshToken, uid, 7*24*time.Hour).Err()
}

func (c *SessionCache) CheckRefresh(ctx context.Context, refreshToken string) (string, error) {
	return c.client.Get(ctx, "refresh_token:"+refreshToken).Result()
}

func (c *SessionCache) DeleteRefresh(ctx context.Context, refreshToken string) error {
	return c.client.Del(ctx, "refresh_token:"+refreshToken).Err()
}

// Позиция карусели не переживает перезагрузку страницы,
// поэтому TTL короткий и колода создается заново на каждый вход.
const deckTTL = 30 * time.Minute

type DeckCache struct {
	client *redis.Client
}

func NewDeckCache(client *redis.Client) *DeckCache {
	return &DeckCache{client: client}
}

func (c *DeckCache) Save(ctx context.Context, deckID string, deck *carousel.Deck) error {
	data, err := json.Marshal(deck)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "lesson_deck:"+deckID, data, deckTTL).Err()
}

func (c *DeckCache) Get(ctx context.Context, deckID string) (*carousel.Deck, error) {
	val, err := c.client.Get(ctx, "lesson_deck:"+deckID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDeckNotFound
		}
		return nil, err
	}

	var deck carousel.Deck
	if err := json.Unmarshal([]byte(val), &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

func (c *DeckCache) Delete(ctx context.Context, deckID string) error {
	return c.client.Del(ctx, "lesson_deck:"+deckID).Err()
}
