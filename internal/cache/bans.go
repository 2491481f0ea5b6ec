package cache

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
)

func NewClient(cfg *config.Config) *redis.Client {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	return redis.NewClient(opt)
}

// BanList mantém os usuários banidos no Redis para que o ban derrube
// tokens JWT ainda válidos. O flag persistente fica no Postgres; isto
// aqui é só o corte imediato no middleware.
type BanList struct {
	rdb *redis.Client
}

func NewBanList(rdb *redis.Client) *BanList {
	return &BanList{rdb: rdb}
}

func banKey(userID string) string {
	return "banned:" + userID
}

func (b *BanList) Ban(ctx context.Context, userID string) error {
	return b.rdb.Set(ctx, banKey(userID), "1", 0).Err()
}

func (b *BanList) Unban(ctx context.Context, userID string) error {
	return b.rdb.Del(ctx, banKey(userID)).Err()
}

func (b *BanList) IsBanned(ctx context.Context, userID string) bool {
	n, err := b.rdb.Exists(ctx, banKey(userID)).Result()
	if err != nil {
		// Redis fora do ar não pode derrubar a API; o flag no banco
		// ainda bloqueia no próximo login.
		log.Println("ban check error:", err)
		return false
	}
	return n > 0
}
