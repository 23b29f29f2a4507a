package main

import (
	"context"
	"strconv"
	"time"

	"github.com/go-kit/log/level"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/qpost/go-qpost-server/global"
	"github.com/qpost/go-qpost-server/repository"
	"github.com/qpost/go-qpost-server/services"
	"github.com/qpost/go-qpost-server/types"
)

// ConfigRedisClient connects to the key-value store and verifies the
// connection before the server accepts traffic.
func ConfigRedisClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     global.Conf.Redis.Host + ":" + strconv.Itoa(global.Conf.Redis.Port),
		Username: global.Conf.Redis.Username,
		Password: global.Conf.Redis.Password,
		DB:       global.Conf.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		global.Logger.Log("err", err, "msg", "failed to connect to redis")
		panic(err)
	}
	return client
}

// ConfigRateLimiter initializes the global rate limiter when enabled.
// Rate limit counters live in their own redis database next to the mail data.
func ConfigRateLimiter() *redis.Client {
	if !global.Conf.RateLimit.Enabled {
		return nil
	}
	rlClient := redis.NewClient(&redis.Options{
		Addr:     global.Conf.Redis.Host + ":" + strconv.Itoa(global.Conf.Redis.Port),
		Username: global.Conf.Redis.Username,
		Password: global.Conf.Redis.Password,
		DB:       global.Conf.Redis.DB + 1,
	})
	global.RateLimiter = redis_rate.NewLimiter(rlClient)
	return rlClient
}

// ConfigStatsJob schedules the periodic collection stats log entry.
func ConfigStatsJob(env *types.Environment, mailRepo repository.MailRepository) {
	schedule := global.Conf.Stats.Schedule
	if schedule == "" {
		return
	}
	statsService := services.NewStatsService(mailRepo)
	_, err := env.Cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		stats, sErr := statsService.Stats(ctx)
		if sErr != nil {
			level.Warn(global.Logger).Log("msg", "failed to collect mail stats", "err", sErr)
			return
		}
		level.Info(global.Logger).Log("msg", "mail collection stats", "total", stats.Total, "unread", stats.Unread)
	})
	if err != nil {
		global.Logger.Log("err", err, "msg", "invalid stats schedule")
		panic(err)
	}
	env.Cron.Start()
}
