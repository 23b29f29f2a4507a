package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log/level"

	"github.com/qpost/go-qpost-server/apiroutes"
	"github.com/qpost/go-qpost-server/global"
	"github.com/qpost/go-qpost-server/repository"
	"github.com/qpost/go-qpost-server/types"
)

func main() {
	var (
		configFile string
	)
	// configuration file optional path. Default: current dir with filename conf.yaml
	flag.StringVar(&configFile, "c", "conf.yaml", "Configuration file path.")
	flag.StringVar(&configFile, "config", "conf.yaml", "Configuration file path.")
	flag.Usage = usage
	flag.Parse()

	// loading configuration file
	if err := global.LoadConfig(configFile); err != nil {
		global.Logger.Log("err", err, "msg", "configuration failed to load")
		panic("failed to load configuration")
	}

	if global.Conf.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// the key-value store holding the mail collection blob
	redisClient := ConfigRedisClient()
	defer redisClient.Close()

	// optional per-client rate limiting (separate redis database)
	rlClient := ConfigRateLimiter()
	if rlClient != nil {
		defer rlClient.Close()
	}

	env := types.NewEnvironment(redisClient)
	mailRepo := repository.NewRedisMailRepository(env.RedisClient)
	ConfigStatsJob(env, mailRepo)
	defer env.Cron.Stop()

	// init routing (for RESTful API endpoints)
	router := gin.New()
	router = apiroutes.ConfigRoutes(router, mailRepo)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", global.Conf.Host, global.Conf.Port),
		Handler: router,
	}

	// server wait to shutdown monitoring channels
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		level.Info(global.Logger).Log("msg", "shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			level.Error(global.Logger).Log("msg", "forced shutdown", "err", err)
		}
		close(done)
	}()

	level.Info(global.Logger).Log("msg", "server is ready to handle requests", "port", global.Conf.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(fmt.Sprintf("%v\n", err))
	}

	<-done
}

// usage will print out the flag options for the server.
func usage() {
	usageStr := `Usage: go-qpost-server [options]
	Server Options:
	-c, --config <file>              Configuration file path
`
	fmt.Printf("%s\n", usageStr)
	os.Exit(0)
}
