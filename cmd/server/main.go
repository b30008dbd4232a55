package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/Luismorlan/yatube/activity"
	"github.com/Luismorlan/yatube/activity/modules"
	"github.com/Luismorlan/yatube/app_setting"
	"github.com/Luismorlan/yatube/cache"
	"github.com/Luismorlan/yatube/file_store"
	"github.com/Luismorlan/yatube/server"
	. "github.com/Luismorlan/yatube/utils"
	"github.com/Luismorlan/yatube/utils/dotenv"
	. "github.com/Luismorlan/yatube/utils/flag"
	. "github.com/Luismorlan/yatube/utils/log"
	"github.com/alexedwards/scs/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func cleanup() {
	CloseProfiler()
	CloseTracer()
	Log.Info("web server shutdown")
}

func NewDogStatsdClient() statsd.ClientInterface {
	host := os.Getenv("DD_AGENT_HOST")
	if host == "" {
		return &statsd.NoOpClient{}
	}
	client, err := statsd.New(host + ":8125")
	if err != nil {
		Log.Error("cannot create statsd client, metrics are dropped: ", err)
		return &statsd.NoOpClient{}
	}
	return client
}

// pageCacheAndSessions picks redis backed stores when redis is configured,
// in-process ones otherwise.
func pageCacheAndSessions(ctx context.Context, setting app_setting.YatubeAppSetting) (cache.Store, *scs.SessionManager) {
	secure := dotenv.IsProdEnv()
	if !IsRedisConfigured() {
		Log.Info("redis not configured, page cache and sessions stay in memory")
		lru, err := cache.NewLRUStore(setting.PAGE_CACHE_LRU_SIZE)
		if err != nil {
			panic(err)
		}
		return lru, server.NewSessionManager(nil, setting.SessionLifetime(), secure)
	}

	client, err := GetRedisClient(ctx)
	if err != nil {
		panic(err)
	}
	return cache.NewRedisStore(client),
		server.NewSessionManager(server.NewRedisSessionStore(client), setting.SessionLifetime(), secure)
}

func main() {
	Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	InitLogger()
	defer cleanup()

	StartTracer()
	if dotenv.IsProdEnv() {
		StartProfiler()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setting, err := app_setting.ParseYatubeAppSetting(AppSettingPath)
	if err != nil {
		panic(err)
	}

	db, err := GetDBConnection()
	if err != nil {
		panic(err)
	}
	DatabaseSetupAndMigration(db)

	images, err := file_store.NewImageStoreFromEnv(ctx)
	if err != nil {
		panic(err)
	}
	pageCache, sessions := pageCacheAndSessions(ctx, setting)

	// Activity engine: metrics and image cleanup run beside request handling.
	bus := activity.NewBus()
	engine := activity.NewEngine([]activity.Module{
		modules.NewReporter(modules.ReporterConfig{Name: "reporter"}, NewDogStatsdClient(), bus),
		modules.NewImageJanitor(modules.ImageJanitorConfig{Name: "image_janitor"}, images, bus),
	}, bus)
	engineDone := make(chan struct{})
	go func() {
		engine.Run(ctx)
		close(engineDone)
	}()

	if !IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	srv, err := server.New(server.Deps{
		DB:        db,
		Setting:   setting,
		Images:    images,
		PageCache: pageCache,
		Sessions:  sessions,
		Publisher: bus,
		Middlewares: []gin.HandlerFunc{
			gin.Logger(),
			cors.Default(),
			gintrace.Middleware(ServiceName),
		},
	})
	if err != nil {
		panic(err)
	}

	httpServer := &http.Server{Addr: Addr, Handler: srv.Handler()}
	go func() {
		Log.Infof("web server starts up on %s", Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Log.Error("web server stopped: ", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		Log.Error("cannot shutdown web server gracefully: ", err)
	}
	<-engineDone
	bus.Close()
}
