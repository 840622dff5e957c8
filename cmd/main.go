package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coneno/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/okteto/attendees-function/pkg/config"
	"github.com/okteto/attendees-function/pkg/db"
	"github.com/okteto/attendees-function/pkg/http/handlers"
	"github.com/okteto/attendees-function/pkg/http/middlewares"
	"github.com/okteto/attendees-function/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var conf config.Config

func init() {
	conf = config.InitConfig()
	if !conf.GinDebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.SetLevel(conf.LogLevel)
}

func healthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func main() {
	logger.Info.Println("Starting attendees function")

	dbService := db.NewAttendeesDBService(conf.DBConfig)
	m := metrics.New(prometheus.DefaultRegisterer, dbService)

	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  conf.AllowOrigins,
		AllowMethods:  []string{"POST", "GET"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length"},
		ExposeHeaders: []string{"Content-Type", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	router.GET("/_/health", healthCheckHandle)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiRoot := router.Group("")
	apiRoot.Use(middlewares.ObserveRequests(m))

	apiHandlers := handlers.NewHTTPHandler(dbService)
	apiHandlers.AddAttendeesAPI(apiRoot)

	srv := &http.Server{
		Addr:    ":" + conf.Port,
		Handler: router,
	}
	go func() {
		logger.Info.Printf("attendees function is listening on port %s", conf.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(conf.DBConfig.Timeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("server shutdown: %v", err)
	}
	if err := dbService.Close(shutdownCtx); err != nil {
		logger.Error.Printf("db disconnect: %v", err)
	}
	logger.Info.Println("attendees function stopped")
}
