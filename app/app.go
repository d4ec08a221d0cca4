package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"chatflow/config"
	"chatflow/pkg/cache"
	controllersLib "chatflow/pkg/controllers"
	"chatflow/pkg/entities"
	"chatflow/pkg/middlewares"
	repoLib "chatflow/pkg/repo"
	"chatflow/pkg/repo/driver/medium"
	"chatflow/pkg/repo/driver/store"
	"chatflow/pkg/seed"
	"chatflow/pkg/usecases"
	"chatflow/utilities"
)

func Run() {
	ctx := context.Background()
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	// init the env config
	conf, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("unable to initialize environment variables %s", err.Error())
	}

	// Initialise the logger
	utilities.InitLogger(conf.LogLevel)
	log := utilities.NewLogger("run")

	log.Info("Initialising store")
	db, err := store.NewFileStore(conf.Store.Path)
	if err != nil {
		log.Fatal("unable to open store file ", err.Error())
	}

	log.Info("Initialising cache")
	cache.Init()

	// here initalizing the router
	router := initRouter(conf)
	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	api := router.Group(conf.Server.APIPrefix)

	eventWS := medium.NewEventSocket()
	notifier := medium.NewNotifier(conf.Notification.Permission, nil, nil)

	{
		// repo initialization
		userRepo := repoLib.NewUserRepo(db, conf)
		chatRepo := repoLib.NewChatRepo(db, conf)

		if conf.Seed.DemoUsers {
			log.Info("Initialising demo data")
			seed.DemoUsers(ctx, userRepo)
		}

		// the single session, shared by both usecases
		session := &entities.Session{}

		// initializing usecases
		userUseCases := usecases.NewUserUseCases(userRepo, conf, session)
		chatUseCases := usecases.NewChatUseCases(chatRepo, userRepo, session, notifier, eventWS)

		log.Info("Restoring persisted session")
		userUseCases.RestoreSession(ctx)

		// initializing middleware
		m := middlewares.NewMiddlewares(session)

		// initializing controllers
		userControllers := controllersLib.NewUserController(api, userUseCases, m)
		chatControllers := controllersLib.NewChatController(api, chatUseCases, eventWS, m)

		// init the routes
		userControllers.InitRoutes()
		chatControllers.InitRoutes()
	}

	// run the app
	launch(cancelFn, router)
}

func initRouter(conf *config.ChatflowConfModel) *gin.Engine {
	router := gin.Default()

	router.Use(
		cors.New(
			cors.Config{
				AllowOrigins: []string{"*"},
				AllowMethods: []string{"PUT", "PATCH", "POST", "DELETE", "GET", "OPTIONS"},
				AllowHeaders: []string{
					"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept",
					"origin", "Cache-Control",
				},
				AllowCredentials: true,
				MaxAge:           12 * time.Hour,
			},
		),
	)

	router.Use(gzip.Gzip(gzip.DefaultCompression))

	return router
}

// launch
func launch(cancelFn context.CancelFunc, router *gin.Engine) {
	log := utilities.NewLogger("launch")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.GetConfig().Server.Port),
		Handler: router,
	}

	go func() {
		// service connections
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()
	fmt.Println("Server listening in...", config.GetConfig().Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown Server ...")
	cancelFn()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}
