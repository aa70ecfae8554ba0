/*
Copyright 2024 The CaptionHub Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package napp

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"

	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/internal/captionhub-api/validation"
	"github.com/captionhub/pkg/captionhub-api/conf"
	"github.com/captionhub/pkg/captionhub-api/pkg/cache"
	redis2 "github.com/captionhub/pkg/captionhub-api/pkg/redis"
)

const (
	// ModeDebug debug mode
	ModeDebug string = "debug"
	// ModeRelease release mode
	ModeRelease string = "release"
	// ModeTest test mode
	ModeTest string = "test"
)

// App is singleton
var App *Application

// Application a container for your application.
type Application struct {
	Conf        *conf.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Router      *gin.Engine
	Debug       bool
	Validate    *validator.Validate
}

// New create a app
func New(cfg *conf.Config) *Application {
	app := new(Application)
	app.Conf = cfg

	// init db
	app.DB = model.Init()

	// migrate db
	model.MigrateDB()

	// init redis
	app.RedisClient = redis2.Init()

	// init cache driver
	switch viper.GetString("cache.driver") {
	case "redis":
		cache.Client = cache.NewRedisCache(app.RedisClient, viper.GetString("cache.prefix"), cache.JSONEncoding{})
	default:
		cache.Client = cache.NewMemoryCache(viper.GetString("cache.prefix"), cache.JSONEncoding{})
	}

	// init router
	// Set gin mode.
	gin.SetMode(gin.ReleaseMode)
	if viper.GetString("app.run_mode") == ModeDebug {
		gin.SetMode(ModeDebug)
		app.DB.Debug()
	}
	app.Router = gin.Default()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("filtername", validation.FilterName)
	}

	// init log
	conf.InitLog()

	if viper.GetString("app.run_mode") == ModeDebug {
		app.Debug = true
	}

	// init validate
	app.Validate = validator.New()

	return app
}

// Run start a app
func (a *Application) Run() {
	log.Printf("Start to listening the incoming requests on http address: %s", viper.GetString("app.addr"))
	srv := &http.Server{
		Addr:    viper.GetString("app.addr"),
		Handler: a.Router,
	}
	go func() {
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err.Error())
		}
	}()

	gracefulStop(srv)
}

// gracefulStop waits for an interrupt and shuts the server down
// with a 5 second grace period for in-flight requests.
func gracefulStop(srv *http.Server) {
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exiting")
}
