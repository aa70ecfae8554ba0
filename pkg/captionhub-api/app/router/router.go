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

package routers

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/app/api/v1/captions"
	"github.com/captionhub/pkg/captionhub-api/app/api/v1/images"
	"github.com/captionhub/pkg/captionhub-api/app/api/v1/share"
	"github.com/captionhub/pkg/captionhub-api/app/api/v1/user"
	"github.com/captionhub/pkg/captionhub-api/app/router/middleware"
)

// Load loads the middlewares, routes, handlers.
func Load(g *gin.Engine) *gin.Engine {
	g.Use(middleware.RequestID())
	g.Use(middleware.Metrics())

	if viper.GetString("app.run_mode") == gin.DebugMode {
		pprof.Register(g)
	}

	g.NoRoute(api.RouteNotFound)

	// public share links
	g.GET("/s/:slug", share.Resolve)

	v1 := g.Group("/v1")
	{
		v1.POST("/register", user.Register)
		v1.POST("/login", user.Login)
		v1.POST("/token/refresh", user.RefreshToken)

		// image tooling, no account needed
		v1.GET("/images/filters", images.Filters)
		v1.POST("/images/analyze", images.Analyze)
		v1.POST("/images/effects", images.ApplyEffect)
		v1.POST("/images/compare", images.Compare)
	}

	// read endpoints widen for logged-in users, guests see public data
	optional := g.Group("/v1")
	optional.Use(middleware.OptionalAuthMiddleware())
	{
		optional.POST("/captions", captions.Create)
		optional.GET("/captions", captions.List)
		optional.GET("/captions/:id", captions.Get)
		optional.GET("/captions/:id/image", captions.GetImage)
		optional.GET("/captions/:id/thumbnail", captions.GetThumbnail)
		optional.DELETE("/captions/:id", captions.Delete)
		optional.POST("/captions/:id/share", share.Create)
	}

	// owner-only operations
	authed := g.Group("/v1")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/me", user.Me)
		authed.PUT("/users/password", user.ChangePassword)
		authed.PUT("/captions/:id/privacy", captions.UpdatePrivacy)
	}

	return g
}
