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

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/token"
)

// AuthMiddleware rejects requests without a valid token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the json web token.
		ctx, err := token.ParseRequest(c)
		if err != nil {
			api.SendResponse(c, errno.ErrTokenInvalid, nil)
			c.Abort()
			return
		}

		// set uid to context
		c.Set("uid", ctx.Uuid)
		c.Set("userId", ctx.UserID)
		c.Set("isAdmin", ctx.IsAdmin)

		c.Next()
	}
}

// OptionalAuthMiddleware parses a token when one is present but lets
// anonymous requests through. Used on public read endpoints where a
// login widens visibility.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Header.Get("Authorization") != "" {
			ctx, err := token.ParseRequest(c)
			if err != nil {
				api.SendResponse(c, errno.ErrTokenInvalid, nil)
				c.Abort()
				return
			}
			c.Set("uid", ctx.Uuid)
			c.Set("userId", ctx.UserID)
			c.Set("isAdmin", ctx.IsAdmin)
		}

		c.Next()
	}
}
