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

package user

import (
	"github.com/gin-gonic/gin"

	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
	"github.com/captionhub/pkg/captionhub-api/pkg/token"
)

// RefreshToken exchanges a refresh token pair for a fresh one
// @Summary Refresh token
// @Description Exchange an access and refresh token pair for a new pair
// @Tags Users
// @Produce  json
// @Success 200 {string} json "{"code":0,"message":"OK","data":{"token":"...","refresh_token":"..."}}"
// @Router /v1/token/refresh [post]
func RefreshToken(c *gin.Context) {
	t, rt, err := token.RefreshFromRequest(c)
	if err != nil {
		log.Warnf("refresh token err: %v", err)
		api.SendResponse(c, errno.ErrTokenInvalid, nil)
		return
	}

	api.SendResponse(c, nil, model.Token{
		Token:        t,
		RefreshToken: rt,
	})
}
