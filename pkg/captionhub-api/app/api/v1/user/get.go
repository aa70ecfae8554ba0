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
	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
)

// Me returns the authenticated user
// @Summary Current user
// @Description Get the authenticated user profile
// @Tags Users
// @Produce  json
// @Success 200 {string} json "{"code":0,"message":"OK","data":{"id":1,"username":"demo"}}"
// @Router /v1/me [get]
func Me(c *gin.Context) {
	userId := api.GetUserID(c)
	u, err := service.Svc.UserSvc.GetCache(userId)
	if err != nil || u.ID == 0 {
		api.SendResponse(c, errno.ErrUserNotFound, nil)
		return
	}

	api.SendResponse(c, nil, model.UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	})
}
