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

	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// ChangePassword verifies the old password and stores a new one
// @Summary Change password
// @Description Change the authenticated user's password
// @Tags Users
// @Produce  json
// @Param password body user.ChangePasswordRequest true "Password change"
// @Success 200 {string} json "{"code":0,"message":"OK","data":null}"
// @Router /v1/users/password [put]
func ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("change password bind param err: %v", err)
		api.SendResponse(c, errno.ErrBind, nil)
		return
	}

	if req.OldPassword == "" || req.NewPassword == "" {
		api.SendResponse(c, errno.ErrParam, nil)
		return
	}
	if len(req.NewPassword) < 8 {
		api.SendResponse(c, errno.ErrPasswordFormat, nil)
		return
	}
	if req.ConfirmPassword != "" && req.NewPassword != req.ConfirmPassword {
		api.SendResponse(c, errno.ErrTwicePasswordNotMatch, nil)
		return
	}

	userId := api.GetUserID(c)
	if err := service.Svc.UserSvc.ChangePassword(c, userId, req.OldPassword, req.NewPassword); err != nil {
		log.Warnf("change password err: %v", err)
		api.SendResponse(c, errno.ErrPasswordIncorrect, nil)
		return
	}

	api.SendResponse(c, nil, nil)
}
