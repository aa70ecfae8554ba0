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
	"github.com/captionhub/pkg/captionhub-api/pkg/utils"
)

// Register creates an account
// @Summary Register
// @Description Register a new user
// @Tags Users
// @Produce  json
// @Param register body user.RegisterRequest true "Reg user info"
// @Success 200 {string} json "{"code":0,"message":"OK","data":{"id":1,"username":"demo"}}"
// @Router /v1/register [post]
func Register(c *gin.Context) {
	// Binding the data with the u struct.
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("register bind param err: %v", err)
		api.SendResponse(c, errno.ErrBind, nil)
		return
	}

	// check param
	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Warnf("params is empty: %v", req)
		api.SendResponse(c, errno.ErrParam, nil)
		return
	}

	if !utils.IsUsername(req.Username) {
		api.SendResponse(c, errno.ErrUsernameFormat, nil)
		return
	}
	if !utils.IsEmail(req.Email) {
		api.SendResponse(c, errno.ErrEmailFormat, nil)
		return
	}
	if len(req.Password) < 8 {
		api.SendResponse(c, errno.ErrPasswordFormat, nil)
		return
	}
	if req.ConfirmPassword != "" && req.Password != req.ConfirmPassword {
		log.Warnf("twice password is not same")
		api.SendResponse(c, errno.ErrTwicePasswordNotMatch, nil)
		return
	}

	if u, err := service.Svc.UserSvc.GetUserByUsername(c, req.Username); err == nil && u != nil && u.ID > 0 {
		api.SendResponse(c, errno.ErrUserExist, nil)
		return
	}
	if u, err := service.Svc.UserSvc.GetUserByEmail(c, req.Email); err == nil && u != nil && u.ID > 0 {
		api.SendResponse(c, errno.ErrUserExist, nil)
		return
	}

	result, err := service.Svc.UserSvc.Register(c, req.Username, req.Email, req.Password)
	if err != nil {
		log.Warnf("register err: %v", err)
		api.SendResponse(c, errno.ErrRegisterFailed, nil)
		return
	}

	api.SendResponse(c, nil, gin.H{
		"id":       result.ID,
		"username": result.Username,
		"email":    result.Email,
	})
}
