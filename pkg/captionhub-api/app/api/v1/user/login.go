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
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// Login exchanges credentials for a token pair
// @Summary Login
// @Description Username and password login
// @Tags Users
// @Produce  json
// @Param login body user.LoginCredentials true "Login user info"
// @Success 200 {string} json "{"code":0,"message":"OK","data":{"token":"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"}}"
// @Router /v1/login [post]
func Login(c *gin.Context) {
	// Binding the data with the u struct.
	var req LoginCredentials
	if err := c.Bind(&req); err != nil {
		log.Warnf("login bind param err: %v", err)
		api.SendResponse(c, errno.ErrBind, nil)
		return
	}

	// check param
	if req.Username == "" || req.Password == "" {
		log.Warnf("username or password is empty: %v", req)
		api.SendResponse(c, errno.ErrParam, nil)
		return
	}

	t, rt, err := service.Svc.UserSvc.UsernameLogin(c, req.Username, req.Password)
	if err != nil {
		log.Warnf("login err: %v", err)
		api.SendResponse(c, errno.ErrUserOrPassword, nil)
		return
	}

	api.SendResponse(c, nil, model.Token{
		Token:        t,
		RefreshToken: rt,
	})
}
