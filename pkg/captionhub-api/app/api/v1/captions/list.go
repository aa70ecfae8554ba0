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

package captions

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// List returns recent captions visible to the caller
// @Summary List captions
// @Description Newest-first public captions, plus the caller's private ones when logged in
// @Tags Captions
// @Produce  json
// @Param limit query int false "Max rows, default 10"
// @Success 200 {string} json "{"code":0,"message":"OK","data":[...]}"
// @Router /v1/captions [get]
func List(c *gin.Context) {
	limit := cast.ToInt(c.DefaultQuery("limit", "0"))

	infos, err := service.Svc.CaptionSvc.List(c, api.GetUserID(c), limit)
	if err != nil {
		log.Warnf("list captions err: %v", err)
		api.SendResponse(c, errno.ErrCaptionGet, nil)
		return
	}

	list := make([]detail, 0, len(infos))
	for _, info := range infos {
		list = append(list, newDetail(info))
	}
	api.SendResponse(c, nil, list)
}
