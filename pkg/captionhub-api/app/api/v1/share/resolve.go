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

package share

import (
	"github.com/gin-gonic/gin"

	"github.com/captionhub/internal/captionhub-api/global"
	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// Resolve follows a short slug to its caption. Possessing the slug
// grants access, visibility is not rechecked.
// @Summary Resolve share link
// @Tags Sharing
// @Produce  json
// @Param slug path string true "Share slug"
// @Success 200 {string} json "{"code":0,"message":"OK","data":{...}}"
// @Router /s/{slug} [get]
func Resolve(c *gin.Context) {
	slug := c.Param(global.ShareSlugParam)
	if slug == "" {
		api.SendResponse(c, errno.ErrParam, nil)
		return
	}

	shareModel, err := service.Svc.ShareSvc.Resolve(c, slug)
	if err != nil {
		log.Warnf("resolve share %s err: %v", slug, err)
		api.SendResponse(c, errno.ErrShareNotFound, nil)
		return
	}

	captionModel, err := service.Svc.CaptionSvc.Get(c, shareModel.CaptionId)
	if err != nil {
		api.SendResponse(c, errno.ErrCaptionNotFound, nil)
		return
	}

	api.SendResponse(c, nil, gin.H{
		"slug":    shareModel.Slug,
		"caption": captionModel.Info(),
	})
}
