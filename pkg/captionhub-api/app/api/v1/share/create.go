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
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/internal/captionhub-api/service/caption"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// Create mints (or returns) the share link for a caption
// @Summary Share caption
// @Description Create a short link plus social share URLs for a caption
// @Tags Sharing
// @Produce  json
// @Param id path int true "Caption ID"
// @Success 200 {string} json "{"code":0,"message":"OK","data":{"slug":"...","share_url":"...","links":{...}}}"
// @Router /v1/captions/{id}/share [post]
func Create(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		api.SendResponse(c, errno.ErrParam, nil)
		return
	}

	// the caller must be allowed to see the caption before sharing it
	captionModel, err := service.Svc.CaptionSvc.GetForViewer(c, id, api.GetUserID(c))
	if err != nil {
		if errors.Cause(err) == caption.ErrPermission {
			api.SendResponse(c, errno.ErrPermissionCaption, nil)
			return
		}
		if gorm.IsRecordNotFoundError(errors.Cause(err)) {
			api.SendResponse(c, errno.ErrCaptionNotFound, nil)
			return
		}
		api.SendResponse(c, errno.ErrCaptionGet, nil)
		return
	}

	shareModel, err := service.Svc.ShareSvc.CreateOrGet(c, id)
	if err != nil {
		log.Warnf("create share err: %v", err)
		api.SendResponse(c, errno.ErrShareCreate, nil)
		return
	}

	api.SendResponse(c, nil, gin.H{
		"slug":      shareModel.Slug,
		"share_url": service.Svc.ShareSvc.ShareURL(shareModel.Slug),
		"links":     service.Svc.ShareSvc.SocialLinks(captionModel.Caption),
	})
}
