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
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/internal/captionhub-api/service/caption"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// Delete removes a caption. Owned captions only by their owner,
// unclaimed ones by anyone
// @Summary Delete caption
// @Tags Captions
// @Produce  json
// @Param id path int true "Caption ID"
// @Success 200 {string} json "{"code":0,"message":"OK","data":null}"
// @Router /v1/captions/{id} [delete]
func Delete(c *gin.Context) {
	id, ok := captionID(c)
	if !ok {
		api.SendResponse(c, errno.ErrParam, nil)
		return
	}

	err := service.Svc.CaptionSvc.Delete(c, id, api.GetUserID(c))
	if err != nil {
		if errors.Cause(err) == caption.ErrPermission {
			api.SendResponse(c, errno.ErrPermissionCaption, nil)
			return
		}
		if gorm.IsRecordNotFoundError(errors.Cause(err)) {
			api.SendResponse(c, errno.ErrCaptionNotFound, nil)
			return
		}
		log.Warnf("delete caption err: %v", err)
		api.SendResponse(c, errno.ErrCaptionDelete, nil)
		return
	}

	api.SendResponse(c, nil, nil)
}
