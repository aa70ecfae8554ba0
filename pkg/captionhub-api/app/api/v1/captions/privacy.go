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

// UpdatePrivacy toggles a caption between public and private
// @Summary Update caption privacy
// @Description Owner-only visibility toggle
// @Tags Captions
// @Produce  json
// @Param id path int true "Caption ID"
// @Param privacy body captions.PrivacyRequest true "Visibility"
// @Success 200 {string} json "{"code":0,"message":"OK","data":null}"
// @Router /v1/captions/{id}/privacy [put]
func UpdatePrivacy(c *gin.Context) {
	id, ok := captionID(c)
	if !ok {
		api.SendResponse(c, errno.ErrParam, nil)
		return
	}

	var req PrivacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("privacy bind param err: %v", err)
		api.SendResponse(c, errno.ErrBind, nil)
		return
	}

	err := service.Svc.CaptionSvc.UpdatePrivacy(c, id, api.GetUserID(c), *req.IsPublic)
	if err != nil {
		if errors.Cause(err) == caption.ErrPermission {
			api.SendResponse(c, errno.ErrPermissionCaption, nil)
			return
		}
		if gorm.IsRecordNotFoundError(errors.Cause(err)) {
			api.SendResponse(c, errno.ErrCaptionNotFound, nil)
			return
		}
		log.Warnf("update privacy err: %v", err)
		api.SendResponse(c, errno.ErrCaptionUpdate, nil)
		return
	}

	api.SendResponse(c, nil, nil)
}
