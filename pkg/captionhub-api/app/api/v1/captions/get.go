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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/internal/captionhub-api/service/caption"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
)

// fetchForViewer loads a caption honoring privacy, answering the error
// response itself when the lookup fails.
func fetchForViewer(c *gin.Context) (*model.CaptionModel, bool) {
	id, ok := captionID(c)
	if !ok {
		api.SendResponse(c, errno.ErrParam, nil)
		return nil, false
	}

	captionModel, err := service.Svc.CaptionSvc.GetForViewer(c, id, api.GetUserID(c))
	if err != nil {
		if errors.Cause(err) == caption.ErrPermission {
			api.SendResponse(c, errno.ErrPermissionCaption, nil)
			return nil, false
		}
		if gorm.IsRecordNotFoundError(errors.Cause(err)) {
			api.SendResponse(c, errno.ErrCaptionNotFound, nil)
			return nil, false
		}
		api.SendResponse(c, errno.ErrCaptionGet, nil)
		return nil, false
	}
	return captionModel, true
}

// Get returns one caption record
// @Summary Get caption
// @Description Get one caption, private captions only for their owner
// @Tags Captions
// @Produce  json
// @Param id path int true "Caption ID"
// @Success 200 {string} json "{"code":0,"message":"OK","data":{...}}"
// @Router /v1/captions/{id} [get]
func Get(c *gin.Context) {
	captionModel, ok := fetchForViewer(c)
	if !ok {
		return
	}
	api.SendResponse(c, nil, newDetail(captionModel.Info()))
}

// GetImage streams the stored image bytes
// @Summary Get caption image
// @Tags Captions
// @Produce  image/jpeg
// @Param id path int true "Caption ID"
// @Router /v1/captions/{id}/image [get]
func GetImage(c *gin.Context) {
	captionModel, ok := fetchForViewer(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, contentType(captionModel.Format), captionModel.Image)
}

// GetThumbnail streams the stored thumbnail
// @Summary Get caption thumbnail
// @Tags Captions
// @Produce  image/jpeg
// @Param id path int true "Caption ID"
// @Router /v1/captions/{id}/thumbnail [get]
func GetThumbnail(c *gin.Context) {
	captionModel, ok := fetchForViewer(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "image/jpeg", captionModel.Thumbnail)
}
