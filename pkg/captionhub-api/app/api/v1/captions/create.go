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
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/captionhub/internal/captionhub-api/global"
	"github.com/captionhub/internal/captionhub-api/service"
	"github.com/captionhub/internal/captionhub-api/service/caption"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// Create accepts a multipart upload, runs the processing pipeline and
// stores the caption record
// @Summary Upload image
// @Description Upload an image with an optional caption text
// @Tags Captions
// @Accept  multipart/form-data
// @Produce  json
// @Param image formData file true "Image file"
// @Param caption formData string false "Caption text"
// @Param is_public formData bool false "Visibility, default true"
// @Success 200 {string} json "{"code":0,"message":"OK","data":{"id":1}}"
// @Router /v1/captions [post]
func Create(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		log.Warnf("create caption missing image: %v", err)
		api.SendResponse(c, errno.ErrImageMissing, nil)
		return
	}
	maxBytes := global.MaxUploadBytes()
	if fileHeader.Size > maxBytes {
		api.SendResponse(c, errno.ErrParam, gin.H{"reason": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		api.SendResponse(c, errno.ErrImageDecode, nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil || int64(len(data)) > maxBytes {
		api.SendResponse(c, errno.ErrImageDecode, nil)
		return
	}

	isPublic := true
	if v, ok := c.GetPostForm("is_public"); ok {
		isPublic = v == "true" || v == "1"
	}

	result, err := service.Svc.CaptionSvc.Create(c, caption.CreateRequest{
		UserID:   api.GetUserID(c),
		Caption:  c.PostForm("caption"),
		Filename: fileHeader.Filename,
		IsPublic: isPublic,
		Image:    data,
	})
	if err != nil {
		log.Warnf("create caption err: %v", err)
		if strings.Contains(err.Error(), "decode") {
			api.SendResponse(c, errno.ErrImageDecode, nil)
			return
		}
		api.SendResponse(c, errno.ErrCaptionCreate, nil)
		return
	}

	api.SendResponse(c, nil, newDetail(result.Info()))
}
