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

package images

import (
	"image"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/captionhub/internal/captionhub-api/global"
	"github.com/captionhub/internal/captionhub-api/imgproc"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// formImage reads and decodes one multipart image field, answering the
// error response itself on failure.
func formImage(c *gin.Context, field string) (image.Image, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		log.Warnf("missing image field %s: %v", field, err)
		api.SendResponse(c, errno.ErrImageMissing, gin.H{"field": field})
		return nil, "", false
	}
	maxBytes := global.MaxUploadBytes()
	if fileHeader.Size > maxBytes {
		api.SendResponse(c, errno.ErrParam, gin.H{"reason": "image too large"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		api.SendResponse(c, errno.ErrImageDecode, nil)
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		api.SendResponse(c, errno.ErrImageDecode, nil)
		return nil, "", false
	}

	img, format, err := imgproc.Decode(data)
	if err != nil {
		log.Warnf("decode image field %s err: %v", field, err)
		api.SendResponse(c, errno.ErrImageDecode, nil)
		return nil, "", false
	}
	return img, format, true
}
