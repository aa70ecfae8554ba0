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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/captionhub/internal/captionhub-api/imgproc"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// Filters lists the available effect names
// @Summary List filters
// @Tags Images
// @Produce  json
// @Success 200 {string} json "{"code":0,"message":"OK","data":{"filters":[...]}}"
// @Router /v1/images/filters [get]
func Filters(c *gin.Context) {
	api.SendResponse(c, nil, gin.H{"filters": imgproc.Filters()})
}

// EffectRequest
type EffectRequest struct {
	Filter string `form:"filter" binding:"required,filtername"`
}

// ApplyEffect runs one named filter over an upload and streams the result
// @Summary Apply filter
// @Description Apply a named effect and return the processed image as PNG
// @Tags Images
// @Accept  multipart/form-data
// @Produce  image/png
// @Param image formData file true "Image file"
// @Param filter formData string true "Filter name"
// @Router /v1/images/effects [post]
func ApplyEffect(c *gin.Context) {
	var req EffectRequest
	if err := c.ShouldBind(&req); err != nil {
		api.SendResponse(c, errno.ErrFilterUnknown, gin.H{"filters": imgproc.Filters()})
		return
	}

	img, _, ok := formImage(c, "image")
	if !ok {
		return
	}

	out, err := imgproc.ApplyFilter(img, req.Filter)
	if err != nil {
		log.Warnf("apply filter %s err: %v", req.Filter, err)
		api.SendResponse(c, errno.ErrFilterUnknown, nil)
		return
	}

	data, err := imgproc.EncodePNG(out)
	if err != nil {
		log.Warnf("encode filtered image err: %v", err)
		api.SendResponse(c, errno.ErrImageEncode, nil)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
