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
	"github.com/gin-gonic/gin"

	"github.com/captionhub/internal/captionhub-api/imgproc"
	"github.com/captionhub/pkg/captionhub-api/app/api"
)

// Analyze computes statistics, a quality estimate and histograms
// @Summary Analyze image
// @Description Brightness, contrast, dominant color, quality estimate and per-channel histograms
// @Tags Images
// @Accept  multipart/form-data
// @Produce  json
// @Param image formData file true "Image file"
// @Success 200 {string} json "{"code":0,"message":"OK","data":{...}}"
// @Router /v1/images/analyze [post]
func Analyze(c *gin.Context) {
	img, format, ok := formImage(c, "image")
	if !ok {
		return
	}

	api.SendResponse(c, nil, gin.H{
		"analysis":  imgproc.Analyze(img, format),
		"quality":   imgproc.EstimateQuality(img),
		"histogram": imgproc.ColorHistogram(img),
	})
}
