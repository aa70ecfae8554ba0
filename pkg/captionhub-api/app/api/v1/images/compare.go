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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/captionhub/internal/captionhub-api/imgproc"
	"github.com/captionhub/pkg/captionhub-api/app/api"
	"github.com/captionhub/pkg/captionhub-api/pkg/errno"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// Compare computes similarity metrics for two uploads, or renders a
// difference or side-by-side image when asked to
// @Summary Compare images
// @Description MSE, SSIM and histogram correlation for two images; render=diff or render=side_by_side returns a PNG instead
// @Tags Images
// @Accept  multipart/form-data
// @Produce  json
// @Param image1 formData file true "First image"
// @Param image2 formData file true "Second image"
// @Param render formData string false "metrics (default), diff or side_by_side"
// @Success 200 {string} json "{"code":0,"message":"OK","data":{...}}"
// @Router /v1/images/compare [post]
func Compare(c *gin.Context) {
	img1, format1, ok := formImage(c, "image1")
	if !ok {
		return
	}
	img2, format2, ok := formImage(c, "image2")
	if !ok {
		return
	}

	switch c.DefaultPostForm("render", "metrics") {
	case "metrics":
		result, err := imgproc.Compare(img1, img2)
		if err != nil {
			log.Warnf("compare images err: %v", err)
			api.SendResponse(c, errno.ErrImageCompare, nil)
			return
		}
		api.SendResponse(c, nil, gin.H{
			"comparison": result,
			"caption1":   imgproc.DescribeImage(img1, format1),
			"caption2":   imgproc.DescribeImage(img2, format2),
		})

	case "diff":
		diff, err := imgproc.DiffImage(img1, img2)
		if err != nil {
			log.Warnf("diff image err: %v", err)
			api.SendResponse(c, errno.ErrImageCompare, nil)
			return
		}
		sendPNG(c, diff)

	case "side_by_side":
		combined, err := imgproc.SideBySide(img1, img2, c.PostForm("caption1"), c.PostForm("caption2"))
		if err != nil {
			log.Warnf("side by side err: %v", err)
			api.SendResponse(c, errno.ErrImageCompare, nil)
			return
		}
		sendPNG(c, combined)

	default:
		api.SendResponse(c, errno.ErrParam, gin.H{"reason": "unknown render mode"})
	}
}

func sendPNG(c *gin.Context, img image.Image) {
	data, err := imgproc.EncodePNG(img)
	if err != nil {
		log.Warnf("encode png err: %v", err)
		api.SendResponse(c, errno.ErrImageEncode, nil)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
