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
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/captionhub/internal/captionhub-api/model"
)

// PrivacyRequest
type PrivacyRequest struct {
	IsPublic *bool `json:"is_public" form:"is_public" binding:"required"`
}

// captionID reads the :id route param.
func captionID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// contentType maps a decoded format to a mime type.
func contentType(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

// detail is the single caption response shape.
type detail struct {
	*model.CaptionInfo
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func newDetail(info *model.CaptionInfo) detail {
	idStr := strconv.FormatUint(info.ID, 10)
	return detail{
		CaptionInfo:  info,
		ImageURL:     "/v1/captions/" + idStr + "/image",
		ThumbnailURL: "/v1/captions/" + idStr + "/thumbnail",
	}
}
