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

package global

import "github.com/spf13/viper"

// Populated at build time through -ldflags.
var (
	Version  = "default"
	CommitId = "default"
	Branch   = "default"
)

const (
	// ThumbnailWidth is the pixel width of stored caption thumbnails
	ThumbnailWidth = 100
	// ThumbnailHeight is the pixel height of stored caption thumbnails
	ThumbnailHeight = 100
	// DefaultListLimit caps public caption listings when no limit is given
	DefaultListLimit = 10
	// MaxListLimit is the hard ceiling for caption listings
	MaxListLimit = 100
	// DefaultMaxUploadMb applies when app.max_upload_mb is not configured
	DefaultMaxUploadMb = 16
	// ShareSlugParam route param for resolving share links
	ShareSlugParam = "slug"
)

// MaxUploadBytes is the upload size cap from app.max_upload_mb.
func MaxUploadBytes() int64 {
	mb := viper.GetInt64("app.max_upload_mb")
	if mb <= 0 {
		mb = DefaultMaxUploadMb
	}
	return mb << 20
}
