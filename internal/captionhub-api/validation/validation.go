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

package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/captionhub/internal/captionhub-api/imgproc"
)

// FilterName accepts only a registered image filter name.
var FilterName validator.Func = func(level validator.FieldLevel) bool {
	text, ok := level.Field().Interface().(string)
	if ok {
		return imgproc.IsFilter(text)
	}
	return false
}
