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

package imgproc

import (
	"bytes"
	"image"

	// register stdlib decoders for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Decode parses image bytes and reports the detected format
// (jpeg, png, gif, bmp or tiff).
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errors.Wrap(err, "[imgproc] decode image err")
	}
	return img, format, nil
}

// EncodeJPEG renders img as JPEG with the given quality (1-100).
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	if err != nil {
		return nil, errors.Wrap(err, "[imgproc] encode jpeg err")
	}
	return buf.Bytes(), nil
}

// EncodePNG renders img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imaging.PNG)
	if err != nil {
		return nil, errors.Wrap(err, "[imgproc] encode png err")
	}
	return buf.Bytes(), nil
}

// Thumbnail scales and crops img to exactly w x h.
func Thumbnail(img image.Image, w, h int) *image.NRGBA {
	return imaging.Thumbnail(img, w, h, imaging.Lanczos)
}
