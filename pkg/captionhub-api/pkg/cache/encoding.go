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

package cache

import "encoding/json"

// Encoding marshals cache values to and from bytes
type Encoding interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// JSONEncoding json encoding
type JSONEncoding struct{}

// Marshal json marshal
func (e JSONEncoding) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal json unmarshal
func (e JSONEncoding) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
