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

package auth

import "testing"

func TestEncryptCompare(t *testing.T) {
	hashed, err := Encrypt("open-sesame")
	if err != nil {
		t.Fatalf("Encrypt err: %v", err)
	}
	if hashed == "open-sesame" {
		t.Fatal("Encrypt returned the plain text")
	}

	if err := Compare(hashed, "open-sesame"); err != nil {
		t.Errorf("Compare with correct password err: %v", err)
	}
	if err := Compare(hashed, "wrong"); err == nil {
		t.Error("Compare with wrong password should fail")
	}
}
