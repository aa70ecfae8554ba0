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

package utils

import (
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/teris-io/shortid"
	tnet "github.com/toolkits/net"
)

var (
	usernameReg = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailReg    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsUsername reports whether s is an acceptable account name:
// 3-20 characters, letters, digits and underscore only.
func IsUsername(s string) bool {
	return usernameReg.MatchString(s)
}

// IsEmail
func IsEmail(email string) bool {
	return emailReg.MatchString(strings.ToLower(email))
}

// GenShortID
func GenShortID() (string, error) {
	return shortid.Generate()
}

// XRequestID
var XRequestID = "X-Request-ID"

// GenRequestID eg: 76d27e8c-a80e-48c8-ad20-e5562e0f67e4
func GenRequestID() string {
	u, _ := uuid.NewRandom()
	return u.String()
}

var (
	once     sync.Once
	clientIP = "127.0.0.1"
)

// GetLocalIP
func GetLocalIP() string {
	once.Do(
		func() {
			ips, _ := tnet.IntranetIP()
			if len(ips) > 0 {
				clientIP = ips[0]
			} else {
				clientIP = "127.0.0.1"
			}
		},
	)
	return clientIP
}

