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

package service

import (
	"github.com/captionhub/internal/captionhub-api/service/caption"
	"github.com/captionhub/internal/captionhub-api/service/share"
	"github.com/captionhub/internal/captionhub-api/service/user"
)

var (
	// Svc global service var
	Svc *Service
)

// Service struct
type Service struct {
	UserSvc    user.UserService
	CaptionSvc caption.CaptionService
	ShareSvc   share.ShareService
}

func Init() {
	Svc = New()
}

// New init service
func New() (s *Service) {
	s = &Service{
		UserSvc:    user.NewUserService(),
		CaptionSvc: caption.NewCaptionService(),
		ShareSvc:   share.NewShareService(),
	}
	return s
}

// Ping service
func (s *Service) Ping() error {
	return nil
}
