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

package model

import (
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/captionhub/pkg/captionhub-api/pkg/auth"
)

// UserBaseModel
type UserBaseModel struct {
	ID        uint64     `gorm:"primary_key;AUTO_INCREMENT;column:id" json:"id"`
	Uuid      string     `gorm:"column:uuid;not null" json:"-"`
	Username  string     `json:"username" gorm:"column:username;not null;unique_index" validate:"min=3,max=20"`
	Password  string     `json:"password" gorm:"column:password;not null" binding:"required" validate:"min=8,max=128"`
	Email     string     `gorm:"column:email;not null;unique_index" json:"email"`
	IsAdmin   uint64     `gorm:"column:is_admin" json:"is_admin"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"-"`
}

// Validate the fields.
func (u *UserBaseModel) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}

// UserInfo is the outward-facing user shape
type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  uint64 `json:"is_admin"`
}

// TableName
func (u *UserBaseModel) TableName() string {
	return "users"
}

// Token represents a JSON web token pair.
type Token struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Compare with the plain text password. Returns nil if it matches the encrypted one.
func (u *UserBaseModel) Compare(pwd string) (err error) {
	err = auth.Compare(u.Password, pwd)
	return
}

// Encrypt the user password.
func (u *UserBaseModel) Encrypt() (err error) {
	u.Password, err = auth.Encrypt(u.Password)
	return
}
