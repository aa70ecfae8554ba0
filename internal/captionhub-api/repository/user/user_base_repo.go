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

package user

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// UserBaseRepo
type UserBaseRepo struct {
	db *gorm.DB
}

// NewUserRepo
func NewUserRepo(db *gorm.DB) *UserBaseRepo {
	return &UserBaseRepo{
		db: db,
	}
}

// Create
func (repo *UserBaseRepo) Create(ctx context.Context, user model.UserBaseModel) (model.UserBaseModel, error) {
	err := repo.db.Create(&user).Error
	if err != nil {
		return user, errors.Wrap(err, "[user_repo] create user err")
	}

	return user, nil
}

// UpdatePassword
func (repo *UserBaseRepo) UpdatePassword(ctx context.Context, id uint64, encrypted string) error {
	if err := repo.db.Exec("UPDATE users SET password = ? WHERE id = ?", encrypted, id).Error; err != nil {
		return err
	}

	return nil
}

// GetUserByID
func (repo *UserBaseRepo) GetUserByID(ctx context.Context, uid uint64) (userBase *model.UserBaseModel, err error) {
	start := time.Now()
	defer func() {
		log.Infof("[repo.user_base] get user by uid: %d cost: %d ns", uid, time.Now().Sub(start).Nanoseconds())
	}()

	data := new(model.UserBaseModel)

	err = repo.db.First(data, uid).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, errors.Wrap(err, "[repo.user_base] get user data err")
	}
	return data, nil
}

// GetUserByUsername
func (repo *UserBaseRepo) GetUserByUsername(ctx context.Context, username string) (*model.UserBaseModel, error) {
	user := model.UserBaseModel{}
	err := repo.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, errors.Wrap(err, "[user_repo] get user err by username")
	}

	return &user, nil
}

// GetUserByEmail
func (repo *UserBaseRepo) GetUserByEmail(ctx context.Context, email string) (*model.UserBaseModel, error) {
	user := model.UserBaseModel{}
	err := repo.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Close close db
func (repo *UserBaseRepo) Close() {
	repo.db.Close()
}
