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
	uuid "github.com/satori/go.uuid"

	"github.com/captionhub/internal/captionhub-api/cache"
	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/internal/captionhub-api/repository/user"
	"github.com/captionhub/pkg/captionhub-api/pkg/auth"
	"github.com/captionhub/pkg/captionhub-api/pkg/token"
)

var _ UserService = (*userService)(nil)

// UserService
type UserService interface {
	Register(ctx context.Context, username, email, password string) (model.UserBaseModel, error)
	UsernameLogin(ctx context.Context, username, password string) (tokenStr, refreshToken string, err error)
	GetUserByID(ctx context.Context, id uint64) (*model.UserBaseModel, error)
	GetUserByUsername(ctx context.Context, username string) (*model.UserBaseModel, error)
	GetUserByEmail(ctx context.Context, email string) (*model.UserBaseModel, error)
	ChangePassword(ctx context.Context, id uint64, oldPassword, newPassword string) error

	GetCache(id uint64) (model.UserBaseModel, error)
	Close()
}

type userService struct {
	userRepo *user.UserBaseRepo
}

func NewUserService() UserService {
	db := model.GetDB()
	return &userService{
		userRepo: user.NewUserRepo(db),
	}
}

func (srv *userService) Evict(id uint64) {
	c := cache.Module(cache.USER)
	_, _ = c.Delete(id)
}

func (srv *userService) GetCache(id uint64) (model.UserBaseModel, error) {
	c := cache.Module(cache.USER)
	value, err := c.Value(id)
	if err == nil {
		userModel := value.Data().(*model.UserBaseModel)
		return *userModel, nil
	}

	result, err := srv.GetUserByID(context.TODO(), id)
	if err != nil {
		return model.UserBaseModel{}, errors.Wrapf(err, "get user")
	}

	c.Add(result.ID, cache.OUT_OF_DATE, result)
	return *result, nil
}

// Register creates a user with an encrypted password.
func (srv *userService) Register(ctx context.Context, username, email, password string) (model.UserBaseModel, error) {
	pwd, err := auth.Encrypt(password)
	if err != nil {
		return model.UserBaseModel{}, errors.Wrapf(err, "encrypt password err")
	}

	u := model.UserBaseModel{
		Username:  username,
		Password:  pwd,
		Email:     email,
		CreatedAt: time.Time{},
		UpdatedAt: time.Time{},
		Uuid:      uuid.NewV4().String(),
	}
	result, err := srv.userRepo.Create(ctx, u)
	if err != nil {
		return result, errors.Wrapf(err, "create user")
	}
	srv.Evict(result.ID)
	return result, nil
}

// UsernameLogin checks credentials and signs a token pair.
func (srv *userService) UsernameLogin(ctx context.Context, username, password string) (
	tokenStr, refreshToken string, err error,
) {
	u, err := srv.GetUserByUsername(ctx, username)
	if err != nil {
		err = errors.Wrapf(err, "get user info err by username")
		return
	}

	// Compare the login password with the user password.
	err = auth.Compare(u.Password, password)
	if err != nil {
		err = errors.Wrapf(err, "password compare err")
		return
	}

	return token.Sign(
		token.Context{UserID: u.ID, Username: u.Username, Uuid: u.Uuid, Email: u.Email, IsAdmin: u.IsAdmin},
	)
}

// ChangePassword verifies the old password before storing the new one.
func (srv *userService) ChangePassword(ctx context.Context, id uint64, oldPassword, newPassword string) error {
	u, err := srv.GetUserByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "get user info err by id: %d", id)
	}

	if err := auth.Compare(u.Password, oldPassword); err != nil {
		return errors.Wrapf(err, "password compare err")
	}

	pwd, err := auth.Encrypt(newPassword)
	if err != nil {
		return errors.Wrapf(err, "encrypt password err")
	}

	if err := srv.userRepo.UpdatePassword(ctx, id, pwd); err != nil {
		return errors.Wrapf(err, "update password err")
	}
	srv.Evict(id)
	return nil
}

// GetUserByID
func (srv *userService) GetUserByID(ctx context.Context, id uint64) (*model.UserBaseModel, error) {
	userModel, err := srv.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return userModel, errors.Wrapf(err, "get user info err from db by id: %d", id)
	}

	return userModel, nil
}

// GetUserByUsername
func (srv *userService) GetUserByUsername(ctx context.Context, username string) (*model.UserBaseModel, error) {
	userModel, err := srv.userRepo.GetUserByUsername(ctx, username)
	if err != nil || gorm.IsRecordNotFoundError(err) {
		return userModel, errors.Wrapf(err, "get user info err from db by username: %s", username)
	}

	return userModel, nil
}

// GetUserByEmail
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*model.UserBaseModel, error) {
	userModel, err := srv.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return userModel, err
	}

	return userModel, nil
}

// Close close all user repo
func (srv *userService) Close() {
	srv.userRepo.Close()
}
