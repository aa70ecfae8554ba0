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

package share

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	localcache "github.com/captionhub/internal/captionhub-api/cache"
	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/internal/captionhub-api/repository/share"
	"github.com/captionhub/pkg/captionhub-api/pkg/cache"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
	redis2 "github.com/captionhub/pkg/captionhub-api/pkg/redis"
	"github.com/captionhub/pkg/captionhub-api/pkg/utils"
)

const slugCachePrefix = "share:slug"

var _ ShareService = (*shareService)(nil)

// ShareService
type ShareService interface {
	CreateOrGet(ctx context.Context, captionId uint64) (*model.ShareModel, error)
	Resolve(ctx context.Context, slug string) (*model.ShareModel, error)
	SocialLinks(caption string) map[string]string
	ShareURL(slug string) string
	Close()
}

type shareService struct {
	shareRepo share.ShareRepo
}

func NewShareService() ShareService {
	db := model.GetDB()
	return &shareService{
		shareRepo: share.NewShareRepo(db),
	}
}

// CreateOrGet returns the existing share link for a caption or mints a
// new slug. A short redis lock keeps concurrent requests from minting
// two slugs for the same caption.
func (srv *shareService) CreateOrGet(ctx context.Context, captionId uint64) (*model.ShareModel, error) {
	table := localcache.Module(localcache.SHARE)
	if item, err := table.Value(captionId); err == nil {
		return item.Data().(*model.ShareModel), nil
	}

	lock := redis2.NewLock(redis2.RedisClient, fmt.Sprintf("share:mint:%d", captionId), 3*time.Second)
	token := lock.GenToken()
	if ok, err := lock.Lock(token); err == nil && ok {
		defer func() {
			if err := lock.Unlock(token); err != nil {
				log.Warnf("unlock share mint for caption %d err: %v", captionId, err)
			}
		}()
	}

	existing, err := srv.shareRepo.GetByCaption(ctx, captionId)
	if err == nil {
		table.Add(captionId, localcache.OUT_OF_DATE, &existing)
		return &existing, nil
	}
	if !gorm.IsRecordNotFoundError(errors.Cause(err)) && !gorm.IsRecordNotFoundError(err) {
		return nil, errors.Wrapf(err, "get share by caption")
	}

	slug, err := utils.GenShortID()
	if err != nil {
		return nil, errors.Wrapf(err, "generate share slug")
	}

	shareModel := model.ShareModel{
		Slug:      slug,
		CaptionId: captionId,
	}
	id, err := srv.shareRepo.Create(ctx, shareModel)
	if err != nil {
		return nil, errors.Wrapf(err, "create share")
	}
	shareModel.ID = id
	table.Add(captionId, localcache.OUT_OF_DATE, &shareModel)
	return &shareModel, nil
}

// Resolve looks a slug up, going through the shared cache first so hot
// links skip the database on every instance.
func (srv *shareService) Resolve(ctx context.Context, slug string) (*model.ShareModel, error) {
	key, err := cache.BuildCacheKey(slugCachePrefix, slug)
	if err != nil {
		return nil, err
	}

	cached := model.ShareModel{}
	if err := cache.Get(key, &cached); err == nil && cached.ID > 0 {
		return &cached, nil
	}

	shareModel, err := srv.shareRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(key, &shareModel, cache.DefaultExpireTime); err != nil {
		log.Warnf("cache share slug %s err: %v", slug, err)
	}
	return &shareModel, nil
}

// ShareURL builds the public short link for a slug.
func (srv *shareService) ShareURL(slug string) string {
	base := strings.TrimRight(viper.GetString("app.url"), "/")
	return fmt.Sprintf("%s/s/%s", base, slug)
}

// quote escapes caption text for share URLs with spaces as %20.
// Query escaping would use +, which mail clients render literally in
// mailto bodies.
func quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// SocialLinks builds share URLs for the common platforms.
func (srv *shareService) SocialLinks(caption string) map[string]string {
	encoded := quote(caption)
	siteURL := quote(viper.GetString("app.url"))

	return map[string]string{
		"twitter":  fmt.Sprintf("https://twitter.com/intent/tweet?text=%s", encoded),
		"facebook": fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s&quote=%s", siteURL, encoded),
		"linkedin": fmt.Sprintf(
			"https://www.linkedin.com/shareArticle?mini=true&url=%s&title=Image%%20Caption&summary=%s",
			siteURL, encoded,
		),
		"whatsapp": fmt.Sprintf("https://wa.me/?text=%s", encoded),
		"email":    fmt.Sprintf("mailto:?subject=Check%%20out%%20this%%20image%%20caption&body=%s", encoded),
	}
}

// Close close all share repo
func (srv *shareService) Close() {
	srv.shareRepo.Close()
}
