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

package caption

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/captionhub/internal/captionhub-api/cache"
	"github.com/captionhub/internal/captionhub-api/global"
	"github.com/captionhub/internal/captionhub-api/imgproc"
	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/internal/captionhub-api/repository/caption"
	"github.com/captionhub/internal/captionhub-api/repository/share"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

// ErrPermission is returned when the caller may not see or change a caption.
var ErrPermission = errors.New("caption permission denied")

var _ CaptionService = (*captionService)(nil)

// CreateRequest carries an upload through the processing pipeline.
type CreateRequest struct {
	UserID   uint64
	Caption  string
	Filename string
	IsPublic bool
	Image    []byte
}

// CaptionService
type CaptionService interface {
	Create(ctx context.Context, req CreateRequest) (*model.CaptionModel, error)
	Get(ctx context.Context, id uint64) (*model.CaptionModel, error)
	GetForViewer(ctx context.Context, id uint64, viewerID uint64) (*model.CaptionModel, error)
	List(ctx context.Context, viewerID uint64, limit int) ([]*model.CaptionInfo, error)
	UpdatePrivacy(ctx context.Context, id uint64, userID uint64, isPublic bool) error
	Delete(ctx context.Context, id uint64, userID uint64) error
	Close()
}

type captionService struct {
	captionRepo caption.CaptionRepo
	shareRepo   share.ShareRepo
}

func NewCaptionService() CaptionService {
	db := model.GetDB()
	return &captionService{
		captionRepo: caption.NewCaptionRepo(db),
		shareRepo:   share.NewShareRepo(db),
	}
}

// Create decodes the upload, derives a caption when none is supplied,
// builds the thumbnail and stores the record.
func (srv *captionService) Create(ctx context.Context, req CreateRequest) (*model.CaptionModel, error) {
	start := time.Now()

	img, format, err := imgproc.Decode(req.Image)
	if err != nil {
		return nil, errors.Wrapf(err, "decode upload")
	}

	captionText := req.Caption
	if captionText == "" {
		captionText = imgproc.DescribeImage(img, format)
	}

	thumb := imgproc.Thumbnail(img, global.ThumbnailWidth, global.ThumbnailHeight)
	thumbData, err := imgproc.EncodeJPEG(thumb, 85)
	if err != nil {
		return nil, errors.Wrapf(err, "encode thumbnail")
	}

	captionModel := model.CaptionModel{
		UserId:       req.UserID,
		Caption:      captionText,
		Filename:     req.Filename,
		Format:       format,
		Width:        img.Bounds().Dx(),
		Height:       img.Bounds().Dy(),
		Image:        req.Image,
		Thumbnail:    thumbData,
		IsPublic:     req.IsPublic,
		ProcessingMs: time.Since(start).Milliseconds(),
	}

	id, err := srv.captionRepo.Create(ctx, captionModel)
	if err != nil {
		return nil, errors.Wrapf(err, "create caption")
	}
	captionModel.ID = id

	log.Infof("caption %d created in %d ms", id, captionModel.ProcessingMs)
	return &captionModel, nil
}

func (srv *captionService) evict(id uint64) {
	c := cache.Module(cache.CAPTION)
	_, _ = c.Delete(id)
}

// Get serves hot records from the in-process cache.
func (srv *captionService) Get(ctx context.Context, id uint64) (*model.CaptionModel, error) {
	c := cache.Module(cache.CAPTION)
	value, err := c.Value(id)
	if err == nil {
		captionModel := value.Data().(*model.CaptionModel)
		return captionModel, nil
	}

	captionModel, err := srv.captionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Add(id, cache.OUT_OF_DATE, &captionModel)
	return &captionModel, nil
}

// GetForViewer enforces privacy. Private captions are visible only to
// their owner.
func (srv *captionService) GetForViewer(ctx context.Context, id uint64, viewerID uint64) (
	*model.CaptionModel, error,
) {
	captionModel, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !captionModel.IsPublic && captionModel.UserId != viewerID {
		return nil, ErrPermission
	}
	return captionModel, nil
}

// List returns newest-first captions the viewer may see, without blobs.
func (srv *captionService) List(ctx context.Context, viewerID uint64, limit int) ([]*model.CaptionInfo, error) {
	if limit <= 0 {
		limit = global.DefaultListLimit
	}
	if limit > global.MaxListLimit {
		limit = global.MaxListLimit
	}

	var (
		list []*model.CaptionModel
		err  error
	)
	if viewerID == 0 {
		list, err = srv.captionRepo.GetPublicList(ctx, limit)
	} else {
		list, err = srv.captionRepo.GetVisibleList(ctx, viewerID, limit)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "list captions")
	}

	infos := make([]*model.CaptionInfo, 0, len(list))
	for _, c := range list {
		infos = append(infos, c.Info())
	}
	return infos, nil
}

// UpdatePrivacy toggles visibility, owner only.
func (srv *captionService) UpdatePrivacy(ctx context.Context, id uint64, userID uint64, isPublic bool) error {
	captionModel, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}
	if captionModel.UserId != userID {
		return ErrPermission
	}
	if err := srv.captionRepo.UpdatePrivacy(ctx, id, isPublic); err != nil {
		return err
	}
	srv.evict(id)
	return nil
}

// Delete removes a caption. Owned captions can only be deleted by their
// owner, unclaimed ones by anyone.
func (srv *captionService) Delete(ctx context.Context, id uint64, userID uint64) error {
	captionModel, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}
	if captionModel.Owned() && captionModel.UserId != userID {
		return ErrPermission
	}
	if err := srv.captionRepo.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "delete caption")
	}
	srv.evict(id)
	if err := srv.shareRepo.DeleteByCaption(ctx, id); err != nil {
		log.Warnf("delete share links for caption %d err: %v", id, err)
	}
	return nil
}

// Close close all caption repo
func (srv *captionService) Close() {
	srv.captionRepo.Close()
}
