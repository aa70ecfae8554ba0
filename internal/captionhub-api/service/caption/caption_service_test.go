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
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"

	"github.com/captionhub/internal/captionhub-api/cache"
	"github.com/captionhub/internal/captionhub-api/model"
)

// fakeCaptionRepo serves captions from a map so visibility rules can be
// tested without a database.
type fakeCaptionRepo struct {
	captions map[uint64]model.CaptionModel
	nextID   uint64
	deleted  []uint64
}

func newFakeCaptionRepo() *fakeCaptionRepo {
	return &fakeCaptionRepo{captions: make(map[uint64]model.CaptionModel), nextID: 1}
}

func (f *fakeCaptionRepo) Create(ctx context.Context, caption model.CaptionModel) (uint64, error) {
	id := f.nextID
	f.nextID++
	caption.ID = id
	f.captions[id] = caption
	return id, nil
}

func (f *fakeCaptionRepo) Get(ctx context.Context, id uint64) (model.CaptionModel, error) {
	c, ok := f.captions[id]
	if !ok {
		return model.CaptionModel{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCaptionRepo) GetPublicList(ctx context.Context, limit int) ([]*model.CaptionModel, error) {
	list := make([]*model.CaptionModel, 0)
	for id := range f.captions {
		c := f.captions[id]
		if c.IsPublic && len(list) < limit {
			list = append(list, &c)
		}
	}
	return list, nil
}

func (f *fakeCaptionRepo) GetVisibleList(ctx context.Context, userId uint64, limit int) ([]*model.CaptionModel, error) {
	list := make([]*model.CaptionModel, 0)
	for id := range f.captions {
		c := f.captions[id]
		if (c.IsPublic || c.UserId == userId) && len(list) < limit {
			list = append(list, &c)
		}
	}
	return list, nil
}

func (f *fakeCaptionRepo) UpdatePrivacy(ctx context.Context, id uint64, isPublic bool) error {
	c, ok := f.captions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.IsPublic = isPublic
	f.captions[id] = c
	return nil
}

func (f *fakeCaptionRepo) Delete(ctx context.Context, id uint64) error {
	delete(f.captions, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCaptionRepo) Close() {}

type fakeShareRepo struct{}

func (f *fakeShareRepo) Create(ctx context.Context, share model.ShareModel) (uint64, error) {
	return 1, nil
}

func (f *fakeShareRepo) GetBySlug(ctx context.Context, slug string) (model.ShareModel, error) {
	return model.ShareModel{}, gorm.ErrRecordNotFound
}

func (f *fakeShareRepo) GetByCaption(ctx context.Context, captionId uint64) (model.ShareModel, error) {
	return model.ShareModel{}, gorm.ErrRecordNotFound
}

func (f *fakeShareRepo) DeleteByCaption(ctx context.Context, captionId uint64) error {
	return nil
}

func (f *fakeShareRepo) Close() {}

func newTestService(repo *fakeCaptionRepo) *captionService {
	// ids restart per test, drop anything cached by earlier tests
	cache.Module(cache.CAPTION).Flush()
	return &captionService{captionRepo: repo, shareRepo: &fakeShareRepo{}}
}

func pngBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCreateDerivesCaptionAndThumbnail(t *testing.T) {
	repo := newFakeCaptionRepo()
	srv := newTestService(repo)

	result, err := srv.Create(context.Background(), CreateRequest{
		Filename: "blue.png",
		IsPublic: true,
		Image:    pngBytes(t, 120, 80, color.NRGBA{R: 20, G: 20, B: 200, A: 255}),
	})
	require.NoError(t, err)
	require.NotZero(t, result.ID)
	require.Equal(t, "png", result.Format)
	require.Equal(t, 120, result.Width)
	require.Equal(t, 80, result.Height)
	require.NotEmpty(t, result.Caption)
	require.NotEmpty(t, result.Thumbnail)
}

func TestCreateRejectsGarbage(t *testing.T) {
	srv := newTestService(newFakeCaptionRepo())

	_, err := srv.Create(context.Background(), CreateRequest{
		Image: []byte("not an image"),
	})
	require.Error(t, err)
}

func TestGetForViewerPrivacy(t *testing.T) {
	repo := newFakeCaptionRepo()
	srv := newTestService(repo)

	ctx := context.Background()
	privateID, err := repo.Create(ctx, model.CaptionModel{UserId: 5, Caption: "private", IsPublic: false})
	require.NoError(t, err)
	publicID, err := repo.Create(ctx, model.CaptionModel{UserId: 5, Caption: "public", IsPublic: true})
	require.NoError(t, err)

	// the owner sees both
	_, err = srv.GetForViewer(ctx, privateID, 5)
	require.NoError(t, err)
	_, err = srv.GetForViewer(ctx, publicID, 5)
	require.NoError(t, err)

	// strangers and guests only the public one
	_, err = srv.GetForViewer(ctx, privateID, 9)
	require.Equal(t, ErrPermission, err)
	_, err = srv.GetForViewer(ctx, privateID, 0)
	require.Equal(t, ErrPermission, err)
	_, err = srv.GetForViewer(ctx, publicID, 0)
	require.NoError(t, err)
}

func TestUpdatePrivacyOwnerOnly(t *testing.T) {
	repo := newFakeCaptionRepo()
	srv := newTestService(repo)

	ctx := context.Background()
	id, err := repo.Create(ctx, model.CaptionModel{UserId: 5, IsPublic: true})
	require.NoError(t, err)

	require.Equal(t, ErrPermission, srv.UpdatePrivacy(ctx, id, 9, false))
	require.NoError(t, srv.UpdatePrivacy(ctx, id, 5, false))

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.False(t, stored.IsPublic)
}

func TestDeleteOwnership(t *testing.T) {
	repo := newFakeCaptionRepo()
	srv := newTestService(repo)

	ctx := context.Background()
	owned, err := repo.Create(ctx, model.CaptionModel{UserId: 5, IsPublic: true})
	require.NoError(t, err)
	unclaimed, err := repo.Create(ctx, model.CaptionModel{UserId: 0, IsPublic: true})
	require.NoError(t, err)

	// strangers cannot delete owned captions, guests can delete unclaimed ones
	require.Equal(t, ErrPermission, srv.Delete(ctx, owned, 9))
	require.NoError(t, srv.Delete(ctx, unclaimed, 0))
	require.NoError(t, srv.Delete(ctx, owned, 5))
	require.ElementsMatch(t, []uint64{owned, unclaimed}, repo.deleted)
}

func TestListLimits(t *testing.T) {
	repo := newFakeCaptionRepo()
	srv := newTestService(repo)

	ctx := context.Background()
	for i := 0; i < 15; i++ {
		_, err := repo.Create(ctx, model.CaptionModel{IsPublic: true})
		require.NoError(t, err)
	}

	// zero limit falls back to the default page size
	infos, err := srv.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, infos, 10)

	infos, err = srv.List(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, infos, 3)
}
