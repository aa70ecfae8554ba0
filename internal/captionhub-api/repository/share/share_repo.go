package share

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

type ShareRepo interface {
	Create(ctx context.Context, share model.ShareModel) (uint64, error)
	GetBySlug(ctx context.Context, slug string) (model.ShareModel, error)
	GetByCaption(ctx context.Context, captionId uint64) (model.ShareModel, error)
	DeleteByCaption(ctx context.Context, captionId uint64) error
	Close()
}

type shareRepo struct {
	db *gorm.DB
}

func NewShareRepo(db *gorm.DB) ShareRepo {
	return &shareRepo{
		db: db,
	}
}

func (repo *shareRepo) Create(ctx context.Context, share model.ShareModel) (id uint64, err error) {
	err = repo.db.Create(&share).Error
	if err != nil {
		return 0, errors.Wrap(err, "[share_repo] create share err")
	}

	return share.ID, nil
}

func (repo *shareRepo) GetBySlug(ctx context.Context, slug string) (model.ShareModel, error) {
	share := model.ShareModel{}
	result := repo.db.Where("slug=?", slug).First(&share)
	if err := result.Error; err != nil {
		log.Warnf("[share_repo] get share for slug %s error", slug)
		return share, err
	}
	return share, nil
}

func (repo *shareRepo) GetByCaption(ctx context.Context, captionId uint64) (model.ShareModel, error) {
	share := model.ShareModel{}
	result := repo.db.Where("caption_id=?", captionId).First(&share)
	if err := result.Error; err != nil {
		return share, err
	}
	return share, nil
}

// DeleteByCaption drops share links when their caption is removed.
func (repo *shareRepo) DeleteByCaption(ctx context.Context, captionId uint64) error {
	share := model.ShareModel{}
	if result := repo.db.Where("caption_id=?", captionId).Delete(&share); result.Error != nil {
		return errors.Wrap(result.Error, "[share_repo] delete share err")
	}
	return nil
}

// Close close db
func (repo *shareRepo) Close() {
	repo.db.Close()
}
