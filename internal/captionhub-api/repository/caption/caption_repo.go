package caption

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/captionhub/internal/captionhub-api/model"
	"github.com/captionhub/pkg/captionhub-api/pkg/log"
)

type CaptionRepo interface {
	Create(ctx context.Context, caption model.CaptionModel) (uint64, error)
	Get(ctx context.Context, id uint64) (model.CaptionModel, error)
	GetPublicList(ctx context.Context, limit int) ([]*model.CaptionModel, error)
	GetVisibleList(ctx context.Context, userId uint64, limit int) ([]*model.CaptionModel, error)
	UpdatePrivacy(ctx context.Context, id uint64, isPublic bool) error
	Delete(ctx context.Context, id uint64) error
	Close()
}

type captionRepo struct {
	db *gorm.DB
}

func NewCaptionRepo(db *gorm.DB) CaptionRepo {
	return &captionRepo{
		db: db,
	}
}

func (repo *captionRepo) Create(ctx context.Context, caption model.CaptionModel) (id uint64, err error) {
	err = repo.db.Create(&caption).Error
	if err != nil {
		return 0, errors.Wrap(err, "[caption_repo] create caption err")
	}

	return caption.ID, nil
}

func (repo *captionRepo) Get(ctx context.Context, id uint64) (model.CaptionModel, error) {
	caption := model.CaptionModel{}
	result := repo.db.Where("id=?", id).First(&caption)
	if err := result.Error; err != nil {
		log.Warnf("[caption_repo] get caption %v error", id)
		return caption, err
	}
	return caption, nil
}

// GetPublicList returns newest-first public captions for anonymous callers.
func (repo *captionRepo) GetPublicList(ctx context.Context, limit int) ([]*model.CaptionModel, error) {
	where, vals, err := model.WhereBuild(map[string]interface{}{"is_public": true})
	if err != nil {
		return nil, errors.Wrap(err, "[caption_repo] build public list where err")
	}

	captionList := make([]*model.CaptionModel, 0)
	result := repo.db.Where(where, vals...).Order("created_at desc").Limit(limit).Find(&captionList)

	if err := result.Error; err != nil {
		log.Warnf("[caption_repo] get public caption list err")
		return nil, err
	}

	return captionList, nil
}

// GetVisibleList returns public captions plus the caller's private ones.
func (repo *captionRepo) GetVisibleList(ctx context.Context, userId uint64, limit int) ([]*model.CaptionModel, error) {
	captionList := make([]*model.CaptionModel, 0)
	result := repo.db.Where("is_public=? or user_id=?", true, userId).
		Order("created_at desc").Limit(limit).Find(&captionList)

	if err := result.Error; err != nil {
		log.Warnf("[caption_repo] get caption list for user %v err", userId)
		return nil, err
	}

	return captionList, nil
}

func (repo *captionRepo) UpdatePrivacy(ctx context.Context, id uint64, isPublic bool) error {
	if err := repo.db.Exec("UPDATE captions SET is_public = ? WHERE id = ?", isPublic, id).Error; err != nil {
		return errors.Wrap(err, "[caption_repo] update caption privacy err")
	}
	return nil
}

func (repo *captionRepo) Delete(ctx context.Context, id uint64) error {
	caption := model.CaptionModel{
		ID: id,
	}
	if result := repo.db.Where("id=?", id).Delete(&caption); result.RowsAffected > 0 {
		return nil
	}
	return errors.New("caption delete denied")
}

// Close close db
func (repo *captionRepo) Close() {
	repo.db.Close()
}
