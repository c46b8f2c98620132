package implementation

import (
	"context"

	"schemekhoj-be/internal/entity"
	"schemekhoj-be/internal/mapper"
	"schemekhoj-be/internal/model"
	"schemekhoj-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchemeEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchemeEmbeddingMapper
}

func NewSchemeEmbeddingRepository(db *gorm.DB) contract.SchemeEmbeddingRepository {
	return &SchemeEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchemeEmbeddingMapper(),
	}
}

func (r *SchemeEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.SchemeEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *SchemeEmbeddingRepositoryImpl) DeleteBySchemeId(ctx context.Context, schemeId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("scheme_id = ?", schemeId).Delete(&model.SchemeEmbedding{}).Error
}
