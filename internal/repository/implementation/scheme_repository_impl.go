package implementation

import (
	"context"
	"errors"

	"schemekhoj-be/internal/entity"
	"schemekhoj-be/internal/mapper"
	"schemekhoj-be/internal/model"
	"schemekhoj-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SchemeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchemeMapper
}

func NewSchemeRepository(db *gorm.DB) contract.SchemeRepository {
	return &SchemeRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchemeMapper(),
	}
}

func (r *SchemeRepositoryImpl) Create(ctx context.Context, scheme *entity.Scheme) error {
	m := r.mapper.ToModel(scheme)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scheme = *r.mapper.ToEntity(m)
	return nil
}

func (r *SchemeRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Scheme, error) {
	var m model.Scheme
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SchemeRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Scheme, error) {
	var models []*model.Scheme
	if err := r.db.WithContext(ctx).Order("scheme_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// SearchSimilar ranks schemes by cosine similarity between the query
// vector and their stored embedding.
// Cosine distance in pgvector is: 1 - cosine_similarity
// So we compute: 1 - (embedding_value <=> query_vector) = cosine_similarity
func (r *SchemeRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredScheme, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.Scheme
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("schemes").
		Select("schemes.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN scheme_embeddings ON scheme_embeddings.scheme_id = schemes.id").
		Where("schemes.deleted_at IS NULL").
		Where("scheme_embeddings.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredScheme, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredScheme{
			Scheme:     r.mapper.ToEntity(&res.Scheme),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
