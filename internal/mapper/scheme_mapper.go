package mapper

import (
	"encoding/json"
	"time"

	"schemekhoj-be/internal/entity"
	"schemekhoj-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SchemeMapper struct{}

func NewSchemeMapper() *SchemeMapper {
	return &SchemeMapper{}
}

func (m *SchemeMapper) ToEntity(s *model.Scheme) *entity.Scheme {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var meta entity.SchemeMetadata
	if len(s.Metadata) > 0 {
		// Metadata written by the ingestion side is trusted; a decode
		// failure just leaves the metadata empty.
		_ = json.Unmarshal(s.Metadata, &meta)
	}

	return &entity.Scheme{
		Id:         s.Id,
		SchemeName: s.SchemeName,
		Content:    s.Content,
		Metadata:   meta,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  s.DeletedAt.Valid,
	}
}

func (m *SchemeMapper) ToModel(s *entity.Scheme) *model.Scheme {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	metaJson, _ := json.Marshal(s.Metadata)

	return &model.Scheme{
		Id:         s.Id,
		SchemeName: s.SchemeName,
		Content:    s.Content,
		Metadata:   datatypes.JSON(metaJson),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *SchemeMapper) ToEntities(schemes []*model.Scheme) []*entity.Scheme {
	entities := make([]*entity.Scheme, len(schemes))
	for i, s := range schemes {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type SchemeEmbeddingMapper struct{}

func NewSchemeEmbeddingMapper() *SchemeEmbeddingMapper {
	return &SchemeEmbeddingMapper{}
}

func (m *SchemeEmbeddingMapper) ToEntity(e *model.SchemeEmbedding) *entity.SchemeEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.SchemeEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		SchemeId:       e.SchemeId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *SchemeEmbeddingMapper) ToModel(e *entity.SchemeEmbedding) *model.SchemeEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.SchemeEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		SchemeId:       e.SchemeId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}
