package service

import (
	"context"
	"encoding/json"

	"schemekhoj-be/internal/dto"
	"schemekhoj-be/internal/entity"
	"schemekhoj-be/internal/pkg/logger"
	"schemekhoj-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ISchemeService interface {
	Create(ctx context.Context, request *dto.CreateSchemeRequest) (*dto.CreateSchemeResponse, error)
	GetAll(ctx context.Context) ([]*dto.SchemeResponse, error)
}

type schemeService struct {
	schemeRepo       contract.SchemeRepository
	publisherService IPublisherService
	sysLogger        logger.ILogger
}

func NewSchemeService(
	schemeRepo contract.SchemeRepository,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) ISchemeService {
	return &schemeService{
		schemeRepo:       schemeRepo,
		publisherService: publisherService,
		sysLogger:        sysLogger,
	}
}

// Create stores a scheme record and queues it for embedding. The
// scraping/extraction pipeline that produces these payloads lives
// outside this service.
func (ss *schemeService) Create(ctx context.Context, request *dto.CreateSchemeRequest) (*dto.CreateSchemeResponse, error) {
	scheme := &entity.Scheme{
		Id:         uuid.New(),
		SchemeName: request.SchemeName,
		Content:    request.Content,
		Metadata: entity.SchemeMetadata{
			State:     request.State,
			Category:  request.Category,
			MinAge:    request.MinAge,
			MaxAge:    request.MaxAge,
			MaxIncome: request.MaxIncome,
			SourceURL: request.SourceURL,
		},
	}

	if err := ss.schemeRepo.Create(ctx, scheme); err != nil {
		return nil, err
	}

	msg := dto.PublishEmbedSchemeMessage{
		SchemeId: scheme.Id,
	}
	msgJson, _ := json.Marshal(msg)
	if err := ss.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	ss.sysLogger.Info("scheme", "Scheme ingested and queued for embedding", map[string]interface{}{
		"scheme_id":   scheme.Id.String(),
		"scheme_name": scheme.SchemeName,
	})

	return &dto.CreateSchemeResponse{Id: scheme.Id}, nil
}

func (ss *schemeService) GetAll(ctx context.Context) ([]*dto.SchemeResponse, error) {
	schemes, err := ss.schemeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SchemeResponse, 0, len(schemes))
	for _, s := range schemes {
		response = append(response, &dto.SchemeResponse{
			Id:         s.Id,
			SchemeName: s.SchemeName,
			State:      s.Metadata.State,
			Category:   s.Metadata.Category,
			SourceURL:  s.Metadata.SourceURL,
			CreatedAt:  s.CreatedAt,
		})
	}

	return response, nil
}
