package service

import (
	"context"
	"encoding/json"
	"log"

	"schemekhoj-be/internal/dto"
	"schemekhoj-be/internal/entity"
	"schemekhoj-be/internal/repository/contract"
	"schemekhoj-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService is the background worker that embeds newly
// ingested schemes into the vector index.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	schemeRepo        contract.SchemeRepository
	embeddingRepo     contract.SchemeEmbeddingRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	schemeRepo contract.SchemeRepository,
	embeddingRepo contract.SchemeEmbeddingRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		schemeRepo:        schemeRepo,
		embeddingRepo:     embeddingRepo,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedSchemeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Embedding scheme %s", payload.SchemeId)

	scheme, err := cs.schemeRepo.FindById(ctx, payload.SchemeId)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch scheme %s: %v", payload.SchemeId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if scheme == nil {
		log.Printf("[ERROR] Scheme not found: %s", payload.SchemeId)
		msg.Ack() // Scheme deleted? Ack.
		return
	}

	// Name + full marker text go into one embedding; schemes are short
	// enough that chunking buys nothing here.
	document := scheme.SchemeName + "\n" + scheme.Content

	embedded, err := cs.embeddingProvider.Generate(document, embedding.TaskRetrievalDocument)
	if err != nil {
		log.Printf("[ERROR] Failed to embed scheme %s: %v", payload.SchemeId, err)
		msg.Nack()
		return
	}

	// Replace any previous embedding for this scheme before writing.
	if err := cs.embeddingRepo.DeleteBySchemeId(ctx, scheme.Id); err != nil {
		log.Printf("[ERROR] Failed to clear embeddings for scheme %s: %v", scheme.Id, err)
		msg.Nack()
		return
	}

	schemeEmbedding := &entity.SchemeEmbedding{
		Document:       document,
		EmbeddingValue: embedded.Embedding.Values,
		SchemeId:       scheme.Id,
	}
	if err := cs.embeddingRepo.Create(ctx, schemeEmbedding); err != nil {
		log.Printf("[ERROR] Failed to store embedding for scheme %s: %v", scheme.Id, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
