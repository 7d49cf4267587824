package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/entity"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/logger"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/repository/unitofwork"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/embedding"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
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
	var job dto.FaqEmbedJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		cs.log.Error("consumer", "failed to unmarshal embed job", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack malformed messages to prevent infinite retry.
		msg.Ack()
		return
	}

	text := job.Question + "\n" + job.Answer
	vector, err := cs.embeddingProvider.Generate(ctx, text)
	if err != nil {
		cs.log.Error("consumer", "embedding failed", map[string]interface{}{
			"entry_id": job.EntryId,
			"error":    err.Error(),
		})
		msg.Nack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	faq := entity.FaqEmbedding{
		Id:        uuid.New(),
		EntryId:   job.EntryId,
		Category:  job.Category,
		Question:  job.Question,
		Answer:    job.Answer,
		Embedding: vector,
		CreatedAt: time.Now(),
	}

	if err := uow.FaqEmbeddingRepository().Upsert(ctx, &faq); err != nil {
		cs.log.Error("consumer", "failed to upsert faq embedding", map[string]interface{}{
			"entry_id": job.EntryId,
			"error":    err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "faq entry embedded", map[string]interface{}{
		"entry_id": job.EntryId,
	})
	msg.Ack()
}
