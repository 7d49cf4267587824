package service

import (
	"context"
	"encoding/json"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/data"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/access"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/logger"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/events"
	pktNats "github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/nats"
)

type IIngestService interface {
	// IngestFaq queues one embed job per corpus entry. Embedding and
	// upserting happen asynchronously in the consumer.
	IngestFaq(ctx context.Context, identity access.Identity) (*dto.IngestFaqResponse, error)
}

type ingestService struct {
	guard            *access.Guard
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewIngestService(
	guard *access.Guard,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IIngestService {
	return &ingestService{
		guard:            guard,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *ingestService) IngestFaq(ctx context.Context, identity access.Identity) (*dto.IngestFaqResponse, error) {
	if _, err := s.guard.RequireAdmin(identity); err != nil {
		return nil, err
	}

	published := 0
	for _, entry := range data.FaqEntries {
		job := dto.FaqEmbedJob{
			EntryId:  entry.Id,
			Category: entry.Category,
			Question: entry.Question,
			Answer:   entry.Answer,
		}
		payload, err := json.Marshal(job)
		if err != nil {
			return nil, err
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			return nil, err
		}
		published++
	}

	s.log.Info("ingest", "faq embed jobs queued", map[string]interface{}{
		"published": published,
	})

	if s.eventPublisher != nil {
		evt := events.NewFaqIngested(published)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("ingest", "event publish failed", map[string]interface{}{
				"event": evt.EventType(),
				"error": err.Error(),
			})
		}
	}

	return &dto.IngestFaqResponse{Published: published}, nil
}
