package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/logger"
)

// Responder answers a question from the FAQ index. It never returns an
// error to the caller: empty retrieval and upstream failures both degrade
// to the fallback message so the chat flow keeps working.
type Responder struct {
	searcher  Searcher
	topK      int
	threshold float64
	fallback  string
	header    string
	cache     *gocache.Cache
	log       logger.ILogger
}

func NewResponder(
	searcher Searcher,
	topK int,
	threshold float64,
	fallback string,
	header string,
	log logger.ILogger,
) *Responder {
	if topK <= 0 {
		topK = 5
	}
	return &Responder{
		searcher:  searcher,
		topK:      topK,
		threshold: threshold,
		fallback:  fallback,
		header:    header,
		cache:     gocache.New(5*time.Minute, 10*time.Minute),
		log:       log,
	}
}

// Respond retrieves the most relevant FAQ entries and composes a reply.
func (r *Responder) Respond(ctx context.Context, question string) string {
	cacheKey := normalizeQuery(question)
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.(string)
	}

	matches, err := r.searcher.Search(ctx, question, r.topK, r.threshold)
	if err != nil {
		r.log.Warn("rag", "retrieval failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return r.fallback
	}

	if len(matches) == 0 {
		r.log.Info("rag", "no matches above threshold", map[string]interface{}{
			"question": question,
		})
		return r.fallback
	}

	best := matches[0]
	reply := fmt.Sprintf("%s\n\n%s\n\n(Best match: %q, score %.2f)",
		r.header, BuildContext(matches), best.Metadata["question"], best.Score)

	r.cache.Set(cacheKey, reply, gocache.DefaultExpiration)
	return reply
}

func normalizeQuery(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}
