package minutes

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/meeting-minutes-team/meeting-minutes/errors"
	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
)

// ChatClient is the external text-generation capability the three text
// extractors delegate to.
type ChatClient interface {
	ChatCompletion(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// Service assembles MeetingMinutes from a Transcript.
type Service interface {
	Assemble(ctx context.Context, transcript entities.Transcript) (entities.MeetingMinutes, error)
}

type service struct {
	chat    ChatClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewService constructs the assembler. timeout bounds each generation call.
func NewService(chat ChatClient, timeout time.Duration, logger *zap.Logger) Service {
	return &service{
		chat:    chat,
		timeout: timeout,
		logger:  logger,
	}
}

// Assemble invokes all four extractors concurrently and joins the results.
// If any extractor fails the whole assembly aborts with ExtractionError; no
// defaults are substituted for failures. An extractor that succeeds with an
// empty result keeps the empty value (the renderer applies placeholders).
func (s *service) Assemble(ctx context.Context, transcript entities.Transcript) (entities.MeetingMinutes, error) {
	var result entities.MeetingMinutes

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, err := s.extract(gctx, abstractSummaryPrompt, transcript)
		if err != nil {
			return errors.ErrExtractionFailed("abstract_summary", err)
		}
		result.AbstractSummary = text
		return nil
	})

	g.Go(func() error {
		text, err := s.extract(gctx, keyPointsPrompt, transcript)
		if err != nil {
			return errors.ErrExtractionFailed("key_points", err)
		}
		result.KeyPoints = text
		return nil
	})

	g.Go(func() error {
		text, err := s.extract(gctx, actionItemsPrompt, transcript)
		if err != nil {
			return errors.ErrExtractionFailed("action_items", err)
		}
		result.ActionItems = text
		return nil
	})

	g.Go(func() error {
		result.Sentiment = AnalyzeSentiment(transcript)
		return nil
	})

	if err := g.Wait(); err != nil {
		if s.logger != nil {
			s.logger.Error("minutes assembly failed",
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
		}
		return entities.MeetingMinutes{}, err
	}

	if s.logger != nil {
		s.logger.Info("minutes assembled",
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("summary_length", len(result.AbstractSummary)),
			zap.Int("key_points_length", len(result.KeyPoints)),
			zap.Int("action_items_length", len(result.ActionItems)),
			zap.String("sentiment", string(result.Sentiment)),
		)
	}

	return result, nil
}

// extract runs one generation call under the per-call timeout.
func (s *service) extract(ctx context.Context, systemPrompt string, transcript entities.Transcript) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.chat.ChatCompletion(ctx, systemPrompt, transcript.String())
}
