package transcription

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/meeting-minutes-team/meeting-minutes/errors"
	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
)

// SpeechClient is the external speech-to-text capability.
type SpeechClient interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Service turns validated audio bytes into a Transcript.
type Service interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (entities.Transcript, error)
}

type service struct {
	client  SpeechClient
	tempDir string
	timeout time.Duration
	logger  *zap.Logger
}

// NewService constructs a transcription service. tempDir may be empty to use
// the OS default; timeout bounds the external call.
func NewService(client SpeechClient, tempDir string, timeout time.Duration, logger *zap.Logger) Service {
	return &service{
		client:  client,
		tempDir: tempDir,
		timeout: timeout,
		logger:  logger,
	}
}

// Transcribe persists the audio to a scoped temp file, invokes the external
// transcription capability with it, and removes the temp file on every exit
// path. Failures surface as TranscriptionError; the caller must not retry
// automatically.
func (s *service) Transcribe(ctx context.Context, filename string, audio io.Reader) (entities.Transcript, error) {
	ext := filepath.Ext(filename)
	tmp, err := os.CreateTemp(s.tempDir, "upload-*"+ext)
	if err != nil {
		return "", errors.ErrTranscriptionFailed(fmt.Errorf("create temp file: %w", err))
	}
	tmpPath := tmp.Name()
	defer func() {
		tmp.Close()
		if rmErr := os.Remove(tmpPath); rmErr != nil && s.logger != nil {
			s.logger.Warn("failed to remove temp audio file",
				zap.String("path", tmpPath),
				zap.Error(rmErr),
			)
		}
	}()

	written, err := io.Copy(tmp, audio)
	if err != nil {
		return "", errors.ErrTranscriptionFailed(fmt.Errorf("write temp file: %w", err))
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", errors.ErrTranscriptionFailed(fmt.Errorf("rewind temp file: %w", err))
	}

	if s.logger != nil {
		s.logger.Info("transcribing uploaded audio",
			zap.String("filename", filename),
			zap.Int64("bytes", written),
		)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.client.Transcribe(callCtx, filename, tmp)
	if err != nil {
		return "", errors.ErrTranscriptionFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("transcription completed",
			zap.String("filename", filename),
			zap.Int("transcript_length", len(text)),
		)
	}

	return entities.Transcript(text), nil
}
