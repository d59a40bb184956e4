package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meeting-minutes-team/meeting-minutes/errors"
	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
)

// TextBasedFilename is the document name for pasted-text submissions.
const TextBasedFilename = "text_based.docx"

// Service renders assembled minutes into downloadable documents.
type Service interface {
	Render(ctx context.Context, transcript entities.Transcript, minutes entities.MeetingMinutes, sourceName string) (*entities.RenderedDocument, error)
	Resolve(id, filename string) (string, error)
}

type service struct {
	dir    string
	logger *zap.Logger
}

// NewService constructs a renderer writing into dir.
func NewService(dir string, logger *zap.Logger) Service {
	return &service{dir: dir, logger: logger}
}

// DocumentFilename derives the document name from the original input name:
// the audio filename's stem plus .docx, or the fixed text-based default.
func DocumentFilename(sourceName string) string {
	if sourceName == "" {
		return TextBasedFilename
	}
	stem := strings.TrimSuffix(filepath.Base(sourceName), filepath.Ext(sourceName))
	return stem + ".docx"
}

// Render writes the five-section document under a fresh per-request directory
// so concurrent requests with identical input names never race on one file.
// Writing the same path twice silently replaces it.
func (s *service) Render(ctx context.Context, transcript entities.Transcript, minutes entities.MeetingMinutes, sourceName string) (*entities.RenderedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ErrRenderFailed(err)
	}

	id := uuid.NewString()
	filename := DocumentFilename(sourceName)

	docDir := filepath.Join(s.dir, id)
	if err := os.MkdirAll(docDir, 0o755); err != nil {
		return nil, errors.ErrRenderFailed(fmt.Errorf("create document dir: %w", err))
	}

	path := filepath.Join(docDir, filename)
	sections := entities.BuildDocument(transcript, minutes)
	if err := writeDocx(sections, path); err != nil {
		return nil, errors.ErrRenderFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("document rendered",
			zap.String("document_id", id),
			zap.String("filename", filename),
			zap.Int("sections", len(sections)),
		)
	}

	return &entities.RenderedDocument{
		ID:       id,
		Filename: filename,
		Path:     path,
	}, nil
}

// Resolve maps a download request to a path inside the serving directory.
// The id must be a UUID this service issued and the filename is reduced to
// its base, so nothing outside the documents tree is reachable.
func (s *service) Resolve(id, filename string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.ErrDocumentNotFound(filename)
	}

	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return "", errors.ErrDocumentNotFound(filename)
	}

	path := filepath.Join(s.dir, id, base)
	if _, err := os.Stat(path); err != nil {
		return "", errors.ErrDocumentNotFound(base)
	}
	return path, nil
}
