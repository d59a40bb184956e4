package handler

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meeting-minutes-team/meeting-minutes/errors"
	dto "github.com/meeting-minutes-team/meeting-minutes/internal/adapter/dto/minutes"
	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
	"github.com/meeting-minutes-team/meeting-minutes/internal/usecase/input"
	minutesuse "github.com/meeting-minutes-team/meeting-minutes/internal/usecase/minutes"
	"github.com/meeting-minutes-team/meeting-minutes/internal/usecase/report"
	"github.com/meeting-minutes-team/meeting-minutes/internal/usecase/transcription"
)

const successMessage = "Meeting minutes extracted and saved successfully!"

// MinutesHandler serves the submission form, runs the pipeline, and streams
// rendered documents back to the caller.
type MinutesHandler struct {
	transcriber transcription.Service
	assembler   minutesuse.Service
	renderer    report.Service
	logger      *zap.Logger
}

// NewMinutesHandler creates a new minutes handler
func NewMinutesHandler(
	transcriber transcription.Service,
	assembler minutesuse.Service,
	renderer report.Service,
	logger *zap.Logger,
) *MinutesHandler {
	return &MinutesHandler{
		transcriber: transcriber,
		assembler:   assembler,
		renderer:    renderer,
		logger:      logger,
	}
}

// ShowForm renders the submission form, including any flash message carried
// back from a redirect.
func (h *MinutesHandler) ShowForm(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", dto.FormView{
		Error:   c.QueryParam("error"),
		Success: c.QueryParam("success"),
	})
}

// Process validates the submission, runs the pipeline and renders the result
// view. Every failure redirects back to the form with a user-visible message;
// no partial processing happens after a validation failure and no document is
// written when an extractor fails.
func (h *MinutesHandler) Process(c echo.Context) error {
	var req dto.ProcessRequest
	if err := c.Bind(&req); err != nil {
		return RedirectWithError(h.logger, c, errors.ErrValidation("Invalid form submission"))
	}
	if err := c.Validate(&req); err != nil {
		return RedirectWithError(h.logger, c, errors.ErrValidation("Please choose an input type"))
	}

	ctx := c.Request().Context()

	var transcript entities.Transcript
	var sourceName string

	switch req.InputType {
	case dto.InputTypeAudio:
		fh, err := c.FormFile("audio_file")
		if err != nil {
			return RedirectWithError(h.logger, c, errors.ErrMissingAudioFile())
		}
		if err := input.ValidateAudioFilename(fh.Filename); err != nil {
			return RedirectWithError(h.logger, c, err)
		}

		file, err := fh.Open()
		if err != nil {
			return RedirectWithError(h.logger, c, errors.ErrInternal(err))
		}
		defer file.Close()

		transcript, err = h.transcriber.Transcribe(ctx, fh.Filename, file)
		if err != nil {
			return RedirectWithError(h.logger, c, err)
		}
		sourceName = fh.Filename

	case dto.InputTypeText:
		var err error
		transcript, err = input.NormalizeText(req.PastedText)
		if err != nil {
			return RedirectWithError(h.logger, c, err)
		}

	default:
		return RedirectWithError(h.logger, c, errors.ErrValidation("Please choose an input type"))
	}

	minutes, err := h.assembler.Assemble(ctx, transcript)
	if err != nil {
		return RedirectWithError(h.logger, c, err)
	}

	doc, err := h.renderer.Render(ctx, transcript, minutes, sourceName)
	if err != nil {
		return RedirectWithError(h.logger, c, err)
	}

	if h.logger != nil {
		h.logger.Info("meeting minutes extracted",
			zap.String("request_id", getRequestID(c)),
			zap.String("document_id", doc.ID),
			zap.String("filename", doc.Filename),
			zap.Int("transcript_length", len(transcript)),
			zap.Any("minutes", minutes),
		)
	}

	return c.Render(http.StatusOK, "result.html", dto.ResultView{
		Minutes:     minutes,
		DocumentID:  doc.ID,
		Filename:    doc.Filename,
		DownloadURL: "/download/" + doc.ID + "/" + doc.Filename,
		Success:     successMessage,
	})
}

// Download streams a previously rendered document as an attachment.
func (h *MinutesHandler) Download(c echo.Context) error {
	id := c.Param("id")
	filename := c.Param("filename")

	path, err := h.renderer.Resolve(id, filename)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.Attachment(path, filepath.Base(filename))
}
