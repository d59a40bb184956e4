package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meeting-minutes-team/meeting-minutes/errors"
	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
	pkgvalidator "github.com/meeting-minutes-team/meeting-minutes/pkg/validator"
)

// stubTranscriber implements transcription.Service
type stubTranscriber struct {
	transcript entities.Transcript
	err        error
	calls      int
}

func (s *stubTranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (entities.Transcript, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.transcript, nil
}

// stubAssembler implements minutes.Service
type stubAssembler struct {
	minutes entities.MeetingMinutes
	err     error
	calls   int
}

func (s *stubAssembler) Assemble(ctx context.Context, transcript entities.Transcript) (entities.MeetingMinutes, error) {
	s.calls++
	if s.err != nil {
		return entities.MeetingMinutes{}, s.err
	}
	return s.minutes, nil
}

// stubRenderer implements report.Service
type stubRenderer struct {
	doc     *entities.RenderedDocument
	path    string
	err     error
	renders int
}

func (s *stubRenderer) Render(ctx context.Context, transcript entities.Transcript, minutes entities.MeetingMinutes, sourceName string) (*entities.RenderedDocument, error) {
	s.renders++
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func (s *stubRenderer) Resolve(id, filename string) (string, error) {
	if s.path == "" {
		return "", errors.ErrDocumentNotFound(filename)
	}
	return s.path, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.Renderer = NewTemplateRenderer()
	return e
}

func setup(t *testing.T, transcriber *stubTranscriber, assembler *stubAssembler, renderer *stubRenderer) *echo.Echo {
	t.Helper()
	e := newTestEcho()
	h := NewMinutesHandler(transcriber, assembler, renderer, zap.NewNop())
	NewRouter(nil, h).Setup(e)
	return e
}

func sampleMinutes() entities.MeetingMinutes {
	return entities.MeetingMinutes{
		AbstractSummary: "the summary",
		KeyPoints:       "- key point",
		ActionItems:     "- action item",
		Sentiment:       entities.SentimentPositive,
	}
}

func TestShowForm(t *testing.T) {
	e := setup(t, &stubTranscriber{}, &stubAssembler{}, &stubRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "input_type")
}

func TestShowForm_RendersFlash(t *testing.T) {
	e := setup(t, &stubTranscriber{}, &stubAssembler{}, &stubRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/?error="+url.QueryEscape("No selected file"), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No selected file")
}

func TestProcess_TextSuccess(t *testing.T) {
	assembler := &stubAssembler{minutes: sampleMinutes()}
	renderer := &stubRenderer{doc: &entities.RenderedDocument{ID: "11111111-1111-1111-1111-111111111111", Filename: "text_based.docx"}}
	e := setup(t, &stubTranscriber{}, assembler, renderer)

	form := url.Values{}
	form.Set("input_type", "text")
	form.Set("pasted_text", "Team agreed to ship v2 next Friday.")

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "the summary")
	assert.Contains(t, body, "Positive")
	assert.Contains(t, body, "/download/11111111-1111-1111-1111-111111111111/text_based.docx")
	assert.Contains(t, body, successMessage)
	assert.Equal(t, 1, assembler.calls)
	assert.Equal(t, 1, renderer.renders)
}

func TestProcess_EmptyTextRedirects(t *testing.T) {
	assembler := &stubAssembler{minutes: sampleMinutes()}
	renderer := &stubRenderer{}
	e := setup(t, &stubTranscriber{}, assembler, renderer)

	form := url.Values{}
	form.Set("input_type", "text")
	form.Set("pasted_text", "   ")

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
	// no partial processing after validation failure
	assert.Zero(t, assembler.calls)
	assert.Zero(t, renderer.renders)
}

func TestProcess_MissingInputTypeRedirects(t *testing.T) {
	e := setup(t, &stubTranscriber{}, &stubAssembler{}, &stubRenderer{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
}

func audioForm(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("input_type", "audio"))
	part, err := mw.CreateFormFile("audio_file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake audio bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestProcess_AudioSuccess(t *testing.T) {
	transcriber := &stubTranscriber{transcript: "hello from the meeting"}
	assembler := &stubAssembler{minutes: sampleMinutes()}
	renderer := &stubRenderer{doc: &entities.RenderedDocument{ID: "22222222-2222-2222-2222-222222222222", Filename: "standup.docx"}}
	e := setup(t, transcriber, assembler, renderer)

	body, contentType := audioForm(t, "standup.mp3")
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "standup.docx")
	assert.Equal(t, 1, transcriber.calls)
	assert.Equal(t, 1, assembler.calls)
	assert.Equal(t, 1, renderer.renders)
}

func TestProcess_UnsupportedExtensionRejectedBeforeAnyCall(t *testing.T) {
	transcriber := &stubTranscriber{}
	assembler := &stubAssembler{}
	renderer := &stubRenderer{}
	e := setup(t, transcriber, assembler, renderer)

	body, contentType := audioForm(t, "notes.pdf")
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
	assert.Zero(t, transcriber.calls)
	assert.Zero(t, assembler.calls)
	assert.Zero(t, renderer.renders)
}

func TestProcess_MissingAudioFileRedirects(t *testing.T) {
	e := setup(t, &stubTranscriber{}, &stubAssembler{}, &stubRenderer{})

	form := url.Values{}
	form.Set("input_type", "audio")

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
}

func TestProcess_ExtractionFailureSkipsRenderer(t *testing.T) {
	assembler := &stubAssembler{err: errors.ErrExtractionFailed("key_points", io.ErrUnexpectedEOF)}
	renderer := &stubRenderer{}
	e := setup(t, &stubTranscriber{}, assembler, renderer)

	form := url.Values{}
	form.Set("input_type", "text")
	form.Set("pasted_text", "some meeting text")

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
	// no partial document may exist after an extractor failure
	assert.Zero(t, renderer.renders)
}

func TestProcess_RenderFailureRedirects(t *testing.T) {
	assembler := &stubAssembler{minutes: sampleMinutes()}
	renderer := &stubRenderer{err: errors.ErrRenderFailed(io.ErrShortWrite)}
	e := setup(t, &stubTranscriber{}, assembler, renderer)

	form := url.Values{}
	form.Set("input_type", "text")
	form.Set("pasted_text", "some meeting text")

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "Failed to generate the meeting document", location.Query().Get("error"))
	assert.Equal(t, 1, renderer.renders)
}

func TestProcess_TranscriptionFailureRedirects(t *testing.T) {
	transcriber := &stubTranscriber{err: errors.ErrTranscriptionFailed(io.ErrUnexpectedEOF)}
	assembler := &stubAssembler{}
	e := setup(t, transcriber, assembler, &stubRenderer{})

	body, contentType := audioForm(t, "standup.mp3")
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Contains(t, location.Query().Get("error"), "transcription")
	assert.Zero(t, assembler.calls)
}

func TestDownload_NotFound(t *testing.T) {
	e := setup(t, &stubTranscriber{}, &stubAssembler{}, &stubRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/download/not-a-uuid/standup.docx", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := setup(t, &stubTranscriber{}, &stubAssembler{}, &stubRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
