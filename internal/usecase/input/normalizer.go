package input

import (
	"path/filepath"
	"strings"

	"github.com/meeting-minutes-team/meeting-minutes/errors"
	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
)

// AllowedAudioFormats lists the audio container/codec extensions the
// transcription service accepts, in the order shown to the user.
var AllowedAudioFormats = []string{"m4a", "mp3", "webm", "mp4", "mpga", "wav", "mpeg", "ogg", "oga", "flac"}

var allowedAudioFormatSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedAudioFormats))
	for _, f := range AllowedAudioFormats {
		set[f] = struct{}{}
	}
	return set
}()

// ValidateAudioFilename checks the uploaded filename against the allow-list.
// An empty filename means no file was selected.
func ValidateAudioFilename(filename string) error {
	if filename == "" {
		return errors.ErrNoSelectedFile()
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowedAudioFormatSet[ext]; !ok {
		return errors.ErrUnsupportedFormat(ext, AllowedAudioFormats)
	}
	return nil
}

// NormalizeText turns pasted meeting text into a Transcript. The text passes
// through unchanged; only an input that is empty after trimming is rejected.
func NormalizeText(pasted string) (entities.Transcript, error) {
	if strings.TrimSpace(pasted) == "" {
		return "", errors.ErrEmptyText()
	}
	return entities.Transcript(pasted), nil
}
