package minutes

import (
	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
)

// FormView is the data for the submission form page.
type FormView struct {
	Error   string
	Success string
}

// ResultView is the data for the result page.
type ResultView struct {
	Minutes     entities.MeetingMinutes
	DocumentID  string
	Filename    string
	DownloadURL string
	Success     string
}
