package entities

// Transcript is the plain-text representation of spoken or pasted meeting
// content. It is created once per request and never mutated.
type Transcript string

// String returns the raw transcript text.
func (t Transcript) String() string {
	return string(t)
}

// Sentiment is the overall polarity label of a meeting.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// SentimentFromPolarity maps a polarity score in [-1, 1] to a label by sign.
func SentimentFromPolarity(polarity float64) Sentiment {
	switch {
	case polarity > 0:
		return SentimentPositive
	case polarity < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// MeetingMinutes holds the four artifacts derived from one transcript.
// Fields are mutually independent; an empty string means the extractor
// succeeded but found nothing to report.
type MeetingMinutes struct {
	AbstractSummary string    `json:"abstract_summary"`
	KeyPoints       string    `json:"key_points"`
	ActionItems     string    `json:"action_items"`
	Sentiment       Sentiment `json:"sentiment"`
}
