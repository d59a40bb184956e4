package minutes

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/meeting-minutes-team/meeting-minutes/internal/domain/entities"
)

// Polarity computes the lexicon-based polarity score of the text, in [-1, 1].
// Purely local; no network call.
func Polarity(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

// AnalyzeSentiment maps the transcript's polarity to a sentiment label.
func AnalyzeSentiment(transcript entities.Transcript) entities.Sentiment {
	return entities.SentimentFromPolarity(Polarity(transcript.String()))
}
