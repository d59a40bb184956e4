package entities

// PlaceholderNoInformation is rendered for list sections whose extractor
// succeeded but produced nothing.
const PlaceholderNoInformation = "No information available."

// Section headings in their fixed render order.
const (
	HeadingMeetingMinutes  = "Meeting Minutes"
	HeadingAbstractSummary = "Abstract Summary"
	HeadingKeyPoints       = "Key Points"
	HeadingActionItems     = "Action Items"
	HeadingSentiment       = "Sentiment"
)

// DocumentSection is one (heading, body) pair of the rendered document.
type DocumentSection struct {
	Heading string
	Body    string
}

// BuildDocument assembles the five-section document from the transcript and
// the minutes. Key Points and Action Items fall back to the placeholder when
// empty; the other sections carry their values verbatim.
func BuildDocument(transcript Transcript, minutes MeetingMinutes) []DocumentSection {
	return []DocumentSection{
		{Heading: HeadingMeetingMinutes, Body: transcript.String()},
		{Heading: HeadingAbstractSummary, Body: minutes.AbstractSummary},
		{Heading: HeadingKeyPoints, Body: orPlaceholder(minutes.KeyPoints)},
		{Heading: HeadingActionItems, Body: orPlaceholder(minutes.ActionItems)},
		{Heading: HeadingSentiment, Body: string(minutes.Sentiment)},
	}
}

func orPlaceholder(body string) string {
	if body == "" {
		return PlaceholderNoInformation
	}
	return body
}

// RenderedDocument points at a document written to the serving directory.
// The ID namespaces the file so concurrent requests with identical input
// names cannot collide.
type RenderedDocument struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Path     string `json:"-"`
}
