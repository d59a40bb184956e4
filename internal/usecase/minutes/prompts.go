package minutes

// Fixed instruction framings for the three text extractors. Each constrains
// the model's role for one artifact; all run at temperature 0.
const (
	abstractSummaryPrompt = "You are a highly skilled AI trained in language comprehension and summarization. " +
		"I would like you to read the following text and summarize it into a concise abstract paragraph. " +
		"Aim to retain the most important points, providing a coherent and readable summary that could help " +
		"a person understand the main points of the discussion without needing to read the entire text. " +
		"Please avoid unnecessary details or tangential points."

	keyPointsPrompt = "You are a proficient AI with a specialty in distilling information into key points. " +
		"Based on the following text, identify and list the main points that were discussed or brought up. " +
		"These should be the most important ideas, findings, or topics that are crucial to the essence of " +
		"the discussion. Your goal is to provide a list that someone could read to quickly understand what " +
		"was talked about."

	actionItemsPrompt = "You are a highly skilled AI trained in identifying action items. " +
		"Please review the following text and identify any specific tasks or action items that were " +
		"assigned or discussed during the meeting."
)
