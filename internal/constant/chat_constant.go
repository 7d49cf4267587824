package constant

const (
	// ChatFallbackMessage is returned when retrieval finds nothing relevant
	// or the embedding/search upstream is unavailable.
	ChatFallbackMessage = "Sorry, I could not find an answer to that in our FAQ. " +
		"Could you rephrase the question or ask about something else?"

	// ChatReplyHeader prefixes every grounded answer.
	ChatReplyHeader = "Here is what I found in our FAQ:"
)
