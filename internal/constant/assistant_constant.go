package constant

// AssistantSystemInstruction is sent as the system message on every
// completion call. The model never sees prior turns; history is stored for
// the user's own reading only.
const AssistantSystemInstruction = "You are a helpful AI assistant for VAUL AI. " +
	"You help users with summarizing notes, rewriting text, generating ideas, " +
	"and general assistance. Be concise and helpful."

// AssistantFallbackResponse is persisted and returned when the provider
// produces a completion with no content.
const AssistantFallbackResponse = "I'm sorry, I couldn't generate a response."

const (
	// AssistantMaxTokens bounds the model output per turn.
	AssistantMaxTokens = 1000

	// AssistantHistoryLimit caps how many turns a history fetch returns.
	AssistantHistoryLimit = 50
)

const (
	TopicAssistantTurnRecorded = "ASSISTANT_TURN_RECORDED"
)
