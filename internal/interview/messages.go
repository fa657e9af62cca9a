package interview

var exitKeywords = []string{"exit", "quit", "bye", "goodbye", "stop", "end"}

var consentYesKeywords = []string{
	"yes", "y", "yeah", "yep", "sure", "of course", "i agree", "i consent",
}

var consentNoKeywords = []string{
	"no", "n", "nope", "i do not", "dont", "don't",
}

const greetingMessage = "Welcome to SkillScout. I'll ask you a short series of " +
	"questions about your experience and skills, then a small set of technical " +
	"questions. You can type 'exit' at any time to end the interview."

const consentPromptMessage = "Thanks for sharing your profile and tech stack.\n\n" +
	"Before we continue, do you consent to storing your profile (name, " +
	"experience, and tech stack) for this screening? Please reply Yes or No."

const consentGrantedMessage = "Thank you for your consent. I've stored your " +
	"profile.\n\nNow I'll ask you a few technical questions based on your skills."

const consentDeniedMessage = "Understood - I will not store your profile.\n\n" +
	"We can still proceed with a brief technical screening for practice. " +
	"Let's continue."

const consentRepromptMessage = "I didn't clearly understand your consent choice. " +
	"Please reply with Yes if you agree, or No if you do not."

const firstAnswerAck = "Thanks, I've noted your answer."

const periodicAnswerAck = "Thanks, that helps me understand your experience. " +
	"Here's the next question."

// placeholderQuestion stands in when question generation fails after
// retries; it keeps the question count and follow-up flow intact.
const placeholderQuestion = "I'm currently experiencing a temporary issue " +
	"generating the next question. Could you briefly elaborate more on your " +
	"last answer?"

const fallbackErrorMessage = "I'm sorry, I couldn't process that properly. " +
	"Please answer the last question or type 'exit' to finish."

const endedMessage = "This screening has ended. You can close this window now."

func completionMessage(firstName string, maxReached bool) string {
	prefix := "Thank you. "
	if firstName != "" {
		prefix = "Thank you, " + firstName + ". "
	}
	msg := prefix + "Your screening is now complete. A recruiter will review " +
		"your answers and, if there's a suitable match, contact you about next " +
		"steps. You can close this window now."
	if maxReached {
		msg += " (We've reached the maximum number of questions for this session.)"
	}
	return msg
}
