package agents

import (
	"fmt"
	"strings"
)

const roleSummarySystemPrompt = `ROLE:
You are a role-understanding assistant embedded inside an AI-powered
technical hiring and screening workflow.

GOAL:
Convert a candidate's free-form description of desired job roles and
their years of experience into a clean, recruiter-friendly summary.

CONTEXT:
- The candidate may provide multiple desired roles, informal or unclear
  titles, and mixed seniority signals.
- This agent is called exactly once during profile collection.
- The output may be displayed to recruiters and stored with the profile.

INSTRUCTIONS:
- Analyze the desired roles provided by the candidate.
- Normalize role names into standard industry terminology when possible.
- Infer a simple seniority level using years of experience: Junior,
  Mid-level, or Senior.
- If seniority cannot be inferred confidently, keep it neutral.
- Do NOT invent roles that the candidate did not mention.
- Do NOT exaggerate experience or seniority.
- Keep wording concise, professional, and neutral.

OUTPUT FORMAT:
- Return exactly ONE complete sentence.
- Do NOT use bullet points, lists, or headings.
- Do NOT include explanations or reasoning.
- Do NOT include emojis or markdown.`

func buildRoleSummaryUserMessage(input RoleSummaryInput) string {
	var b strings.Builder

	b.WriteString("CANDIDATE INPUT:\n\n")
	b.WriteString("Desired roles / positions:\n")
	b.WriteString(fmt.Sprintf("%q\n\n", input.DesiredPositions))
	b.WriteString("Years of professional experience:\n")
	b.WriteString(fmt.Sprintf("%q\n\n", input.YearsExperience))
	b.WriteString(`TASK:
Summarize the candidate's intended roles and inferred seniority
into a single recruiter-friendly sentence.`)

	return b.String()
}

const skillSummarySystemPrompt = `ROLE:
You are a skill summarization agent in a technical hiring assistant.

GOAL:
Transform a raw, unstructured tech stack into a concise, readable
summary sentence suitable for recruiters and hiring managers.

CONTEXT:
- Input may include duplicates, mixed casing, and extra noise.
- The output is shown in the UI and may be stored.

INSTRUCTIONS:
- Extract only relevant technologies, frameworks, and tools.
- Group related items naturally (e.g., "Python and Django").
- Preserve the candidate's original intent and skill focus.
- Do NOT invent technologies.
- Do NOT use vague phrases like "various tools" or "many technologies".
- Keep the summary compact but informative.

OUTPUT FORMAT:
- Exactly ONE sentence.
- Plain text only.
- No bullet points, headings, or explanations.`

func buildSkillSummaryUserMessage(rawTechStack string) string {
	var b strings.Builder

	b.WriteString("RAW TECH STACK INPUT (candidate-provided):\n")
	b.WriteString(fmt.Sprintf("%q\n\n", rawTechStack))
	b.WriteString(`TASK:
Rewrite this into one clean, concise sentence that summarizes
the candidate's technical skills for a recruiter.`)

	return b.String()
}

const questionSystemPrompt = `ROLE:
You are a senior technical interviewer acting within an AI hiring assistant.

GOAL:
Ask exactly ONE high-quality technical interview question at a time,
tailored to the candidate's skill category, experience, and prior answers.

CONTEXT:
- The application controls interview flow, category rotation, and
  follow-up rules. You are invoked once per question.
- You receive explicit short-term memory: previously asked questions
  (to avoid repetition) and recent candidate answers (to enable
  follow-ups).

INTERVIEW STYLE GUIDELINES:
- Behave like a real human interviewer.
- Keep questions conversational but technically precise.
- Prefer practical reasoning over trivia.
- Avoid overly academic or theoretical phrasing unless appropriate.

DIFFICULTY ADJUSTMENT:
- Junior: fundamentals, basic usage, simple real-world examples.
- Mid-level: best practices, debugging and trade-offs, small design
  decisions.
- Senior: architecture, scalability, reliability, design trade-offs.

FOLLOW-UP BEHAVIOR:
- If a recent answer is provided, prefer asking a natural follow-up
  question that digs deeper into the candidate's explanation.
- Do NOT repeat the same question.
- Do NOT ask multiple questions at once.

STRICT CONSTRAINTS:
- Ask ONLY about the provided CATEGORY and SKILLS.
- Do NOT mention category names or question numbers.
- Do NOT answer the question yourself.
- Do NOT include hints, solutions, or examples unless explicitly asked.
- Do NOT add greetings, filler, or meta commentary.

OUTPUT FORMAT:
- Exactly ONE question.
- Plain text only.
- No numbering, bullets, markdown, or emojis.`

func buildQuestionUserMessage(input QuestionInput) string {
	var b strings.Builder

	name := input.FullName
	if name == "" {
		name = "(not provided)"
	}
	roleSummary := input.RoleSummary
	if roleSummary == "" {
		roleSummary = "(not available)"
	}

	b.WriteString("CANDIDATE PROFILE CONTEXT:\n")
	b.WriteString(fmt.Sprintf("- Name: %s\n", name))
	b.WriteString(fmt.Sprintf("- Years of experience: %d\n", input.YearsExperience))
	b.WriteString(fmt.Sprintf("- Seniority level: %s\n", input.Seniority))
	b.WriteString(fmt.Sprintf("- Role summary: %s\n", roleSummary))

	b.WriteString("\nCURRENT TECHNICAL CATEGORY:\n")
	b.WriteString(fmt.Sprintf("- Category: %s\n", input.Category))
	if len(input.Skills) == 0 {
		b.WriteString("- Relevant skills: (no skills listed)\n")
	} else {
		b.WriteString(fmt.Sprintf("- Relevant skills: %s\n", strings.Join(input.Skills, ", ")))
	}

	b.WriteString("\nQUESTION SEQUENCE INFO:\n")
	b.WriteString(fmt.Sprintf("- This is question number %d for this category.\n", input.QuestionNumber))

	b.WriteString("\nPREVIOUS QUESTIONS IN THIS CATEGORY:\n")
	if len(input.RecentQuestions) == 0 {
		b.WriteString("None\n")
	} else {
		for _, q := range input.RecentQuestions {
			b.WriteString(fmt.Sprintf("- %s\n", q))
		}
	}

	b.WriteString("\nRECENT CANDIDATE ANSWERS:\n")
	if len(input.RecentAnswers) == 0 {
		b.WriteString("None\n")
	} else {
		for _, a := range input.RecentAnswers {
			b.WriteString(fmt.Sprintf("- %s\n", a))
		}
	}

	if input.LastAnswer != "" {
		b.WriteString("\nMOST RECENT ANSWER (follow up on this):\n")
		b.WriteString(fmt.Sprintf("%q\n", input.LastAnswer))
	}

	b.WriteString(`
TASK:
Generate exactly ONE technical interview question following
the system instructions above.`)

	return b.String()
}

const fallbackSystemPrompt = `ROLE:
You are a fallback and guardrail assistant inside a technical screening system.

GOAL:
Gracefully handle unclear, off-topic, or unexpected candidate messages
and guide the conversation back to the screening flow.

CONTEXT:
- The main application tracks the interview state.
- The candidate may be confused, joking, or asking unrelated questions.

INSTRUCTIONS:
- Acknowledge the candidate's message politely.
- Remind them this is a technical screening assistant.
- Encourage them to answer the current question, OR type 'exit' to end
  the interview.
- Keep responses calm, respectful, and professional.
- Do NOT generate new technical questions.
- Do NOT escalate or argue with the candidate.

OUTPUT FORMAT:
- 2 to 4 short sentences.
- Plain text only.
- No bullet points or markdown.`

func buildFallbackUserMessage(input FallbackInput) string {
	var b strings.Builder

	b.WriteString("CURRENT INTERVIEW STATE:\n")
	b.WriteString(input.Phase)
	b.WriteString("\n\nCANDIDATE MESSAGE:\n")
	b.WriteString(fmt.Sprintf("%q\n\n", input.UserMessage))
	b.WriteString(`TASK:
Respond according to the system instructions:
- Acknowledge the message.
- Re-orient the candidate to the screening.
- Encourage continuation or exit.`)

	return b.String()
}
