package usecase

import (
	"fmt"
	"strings"

	"github.com/recruitedge/outreach/internal/entity"
)

const notProvided = "Not provided"

const promptTemplate = `You are a recruiting expert helping high school athletes get recruited to play college sports.

Write a personalized, compelling email from this athlete to a college coach.

ATHLETE INFO:
- Name: %s
- Sport: %s
- Position: %s
- High School: %s
- Graduation Year: %s
- GPA: %s
- Stats: %s
- Highlights Link: %s

COACH INFO:
- Coach Name: %s
- College: %s
- Email: %s

Write a professional but personable email that:
1. Has a clear, attention-grabbing subject line
2. Introduces the athlete briefly
3. Highlights key stats and achievements
4. Expresses genuine interest in the specific program
5. Includes a call to action
6. Keeps it concise (under 200 words)

%s
`

const delimiterInstruction = `Format your response as:
SUBJECT: [subject line]
BODY:
[email body]`

const structuredInstruction = `Format your response as JSON only, with no surrounding text:
{"subject": "your subject line", "body": "your email body"}`

// BuildPrompt renders the generation prompt. The trailing format
// instruction matches the parser the same strategy selects.
func BuildPrompt(athlete entity.AthleteInfo, coach entity.CoachInfo, strategy ParseStrategy) string {
	instruction := delimiterInstruction
	if strategy == StrategyStructured {
		instruction = structuredInstruction
	}

	return fmt.Sprintf(promptTemplate,
		athlete.Name,
		athlete.Sport,
		athlete.Position,
		athlete.School,
		athlete.GradYear,
		athlete.GPA,
		athlete.Stats,
		orNotProvided(athlete.Highlights),
		coach.CoachName,
		coach.College,
		orNotProvided(coach.Email),
		instruction,
	)
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return s
}
