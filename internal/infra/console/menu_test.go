package console

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/infra/database"
	"github.com/recruitedge/outreach/internal/usecase"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.reply, g.err
}

type stubMailer struct {
	sent []usecase.OutgoingEmail
	err  error
}

func (m *stubMailer) Send(ctx context.Context, email usecase.OutgoingEmail) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, email)
	return "msg", nil
}

const athleteAnswers = "Jordan Miles\njordan@example.com\nBasketball\nPoint Guard\nCentral High\n2026\n3.8\n18 ppg\n\n"
const coachAnswers = "Coach Smith\nState University\nsmith@state.edu\n"

func runMenu(t *testing.T, input string, gen stubGenerator, mailer *stubMailer) (string, *database.JSONLeadRepository) {
	t.Helper()
	repo := database.NewJSONLeadRepository(filepath.Join(t.TempDir(), "leads.json"))

	var out bytes.Buffer
	menu := NewMenu(
		strings.NewReader(input),
		&out,
		usecase.NewGenerateEmailUseCase(gen, usecase.StrategyDelimiter),
		usecase.NewSendEmailUseCase(mailer, repo, nil),
		usecase.NewListLeadsUseCase(repo),
		usecase.NewUpdateLeadUseCase(repo, nil),
	)

	require.NoError(t, menu.Run(context.Background()))
	return out.String(), repo
}

func TestMenuSendRequiresAthlete(t *testing.T) {
	out, _ := runMenu(t, "2\n5\n", stubGenerator{}, &stubMailer{})

	assert.Contains(t, out, "Please enter athlete info first")
	assert.Contains(t, out, "Good luck with recruiting!")
}

func TestMenuFullOutreachRecordsLead(t *testing.T) {
	mailer := &stubMailer{}
	input := "1\n" + athleteAnswers + "2\n" + coachAnswers + "yes\n3\n5\n"

	out, repo := runMenu(t, input, stubGenerator{reply: "SUBJECT: PG from Central\nBODY:\nCoach Smith,\nHi"}, mailer)

	assert.Contains(t, out, "SUBJECT: PG from Central")
	assert.Contains(t, out, "Email sent successfully!")
	assert.Contains(t, out, "📤 Lead #1")
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jordan@example.com", mailer.sent[0].ReplyTo)

	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, entity.LeadStatusSent, leads[0].Status)
}

func TestMenuCancelSendsNothing(t *testing.T) {
	mailer := &stubMailer{}
	input := "1\n" + athleteAnswers + "2\n" + coachAnswers + "no\n5\n"

	out, repo := runMenu(t, input, stubGenerator{reply: "SUBJECT: S\nBODY:\nB"}, mailer)

	assert.Contains(t, out, "Email cancelled.")
	assert.Empty(t, mailer.sent)
	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestMenuSendFailureRecordsNothing(t *testing.T) {
	mailer := &stubMailer{err: errors.New("bad api key")}
	input := "1\n" + athleteAnswers + "2\n" + coachAnswers + "yes\n5\n"

	out, repo := runMenu(t, input, stubGenerator{reply: "SUBJECT: S\nBODY:\nB"}, mailer)

	assert.Contains(t, out, "Failed to send")
	assert.Contains(t, out, "bad api key")
	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestMenuUpdateLead(t *testing.T) {
	mailer := &stubMailer{}
	input := "1\n" + athleteAnswers + "2\n" + coachAnswers + "yes\n" +
		"4\n1\nreplied\nWants film\n" +
		"4\n7\nreplied\n\n" +
		"5\n"

	out, repo := runMenu(t, input, stubGenerator{reply: "SUBJECT: S\nBODY:\nB"}, mailer)

	assert.Contains(t, out, "Lead updated!")
	assert.Contains(t, out, "Lead not found!")
	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, entity.LeadStatusReplied, leads[0].Status)
	assert.Equal(t, "Wants film", leads[0].Notes)
}

func TestMenuEmptyLeadsAndBadChoice(t *testing.T) {
	out, _ := runMenu(t, "3\n4\n9\n5\n", stubGenerator{}, &stubMailer{})

	assert.Contains(t, out, "No leads yet!")
	assert.Contains(t, out, "Invalid option. Choose 1-5.")
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	out, _ := runMenu(t, "3\n", stubGenerator{}, &stubMailer{})

	assert.NotContains(t, out, "Good luck")
}
