package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/usecase"
)

var statusEmoji = map[string]string{
	entity.LeadStatusSent:       "📤",
	entity.LeadStatusReplied:    "✅",
	entity.LeadStatusNoResponse: "⏳",
	entity.LeadStatusRejected:   "❌",
}

const rule = "============================================================"

// Menu is the interactive console front end. It drives the same use cases
// as the HTTP API.
type Menu struct {
	GenerateEmailUC *usecase.GenerateEmailUseCase
	SendEmailUC     *usecase.SendEmailUseCase
	ListLeadsUC     *usecase.ListLeadsUseCase
	UpdateLeadUC    *usecase.UpdateLeadUseCase

	in      *bufio.Scanner
	out     io.Writer
	athlete *entity.AthleteInfo
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	generateUC *usecase.GenerateEmailUseCase,
	sendUC *usecase.SendEmailUseCase,
	listUC *usecase.ListLeadsUseCase,
	updateUC *usecase.UpdateLeadUseCase,
) *Menu {
	return &Menu{
		GenerateEmailUC: generateUC,
		SendEmailUC:     sendUC,
		ListLeadsUC:     listUC,
		UpdateLeadUC:    updateUC,
		in:              bufio.NewScanner(in),
		out:             out,
	}
}

// Run loops until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.banner("⚡ RECRUITEDGE AI ⚡\nCollege Athletic Recruiting Assistant")

	for {
		m.printf("\n📋 MENU:\n")
		m.printf("1. Enter/Update Athlete Info\n")
		m.printf("2. Send Outreach Email to Coach\n")
		m.printf("3. View All Leads\n")
		m.printf("4. Update Lead Status\n")
		m.printf("5. Exit\n")

		choice, ok := m.prompt("\nChoose option (1-5): ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			m.athlete = m.readAthlete()
			m.printf("\n✅ Athlete info saved!\n")
		case "2":
			if m.athlete == nil {
				m.printf("\n⚠️  Please enter athlete info first (Option 1)\n")
				continue
			}
			m.sendOutreach(ctx)
		case "3":
			m.viewLeads(ctx)
		case "4":
			m.updateLead(ctx)
		case "5":
			m.printf("\n👋 Good luck with recruiting!\n\n")
			return nil
		default:
			m.printf("\n❌ Invalid option. Choose 1-5.\n")
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (m *Menu) readAthlete() *entity.AthleteInfo {
	m.banner("🏆 ATHLETE INFORMATION")

	a := &entity.AthleteInfo{}
	a.Name = m.ask("Athlete's Full Name: ")
	a.Email = m.ask("Athlete's Email: ")
	a.Sport = m.ask("Sport: ")
	a.Position = m.ask("Position: ")
	a.School = m.ask("High School: ")
	a.GradYear = m.ask("Graduation Year: ")
	a.GPA = m.ask("GPA: ")
	a.Stats = m.ask("Key Stats (comma separated): ")
	a.Highlights = m.ask("Highlights Video Link (optional): ")
	return a
}

func (m *Menu) readCoach() *entity.CoachInfo {
	m.banner("🎓 COACH INFORMATION")

	c := &entity.CoachInfo{}
	c.CoachName = m.ask("Coach's Name: ")
	c.College = m.ask("College/University: ")
	c.Email = m.ask("Coach's Email: ")
	return c
}

func (m *Menu) sendOutreach(ctx context.Context) {
	coach := m.readCoach()

	m.printf("\n⏳ Generating personalized email...\n")
	draft, err := m.GenerateEmailUC.Execute(ctx, usecase.GenerateEmailInput{Athlete: m.athlete, Coach: coach})
	if err != nil {
		m.printf("\n❌ Could not generate email: %v\n", err)
		return
	}

	m.banner("📧 GENERATED EMAIL")
	m.printf("\nTO: %s\n", coach.Email)
	m.printf("SUBJECT: %s\n", draft.Subject)
	m.printf("\n%s\n", draft.Body)
	m.printf("\n%s\n", rule)

	if strings.ToLower(m.ask("\nSend this email? (yes/no): ")) != "yes" {
		m.printf("📧 Email cancelled.\n")
		return
	}

	m.printf("\n⏳ Sending email...\n")
	out, err := m.SendEmailUC.Execute(ctx, usecase.SendEmailInput{
		ToEmail: coach.Email,
		Subject: draft.Subject,
		Body:    draft.Body,
		Athlete: m.athlete,
		Coach:   coach,
	})
	if err != nil {
		m.printf("❌ Failed to send: %v\n", err)
		return
	}

	m.printf("✅ Email sent successfully!\n")
	m.printf("📊 Lead #%d added to tracker!\n", out.LeadID)
}

func (m *Menu) viewLeads(ctx context.Context) bool {
	leads, err := m.ListLeadsUC.Execute(ctx)
	if err != nil {
		m.printf("\n❌ Could not load leads: %v\n", err)
		return false
	}
	if len(leads) == 0 {
		m.printf("\n📭 No leads yet!\n\n")
		return false
	}

	m.banner("📊 YOUR LEADS")
	for _, lead := range leads {
		emoji, ok := statusEmoji[lead.Status]
		if !ok {
			emoji = "❓"
		}
		m.printf("\n%s Lead #%d\n", emoji, lead.ID)
		m.printf("   Coach: %s (%s)\n", lead.CoachName, lead.College)
		m.printf("   Email: %s\n", lead.CoachEmail)
		m.printf("   Status: %s\n", lead.Status)
		m.printf("   Sent: %s\n", lead.DateSent)
		if lead.Notes != "" {
			m.printf("   Notes: %s\n", lead.Notes)
		}
	}
	m.printf("\n%s\n\n", rule)
	return true
}

func (m *Menu) updateLead(ctx context.Context) {
	if !m.viewLeads(ctx) {
		return
	}

	id, err := strconv.Atoi(m.ask("Enter lead # to update: "))
	if err != nil {
		m.printf("❌ Invalid input!\n")
		return
	}

	m.printf("\nStatus options: %s\n", strings.Join(entity.LeadStatuses(), ", "))
	input := usecase.UpdateLeadInput{ID: id}
	if status := m.ask("New status: "); status != "" {
		input.Status = &status
	}
	if notes := m.ask("Add notes (optional): "); notes != "" {
		input.Notes = &notes
	}

	if _, err := m.UpdateLeadUC.Execute(ctx, input); err != nil {
		if usecase.ErrorCode(err) == usecase.CodeLeadNotFound {
			m.printf("❌ Lead not found!\n")
			return
		}
		m.printf("❌ %v\n", err)
		return
	}
	m.printf("✅ Lead updated!\n")
}

func (m *Menu) banner(title string) {
	m.printf("\n%s\n%s\n%s\n\n", rule, title, rule)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// ask is prompt for fields where end of input just means an empty answer.
func (m *Menu) ask(label string) string {
	v, _ := m.prompt(label)
	return v
}
