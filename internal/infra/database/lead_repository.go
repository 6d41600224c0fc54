package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/recruitedge/outreach/internal/entity"
)

const leadsSchema = `
	CREATE TABLE IF NOT EXISTS outreach_leads (
		id           SERIAL PRIMARY KEY,
		athlete_name TEXT NOT NULL,
		coach_name   TEXT NOT NULL,
		college      TEXT NOT NULL,
		coach_email  TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'sent',
		date_sent    TEXT NOT NULL,
		notes        TEXT NOT NULL DEFAULT ''
	)
`

// LeadRepository stores leads in Postgres. Ids come from the SERIAL
// sequence, so concurrent appends never collide.
type LeadRepository struct {
	DB  *sql.DB
	now func() time.Time
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db, now: time.Now}
}

func (r *LeadRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, leadsSchema); err != nil {
		return fmt.Errorf("failed to create outreach_leads: %w", err)
	}
	return nil
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, athlete_name, coach_name, college, coach_email, status, date_sent, notes
		FROM outreach_leads
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.AthleteName, &l.CoachName, &l.College, &l.CoachEmail, &l.Status, &l.DateSent, &l.Notes); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Append(ctx context.Context, draft entity.LeadDraft) (*entity.Lead, error) {
	lead := &entity.Lead{
		AthleteName: draft.AthleteName,
		CoachName:   draft.CoachName,
		College:     draft.College,
		CoachEmail:  draft.CoachEmail,
		Status:      statusOrSent(draft.Status),
		DateSent:    r.now().Format(entity.DateSentLayout),
		Notes:       "",
	}

	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO outreach_leads (athlete_name, coach_name, college, coach_email, status, date_sent, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		lead.AthleteName,
		lead.CoachName,
		lead.College,
		lead.CoachEmail,
		lead.Status,
		lead.DateSent,
		lead.Notes,
	).Scan(&lead.ID)
	if err != nil {
		return nil, err
	}

	return lead, nil
}

func (r *LeadRepository) Update(ctx context.Context, id int, update entity.LeadUpdate) (*entity.Lead, error) {
	var l entity.Lead
	err := r.DB.QueryRowContext(ctx, `
		UPDATE outreach_leads
		SET
			status = COALESCE($2, status),
			notes = COALESCE($3, notes)
		WHERE id = $1 AND ($4::text IS NULL OR status = $4)
		RETURNING id, athlete_name, coach_name, college, coach_email, status, date_sent, notes
	`,
		id,
		update.Status,
		update.Notes,
		update.ExpectStatus,
	).Scan(&l.ID, &l.AthleteName, &l.CoachName, &l.College, &l.CoachEmail, &l.Status, &l.DateSent, &l.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.missingLeadError(ctx, id, update)
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// missingLeadError tells "no such id" apart from a failed ExpectStatus
// guard once the conditional UPDATE matched nothing.
func (r *LeadRepository) missingLeadError(ctx context.Context, id int, update entity.LeadUpdate) error {
	if update.ExpectStatus == nil {
		return entity.ErrLeadNotFound
	}

	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM outreach_leads WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return entity.ErrLeadStatusChanged
	}
	return entity.ErrLeadNotFound
}

func statusOrSent(status string) string {
	if status == "" {
		return entity.LeadStatusSent
	}
	return status
}
