package worker

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/recruitedge/outreach/internal/entity"
)

// StaleLeadWorker marks leads still in "sent" as "no_response" once they
// are older than the configured window.
type StaleLeadWorker struct {
	repo         entity.LeadRepositoryInterface
	staleAfter   time.Duration
	tickInterval time.Duration
	now          func() time.Time
}

// DefaultTickInterval replaces a non-positive tick interval, which
// time.NewTicker would reject with a panic.
const DefaultTickInterval = time.Hour

func NewStaleLeadWorker(repo entity.LeadRepositoryInterface, staleAfter, tickInterval time.Duration) *StaleLeadWorker {
	if tickInterval <= 0 {
		log.Printf("⚠️ Invalid stale check interval %s, using %s", tickInterval, DefaultTickInterval)
		tickInterval = DefaultTickInterval
	}

	return &StaleLeadWorker{
		repo:         repo,
		staleAfter:   staleAfter,
		tickInterval: tickInterval,
		now:          time.Now,
	}
}

func (w *StaleLeadWorker) Start(ctx context.Context) {
	log.Printf("🕒 Stale lead worker started (window %s, every %s)", w.staleAfter, w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.MarkStale(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Stale lead worker stopped")
			return
		case <-ticker.C:
			w.MarkStale(ctx)
		}
	}
}

// MarkStale runs one pass and returns how many leads it changed.
func (w *StaleLeadWorker) MarkStale(ctx context.Context) int {
	leads, err := w.repo.List(ctx)
	if err != nil {
		log.Printf("❌ Failed to load leads: %v", err)
		return 0
	}

	cutoff := w.now().Add(-w.staleAfter)
	status := entity.LeadStatusNoResponse
	expected := entity.LeadStatusSent
	marked := 0

	for _, lead := range leads {
		if lead.Status != entity.LeadStatusSent {
			continue
		}

		sentAt, err := time.ParseInLocation(entity.DateSentLayout, lead.DateSent, time.Local)
		if err != nil {
			log.Printf("⚠️ Lead #%d has an unreadable date_sent %q", lead.ID, lead.DateSent)
			continue
		}
		if !sentAt.Before(cutoff) {
			continue
		}

		// The lead may have been updated since List; only a lead still in
		// "sent" is moved.
		_, err = w.repo.Update(ctx, lead.ID, entity.LeadUpdate{Status: &status, ExpectStatus: &expected})
		if errors.Is(err, entity.ErrLeadStatusChanged) {
			log.Printf("↩️ Lead #%d changed during the pass, left as is", lead.ID)
			continue
		}
		if err != nil {
			log.Printf("❌ Failed to mark lead #%d as %s: %v", lead.ID, status, err)
			continue
		}
		log.Printf("⏱️ Lead #%d (%s) marked %s, sent %s", lead.ID, lead.College, status, lead.DateSent)
		marked++
	}

	if marked > 0 {
		log.Printf("✅ %d lead(s) marked as %s", marked, status)
	}
	return marked
}
