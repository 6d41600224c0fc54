package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/recruitedge/outreach/internal/entity"
)

// ParseStrategy selects both the format instruction sent to the generator
// and the parser applied to its answer.
type ParseStrategy string

const (
	StrategyDelimiter  ParseStrategy = "delimiter"
	StrategyStructured ParseStrategy = "structured"
)

const (
	FallbackSubject = "Recruiting Inquiry"

	subjectPrefix = "SUBJECT:"
	bodyPrefix    = "BODY:"
)

func ParseStrategyFromString(s string) (ParseStrategy, error) {
	switch ParseStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyDelimiter:
		return StrategyDelimiter, nil
	case StrategyStructured:
		return StrategyStructured, nil
	default:
		return "", fmt.Errorf("unknown parse strategy %q (want %q or %q)", s, StrategyDelimiter, StrategyStructured)
	}
}

// ParseResponse never fails: malformed generator output degrades to empty
// or default fields.
func ParseResponse(strategy ParseStrategy, raw string) entity.GeneratedEmail {
	if strategy == StrategyStructured {
		return parseStructured(raw)
	}
	return parseDelimited(raw)
}

func parseStructured(raw string) entity.GeneratedEmail {
	var payload struct {
		Subject *string `json:"subject"`
		Body    *string `json:"body"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload.Subject == nil || payload.Body == nil {
		return entity.GeneratedEmail{Subject: FallbackSubject, Body: raw}
	}
	return entity.GeneratedEmail{Subject: *payload.Subject, Body: *payload.Body}
}

func parseDelimited(raw string) entity.GeneratedEmail {
	text := strings.ReplaceAll(strings.TrimSpace(raw), "\r\n", "\n")

	var (
		subject    string
		subjectSet bool
		inBody     bool
		bodyLines  []string
	)
	for _, line := range strings.Split(text, "\n") {
		switch {
		case inBody:
			bodyLines = append(bodyLines, line)
		case strings.HasPrefix(line, bodyPrefix):
			inBody = true
		case strings.HasPrefix(line, subjectPrefix) && !subjectSet:
			subject = strings.TrimSpace(strings.TrimPrefix(line, subjectPrefix))
			subjectSet = true
		}
	}

	return entity.GeneratedEmail{
		Subject: subject,
		Body:    strings.TrimSpace(strings.Join(bodyLines, "\n")),
	}
}
