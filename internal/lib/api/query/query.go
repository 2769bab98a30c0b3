// Package query reads listing filters from URL query strings.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/models"
)

const dateLayout = "2006-01-02"

type parser struct {
	values url.Values
	fields []response.FieldError
}

func (p *parser) fail(field, rule, msg string) {
	p.fields = append(p.fields, response.FieldError{Field: field, Rule: rule, Message: field + " " + msg})
}

func (p *parser) boolean(name string) *bool {
	raw := strings.TrimSpace(p.values.Get(name))
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(name, "boolean", "deve ser true ou false")
		return nil
	}

	return &v
}

// date parses YYYY-MM-DD or RFC 3339. A bare date used as an upper bound
// covers the whole day.
func (p *parser) date(name string, endOfDay bool) time.Time {
	raw := strings.TrimSpace(p.values.Get(name))
	if raw == "" {
		return time.Time{}
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		p.fail(name, "date", "deve ser uma data no formato AAAA-MM-DD")
		return time.Time{}
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return t
}

func (p *parser) err() error {
	return validate.AsError(p.fields)
}

// EventFilter reads active, featured and category.
func EventFilter(values url.Values) (models.EventFilter, error) {
	p := parser{values: values}

	filter := models.EventFilter{
		Active:   p.boolean("active"),
		Featured: p.boolean("featured"),
		Category: models.Category(strings.ToUpper(strings.TrimSpace(values.Get("category")))),
	}

	if filter.Category != "" && !filter.Category.Valid() {
		p.fail("category", "event_category", "deve ser uma categoria de evento válida")
	}

	return filter, p.err()
}

// RegistrationFilter reads eventId, status, from and to.
func RegistrationFilter(values url.Values) (models.RegistrationFilter, error) {
	p := parser{values: values}

	filter := models.RegistrationFilter{
		EventID: strings.TrimSpace(values.Get("eventId")),
		Status:  models.Status(strings.ToUpper(strings.TrimSpace(values.Get("status")))),
		From:    p.date("from", false),
		To:      p.date("to", true),
	}

	if filter.EventID != "" {
		p.fields = append(p.fields, validate.Var("eventId", filter.EventID, "uuid")...)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		p.fail("status", "reg_status", "deve ser PENDING, CONFIRMED, CANCELLED ou WAITLIST")
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		p.fail("to", "gtefield", "deve ser posterior a from")
	}

	return filter, p.err()
}

// Bool reads an optional boolean parameter.
func Bool(values url.Values, name string) (*bool, error) {
	p := parser{values: values}
	v := p.boolean(name)
	return v, p.err()
}
