package ledgerfile

import (
	"creditor/pkg/domain"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// fileCredit is the CSV row shape of a credit record. Timestamps are stored
// as RFC3339 strings (empty when unset) and booleans as literal "true"/"false"
// so the files stay editable by hand.
type fileCredit struct {
	ID         string `csv:"id"`
	URL        string `csv:"url"`
	Code       string `csv:"code"`
	Amount     int    `csv:"amount"`
	Status     string `csv:"status"`
	AssignedTo string `csv:"assigned_to"`
	CheckedAt  string `csv:"checked_at"`
	SentAt     string `csv:"sent_at"`
	CreatedAt  string `csv:"created_at"`
}

// filePerson is the CSV row shape of a person record.
type filePerson struct {
	ID          string `csv:"id"`
	FirstName   string `csv:"first_name"`
	LastName    string `csv:"last_name"`
	Email       string `csv:"email"`
	LinkedIn    string `csv:"linkedin"`
	Twitter     string `csv:"twitter"`
	Drink       string `csv:"drink"`
	Food        string `csv:"food"`
	WorkingOn   string `csv:"working_on"`
	SentCredits bool   `csv:"sent_credits"`
	CreatedAt   string `csv:"created_at"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse timestamp %q: %w", s, err)
	}

	return t, nil
}

// ToDomain converts the row into the domain representation.
func (f *fileCredit) ToDomain() (*domain.Credit, error) {
	id, err := uuid.Parse(f.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse credit id %q: %w", f.ID, err)
	}
	checkedAt, err := parseTime(f.CheckedAt)
	if err != nil {
		return nil, err
	}
	sentAt, err := parseTime(f.SentAt)
	if err != nil {
		return nil, err
	}
	createdAt, err := parseTime(f.CreatedAt)
	if err != nil {
		return nil, err
	}

	c := &domain.Credit{
		ID:        domain.CreditID(id),
		URL:       f.URL,
		Code:      f.Code,
		Amount:    f.Amount,
		Status:    domain.CreditStatus(f.Status),
		CheckedAt: checkedAt,
		SentAt:    sentAt,
		CreatedAt: createdAt,
	}
	if f.AssignedTo != "" {
		pid, err := uuid.Parse(f.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("could not parse assignee id %q: %w", f.AssignedTo, err)
		}
		did := domain.PersonID(pid)
		c.AssignedTo = &did
	}

	return c, nil
}

// FromDomain fills the row from the domain representation.
func (f *fileCredit) FromDomain(c domain.Credit) {
	f.ID = uuid.UUID(c.ID).String()
	f.URL = c.URL
	f.Code = c.Code
	f.Amount = c.Amount
	f.Status = string(c.Status)
	f.AssignedTo = ""
	if c.AssignedTo != nil {
		f.AssignedTo = uuid.UUID(*c.AssignedTo).String()
	}
	f.CheckedAt = formatTime(c.CheckedAt)
	f.SentAt = formatTime(c.SentAt)
	f.CreatedAt = formatTime(c.CreatedAt)
}

// ToDomain converts the row into the domain representation.
func (f *filePerson) ToDomain() (*domain.Person, error) {
	id, err := uuid.Parse(f.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse person id %q: %w", f.ID, err)
	}
	createdAt, err := parseTime(f.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.Person{
		ID:          domain.PersonID(id),
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		LinkedIn:    f.LinkedIn,
		Twitter:     f.Twitter,
		Drink:       f.Drink,
		Food:        f.Food,
		WorkingOn:   f.WorkingOn,
		SentCredits: f.SentCredits,
		CreatedAt:   createdAt,
	}, nil
}

// FromDomain fills the row from the domain representation.
func (f *filePerson) FromDomain(p domain.Person) {
	f.ID = uuid.UUID(p.ID).String()
	f.FirstName = p.FirstName
	f.LastName = p.LastName
	f.Email = p.Email
	f.LinkedIn = p.LinkedIn
	f.Twitter = p.Twitter
	f.Drink = p.Drink
	f.Food = p.Food
	f.WorkingOn = p.WorkingOn
	f.SentCredits = p.SentCredits
	f.CreatedAt = formatTime(p.CreatedAt)
}

func fileCreditsToDomain(rows []*fileCredit) ([]domain.Credit, error) {
	out := make([]domain.Credit, 0, len(rows))
	for _, row := range rows {
		c, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}

	return out, nil
}

func filePeopleToDomain(rows []*filePerson) ([]domain.Person, error) {
	out := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		p, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}

	return out, nil
}
