package postgres

import (
	"creditor/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PgCredit is the database row shape of a credit record. Seq preserves
// insertion order independently of the random UUID primary key.
type PgCredit struct {
	ID  uuid.UUID `db:"id"  goqu:"skipinsert"`
	Seq int64     `db:"seq" goqu:"skipinsert"`

	URL    string `db:"url"`
	Code   string `db:"code"`
	Amount int    `db:"amount"`
	Status string `db:"status"`

	AssignedPersonID uuid.NullUUID `db:"assigned_person_id" goqu:"skipinsert"`

	CheckedAt time.Time    `db:"checked_at"`
	SentAt    sql.NullTime `db:"sent_at"    goqu:"skipinsert"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
}

// ToDomain converts the row into the domain representation.
func (p *PgCredit) ToDomain() *domain.Credit {
	c := &domain.Credit{
		ID:        domain.CreditID(p.ID),
		URL:       p.URL,
		Code:      p.Code,
		Amount:    p.Amount,
		Status:    domain.CreditStatus(p.Status),
		CheckedAt: p.CheckedAt,
		SentAt:    p.SentAt.Time,
		CreatedAt: p.CreatedAt,
	}
	if p.AssignedPersonID.Valid {
		id := domain.PersonID(p.AssignedPersonID.UUID)
		c.AssignedTo = &id
	}

	return c
}

// PgPerson is the database row shape of a person record.
type PgPerson struct {
	ID  uuid.UUID `db:"id"  goqu:"skipinsert"`
	Seq int64     `db:"seq" goqu:"skipinsert"`

	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`

	LinkedIn  string `db:"linkedin"`
	Twitter   string `db:"twitter"`
	Drink     string `db:"drink"`
	Food      string `db:"food"`
	WorkingOn string `db:"working_on"`

	SentCredits bool `db:"sent_credits"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

// ToDomain converts the row into the domain representation.
func (p *PgPerson) ToDomain() *domain.Person {
	return &domain.Person{
		ID:          domain.PersonID(p.ID),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		LinkedIn:    p.LinkedIn,
		Twitter:     p.Twitter,
		Drink:       p.Drink,
		Food:        p.Food,
		WorkingOn:   p.WorkingOn,
		SentCredits: p.SentCredits,
		CreatedAt:   p.CreatedAt,
	}
}

// FromDomain fills the row from the domain representation.
func (p *PgPerson) FromDomain(person domain.Person) {
	p.ID = uuid.UUID(person.ID)
	p.FirstName = person.FirstName
	p.LastName = person.LastName
	p.Email = person.Email
	p.LinkedIn = person.LinkedIn
	p.Twitter = person.Twitter
	p.Drink = person.Drink
	p.Food = person.Food
	p.WorkingOn = person.WorkingOn
	p.SentCredits = person.SentCredits
	p.CreatedAt = person.CreatedAt
}

func pgCreditsToDomain(rows []PgCredit) []domain.Credit {
	out := make([]domain.Credit, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgPeopleToDomain(rows []PgPerson) []domain.Person {
	out := make([]domain.Person, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
