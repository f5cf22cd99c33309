package postgres

import (
	"context"
	"creditor/pkg/domain"
	"creditor/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	peopleTable = "people"
)

// AddPerson stores a new person unless one with the same email already exists.
// Email comparison is case-insensitive and backed by a unique index on
// lower(email); when the insert conflicts, the pre-existing record is
// returned as skipped, retaining the original name.
func (p *PgSQL) AddPerson(ctx context.Context, person domain.Person) (storage.PersonAdd, error) {
	var row PgPerson
	row.FromDomain(person)

	var inserted PgPerson
	found, err := p.Builder.Insert(peopleTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgPerson{}).
		Executor().ScanStructContext(ctx, &inserted)
	if err != nil {
		return storage.PersonAdd{}, fmt.Errorf("could not store person into pg: %w", err)
	}
	if found {
		return storage.PersonAdd{ID: domain.PersonID(inserted.ID)}, nil
	}

	existing, err := p.PersonByEmail(ctx, person.Email)
	if err != nil {
		return storage.PersonAdd{}, err
	}
	if existing == nil {
		// conflict row vanished between insert and lookup; report skipped
		return storage.PersonAdd{Skipped: true}, nil
	}

	return storage.PersonAdd{Skipped: true, ID: existing.ID}, nil
}

// PersonByID returns a person by ID, or nil when not found.
func (p *PgSQL) PersonByID(ctx context.Context, personID domain.PersonID) (*domain.Person, error) {
	var row PgPerson
	found, err := p.Builder.From(peopleTable).
		Where(goqu.I("id").Eq(uuid.UUID(personID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch person by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// PersonByEmail returns a person matched by email case-insensitively, or nil
// when not found.
func (p *PgSQL) PersonByEmail(ctx context.Context, email string) (*domain.Person, error) {
	var row PgPerson
	found, err := p.Builder.From(peopleTable).
		Where(goqu.L("LOWER(email)").Eq(goqu.L("LOWER(?)", email))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch person by email from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// People returns all person records in insertion order.
func (p *PgSQL) People(ctx context.Context) ([]domain.Person, error) {
	var rows []PgPerson
	if err := p.Builder.From(peopleTable).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch people from pg: %w", err)
	}

	return pgPeopleToDomain(rows), nil
}
