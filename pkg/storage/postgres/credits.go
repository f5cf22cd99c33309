package postgres

import (
	"context"
	"creditor/pkg/domain"
	"creditor/pkg/storage"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	creditsTable = "credits"
)

// AddCreditIfNotExists inserts a new available credit unless one with the same
// code or url already exists. The unique indexes on code and url make the
// check race-free: the insert uses ON CONFLICT DO NOTHING and reports the
// record as existing when no row comes back.
func (p *PgSQL) AddCreditIfNotExists(ctx context.Context, url, code string, amount int) (storage.CreditAdd, error) {
	row := PgCredit{
		URL:       url,
		Code:      code,
		Amount:    amount,
		Status:    string(domain.CreditStatusAvailable),
		CheckedAt: time.Now().UTC(),
	}

	var inserted PgCredit
	found, err := p.Builder.Insert(creditsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgCredit{}).
		Executor().ScanStructContext(ctx, &inserted)
	if err != nil {
		return storage.CreditAdd{}, fmt.Errorf("could not store credit into pg: %w", err)
	}
	if !found {
		return storage.CreditAdd{Existing: true}, nil
	}

	return storage.CreditAdd{Added: true, ID: domain.CreditID(inserted.ID)}, nil
}

// NextAvailableCredit returns the oldest record whose status is still
// available, in insertion (seq) order, or nil when none is left.
func (p *PgSQL) NextAvailableCredit(ctx context.Context) (*domain.Credit, error) {
	var row PgCredit
	found, err := p.Builder.From(creditsTable).
		Where(goqu.I("status").Eq(string(domain.CreditStatusAvailable))).
		Order(goqu.I("seq").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch next available credit from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// transitionCredit applies a status-guarded update and maps a missed guard to
// either storage.ErrNotFound or storage.ErrInvalidTransition depending on
// whether the credit exists at all.
func (p *PgSQL) transitionCredit(ctx context.Context,
	creditID domain.CreditID,
	from domain.CreditStatus,
	rec goqu.Record,
	extraGuards ...goqu.Expression) error {
	where := append([]goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(creditID)),
		goqu.I("status").Eq(string(from)),
	}, extraGuards...)

	var row PgCredit
	found, err := p.Builder.Update(creditsTable).
		Set(rec).
		Where(where...).
		Returning(&PgCredit{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return fmt.Errorf("could not update credit in pg: %w", err)
	}
	if found {
		return nil
	}

	existing, err := p.CreditByID(ctx, creditID)
	if err != nil {
		return err
	}
	if existing == nil {
		return storage.ErrNotFound
	}

	return storage.ErrInvalidTransition
}

// AssignCredit reserves an available credit for a person.
func (p *PgSQL) AssignCredit(ctx context.Context, creditID domain.CreditID, personID domain.PersonID) error {
	return p.transitionCredit(ctx, creditID, domain.CreditStatusAvailable, goqu.Record{
		"status":             string(domain.CreditStatusAssigned),
		"assigned_person_id": uuid.UUID(personID),
	})
}

// MarkCreditSent confirms delivery: the credit moves to sent and the assignee
// is flagged as having received credits. Both updates run in one transaction.
func (p *PgSQL) MarkCreditSent(ctx context.Context, creditID domain.CreditID, personID domain.PersonID) error {
	return p.withTx(ctx, func(tx *PgSQL) error {
		if err := tx.transitionCredit(ctx, creditID, domain.CreditStatusAssigned, goqu.Record{
			"status":  string(domain.CreditStatusSent),
			"sent_at": goqu.L("CURRENT_TIMESTAMP"),
		}, goqu.I("assigned_person_id").Eq(uuid.UUID(personID))); err != nil {
			return err
		}

		res, err := tx.Builder.Update(peopleTable).
			Set(goqu.Record{"sent_credits": true}).
			Where(goqu.I("id").Eq(uuid.UUID(personID))).
			Executor().ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("could not flag person in pg: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return storage.ErrNotFound
		}

		return nil
	})
}

// RevertCreditToAvailable releases a reservation after a failed delivery.
func (p *PgSQL) RevertCreditToAvailable(ctx context.Context, creditID domain.CreditID) error {
	return p.transitionCredit(ctx, creditID, domain.CreditStatusAssigned, goqu.Record{
		"status":             string(domain.CreditStatusAvailable),
		"assigned_person_id": goqu.L("NULL"),
	})
}

// CreditByID returns a credit by its ID, or nil when not found.
func (p *PgSQL) CreditByID(ctx context.Context, creditID domain.CreditID) (*domain.Credit, error) {
	var row PgCredit
	found, err := p.Builder.From(creditsTable).
		Where(goqu.I("id").Eq(uuid.UUID(creditID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch credit by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Credits returns all credit records in insertion order.
func (p *PgSQL) Credits(ctx context.Context) ([]domain.Credit, error) {
	var rows []PgCredit
	if err := p.Builder.From(creditsTable).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch credits from pg: %w", err)
	}

	return pgCreditsToDomain(rows), nil
}

// TallyCredits aggregates amounts and counts per status over the whole ledger.
func (p *PgSQL) TallyCredits(ctx context.Context) (storage.Tally, error) {
	credits, err := p.Credits(ctx)
	if err != nil {
		return storage.Tally{}, err
	}

	return storage.TallyOf(credits), nil
}
