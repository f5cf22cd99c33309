// Package ledgerfile implements the storage.Ledger interface on top of two
// flat CSV files in a local directory. Every operation performs a full
// read-modify-write; writes go through an atomic rename so a crash never
// leaves a half-written file. The backend is intended for single-operator
// interactive use and is explicitly single-writer: it does not lock against
// other processes.
package ledgerfile

import (
	"context"
	"creditor/pkg/domain"
	"creditor/pkg/storage"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

const (
	peopleFile  = "people.csv"
	creditsFile = "credits.csv"
)

// Ledger is the flat-file ledger rooted at a directory.
type Ledger struct {
	dir string
}

// New creates a flat-file ledger in dir, creating the directory when missing.
// The CSV files themselves are created lazily on first write.
func New(dir string) (*Ledger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create ledger directory: %w", err)
	}

	return &Ledger{dir: dir}, nil
}

// Close is a no-op; every operation opens and closes the files it needs.
func (l *Ledger) Close() error { return nil }

// loadRows reads a CSV file into rows. A missing file yields an empty slice.
func loadRows[T any](path string) ([]*T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("could not read %s: %w", filepath.Base(path), err)
	}

	var rows []*T
	if err := gocsv.UnmarshalBytes(content, &rows); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", filepath.Base(path), err)
	}

	return rows, nil
}

// saveRows writes rows to a temporary file next to path and renames it into
// place, so readers never observe a partially written ledger.
func saveRows[T any](path string, rows []*T) error {
	content, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace %s: %w", filepath.Base(path), err)
	}

	return nil
}

func (l *Ledger) creditsPath() string { return filepath.Join(l.dir, creditsFile) }
func (l *Ledger) peoplePath() string  { return filepath.Join(l.dir, peopleFile) }

// AddCreditIfNotExists appends a new available credit unless a row with the
// same code or url is already present.
func (l *Ledger) AddCreditIfNotExists(ctx context.Context, url, code string, amount int) (storage.CreditAdd, error) {
	rows, err := loadRows[fileCredit](l.creditsPath())
	if err != nil {
		return storage.CreditAdd{}, err
	}

	for _, row := range rows {
		if row.Code == code || row.URL == url {
			return storage.CreditAdd{Existing: true}, nil
		}
	}

	id := uuid.New()
	now := time.Now().UTC()
	var row fileCredit
	row.FromDomain(domain.Credit{
		ID:        domain.CreditID(id),
		URL:       url,
		Code:      code,
		Amount:    amount,
		Status:    domain.CreditStatusAvailable,
		CheckedAt: now,
		CreatedAt: now,
	})
	rows = append(rows, &row)

	if err := saveRows(l.creditsPath(), rows); err != nil {
		return storage.CreditAdd{}, err
	}

	return storage.CreditAdd{Added: true, ID: domain.CreditID(id)}, nil
}

// NextAvailableCredit returns the first row whose status is still available,
// in file (insertion) order, or nil when none is left.
func (l *Ledger) NextAvailableCredit(ctx context.Context) (*domain.Credit, error) {
	rows, err := loadRows[fileCredit](l.creditsPath())
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.Status == string(domain.CreditStatusAvailable) {
			return row.ToDomain()
		}
	}

	return nil, nil
}

// transitionCredit loads the credit rows, applies mutate to the row with the
// given id when its status matches from, and saves. The mutate callback gets
// the matched row to modify in place.
func (l *Ledger) transitionCredit(creditID domain.CreditID,
	from domain.CreditStatus,
	mutate func(*fileCredit) error) error {
	rows, err := loadRows[fileCredit](l.creditsPath())
	if err != nil {
		return err
	}

	id := uuid.UUID(creditID).String()
	for _, row := range rows {
		if row.ID != id {
			continue
		}
		if row.Status != string(from) {
			return storage.ErrInvalidTransition
		}
		if err := mutate(row); err != nil {
			return err
		}

		return saveRows(l.creditsPath(), rows)
	}

	return storage.ErrNotFound
}

// AssignCredit reserves an available credit for a person.
func (l *Ledger) AssignCredit(ctx context.Context, creditID domain.CreditID, personID domain.PersonID) error {
	return l.transitionCredit(creditID, domain.CreditStatusAvailable, func(row *fileCredit) error {
		row.Status = string(domain.CreditStatusAssigned)
		row.AssignedTo = uuid.UUID(personID).String()

		return nil
	})
}

// MarkCreditSent confirms delivery: the credit moves to sent and the assignee
// is flagged as having received credits. The person file is validated before
// the credit file is written so a missing person cannot leave the pair
// inconsistent.
func (l *Ledger) MarkCreditSent(ctx context.Context, creditID domain.CreditID, personID domain.PersonID) error {
	people, err := loadRows[filePerson](l.peoplePath())
	if err != nil {
		return err
	}

	pid := uuid.UUID(personID).String()
	var person *filePerson
	for _, row := range people {
		if row.ID == pid {
			person = row

			break
		}
	}
	if person == nil {
		return storage.ErrNotFound
	}

	if err := l.transitionCredit(creditID, domain.CreditStatusAssigned, func(row *fileCredit) error {
		if row.AssignedTo != pid {
			return storage.ErrInvalidTransition
		}
		row.Status = string(domain.CreditStatusSent)
		row.SentAt = formatTime(time.Now().UTC())

		return nil
	}); err != nil {
		return err
	}

	person.SentCredits = true

	return saveRows(l.peoplePath(), people)
}

// RevertCreditToAvailable releases a reservation after a failed delivery.
func (l *Ledger) RevertCreditToAvailable(ctx context.Context, creditID domain.CreditID) error {
	return l.transitionCredit(creditID, domain.CreditStatusAssigned, func(row *fileCredit) error {
		row.Status = string(domain.CreditStatusAvailable)
		row.AssignedTo = ""

		return nil
	})
}

// CreditByID returns a credit by its ID, or nil when not found.
func (l *Ledger) CreditByID(ctx context.Context, creditID domain.CreditID) (*domain.Credit, error) {
	rows, err := loadRows[fileCredit](l.creditsPath())
	if err != nil {
		return nil, err
	}

	id := uuid.UUID(creditID).String()
	for _, row := range rows {
		if row.ID == id {
			return row.ToDomain()
		}
	}

	return nil, nil
}

// Credits returns all credit records in file order.
func (l *Ledger) Credits(ctx context.Context) ([]domain.Credit, error) {
	rows, err := loadRows[fileCredit](l.creditsPath())
	if err != nil {
		return nil, err
	}

	return fileCreditsToDomain(rows)
}

// TallyCredits aggregates amounts and counts per status over the whole file.
func (l *Ledger) TallyCredits(ctx context.Context) (storage.Tally, error) {
	credits, err := l.Credits(ctx)
	if err != nil {
		return storage.Tally{}, err
	}

	return storage.TallyOf(credits), nil
}

// AddPerson appends a new person unless a row with the same email already
// exists; emails are compared case-insensitively and the original row wins.
func (l *Ledger) AddPerson(ctx context.Context, person domain.Person) (storage.PersonAdd, error) {
	rows, err := loadRows[filePerson](l.peoplePath())
	if err != nil {
		return storage.PersonAdd{}, err
	}

	for _, row := range rows {
		if strings.EqualFold(row.Email, person.Email) {
			existing, err := row.ToDomain()
			if err != nil {
				return storage.PersonAdd{}, err
			}

			return storage.PersonAdd{Skipped: true, ID: existing.ID}, nil
		}
	}

	person.ID = domain.PersonID(uuid.New())
	if person.CreatedAt.IsZero() {
		person.CreatedAt = time.Now().UTC()
	}
	var row filePerson
	row.FromDomain(person)
	rows = append(rows, &row)

	if err := saveRows(l.peoplePath(), rows); err != nil {
		return storage.PersonAdd{}, err
	}

	return storage.PersonAdd{ID: person.ID}, nil
}

// PersonByID returns a person by ID, or nil when not found.
func (l *Ledger) PersonByID(ctx context.Context, personID domain.PersonID) (*domain.Person, error) {
	rows, err := loadRows[filePerson](l.peoplePath())
	if err != nil {
		return nil, err
	}

	id := uuid.UUID(personID).String()
	for _, row := range rows {
		if row.ID == id {
			return row.ToDomain()
		}
	}

	return nil, nil
}

// PersonByEmail returns a person matched by email case-insensitively, or nil
// when not found.
func (l *Ledger) PersonByEmail(ctx context.Context, email string) (*domain.Person, error) {
	rows, err := loadRows[filePerson](l.peoplePath())
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if strings.EqualFold(row.Email, email) {
			return row.ToDomain()
		}
	}

	return nil, nil
}

// People returns all person records in file order.
func (l *Ledger) People(ctx context.Context) ([]domain.Person, error) {
	rows, err := loadRows[filePerson](l.peoplePath())
	if err != nil {
		return nil, err
	}

	return filePeopleToDomain(rows)
}
