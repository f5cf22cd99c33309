// Package roster parses event registration exports: the attendee list used to
// build the people ledger, and arbitrary text files mined for referral URLs.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"

	"creditor/pkg/domain"
	"creditor/pkg/serrors"
)

// Header names as exported by the registration platform. The survey columns
// are the literal question texts.
const (
	columnFirstName = "first_name"
	columnLastName  = "last_name"
	columnEmail     = "email"
	columnLinkedIn  = "What is your LinkedIn profile?"
	columnTwitter   = "What is your X (Twitter) handle?"
	columnDrink     = "What would you like to drink?"
	columnFood      = "What would you like for Snacks?"
	columnWorkingOn = "What are you working on?"
)

// ParseResult holds the attendees parsed from a registration export and the
// number of data rows that were skipped for missing mandatory fields.
type ParseResult struct {
	Attendees []domain.Person
	Skipped   int
}

// ParseAttendees reads a registration CSV export. The header row must contain
// the first_name, last_name and email columns; survey columns are optional.
// Data rows missing any mandatory value are skipped, not fatal.
func ParseAttendees(r io.Reader) (ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return ParseResult{}, serrors.With(serrors.ErrBadRequest, "attendee file is empty")
	}

	if err != nil {
		return ParseResult{}, fmt.Errorf("could not read attendee header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for _, required := range []string{columnFirstName, columnLastName, columnEmail} {
		if _, ok := columns[required]; !ok {
			return ParseResult{}, serrors.With(serrors.ErrBadRequest, "missing required column: %s", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}

		return row[i]
	}

	var result ParseResult

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return ParseResult{}, fmt.Errorf("could not read attendee row: %w", err)
		}

		person := domain.Person{
			FirstName: field(row, columnFirstName),
			LastName:  field(row, columnLastName),
			Email:     field(row, columnEmail),
			LinkedIn:  field(row, columnLinkedIn),
			Twitter:   field(row, columnTwitter),
			Drink:     field(row, columnDrink),
			Food:      field(row, columnFood),
			WorkingOn: field(row, columnWorkingOn),
		}

		if person.FirstName == "" || person.LastName == "" || person.Email == "" {
			result.Skipped++

			continue
		}

		result.Attendees = append(result.Attendees, person)
	}

	return result, nil
}
