// Package feed moves ledger data in and out of CSV: Reader decodes the
// transaction file into events and Writer renders client summaries.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"payments-engine/models"

	"github.com/shopspring/decimal"
)

// Header is the expected column layout of the transaction file.
var Header = []string{"type", "client", "tx", "amount"}

var (
	ErrHeader      = errors.New("unexpected header")
	ErrUnknownKind = errors.New("unknown transaction type")
)

// DecodeError reports a row that could not be turned into an event.
type DecodeError struct {
	Line   int
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: %v", e.Line, e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Reader decodes events lazily, one CSV record per call to Next.
type Reader struct {
	csv        *csv.Reader
	headerRead bool
}

// NewReader returns a Reader over r. The header is checked on the first call to Next.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	cr.FieldsPerRecord = len(Header)
	return &Reader{csv: cr}
}

// Next returns the next event, or io.EOF once the input is exhausted.
// Any other error is a *DecodeError.
func (r *Reader) Next() (models.Event, error) {
	if !r.headerRead {
		if err := r.readHeader(); err != nil {
			return nil, err
		}
		r.headerRead = true
	}

	record, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, r.csvError(err)
	}
	line, _ := r.csv.FieldPos(0)
	return decodeRecord(line, record)
}

// ReadAll drains r into a slice.
func ReadAll(r *Reader) ([]models.Event, error) {
	var events []models.Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
}

func (r *Reader) readHeader() error {
	record, err := r.csv.Read()
	if err == io.EOF {
		return &DecodeError{Line: 1, Err: fmt.Errorf("%w: empty input", ErrHeader)}
	}
	if err != nil {
		return r.csvError(err)
	}
	for i, name := range Header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), name) {
			return &DecodeError{Line: 1, Err: fmt.Errorf("%w: want %s", ErrHeader, strings.Join(Header, ","))}
		}
	}
	return nil
}

func (r *Reader) csvError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &DecodeError{Line: parseErr.Line, Err: parseErr.Err}
	}
	return &DecodeError{Err: err}
}

func decodeRecord(line int, record []string) (models.Event, error) {
	kind, err := models.ParseKind(record[0])
	if err != nil {
		return nil, &DecodeError{Line: line, Column: "type", Err: fmt.Errorf("%w %q", ErrUnknownKind, strings.TrimSpace(record[0]))}
	}
	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return nil, &DecodeError{Line: line, Column: "client", Err: err}
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return nil, &DecodeError{Line: line, Column: "tx", Err: err}
	}
	clientID, txID := models.ClientID(client), models.TxID(tx)

	switch kind {
	case models.KindDispute:
		return models.Dispute{Client: clientID, Tx: txID}, nil
	case models.KindResolve:
		return models.Resolve{Client: clientID, Tx: txID}, nil
	case models.KindChargeback:
		return models.Chargeback{Client: clientID, Tx: txID}, nil
	}

	raw := strings.TrimSpace(record[3])
	if raw == "" {
		return models.Incomplete{Of: kind, Client: clientID, Tx: txID}, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &DecodeError{Line: line, Column: "amount", Err: err}
	}
	if kind == models.KindDeposit {
		return models.Deposit{Client: clientID, Tx: txID, Amount: amount}, nil
	}
	return models.Withdrawal{Client: clientID, Tx: txID, Amount: amount}, nil
}
