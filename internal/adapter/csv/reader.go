// Package csv reads instructions from and writes balances to delimited text.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/paymentsengine/internal/domain"
	"github.com/iho/paymentsengine/internal/infrastructure/metrics"
)

// ErrMalformedRecord is returned for rows that do not describe an instruction.
var ErrMalformedRecord = errors.New("malformed record")

const headerType = "type"

// Reader yields instructions from CSV rows of the form type,client,tx,amount.
// Malformed rows are logged and skipped.
type Reader struct {
	csv     *csv.Reader
	logger  zerolog.Logger
	metrics *metrics.Metrics
	row     int
	skipped int
}

// NewReader creates a Reader over r. m may be nil.
func NewReader(r io.Reader, logger zerolog.Logger, m *metrics.Metrics) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return &Reader{
		csv:     cr,
		logger:  logger,
		metrics: m,
	}
}

// Next returns the next well-formed instruction, or io.EOF when the input is
// exhausted. Any other error means the input itself could not be read.
func (r *Reader) Next() (domain.Instruction, error) {
	for {
		record, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		r.row++

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			r.skip(err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", r.row, err)
		}

		if r.row == 1 && isHeader(record) {
			continue
		}

		instr, err := ParseRecord(record)
		if err != nil {
			r.skip(err)
			continue
		}
		return instr, nil
	}
}

// Skipped returns the number of rows dropped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

func (r *Reader) skip(err error) {
	r.skipped++
	r.logger.Warn().Int("row", r.row).Err(err).Msg("skipping malformed row")
	if r.metrics != nil {
		r.metrics.RowsSkipped.Inc()
	}
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), headerType)
}

// ParseRecord converts one row into an instruction.
func ParseRecord(record []string) (domain.Instruction, error) {
	if len(record) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 fields, got %d", ErrMalformedRecord, len(record))
	}

	typ, err := domain.ParseInstructionType(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: client %q", ErrMalformedRecord, record[1])
	}
	clientID := domain.ClientID(client)

	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: tx %q", ErrMalformedRecord, record[2])
	}
	txID := domain.TransactionID(tx)

	switch typ {
	case domain.InstructionDeposit, domain.InstructionWithdrawal:
		if len(record) < 4 {
			return nil, fmt.Errorf("%w: %s without amount", ErrMalformedRecord, typ)
		}
		amount, err := domain.ParseAmount(record[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		if typ == domain.InstructionDeposit {
			return domain.Deposit{ClientID: clientID, TransactionID: txID, Amount: amount}, nil
		}
		return domain.Withdrawal{ClientID: clientID, TransactionID: txID, Amount: amount}, nil
	case domain.InstructionDispute:
		return domain.Dispute{ClientID: clientID, TransactionID: txID}, nil
	case domain.InstructionResolve:
		return domain.Resolve{ClientID: clientID, TransactionID: txID}, nil
	case domain.InstructionChargeback:
		return domain.Chargeback{ClientID: clientID, TransactionID: txID}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrMalformedRecord, typ)
}
