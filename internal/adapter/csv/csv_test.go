package csv

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/paymentsengine/internal/domain"
	"github.com/iho/paymentsengine/internal/infrastructure/metrics"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  []string
		want    domain.Instruction
		wantErr bool
	}{
		{
			name:   "deposit",
			record: []string{"deposit", "1", "1", "1.5"},
			want:   domain.Deposit{ClientID: 1, TransactionID: 1, Amount: decimal.RequireFromString("1.5")},
		},
		{
			name:   "withdrawal with padding",
			record: []string{" withdrawal ", " 2 ", " 5 ", " 0.0001 "},
			want:   domain.Withdrawal{ClientID: 2, TransactionID: 5, Amount: decimal.RequireFromString("0.0001")},
		},
		{
			name:   "dispute without amount field",
			record: []string{"dispute", "1", "1"},
			want:   domain.Dispute{ClientID: 1, TransactionID: 1},
		},
		{
			name:   "resolve with empty amount",
			record: []string{"resolve", "1", "1", ""},
			want:   domain.Resolve{ClientID: 1, TransactionID: 1},
		},
		{
			name:   "chargeback",
			record: []string{"chargeback", "65535", "4294967295", ""},
			want:   domain.Chargeback{ClientID: 65535, TransactionID: 4294967295},
		},
		{name: "unknown type", record: []string{"transfer", "1", "1", "1"}, wantErr: true},
		{name: "client out of range", record: []string{"deposit", "65536", "1", "1"}, wantErr: true},
		{name: "negative client", record: []string{"deposit", "-1", "1", "1"}, wantErr: true},
		{name: "tx not a number", record: []string{"deposit", "1", "x", "1"}, wantErr: true},
		{name: "deposit without amount", record: []string{"deposit", "1", "1"}, wantErr: true},
		{name: "deposit with empty amount", record: []string{"deposit", "1", "1", ""}, wantErr: true},
		{name: "negative amount", record: []string{"withdrawal", "1", "1", "-2"}, wantErr: true},
		{name: "too few fields", record: []string{"deposit", "1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.record)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedRecord)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want.Type(), got.Type())
			require.Equal(t, tt.want.Client(), got.Client())
			require.Equal(t, tt.want.Transaction(), got.Transaction())

			switch w := tt.want.(type) {
			case domain.Deposit:
				require.True(t, w.Amount.Equal(got.(domain.Deposit).Amount))
			case domain.Withdrawal:
				require.True(t, w.Amount.Equal(got.(domain.Withdrawal).Amount))
			}
		})
	}
}

func readAll(t *testing.T, r *Reader) []domain.Instruction {
	t.Helper()

	var out []domain.Instruction
	for {
		instr, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, instr)
	}
}

func TestReader_SkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 1.0",
		"deposit, 1, two, 1.0",
		"bogus, 1, 3, 1.0",
		"withdrawal, 1, 4, 0.5",
		"dispute, 1, 1,",
		"deposit, 1, 5, \"unterminated",
	}, "\n")

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	r := NewReader(strings.NewReader(input), zerolog.Nop(), m)

	got := readAll(t, r)

	require.Len(t, got, 3)
	require.Equal(t, domain.InstructionDeposit, got[0].Type())
	require.Equal(t, domain.InstructionWithdrawal, got[1].Type())
	require.Equal(t, domain.InstructionDispute, got[2].Type())
	require.Equal(t, 3, r.Skipped())
	require.Equal(t, float64(3), testutil.ToFloat64(m.RowsSkipped))
}

func TestReader_WithoutHeader(t *testing.T) {
	r := NewReader(strings.NewReader("deposit,7,1,2\nwithdrawal,7,2,1\n"), zerolog.Nop(), nil)

	got := readAll(t, r)

	require.Len(t, got, 2)
	require.Equal(t, domain.ClientID(7), got[0].Client())
	require.Zero(t, r.Skipped())
}

func TestReader_EmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""), zerolog.Nop(), nil)

	_, err := r.Next()
	require.ErrorIs(t, err, io.EOF)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReader_PropagatesIOErrors(t *testing.T) {
	r := NewReader(failingReader{}, zerolog.Nop(), nil)

	_, err := r.Next()
	require.Error(t, err)
	require.NotErrorIs(t, err, io.EOF)
	require.Contains(t, err.Error(), "disk on fire")
}

func TestWriteAccounts(t *testing.T) {
	accounts := []*domain.Account{
		{
			ClientID:  1,
			Total:     decimal.RequireFromString("1.5"),
			Held:      decimal.Zero,
			Available: decimal.RequireFromString("1.5"),
		},
		{
			ClientID:  2,
			Total:     decimal.RequireFromString("7.44541"),
			Held:      decimal.RequireFromString("3"),
			Available: decimal.RequireFromString("4.44541"),
			Locked:    true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accounts))

	want := "client,available,held,total,locked\n" +
		"1,1.5000,0.0000,1.5000,false\n" +
		"2,4.4454,3.0000,7.4454,true\n"
	require.Equal(t, want, buf.String())
}

func TestWriteAccounts_NoAccounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, nil))
	require.Equal(t, "client,available,held,total,locked\n", buf.String())
}
