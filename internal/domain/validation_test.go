package domain

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "1.5", want: "1.5"},
		{input: " 2.0001 ", want: "2.0001"},
		{input: "0.00001", want: "0.00001"},
		{input: "0", wantErr: ErrInvalidAmount},
		{input: "-3", wantErr: ErrInvalidAmount},
		{input: "abc", wantErr: ErrInvalidAmount},
		{input: "", wantErr: ErrInvalidAmount},
		{input: "1000000000001", wantErr: ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAmount(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(dec(tt.want)) {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":       "0.0000",
		"1.5":     "1.5000",
		"7.4454":  "7.4454",
		"2.00005": "2.0001",
		"-1.25":   "-1.2500",
	}

	for in, want := range tests {
		if got := FormatAmount(dec(in)); got != want {
			t.Errorf("FormatAmount(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestParseInstructionType(t *testing.T) {
	for _, name := range []string{"deposit", "withdrawal", "dispute", "resolve", "chargeback"} {
		got, err := ParseInstructionType(name)
		if err != nil {
			t.Fatalf("ParseInstructionType(%q) unexpected error: %v", name, err)
		}
		if string(got) != name {
			t.Fatalf("ParseInstructionType(%q) = %q", name, got)
		}
	}

	if _, err := ParseInstructionType("transfer"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestLedgerEntry_DisputeLifecycle(t *testing.T) {
	tests := []struct {
		state      DisputeState
		disputeErr error
		settleErr  error
	}{
		{state: StateUndisputed, disputeErr: nil, settleErr: ErrNotDisputed},
		{state: StateDisputed, disputeErr: ErrAlreadyDisputed, settleErr: nil},
		{state: StateChargedBack, disputeErr: ErrChargedBack, settleErr: ErrChargedBack},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			entry := LedgerEntry{Amount: dec("1"), Kind: KindDeposit, State: tt.state}
			if err := entry.CanDispute(); !errors.Is(err, tt.disputeErr) {
				t.Errorf("CanDispute() = %v, want %v", err, tt.disputeErr)
			}
			if err := entry.CanSettle(); !errors.Is(err, tt.settleErr) {
				t.Errorf("CanSettle() = %v, want %v", err, tt.settleErr)
			}
		})
	}
}
