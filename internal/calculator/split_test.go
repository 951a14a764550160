package calculator

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitEqually(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		participants []string
		wantErr      bool
		want         map[string]string
	}{
		{
			name:         "even two-person split",
			total:        "30.00",
			participants: []string{"alice", "bob"},
			want:         map[string]string{"alice": "15", "bob": "15"},
		},
		{
			name:         "leftover cent goes to first participant by ID",
			total:        "10.00",
			participants: []string{"charlie", "bob", "alice"},
			want:         map[string]string{"alice": "3.34", "bob": "3.33", "charlie": "3.33"},
		},
		{
			name:         "two leftover cents",
			total:        "0.05",
			participants: []string{"a", "b", "c"},
			want:         map[string]string{"a": "0.02", "b": "0.02", "c": "0.01"},
		},
		{
			name:         "single participant takes everything",
			total:        "12.34",
			participants: []string{"alice"},
			want:         map[string]string{"alice": "12.34"},
		},
		{
			name:         "no participants should error",
			total:        "10",
			participants: []string{},
			wantErr:      true,
		},
		{
			name:         "zero total should error",
			total:        "0",
			participants: []string{"alice"},
			wantErr:      true,
		},
		{
			name:         "negative total should error",
			total:        "-5",
			participants: []string{"alice"},
			wantErr:      true,
		},
		{
			name:         "sub-cent total should error",
			total:        "1.005",
			participants: []string{"alice"},
			wantErr:      true,
		},
		{
			name:         "duplicate participant should error",
			total:        "10",
			participants: []string{"alice", "alice"},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := SplitEqually(decimal.RequireFromString(tt.total), tt.participants)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitEqually() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(shares) != len(tt.want) {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.want))
			}
			sum := decimal.Zero
			for p, want := range tt.want {
				got, ok := shares[p]
				if !ok {
					t.Errorf("missing share for %s", p)
					continue
				}
				if !got.Equal(decimal.RequireFromString(want)) {
					t.Errorf("%s share = %s, want %s", p, got, want)
				}
				sum = sum.Add(got)
			}
			if !sum.Equal(decimal.RequireFromString(tt.total)) {
				t.Errorf("shares sum to %s, want %s", sum, tt.total)
			}
		})
	}
}

func TestSplitEqually_ManyParticipants(t *testing.T) {
	tests := []struct {
		total string
		n     int
	}{
		{"199.99", 20000},
		{"0.01", 20000},
		{"1000000.07", 30001},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s over %d", tt.total, tt.n), func(t *testing.T) {
			participants := make([]string, tt.n)
			for i := range participants {
				participants[i] = fmt.Sprintf("user-%06d", i)
			}
			total := decimal.RequireFromString(tt.total)

			shares, err := SplitEqually(total, participants)
			if err != nil {
				t.Fatalf("SplitEqually() error = %v", err)
			}

			sum := decimal.Zero
			lo, hi := shares[participants[0]], shares[participants[0]]
			for _, share := range shares {
				if share.IsNegative() {
					t.Fatalf("negative share %s", share)
				}
				sum = sum.Add(share)
				lo = decimal.Min(lo, share)
				hi = decimal.Max(hi, share)
			}
			if !sum.Equal(total) {
				t.Errorf("shares sum to %s, want %s", sum, total)
			}
			if hi.Sub(lo).GreaterThan(decimal.New(1, -2)) {
				t.Errorf("shares differ by more than a cent: %s..%s", lo, hi)
			}
		})
	}
}
