package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iho/paymentsengine/internal/domain"
)

var balanceHeader = []string{"client", "available", "held", "total", "locked"}

// WriteAccounts writes one row per account, amounts with four decimals.
func WriteAccounts(w io.Writer, accounts []*domain.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(balanceHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, acc := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acc.ClientID), 10),
			domain.FormatAmount(acc.Available),
			domain.FormatAmount(acc.Held),
			domain.FormatAmount(acc.Total),
			strconv.FormatBool(acc.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write client %d: %w", acc.ClientID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
