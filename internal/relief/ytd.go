package relief

import (
	"github.com/shopspring/decimal"

	"go-payroll-my/internal/shared/money"
)

// YTDRow adalah akumulasi klaim satu item untuk satu pekerja.
// last_claim_year dipakai aturan kitaran multi-tahun (item 7 dan 15).
type YTDRow struct {
	ItemKey       string
	ClaimedYTD    decimal.Decimal
	LastClaimYear int
}

// AdjustForYTDAndCycles memangkas klaim mentah berdasarkan akumulasi
// tahun berjalan dan aturan kitaran:
//   - cap tahunan item: sisa = cap - claimed_ytd, klaim dipangkas ke sisa
//   - kitaran: klaim ditolak jika tahun_kini - tahun_klaim_terakhir < cycle_years
//
// Cap kumpulan diterapkan setelahnya lewat ApplyCaps.
func (c *Catalog) AdjustForYTDAndCycles(rawClaims map[string]decimal.Decimal, ytdRows []YTDRow, currentYear int) map[string]decimal.Decimal {
	ytdByKey := map[string]YTDRow{}
	for _, r := range ytdRows {
		ytdByKey[r.ItemKey] = r
	}

	adjusted := make(map[string]decimal.Decimal, len(rawClaims))
	for key, amount := range rawClaims {
		it, ok := c.items[key]
		if !ok {
			adjusted[key] = amount
			continue
		}
		meta := ytdByKey[key]

		if it.Cap != nil {
			remaining := money.NonNegative(it.Cap.Sub(meta.ClaimedYTD))
			if remaining.IsZero() {
				adjusted[key] = decimal.Zero
				continue
			}
			if amount.GreaterThan(remaining) {
				amount = remaining
			}
		}

		if it.CycleYears > 0 && meta.LastClaimYear > 0 &&
			currentYear-meta.LastClaimYear < it.CycleYears {
			adjusted[key] = decimal.Zero
			continue
		}

		adjusted[key] = amount
	}
	return adjusted
}

// YTDUpdate adalah satu baris upsert relief_ytd_accumulated setelah run.
type YTDUpdate struct {
	ItemKey       string
	ClaimedYTD    decimal.Decimal
	LastClaimYear int
}

// ComputeYTDUpdates menghasilkan baris upsert dari jumlah yang benar-benar
// diterapkan bulan ini. Item kitaran mencatat tahun klaim; item dengan
// jumlah nol tidak menghasilkan baris.
func (c *Catalog) ComputeYTDUpdates(appliedItems map[string]decimal.Decimal, ytdRows []YTDRow, currentYear int) []YTDUpdate {
	ytdByKey := map[string]YTDRow{}
	for _, r := range ytdRows {
		ytdByKey[r.ItemKey] = r
	}

	var updates []YTDUpdate
	for _, key := range c.itemOrder {
		amt, ok := appliedItems[key]
		if !ok || amt.LessThanOrEqual(decimal.Zero) {
			continue
		}
		prev := ytdByKey[key]
		lastYear := prev.LastClaimYear
		if it, ok := c.items[key]; ok && it.CycleYears > 0 {
			lastYear = currentYear
		}
		updates = append(updates, YTDUpdate{
			ItemKey:       key,
			ClaimedYTD:    money.Round2(prev.ClaimedYTD.Add(amt)),
			LastClaimYear: lastYear,
		})
	}
	return updates
}
