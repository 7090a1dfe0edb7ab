package relief

import (
	"go-payroll-my/internal/shared/money"

	"github.com/shopspring/decimal"
)

// Totals adalah hasil penerapan cap atas klaim satu bulan.
type Totals struct {
	// TotalPCB termasuk item pcb_only; dipakai untuk pengiraan PCB.
	TotalPCB decimal.Decimal
	// TotalCash mengecualikan item pcb_only; dipakai sisi tunai.
	TotalCash   decimal.Decimal
	PerItem     map[string]decimal.Decimal
	PerItemCash map[string]decimal.Decimal
	GroupUsage  map[string]decimal.Decimal
	UnknownKeys []string
}

// ApplyCaps menerapkan subcap per item lalu cap kumpulan dengan trim
// proporsional (dibulatkan 2dp per anggota). Key yang tidak dikenal
// dikumpulkan di UnknownKeys dan diabaikan dari total.
func (c *Catalog) ApplyCaps(rawClaims map[string]decimal.Decimal) Totals {
	perItem := map[string]decimal.Decimal{}
	var unknown []string

	for _, key := range c.itemOrder {
		amount, ok := rawClaims[key]
		if !ok {
			continue
		}
		it := c.items[key]
		amt := money.NonNegative(amount)
		if it.Cap != nil && amt.GreaterThan(*it.Cap) {
			amt = *it.Cap
		}
		perItem[key] = amt
	}
	for key := range rawClaims {
		if _, ok := c.items[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	groupUsage := map[string]decimal.Decimal{}
	for _, groupID := range c.GroupIDs() {
		grp := c.groups[groupID]
		members := c.groupMembers(groupID)

		subtotal := decimal.Zero
		for _, m := range members {
			if amt, ok := perItem[m]; ok {
				subtotal = subtotal.Add(amt)
			}
		}
		if subtotal.LessThanOrEqual(grp.Cap) {
			groupUsage[groupID] = subtotal
			continue
		}

		// Trim proporsional: tiap anggota yang diklaim dikalikan cap/subtotal;
		// anggota tanpa klaim tidak ikut muncul di PerItem
		ratio := grp.Cap.Div(subtotal)
		newSubtotal := decimal.Zero
		for _, m := range members {
			amt, ok := perItem[m]
			if !ok {
				continue
			}
			trimmed := money.Round2(amt.Mul(ratio))
			perItem[m] = trimmed
			newSubtotal = newSubtotal.Add(trimmed)
		}
		groupUsage[groupID] = newSubtotal
	}

	perItemCash := map[string]decimal.Decimal{}
	totalPCB := decimal.Zero
	totalCash := decimal.Zero
	for _, key := range c.itemOrder {
		amt, ok := perItem[key]
		if !ok {
			continue
		}
		totalPCB = totalPCB.Add(amt)
		if c.items[key].PCBOnly {
			continue
		}
		perItemCash[key] = amt
		totalCash = totalCash.Add(amt)
	}

	return Totals{
		TotalPCB:    money.Round2(totalPCB),
		TotalCash:   money.Round2(totalCash),
		PerItem:     perItem,
		PerItemCash: perItemCash,
		GroupUsage:  groupUsage,
		UnknownKeys: unknown,
	}
}
