package epf

import "github.com/shopspring/decimal"

// Part adalah bahagian jadual ketiga KWSP yang menentukan kadar caruman.
type Part string

const (
	PartNone Part = ""
	PartA    Part = "A"
	PartB    Part = "B"
	PartC    Part = "C"
	PartD    Part = "D"
	PartE    Part = "E"
)

func (p Part) Valid() bool {
	switch p {
	case PartA, PartB, PartC, PartD, PartE:
		return true
	}
	return false
}

// Category memetakan part ke kategori jadual contribution_bands.
func (p Part) Category() string {
	switch p {
	case PartA:
		return "part_a"
	case PartB:
		return "part_b"
	case PartC:
		return "part_c"
	case PartD:
		return "part_d"
	case PartE:
		return "part_e"
	}
	return ""
}

// rates adalah kadar persen rasmi per part, dipakai jalur fallback
// di atas RM20,000 dan jalur bonus.
type rates struct {
	employeePct decimal.Decimal
	employerPct decimal.Decimal
	// Part B dan D: majikan flat RM5.00 tanpa mengira upah
	employerFlat bool
}

func partRates(p Part) (rates, bool) {
	switch p {
	case PartA:
		return rates{employeePct: decimal.NewFromInt(11), employerPct: decimal.NewFromInt(12)}, true
	case PartB:
		return rates{employeePct: decimal.NewFromInt(11), employerFlat: true}, true
	case PartC:
		return rates{employeePct: decimal.NewFromFloat(5.5), employerPct: decimal.NewFromInt(6)}, true
	case PartD:
		return rates{employeePct: decimal.NewFromFloat(5.5), employerFlat: true}, true
	case PartE:
		return rates{employeePct: decimal.Zero, employerPct: decimal.NewFromInt(4)}, true
	}
	return rates{}, false
}

// ParsePart menerima "A".."E" (atau kosong untuk tiada caruman).
func ParsePart(s string) (Part, bool) {
	switch s {
	case "A", "a":
		return PartA, true
	case "B", "b":
		return PartB, true
	case "C", "c":
		return PartC, true
	case "D", "d":
		return PartD, true
	case "E", "e":
		return PartE, true
	case "":
		return PartNone, true
	}
	return PartNone, false
}
