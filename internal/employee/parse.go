package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Citizenship status hasil normalisasi field nationality/citizenship bebas-teks.
type CitizenshipStatus int

const (
	CitizenshipUnknown CitizenshipStatus = iota
	Citizen
	PermanentResident
	NonCitizen
)

func (s CitizenshipStatus) String() string {
	switch s {
	case Citizen:
		return "citizen"
	case PermanentResident:
		return "permanent_resident"
	case NonCitizen:
		return "non_citizen"
	default:
		return "unknown"
	}
}

// ParseDate memparse tanggal YYYY-MM-DD. ok=false berarti nilai di-default,
// bukan sengaja kosong; pemanggil yang memutuskan default-nya dan mencatatnya.
func ParseDate(v string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseAmount menormalkan jumlah uang dari input bebas; nilai kosong/rusak
// menjadi 0 dengan ok=false supaya kejadian "defaulted" bisa dibedakan dari
// nol eksplisit di log dan test.
func ParseAmount(v string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
	if trimmed == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// AgeAt menghitung umur genap pada tanggal acuan.
func AgeAt(birthDate, asOf time.Time) int {
	age := asOf.Year() - birthDate.Year()
	if asOf.Month() < birthDate.Month() ||
		(asOf.Month() == birthDate.Month() && asOf.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ResolveCitizenship menormalkan kombinasi nationality + citizenship bebas-teks
// ke salah satu dari tiga status statutori.
func ResolveCitizenship(nationality, citizenship string) CitizenshipStatus {
	nat := strings.ToLower(strings.TrimSpace(nationality))
	cit := strings.ToLower(strings.TrimSpace(citizenship))

	switch nat {
	case "malaysia", "malaysian":
		return Citizen
	}
	switch cit {
	case "malaysian citizen", "citizen", "malaysian":
		return Citizen
	case "permanent resident", "pr":
		return PermanentResident
	}

	if nat == "" && cit == "" {
		return CitizenshipUnknown
	}
	return NonCitizen
}

// IsInternTitle menentukan status intern dari jabatan (tidak ada flag khusus
// di data HR; konvensi yang sama dipakai sistem upstream).
func IsInternTitle(roleTitle string) bool {
	return strings.Contains(strings.ToLower(roleTitle), "intern")
}
