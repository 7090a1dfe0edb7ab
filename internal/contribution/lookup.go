package contribution

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

// Table adalah sumber band yang sudah dimuat per (contrib_type, category).
// Implementasi produksi membungkus Repository dengan cache sekali-muat per
// run; test cukup pakai StaticTable.
type Table interface {
	Bands(ctx context.Context, contribType, category string) ([]ContributionBand, error)
}

// Lookup mencari band dengan from_wage <= wage <= to_wage.
//
// Aturan fallback:
//   - upah di atas band tertinggi memakai band tertinggi (skema ber-cap;
//     fallback persentase KWSP di atas RM20,000 ditangani engine KWSP sendiri)
//   - tabel kosong mengembalikan nol, tidak pernah error
func Lookup(ctx context.Context, table Table, contribType, category string, wage decimal.Decimal) (Amounts, error) {
	bands, err := table.Bands(ctx, contribType, category)
	if err != nil {
		return zeroAmounts(), err
	}
	if len(bands) == 0 {
		return zeroAmounts(), nil
	}

	sort.Slice(bands, func(i, j int) bool {
		return bands[i].FromWage.LessThan(bands[j].FromWage)
	})

	idx := sort.Search(len(bands), func(i int) bool {
		return bands[i].ToWage.GreaterThanOrEqual(wage)
	})
	if idx < len(bands) && bands[idx].FromWage.LessThanOrEqual(wage) {
		return toAmounts(bands[idx]), nil
	}

	// Di atas band maksimum: cap di band tertinggi
	highest := bands[len(bands)-1]
	if wage.GreaterThan(highest.ToWage) {
		return toAmounts(highest), nil
	}

	// Upah jatuh di celah bawah jadual (mis. di bawah band pertama): nol
	return zeroAmounts(), nil
}

func toAmounts(b ContributionBand) Amounts {
	return Amounts{
		Employee: b.Employee,
		Employer: b.Employer,
		Total:    b.Total,
	}
}

// StaticTable menyimpan band di memori; dipakai test dan seed.
type StaticTable struct {
	bands map[string][]ContributionBand
}

func NewStaticTable(bands []ContributionBand) *StaticTable {
	t := &StaticTable{bands: map[string][]ContributionBand{}}
	for _, b := range bands {
		key := b.ContribType + "/" + b.Category
		t.bands[key] = append(t.bands[key], b)
	}
	return t
}

func (t *StaticTable) Bands(_ context.Context, contribType, category string) ([]ContributionBand, error) {
	return t.bands[contribType+"/"+category], nil
}

// RepoTable mengadaptasi Repository menjadi Table dengan cache per key.
// Jadual caruman read-only selama satu run, jadi cache tidak perlu invalidasi.
type RepoTable struct {
	repo  Repository
	cache map[string][]ContributionBand
}

func NewRepoTable(repo Repository) *RepoTable {
	return &RepoTable{repo: repo, cache: map[string][]ContributionBand{}}
}

func (t *RepoTable) Bands(ctx context.Context, contribType, category string) ([]ContributionBand, error) {
	key := contribType + "/" + category
	if bands, ok := t.cache[key]; ok {
		return bands, nil
	}
	bands, err := t.repo.FindBands(ctx, contribType, category)
	if err != nil {
		return nil, err
	}
	t.cache[key] = bands
	return bands, nil
}
