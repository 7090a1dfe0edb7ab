package relief

import (
	"context"

	relieferrors "go-payroll-my/internal/relief/errors"
	"go-payroll-my/internal/shared/apperror"
	"go-payroll-my/internal/shared/contextutil"
	"go-payroll-my/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MonthlyResult adalah hasil resolusi klaim satu bulan: klaim yang sudah
// dipangkas YTD/kitaran, total setelah cap, dan baris upsert YTD-nya.
type MonthlyResult struct {
	Totals     Totals
	Adjusted   map[string]decimal.Decimal
	YTDUpdates []YTDUpdate
}

//go:generate mockgen -source=relief_service.go -destination=mock/relief_service_mock.go -package=mock
type Service interface {
	EffectiveCatalog(ctx context.Context, companyID string) (*Catalog, error)
	Preview(ctx context.Context, companyID string, req PreviewRequest) (PreviewResponse, error)
	ResolveMonthly(ctx context.Context, companyID, employeeID string, year int, claims map[string]decimal.Decimal) (MonthlyResult, error)
	PersistYTD(ctx context.Context, companyID, employeeID string, year int, updates []YTDUpdate) error
}

type service struct {
	repo Repository
	base *Catalog
}

func NewService(repo Repository) Service {
	return &service{repo: repo, base: DefaultCatalog()}
}

// EffectiveCatalog memuat override syarikat dan menerapkannya ke katalog TP1.
func (s *service) EffectiveCatalog(ctx context.Context, companyID string) (*Catalog, error) {
	itemRows, err := s.repo.FindItemOverrides(ctx, companyID)
	if err != nil {
		return nil, err
	}
	groupRows, err := s.repo.FindGroupOverrides(ctx, companyID)
	if err != nil {
		return nil, err
	}

	itemOverrides := map[string]ItemOverride{}
	for _, row := range itemRows {
		if _, ok := s.base.Item(row.ItemKey); !ok {
			contextutil.GetLogger(ctx, zap.L()).Warn("override untuk item tak dikenal diabaikan",
				zap.String("item_key", row.ItemKey))
			continue
		}
		itemOverrides[row.ItemKey] = ItemOverride{
			Cap:        row.Cap,
			PCBOnly:    row.PCBOnly,
			CycleYears: row.CycleYears,
		}
	}

	groupCaps := map[string]decimal.Decimal{}
	for _, row := range groupRows {
		if _, ok := s.base.Group(row.GroupID); !ok {
			continue
		}
		groupCaps[row.GroupID] = row.Cap
	}

	return s.base.WithOverrides(itemOverrides, groupCaps), nil
}

// Preview menjalankan pipeline klaim tanpa menulis YTD; dipakai HR untuk
// memeriksa efek cap sebelum payroll run.
func (s *service) Preview(ctx context.Context, companyID string, req PreviewRequest) (PreviewResponse, error) {
	if req.Year < 2000 || req.Year > 2100 {
		return PreviewResponse{}, relieferrors.ErrInvalidYear
	}

	result, err := s.ResolveMonthly(ctx, companyID, req.EmployeeID, req.Year, req.Claims)
	if err != nil {
		return PreviewResponse{}, err
	}
	return mapTotalsToPreview(result.Totals), nil
}

// ResolveMonthly menjalankan pipeline klaim penuh untuk satu pekerja:
// override -> pangkas YTD/kitaran -> cap item & kumpulan -> baris YTD baharu.
func (s *service) ResolveMonthly(ctx context.Context, companyID, employeeID string, year int, claims map[string]decimal.Decimal) (MonthlyResult, error) {
	claims = clipNegativeClaims(claims)

	catalog, err := s.EffectiveCatalog(ctx, companyID)
	if err != nil {
		return MonthlyResult{}, err
	}

	rows, err := s.repo.FindYTDByEmployee(ctx, employeeID, year)
	if err != nil {
		return MonthlyResult{}, err
	}
	ytdRows := collapseYTDRows(rows, year)

	adjusted := catalog.AdjustForYTDAndCycles(claims, ytdRows, year)
	totals := catalog.ApplyCaps(adjusted)
	updates := catalog.ComputeYTDUpdates(totals.PerItem, ytdRows, year)

	return MonthlyResult{
		Totals:     totals,
		Adjusted:   adjusted,
		YTDUpdates: updates,
	}, nil
}

func (s *service) PersistYTD(ctx context.Context, companyID, employeeID string, year int, updates []YTDUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return apperror.InvalidField("company_id")
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return apperror.InvalidField("employee_id")
	}

	rows := make([]ReliefYTDAccumulated, 0, len(updates))
	for _, u := range updates {
		rows = append(rows, ReliefYTDAccumulated{
			ID:            uuid.New(),
			CompanyID:     companyUUID,
			EmployeeID:    employeeUUID,
			Year:          year,
			ItemKey:       u.ItemKey,
			ClaimedYTD:    u.ClaimedYTD,
			LastClaimYear: u.LastClaimYear,
		})
	}
	return s.repo.UpsertYTD(ctx, rows)
}

// collapseYTDRows meratakan baris lintas tahun menjadi satu YTDRow per item:
// claimed_ytd dari tahun berjalan, last_claim_year maksimum lintas tahun
// (klaim tahun lalu tetap relevan untuk aturan kitaran).
func collapseYTDRows(rows []ReliefYTDAccumulated, currentYear int) []YTDRow {
	byKey := map[string]*YTDRow{}
	var order []string
	for _, r := range rows {
		entry, ok := byKey[r.ItemKey]
		if !ok {
			entry = &YTDRow{ItemKey: r.ItemKey, ClaimedYTD: decimal.Zero}
			byKey[r.ItemKey] = entry
			order = append(order, r.ItemKey)
		}
		if r.Year == currentYear {
			entry.ClaimedYTD = r.ClaimedYTD
		}
		if r.LastClaimYear > entry.LastClaimYear {
			entry.LastClaimYear = r.LastClaimYear
		}
	}

	out := make([]YTDRow, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

// clipNegativeClaims menolkan klaim negatif tanpa menggugurkan key-nya;
// map asal tidak dimutasi.
func clipNegativeClaims(claims map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(claims))
	for key, amount := range claims {
		out[key] = money.NonNegative(amount)
	}
	return out
}
