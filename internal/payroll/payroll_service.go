package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-payroll-my/internal/contribution"
	"go-payroll-my/internal/employee"
	"go-payroll-my/internal/epf"
	"go-payroll-my/internal/events"
	"go-payroll-my/internal/messaging/kafka"
	payrollerrors "go-payroll-my/internal/payroll/errors"
	"go-payroll-my/internal/pcb"
	"go-payroll-my/internal/relief"
	"go-payroll-my/internal/shared/apperror"
	"go-payroll-my/internal/shared/audit"
	"go-payroll-my/internal/shared/contextutil"
	"go-payroll-my/internal/shared/counter"
	"go-payroll-my/internal/shared/money"
	"go-payroll-my/internal/socso"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"

	taxProfile     = "default"
	counterTypeRun = "payroll_run"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	RunForEmployee(ctx context.Context, companyID, actorID string, req RunPayrollRequest) (RunPayrollResponse, error)
	RunBatch(ctx context.Context, companyID, actorID string, req RunBatchRequest) (RunBatchResponse, error)
	GetRuns(ctx context.Context, companyID string, year, month int) ([]RunPayrollResponse, error)
	GetRun(ctx context.Context, companyID, id string) (RunPayrollResponse, error)
	GetYTD(ctx context.Context, companyID, employeeID string, year int) (YTDResponse, error)
	GetEPFPart(ctx context.Context, companyID, employeeID string, asOf time.Time) (EPFPartResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	reliefSvc    relief.Service
	pcbRepo      pcb.Repository
	epfEngine    *epf.Engine
	socsoEngine  *socso.Engine
	outboxRepo   kafka.OutboxRepository
	counterRepo  counter.Repository
	audit        audit.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	reliefSvc relief.Service,
	pcbRepo pcb.Repository,
	epfEngine *epf.Engine,
	socsoEngine *socso.Engine,
	outboxRepo kafka.OutboxRepository,
	counterRepo counter.Repository,
	auditLogger audit.Logger,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		reliefSvc:    reliefSvc,
		pcbRepo:      pcbRepo,
		epfEngine:    epfEngine,
		socsoEngine:  socsoEngine,
		outboxRepo:   outboxRepo,
		counterRepo:  counterRepo,
		audit:        auditLogger,
	}
}

// figures adalah hasil perhitungan murni sebelum dipersist.
type figures struct {
	part    epf.Part
	basic   decimal.Decimal
	allow   decimal.Decimal
	bonus   decimal.Decimal
	gross   decimal.Decimal
	epfAmt  contribution.Amounts
	socso   contribution.Amounts
	eis     contribution.Amounts
	reliefs relief.MonthlyResult
	pcbRes  pcb.Result
	net     decimal.Decimal
}

func (s *service) RunForEmployee(
	ctx context.Context,
	companyID, actorID string,
	req RunPayrollRequest,
) (RunPayrollResponse, error) {
	if err := validatePeriod(req.Year, req.Month); err != nil {
		return RunPayrollResponse{}, err
	}
	if _, err := uuid.Parse(companyID); err != nil {
		return RunPayrollResponse{}, apperror.InvalidField("company_id")
	}

	emp, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return RunPayrollResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	snap := employee.BuildSnapshot(*emp, periodEnd(req.Year, req.Month))
	if len(snap.DefaultedFields) > 0 {
		contextutil.GetLogger(ctx, zap.L()).Warn("data pekerja di-default karena rusak",
			zap.String("employee_id", snap.EmployeeID),
			zap.Strings("fields", snap.DefaultedFields))
	}

	if !snap.IsPayrollActive() {
		s.audit.Record(ctx, audit.Log{
			Action:     "payroll.run.skipped",
			CompanyID:  companyID,
			EmployeeID: snap.EmployeeID,
			ActorID:    actorID,
			Reason:     "employment status " + snap.EmploymentStatus,
		})
		return RunPayrollResponse{}, payrollerrors.ErrEmployeeInactive
	}

	exists, err := s.repo.HasRun(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return RunPayrollResponse{}, err
	}
	if exists {
		return RunPayrollResponse{}, payrollerrors.ErrRunAlreadyExists
	}

	fig, err := s.calculate(ctx, companyID, snap, req)
	if err != nil {
		return RunPayrollResponse{}, err
	}

	run, err := s.persistRun(ctx, companyID, actorID, snap, req, fig)
	if err != nil {
		return RunPayrollResponse{}, err
	}

	return mapRunToResponse(*run), nil
}

// calculate menjalankan urutan tetap: gros -> caruman berkanun atas gros
// penuh -> pelepasan -> PCB -> potongan tunai -> gaji bersih. Cuti tanpa
// gaji tidak mengurangi dasar caruman berkanun.
func (s *service) calculate(
	ctx context.Context,
	companyID string,
	snap employee.Snapshot,
	req RunPayrollRequest,
) (figures, error) {
	fig := figures{
		part:  epf.PartNone,
		basic: snap.BasicSalary,
		allow: snap.TotalAllowances(),
		bonus: money.NonNegative(req.Bonus),
	}
	fig.gross = fig.basic.Add(fig.allow).Add(fig.bonus)
	fig.epfAmt = contribution.Amounts{Employee: decimal.Zero, Employer: decimal.Zero, Total: decimal.Zero}
	fig.socso = fig.epfAmt
	fig.eis = fig.epfAmt

	if snap.IsIntern {
		// Pelatih: tanpa KWSP/PERKESO/SIP/PCB
		fig.net = fig.gross.
			Sub(money.NonNegative(req.UnpaidLeave)).
			Sub(money.NonNegative(req.Zakat)).
			Sub(money.NonNegative(req.OtherDeductions))
		return fig, nil
	}

	fig.part = epf.ResolvePart(snap)

	var err error
	fig.epfAmt, err = s.epfEngine.ComputeWithBonus(ctx, companyID, fig.part, fig.basic, fig.allow, fig.bonus)
	if err != nil {
		return figures{}, err
	}
	fig.socso, err = s.socsoEngine.ComputeSOCSO(ctx, snap.Age, fig.gross)
	if err != nil {
		return figures{}, err
	}
	fig.eis, err = s.socsoEngine.ComputeEIS(ctx, snap.Age, fig.gross)
	if err != nil {
		return figures{}, err
	}

	// Caruman PERKESO+SIP pekerja otomatis jadi klaim pelepasan item 14
	// (PCB sahaja, cap tahunan RM350 ditegakkan katalog)
	claims := make(map[string]decimal.Decimal, len(req.ReliefClaims)+1)
	for k, v := range req.ReliefClaims {
		claims[k] = v
	}
	socsoEis := fig.socso.Employee.Add(fig.eis.Employee)
	if socsoEis.IsPositive() {
		claims[relief.KeySOCSOEIS] = claims[relief.KeySOCSOEIS].Add(socsoEis)
	}

	fig.reliefs, err = s.reliefSvc.ResolveMonthly(ctx, companyID, snap.EmployeeID, req.Year, claims)
	if err != nil {
		return figures{}, err
	}

	cfg, found, err := s.pcbRepo.FindConfig(ctx, taxProfile)
	if err != nil {
		return figures{}, err
	}
	if !found {
		cfg = pcb.DefaultConfig()
	}
	brackets, err := s.pcbRepo.FindBrackets(ctx, taxProfile)
	if err != nil {
		return figures{}, err
	}

	prev, err := priorYTD(ctx, s.repo, snap.EmployeeID, req.Year, req.Month)
	if err != nil {
		return figures{}, err
	}
	inputs := pcb.Inputs{
		CurrentOtherReliefs: fig.reliefs.Totals.TotalPCB,
		CurrentZakat:        money.NonNegative(req.Zakat),
		ChildCount:          snap.ChildCount,
		SpouseEligible:      snap.SpouseReliefEligible(),
		DisabledSelf:        snap.DisabledSelf,
		DisabledSpouse:      snap.DisabledSpouse,
		Month:               req.Month,
	}
	if prev != nil {
		inputs.AccumulatedGross = prev.Gross
		inputs.AccumulatedEPF = prev.EPFEmployee
		inputs.AccumulatedPCB = prev.PCB
		inputs.AccumulatedOtherReliefs = prev.OtherReliefs
	}

	fig.pcbRes, err = pcb.Compute(cfg, brackets, fig.gross, fig.epfAmt.Employee, inputs)
	if err != nil {
		return figures{}, err
	}

	fig.net = fig.gross.
		Sub(fig.epfAmt.Employee).
		Sub(fig.socso.Employee).
		Sub(fig.eis.Employee).
		Sub(fig.pcbRes.PCB).
		Sub(money.NonNegative(req.UnpaidLeave)).
		Sub(money.NonNegative(req.Zakat)).
		Sub(money.NonNegative(req.OtherDeductions))

	return fig, nil
}

func (s *service) persistRun(
	ctx context.Context,
	companyID, actorID string,
	snap employee.Snapshot,
	req RunPayrollRequest,
	fig figures,
) (*PayrollRun, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qOutbox := s.outboxRepo.WithTx(tx)

	companyUUID, _ := uuid.Parse(companyID)
	employeeUUID, _ := uuid.Parse(snap.EmployeeID)
	var createdBy uuid.UUID
	if parsed, err := uuid.Parse(actorID); err == nil {
		createdBy = parsed
	}

	seq, err := s.counterRepo.GetNextValue(ctx, companyID, counterTypeRun)
	if err != nil {
		return nil, err
	}

	run := &PayrollRun{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Year:       req.Year,
		Month:      req.Month,
		RunNumber:  fmt.Sprintf("PR-%d%02d-%05d", req.Year, req.Month, seq),

		EPFPart: string(fig.part),

		BasicSalary: fig.basic,
		Allowances:  fig.allow,
		Bonus:       fig.bonus,
		GrossPay:    fig.gross,

		EPFEmployee:   fig.epfAmt.Employee,
		EPFEmployer:   fig.epfAmt.Employer,
		SOCSOEmployee: fig.socso.Employee,
		SOCSOEmployer: fig.socso.Employer,
		EISEmployee:   fig.eis.Employee,
		EISEmployer:   fig.eis.Employer,

		ReliefPCB:  fig.reliefs.Totals.TotalPCB,
		ReliefCash: fig.reliefs.Totals.TotalCash,

		PCB:             fig.pcbRes.PCB,
		Zakat:           money.NonNegative(req.Zakat),
		UnpaidLeave:     money.NonNegative(req.UnpaidLeave),
		OtherDeductions: money.NonNegative(req.OtherDeductions),
		NetPay:          fig.net,

		Status:    StatusProcessed,
		CreatedBy: createdBy,
	}

	if err := qtx.CreateRun(ctx, run); err != nil {
		return nil, err
	}

	if err := s.saveNewYTD(ctx, qtx, run); err != nil {
		return nil, err
	}

	if err := s.reliefSvc.PersistYTD(ctx, companyID, snap.EmployeeID, req.Year, fig.reliefs.YTDUpdates); err != nil {
		return nil, err
	}

	if err := s.enqueueRunCompleted(ctx, qOutbox, run, actorID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return run, nil
}

// priorYTD memuat baseline akumulator: snapshot terakhir, atau rekonstruksi
// dari run log kalau snapshotnya hilang.
func priorYTD(ctx context.Context, repo Repository, employeeID string, year, month int) (*YTDSnapshot, error) {
	prev, err := repo.FindLatestYTDBefore(ctx, employeeID, year, month)
	if err != nil || prev != nil {
		return prev, err
	}
	return repo.SumRunsBefore(ctx, employeeID, year, month)
}

// saveNewYTD menulis snapshot bulan ini: baseline bulan lalu + nilai run.
func (s *service) saveNewYTD(ctx context.Context, qtx Repository, run *PayrollRun) error {
	prev, err := priorYTD(ctx, qtx, run.EmployeeID.String(), run.Year, run.Month)
	if err != nil {
		return err
	}
	snap := &YTDSnapshot{
		ID:         uuid.New(),
		CompanyID:  run.CompanyID,
		EmployeeID: run.EmployeeID,
		Year:       run.Year,
		Month:      run.Month,
	}
	if prev != nil {
		snap.Gross = prev.Gross
		snap.EPFEmployee = prev.EPFEmployee
		snap.SOCSOEmployee = prev.SOCSOEmployee
		snap.EISEmployee = prev.EISEmployee
		snap.PCB = prev.PCB
		snap.Zakat = prev.Zakat
		snap.OtherReliefs = prev.OtherReliefs
	}

	snap.Gross = snap.Gross.Add(run.GrossPay)
	snap.EPFEmployee = snap.EPFEmployee.Add(run.EPFEmployee)
	snap.SOCSOEmployee = snap.SOCSOEmployee.Add(run.SOCSOEmployee)
	snap.EISEmployee = snap.EISEmployee.Add(run.EISEmployee)
	snap.PCB = snap.PCB.Add(run.PCB)
	snap.Zakat = snap.Zakat.Add(run.Zakat)
	snap.OtherReliefs = snap.OtherReliefs.Add(run.ReliefPCB)

	return qtx.SaveYTD(ctx, snap)
}

func (s *service) enqueueRunCompleted(ctx context.Context, qOutbox kafka.OutboxRepository, run *PayrollRun, actorID string) error {
	event := events.PayrollRunCompletedEvent{
		EventType:   "payroll.run.completed",
		RunID:       run.ID.String(),
		CompanyID:   run.CompanyID.String(),
		EmployeeID:  run.EmployeeID.String(),
		Year:        run.Year,
		Month:       run.Month,
		GrossPay:    run.GrossPay.StringFixed(2),
		NetPay:      run.NetPay.StringFixed(2),
		PCB:         run.PCB.StringFixed(2),
		TriggeredBy: actorID,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollRunCompletedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return err
	}
	return qOutbox.Create(ctx, outboxEvent)
}

func (s *service) RunBatch(
	ctx context.Context,
	companyID, actorID string,
	req RunBatchRequest,
) (RunBatchResponse, error) {
	if err := validatePeriod(req.Year, req.Month); err != nil {
		return RunBatchResponse{}, err
	}

	emps, err := s.employeeRepo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return RunBatchResponse{}, err
	}

	resp := RunBatchResponse{Year: req.Year, Month: req.Month}
	for _, emp := range emps {
		runReq := RunPayrollRequest{
			EmployeeID: emp.ID.String(),
			Year:       req.Year,
			Month:      req.Month,
		}
		runResp, err := s.RunForEmployee(ctx, companyID, actorID, runReq)
		if err != nil {
			// Konfigurasi berkanun cacat menghentikan seluruh batch;
			// pekerja bermasalah lain cukup dicatat dan dilewati
			if isConfigError(err) {
				return RunBatchResponse{}, err
			}
			resp.Skipped = append(resp.Skipped, SkippedEmployee{
				EmployeeID: emp.ID.String(),
				FullName:   emp.FullName,
				Reason:     err.Error(),
			})
			continue
		}
		resp.Processed = append(resp.Processed, runResp)
	}

	return resp, nil
}

func isConfigError(err error) bool {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == apperror.CodeConfigError
}

func (s *service) GetRuns(ctx context.Context, companyID string, year, month int) ([]RunPayrollResponse, error) {
	runs, err := s.repo.FindRunsByCompany(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}
	resp := make([]RunPayrollResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapRunToResponse(run)
	}
	return resp, nil
}

func (s *service) GetRun(ctx context.Context, companyID, id string) (RunPayrollResponse, error) {
	run, err := s.repo.FindRunByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RunPayrollResponse{}, payrollerrors.ErrRunNotFound
	}
	return mapRunToResponse(*run), nil
}

func (s *service) GetYTD(ctx context.Context, companyID, employeeID string, year int) (YTDResponse, error) {
	if _, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, employeeID); err != nil {
		return YTDResponse{}, payrollerrors.ErrEmployeeNotFound
	}
	snap, err := priorYTD(ctx, s.repo, employeeID, year, 13)
	if err != nil {
		return YTDResponse{}, err
	}
	if snap == nil {
		// Belum ada run tahun ini: baseline nol
		empUUID, _ := uuid.Parse(employeeID)
		return mapYTDToResponse(YTDSnapshot{
			EmployeeID:    empUUID,
			Year:          year,
			Gross:         decimal.Zero,
			EPFEmployee:   decimal.Zero,
			SOCSOEmployee: decimal.Zero,
			EISEmployee:   decimal.Zero,
			PCB:           decimal.Zero,
			Zakat:         decimal.Zero,
			OtherReliefs:  decimal.Zero,
		}), nil
	}
	return mapYTDToResponse(*snap), nil
}

func (s *service) GetEPFPart(ctx context.Context, companyID, employeeID string, asOf time.Time) (EPFPartResponse, error) {
	emp, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		return EPFPartResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	snap := employee.BuildSnapshot(*emp, asOf)
	part := epf.ResolvePart(snap)

	resp := EPFPartResponse{EmployeeID: employeeID, Part: string(part)}
	if part == epf.PartNone {
		switch {
		case snap.IsIntern:
			resp.Reason = "intern"
		case snap.Citizenship == employee.NonCitizen && !snap.EPFElecting:
			resp.Reason = "non-citizen without election"
		default:
			resp.Reason = "citizenship unknown"
		}
	}
	return resp, nil
}

func validatePeriod(year, month int) error {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return payrollerrors.ErrInvalidPeriod
	}
	return nil
}

// periodEnd: hari terakhir bulan gaji, dipakai untuk umur dan snapshot.
func periodEnd(year, month int) time.Time {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}
