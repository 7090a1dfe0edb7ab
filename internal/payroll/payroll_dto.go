package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required"`
	Month      int    `json:"month" binding:"required"`

	Bonus           decimal.Decimal            `json:"bonus"`
	ReliefClaims    map[string]decimal.Decimal `json:"relief_claims"`
	Zakat           decimal.Decimal            `json:"zakat"`
	UnpaidLeave     decimal.Decimal            `json:"unpaid_leave"`
	OtherDeductions decimal.Decimal            `json:"other_deductions"`
}

type RunBatchRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

type StatutoryAmounts struct {
	Employee string `json:"employee"`
	Employer string `json:"employer"`
}

type RunPayrollResponse struct {
	ID         string `json:"id"`
	RunNumber  string `json:"run_number"`
	CompanyID  string `json:"company_id"`
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Status     string `json:"status"`

	EPFPart string `json:"epf_part,omitempty"`

	BasicSalary string `json:"basic_salary"`
	Allowances  string `json:"allowances"`
	Bonus       string `json:"bonus"`
	GrossPay    string `json:"gross_pay"`

	EPF   StatutoryAmounts `json:"epf"`
	SOCSO StatutoryAmounts `json:"socso"`
	EIS   StatutoryAmounts `json:"eis"`

	ReliefPCB  string `json:"relief_lp1_pcb"`
	ReliefCash string `json:"relief_lp1_cash"`

	PCB             string `json:"pcb"`
	Zakat           string `json:"zakat"`
	UnpaidLeave     string `json:"unpaid_leave"`
	OtherDeductions string `json:"other_deductions"`
	NetPay          string `json:"net_pay"`

	CreatedAt string `json:"created_at"`
}

// SkippedEmployee mencatat pekerja yang dilewati batch beserta alasannya.
type SkippedEmployee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Reason     string `json:"reason"`
}

type RunBatchResponse struct {
	Year      int                  `json:"year"`
	Month     int                  `json:"month"`
	Processed []RunPayrollResponse `json:"processed"`
	Skipped   []SkippedEmployee    `json:"skipped"`
}

type YTDResponse struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Gross         string `json:"gross"`
	EPFEmployee   string `json:"epf_employee"`
	SOCSOEmployee string `json:"socso_employee"`
	EISEmployee   string `json:"eis_employee"`
	PCB           string `json:"pcb"`
	Zakat         string `json:"zakat"`
	OtherReliefs  string `json:"other_reliefs"`
}

type EPFPartResponse struct {
	EmployeeID string `json:"employee_id"`
	Part       string `json:"part"`
	Reason     string `json:"reason,omitempty"`
}

func mapRunToResponse(run PayrollRun) RunPayrollResponse {
	return RunPayrollResponse{
		ID:         run.ID.String(),
		RunNumber:  run.RunNumber,
		CompanyID:  run.CompanyID.String(),
		EmployeeID: run.EmployeeID.String(),
		Year:       run.Year,
		Month:      run.Month,
		Status:     run.Status,
		EPFPart:    run.EPFPart,

		BasicSalary: run.BasicSalary.StringFixed(2),
		Allowances:  run.Allowances.StringFixed(2),
		Bonus:       run.Bonus.StringFixed(2),
		GrossPay:    run.GrossPay.StringFixed(2),

		EPF: StatutoryAmounts{
			Employee: run.EPFEmployee.StringFixed(2),
			Employer: run.EPFEmployer.StringFixed(2),
		},
		SOCSO: StatutoryAmounts{
			Employee: run.SOCSOEmployee.StringFixed(2),
			Employer: run.SOCSOEmployer.StringFixed(2),
		},
		EIS: StatutoryAmounts{
			Employee: run.EISEmployee.StringFixed(2),
			Employer: run.EISEmployer.StringFixed(2),
		},

		ReliefPCB:  run.ReliefPCB.StringFixed(2),
		ReliefCash: run.ReliefCash.StringFixed(2),

		PCB:             run.PCB.StringFixed(2),
		Zakat:           run.Zakat.StringFixed(2),
		UnpaidLeave:     run.UnpaidLeave.StringFixed(2),
		OtherDeductions: run.OtherDeductions.StringFixed(2),
		NetPay:          run.NetPay.StringFixed(2),

		CreatedAt: run.CreatedAt.Format(time.RFC3339),
	}
}

func mapYTDToResponse(snap YTDSnapshot) YTDResponse {
	return YTDResponse{
		EmployeeID:    snap.EmployeeID.String(),
		Year:          snap.Year,
		Month:         snap.Month,
		Gross:         snap.Gross.StringFixed(2),
		EPFEmployee:   snap.EPFEmployee.StringFixed(2),
		SOCSOEmployee: snap.SOCSOEmployee.StringFixed(2),
		EISEmployee:   snap.EISEmployee.StringFixed(2),
		PCB:           snap.PCB.StringFixed(2),
		Zakat:         snap.Zakat.StringFixed(2),
		OtherReliefs:  snap.OtherReliefs.StringFixed(2),
	}
}
