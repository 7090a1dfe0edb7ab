package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot adalah potret read-only data karyawan untuk satu perhitungan gaji.
// Field yang rusak/kosong di-default ke nilai aman dan dicatat sebagai warning
// supaya satu karyawan bermasalah tidak menggagalkan satu batch.
type Snapshot struct {
	EmployeeID string
	CompanyID  string
	FullName   string

	Age         int
	Citizenship CitizenshipStatus
	IsIntern    bool

	EPFElecting     bool
	EPFElectionDate *time.Time // nil = tidak ada / tidak terparse

	MaritalStatus  string
	SpouseWorking  bool
	ChildCount     int
	DisabledSelf   bool
	DisabledSpouse bool

	BasicSalary decimal.Decimal
	Allowances  map[string]decimal.Decimal

	PayrollStatus    string
	EmploymentStatus string

	// Field yang di-default karena data rusak, untuk audit/log
	DefaultedFields []string
}

func (s Snapshot) TotalAllowances() decimal.Decimal {
	total := decimal.Zero
	for _, amt := range s.Allowances {
		total = total.Add(amt)
	}
	return total
}

func (s Snapshot) IsPayrollActive() bool {
	switch s.EmploymentStatus {
	case EmploymentInactive, EmploymentTerminated, EmploymentResigned, EmploymentRetired:
		return false
	}
	return s.PayrollStatus != EmploymentInactive
}

// SpouseReliefEligible: pelepasan dan rebat pasangan hanya untuk pekerja
// berkahwin yang pasangannya tidak bekerja.
func (s Snapshot) SpouseReliefEligible() bool {
	return strings.EqualFold(s.MaritalStatus, "married") && !s.SpouseWorking
}

// BuildSnapshot menurunkan snapshot dari entity pada akhir periode gaji.
func BuildSnapshot(emp Employee, periodEnd time.Time) Snapshot {
	snap := Snapshot{
		EmployeeID:       emp.ID.String(),
		CompanyID:        emp.CompanyID.String(),
		FullName:         emp.FullName,
		Citizenship:      ResolveCitizenship(emp.Nationality, emp.Citizenship),
		IsIntern:         IsInternTitle(emp.RoleTitle),
		EPFElecting:      emp.EPFElecting,
		MaritalStatus:    emp.MaritalStatus,
		SpouseWorking:    emp.SpouseWorking,
		ChildCount:       emp.ChildCount,
		DisabledSelf:     emp.DisabledSelf,
		DisabledSpouse:   emp.DisabledSpouse,
		BasicSalary:      emp.BasicSalary,
		PayrollStatus:    emp.PayrollStatus,
		EmploymentStatus: emp.EmploymentStatus,
		Allowances:       map[string]decimal.Decimal{},
	}

	if dob, ok := ParseDate(emp.DateOfBirth); ok {
		snap.Age = AgeAt(dob, periodEnd)
	} else {
		snap.DefaultedFields = append(snap.DefaultedFields, "date_of_birth")
	}

	if emp.EPFElecting && emp.EPFElectionDate != "" {
		if ed, ok := ParseDate(emp.EPFElectionDate); ok {
			snap.EPFElectionDate = &ed
		} else {
			// Pilihan tak terparse diperlakukan pasca-1998 di resolver
			snap.DefaultedFields = append(snap.DefaultedFields, "epf_election_date")
		}
	}

	if emp.ChildCount < 0 {
		snap.ChildCount = 0
		snap.DefaultedFields = append(snap.DefaultedFields, "child_count")
	}

	if emp.BasicSalary.Sign() < 0 {
		snap.BasicSalary = decimal.Zero
		snap.DefaultedFields = append(snap.DefaultedFields, "basic_salary")
	}

	for _, a := range emp.Allowances {
		amt := a.Amount
		if amt.Sign() < 0 {
			amt = decimal.Zero
			snap.DefaultedFields = append(snap.DefaultedFields, "allowance:"+a.Name)
		}
		snap.Allowances[a.Name] = amt
	}

	return snap
}
