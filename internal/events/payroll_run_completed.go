package events

import "time"

const PayrollRunCompletedTopic = "payroll.my.run.completed.v1"

// PayrollRunCompletedEvent dipublikasikan via outbox setelah run satu
// pekerja berstatus PROCESSED; konsumen hilir memakai ini untuk payslip
// dan pelaporan caruman berkanun.
type PayrollRunCompletedEvent struct {
	EventType   string    `json:"event_type"`
	RunID       string    `json:"run_id"`
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	GrossPay    string    `json:"gross_pay"`
	NetPay      string    `json:"net_pay"`
	PCB         string    `json:"pcb"`
	TriggeredBy string    `json:"triggered_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
