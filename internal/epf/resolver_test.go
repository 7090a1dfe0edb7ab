package epf_test

import (
	"testing"
	"time"

	"go-payroll-my/internal/employee"
	"go-payroll-my/internal/epf"

	"github.com/stretchr/testify/assert"
)

func dateOf(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolvePart(t *testing.T) {
	cases := []struct {
		name string
		snap employee.Snapshot
		want epf.Part
	}{
		{"warganegara bawah 60", employee.Snapshot{Citizenship: employee.Citizen, Age: 35}, epf.PartA},
		{"warganegara 59", employee.Snapshot{Citizenship: employee.Citizen, Age: 59}, epf.PartA},
		{"warganegara tepat 60", employee.Snapshot{Citizenship: employee.Citizen, Age: 60}, epf.PartE},
		{"PR bawah 60", employee.Snapshot{Citizenship: employee.PermanentResident, Age: 45}, epf.PartA},
		{"PR 60 ke atas", employee.Snapshot{Citizenship: employee.PermanentResident, Age: 62}, epf.PartC},
		{
			"bukan warganegara pilih sebelum cutoff",
			employee.Snapshot{Citizenship: employee.NonCitizen, Age: 40, EPFElecting: true, EPFElectionDate: dateOf(1997, 5, 1)},
			epf.PartA,
		},
		{
			"bukan warganegara pilih sebelum cutoff 60 ke atas",
			employee.Snapshot{Citizenship: employee.NonCitizen, Age: 61, EPFElecting: true, EPFElectionDate: dateOf(1998, 7, 31)},
			epf.PartC,
		},
		{
			"bukan warganegara pilih tepat tarikh cutoff",
			employee.Snapshot{Citizenship: employee.NonCitizen, Age: 40, EPFElecting: true, EPFElectionDate: dateOf(1998, 8, 1)},
			epf.PartB,
		},
		{
			"bukan warganegara pilih selepas cutoff 60 ke atas",
			employee.Snapshot{Citizenship: employee.NonCitizen, Age: 65, EPFElecting: true, EPFElectionDate: dateOf(2010, 1, 1)},
			epf.PartD,
		},
		{
			"bukan warganegara pilih tanpa tarikh valid",
			employee.Snapshot{Citizenship: employee.NonCitizen, Age: 40, EPFElecting: true},
			epf.PartB,
		},
		{
			"bukan warganegara tidak memilih",
			employee.Snapshot{Citizenship: employee.NonCitizen, Age: 40},
			epf.PartNone,
		},
		{"pelatih", employee.Snapshot{Citizenship: employee.Citizen, Age: 22, IsIntern: true}, epf.PartNone},
		{"kewarganegaraan tidak diketahui", employee.Snapshot{Citizenship: employee.CitizenshipUnknown, Age: 30}, epf.PartNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, epf.ResolvePart(c.snap))
		})
	}
}

func TestParsePart(t *testing.T) {
	p, ok := epf.ParsePart("A")
	assert.True(t, ok)
	assert.Equal(t, epf.PartA, p)

	p, ok = epf.ParsePart("")
	assert.True(t, ok)
	assert.Equal(t, epf.PartNone, p)

	_, ok = epf.ParsePart("F")
	assert.False(t, ok)
}
