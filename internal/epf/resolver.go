package epf

import (
	"time"

	"go-payroll-my/internal/employee"
)

// electionCutoff: bukan warganegara yang memilih mencarum sebelum
// 1 Ogos 1998 dilayan seperti warganegara (part A/C).
var electionCutoff = time.Date(1998, time.August, 1, 0, 0, 0, 0, time.UTC)

const seniorAge = 60

// ResolvePart menentukan bahagian jadual KWSP dari snapshot pekerja.
//
//	warganegara       : <60 part A, >=60 part E
//	penduduk tetap    : <60 part A, >=60 part C
//	bukan warganegara : hanya jika memilih mencarum;
//	                    pilihan sebelum 1 Ogos 1998 -> A/C, selepas -> B/D
//
// Pelatih (intern) dan bukan warganegara tanpa pilihan tidak mencarum.
func ResolvePart(snap employee.Snapshot) Part {
	if snap.IsIntern {
		return PartNone
	}

	senior := snap.Age >= seniorAge

	switch snap.Citizenship {
	case employee.Citizen:
		if senior {
			return PartE
		}
		return PartA
	case employee.PermanentResident:
		if senior {
			return PartC
		}
		return PartA
	case employee.NonCitizen:
		if !snap.EPFElecting {
			return PartNone
		}
		// Tarikh pilihan tidak boleh diparse -> anggap selepas cutoff
		if snap.EPFElectionDate != nil && snap.EPFElectionDate.Before(electionCutoff) {
			if senior {
				return PartC
			}
			return PartA
		}
		if senior {
			return PartD
		}
		return PartB
	}

	// Kewarganegaraan tidak diketahui: jangan potong caruman
	return PartNone
}
