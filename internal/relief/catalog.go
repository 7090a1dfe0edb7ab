package relief

import "github.com/shopspring/decimal"

// Item adalah satu baris TP1 (Potongan Bulan Semasa). Cap nil berarti
// tiada had individu; had kumpulan tetap berlaku lewat Group.
type Item struct {
	Code        string
	Key         string
	Description string
	Cap         *decimal.Decimal
	Group       string
	PCBOnly     bool
	CycleYears  int
}

// Group adalah payung berhad untuk beberapa item (contoh: perubatan 4a-4f).
type Group struct {
	ID          string
	Description string
	Cap         decimal.Decimal
}

// Catalog memegang item + kumpulan efektif setelah override syarikat.
type Catalog struct {
	items      map[string]Item
	itemOrder  []string
	groups     map[string]Group
	groupItems map[string][]string
}

func rm(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// KeySOCSOEIS adalah item 14: caruman PERKESO+SIP diiktiraf sebagai
// pelepasan PCB sahaja, tidak pernah memotong gaji bersih.
const KeySOCSOEIS = "socso_eis_lp1"

func defaultGroups() []Group {
	return []Group{
		{ID: "G1_PARENT", Description: "Perbelanjaan ibu bapa / datuk nenek (a+b+c)", Cap: decimal.NewFromInt(8000)},
		{ID: "G3_SELF_EDU", Description: "Yuran pendidikan sendiri (a+b+c)", Cap: decimal.NewFromInt(7000)},
		{ID: "G4_MEDICAL", Description: "Perbelanjaan perubatan (a..f)", Cap: decimal.NewFromInt(10000)},
		{ID: "G5_LIFESTYLE", Description: "Gaya hidup (a..d)", Cap: decimal.NewFromInt(2500)},
		{ID: "G6_SPORTS", Description: "Gaya hidup sukan tambahan (a..d)", Cap: decimal.NewFromInt(1000)},
		{ID: "G11_EPF_LIFE", Description: "KWSP + insurans nyawa gabungan", Cap: decimal.NewFromInt(7000)},
	}
}

// Struktur TP1 2025. Sesuaikan bila jadual rasmi berubah.
func defaultItems() []Item {
	return []Item{
		{Code: "1a", Key: "parent_medical_care", Description: "Rawatan perubatan/keperluan/penjagaan ibu bapa/datuk nenek", Group: "G1_PARENT"},
		{Code: "1b", Key: "parent_dental", Description: "Rawatan pergigian ibu bapa/datuk nenek", Group: "G1_PARENT"},
		{Code: "1c", Key: "parent_full_exam_vaccine", Description: "Pemeriksaan penuh & vaksin (subcap RM1,000)", Cap: rm(1000), Group: "G1_PARENT"},

		{Code: "2", Key: "support_equipment_disabled", Description: "Peralatan sokongan asas", Cap: rm(6000)},

		{Code: "3a", Key: "self_edu_non_pg_professional", Description: "Yuran bidang profesional bukan Sarjana/PhD", Group: "G3_SELF_EDU"},
		{Code: "3b", Key: "self_edu_masters_phd", Description: "Yuran Sarjana/PhD", Group: "G3_SELF_EDU"},
		{Code: "3c", Key: "self_edu_skill_upgrading", Description: "Kursus peningkatan kemahiran (subcap RM2,000)", Cap: rm(2000), Group: "G3_SELF_EDU"},

		{Code: "4a", Key: "medical_serious_disease", Description: "Penyakit serius diri/pasangan/anak", Group: "G4_MEDICAL"},
		{Code: "4b", Key: "medical_fertility", Description: "Rawatan kesuburan", Group: "G4_MEDICAL"},
		{Code: "4c", Key: "medical_vaccination", Description: "Pemvaksinan (subcap RM1,000)", Cap: rm(1000), Group: "G4_MEDICAL"},
		{Code: "4d", Key: "medical_dental", Description: "Pemeriksaan & rawatan pergigian (subcap RM1,000)", Cap: rm(1000), Group: "G4_MEDICAL"},
		{Code: "4e", Key: "medical_check_covid_mental_devices", Description: "Check-up/COVID/mental/peralatan (subcap RM1,000)", Cap: rm(1000), Group: "G4_MEDICAL"},
		{Code: "4f", Key: "medical_learning_disability_child", Description: "Intervensi anak kurang upaya pembelajaran (subcap RM6,000)", Cap: rm(6000), Group: "G4_MEDICAL"},

		{Code: "5a", Key: "lifestyle_publications", Description: "Buku/jurnal/majalah", Group: "G5_LIFESTYLE"},
		{Code: "5b", Key: "lifestyle_devices", Description: "Peranti (PC/telefon/tablet)", Group: "G5_LIFESTYLE"},
		{Code: "5c", Key: "lifestyle_internet", Description: "Langganan internet", Group: "G5_LIFESTYLE"},
		{Code: "5d", Key: "lifestyle_skill_course", Description: "Yuran kursus peningkatan kemahiran", Group: "G5_LIFESTYLE"},

		{Code: "6a", Key: "sports_equipment", Description: "Peralatan sukan", Group: "G6_SPORTS"},
		{Code: "6b", Key: "sports_facility_fees", Description: "Fi fasiliti sukan", Group: "G6_SPORTS"},
		{Code: "6c", Key: "sports_event_registration", Description: "Fi pendaftaran pertandingan sukan", Group: "G6_SPORTS"},
		{Code: "6d", Key: "sports_gym_membership", Description: "Yuran keahlian gim / latihan", Group: "G6_SPORTS"},

		{Code: "7", Key: "breastfeeding_equipment", Description: "Peralatan penyusuan (sekali setiap 2 tahun)", Cap: rm(1000), CycleYears: 2},
		{Code: "8", Key: "childcare_fees", Description: "Yuran tadika/asuhan (anak <= 6 tahun)", Cap: rm(3000)},
		{Code: "9", Key: "sspn_net_savings", Description: "Tabungan bersih SSPN", Cap: rm(8000)},
		{Code: "10", Key: "alimony_ex_wife", Description: "Bayaran alimoni bekas isteri", Cap: rm(4000)},

		{Code: "11a", Key: "epf_total_including_voluntary", Description: "KWSP (wajib + sukarela), subcap RM4,000", Cap: rm(4000), Group: "G11_EPF_LIFE"},
		{Code: "11b", Key: "life_insurance", Description: "Insurans nyawa, subcap RM3,000", Cap: rm(3000), Group: "G11_EPF_LIFE"},

		{Code: "12", Key: "prs_deferred_annuity", Description: "PRS & anuiti tertangguh", Cap: rm(3000)},
		{Code: "13", Key: "education_medical_insurance", Description: "Insurans pendidikan & perubatan", Cap: rm(4000)},

		{Code: "14", Key: KeySOCSOEIS, Description: "Caruman PERKESO + SIP (PCB sahaja)", Cap: rm(350), PCBOnly: true},

		{Code: "15", Key: "ev_charger_compost", Description: "Pengecas EV / mesin kompos (3 tahun sekali)", Cap: rm(2500), CycleYears: 3},

		{Code: "16a", Key: "home_loan_interest_tier1", Description: "Faedah pinjaman rumah <= 500k", Cap: rm(7000)},
		{Code: "16b", Key: "home_loan_interest_tier2", Description: "Faedah pinjaman rumah 500k-750k", Cap: rm(5000)},
	}
}

func buildCatalog(items []Item, groups []Group) *Catalog {
	c := &Catalog{
		items:      map[string]Item{},
		groups:     map[string]Group{},
		groupItems: map[string][]string{},
	}
	for _, it := range items {
		c.items[it.Key] = it
		c.itemOrder = append(c.itemOrder, it.Key)
		if it.Group != "" {
			c.groupItems[it.Group] = append(c.groupItems[it.Group], it.Key)
		}
	}
	for _, g := range groups {
		c.groups[g.ID] = g
	}
	return c
}

// DefaultCatalog mengembalikan katalog TP1 2025 tanpa override.
func DefaultCatalog() *Catalog {
	return buildCatalog(defaultItems(), defaultGroups())
}

func (c *Catalog) Item(key string) (Item, bool) {
	it, ok := c.items[key]
	return it, ok
}

func (c *Catalog) Group(id string) (Group, bool) {
	g, ok := c.groups[id]
	return g, ok
}

// Items mengembalikan item dalam urutan TP1 (stabil untuk output API).
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.itemOrder))
	for _, key := range c.itemOrder {
		out = append(out, c.items[key])
	}
	return out
}

// GroupIDs dalam urutan kemunculan item.
func (c *Catalog) GroupIDs() []string {
	seen := map[string]bool{}
	var out []string
	for _, key := range c.itemOrder {
		g := c.items[key].Group
		if g != "" && !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}

func (c *Catalog) groupMembers(id string) []string {
	return c.groupItems[id]
}

// ItemOverride mengubah sebagian field satu item; field nil dibiarkan.
type ItemOverride struct {
	Cap        *decimal.Decimal
	PCBOnly    *bool
	CycleYears *int
}

// WithOverrides membina katalog baharu dengan override item dan cap
// kumpulan diterapkan. Override untuk key yang tidak dikenal diabaikan.
func (c *Catalog) WithOverrides(items map[string]ItemOverride, groupCaps map[string]decimal.Decimal) *Catalog {
	if len(items) == 0 && len(groupCaps) == 0 {
		return c
	}

	newItems := make([]Item, 0, len(c.itemOrder))
	for _, key := range c.itemOrder {
		it := c.items[key]
		if ov, ok := items[key]; ok {
			if ov.Cap != nil {
				capCopy := *ov.Cap
				it.Cap = &capCopy
			}
			if ov.PCBOnly != nil {
				it.PCBOnly = *ov.PCBOnly
			}
			if ov.CycleYears != nil {
				it.CycleYears = *ov.CycleYears
			}
		}
		newItems = append(newItems, it)
	}

	newGroups := make([]Group, 0, len(c.groups))
	for _, id := range c.GroupIDs() {
		g := c.groups[id]
		if newCap, ok := groupCaps[id]; ok {
			g.Cap = newCap
		}
		newGroups = append(newGroups, g)
	}

	return buildCatalog(newItems, newGroups)
}
