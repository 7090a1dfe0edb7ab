package relief

import "github.com/shopspring/decimal"

type PreviewRequest struct {
	EmployeeID string                     `json:"employee_id" binding:"required,uuid"`
	Year       int                        `json:"year" binding:"required"`
	Claims     map[string]decimal.Decimal `json:"claims" binding:"required"`
}

// PreviewResponse memakai string 2dp agar jumlah wang tidak terdistorsi
// representasi float di sisi klien.
type PreviewResponse struct {
	TotalPCB    string            `json:"total_lp1_pcb"`
	TotalCash   string            `json:"total_lp1_cash"`
	PerItem     map[string]string `json:"per_item"`
	PerItemCash map[string]string `json:"per_item_cash"`
	GroupUsage  map[string]string `json:"group_usage"`
	UnknownKeys []string          `json:"unknown_keys,omitempty"`
}

type CatalogItemResponse struct {
	Code        string  `json:"code"`
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Cap         *string `json:"cap,omitempty"`
	Group       string  `json:"group,omitempty"`
	PCBOnly     bool    `json:"pcb_only"`
	CycleYears  int     `json:"cycle_years,omitempty"`
}

func mapTotalsToPreview(totals Totals) PreviewResponse {
	resp := PreviewResponse{
		TotalPCB:    totals.TotalPCB.StringFixed(2),
		TotalCash:   totals.TotalCash.StringFixed(2),
		PerItem:     map[string]string{},
		PerItemCash: map[string]string{},
		GroupUsage:  map[string]string{},
		UnknownKeys: totals.UnknownKeys,
	}
	for k, v := range totals.PerItem {
		resp.PerItem[k] = v.StringFixed(2)
	}
	for k, v := range totals.PerItemCash {
		resp.PerItemCash[k] = v.StringFixed(2)
	}
	for k, v := range totals.GroupUsage {
		resp.GroupUsage[k] = v.StringFixed(2)
	}
	return resp
}

func mapCatalogToResponse(catalog *Catalog) []CatalogItemResponse {
	items := catalog.Items()
	out := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		resp := CatalogItemResponse{
			Code:        it.Code,
			Key:         it.Key,
			Description: it.Description,
			Group:       it.Group,
			PCBOnly:     it.PCBOnly,
			CycleYears:  it.CycleYears,
		}
		if it.Cap != nil {
			v := it.Cap.StringFixed(2)
			resp.Cap = &v
		}
		out = append(out, resp)
	}
	return out
}
