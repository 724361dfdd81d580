package response

import "claims_xpto/internal/domain/costing"

type ProcessTypeResponse struct {
	Code        string   `json:"code"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Components  []string `json:"components"`
}

func FromProcessTypes(configs []costing.ProcessTypeConfig) []ProcessTypeResponse {
	out := make([]ProcessTypeResponse, 0, len(configs))
	for _, cfg := range configs {
		components := []string{}
		if cfg.PartPrice {
			components = append(components, "part_price")
		}
		if cfg.StripAssemble {
			components = append(components, "strip_assemble")
		}
		if cfg.Labour {
			components = append(components, "labour")
		}
		if cfg.Paint {
			components = append(components, "paint")
		}
		if cfg.Outwork {
			components = append(components, "outwork")
		}
		out = append(out, ProcessTypeResponse{
			Code:        string(cfg.Code),
			Label:       cfg.Label,
			Description: cfg.Description,
			Category:    string(cfg.Category),
			Components:  components,
		})
	}
	return out
}
