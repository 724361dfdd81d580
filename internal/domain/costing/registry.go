package costing

import "claims_xpto/internal/domain/entities"

// Category is the breakdown bucket a process type reports into.
type Category string

const (
	CategoryParts   Category = "parts"
	CategoryLabour  Category = "labour"
	CategoryPaint   Category = "paint"
	CategoryOutwork Category = "outwork"
)

// ProcessTypeConfig describes which cost components are active for a process
// type and which breakdown bucket its lines belong to.
type ProcessTypeConfig struct {
	Code        entities.ProcessType
	Label       string
	Description string

	PartPrice     bool
	StripAssemble bool
	Labour        bool
	Paint         bool
	Outwork       bool

	Category Category
}

// Registry is an immutable process-type lookup table. The zero value is empty;
// use DefaultRegistry or NewRegistry.
type Registry struct {
	configs map[entities.ProcessType]ProcessTypeConfig
	order   []entities.ProcessType
}

// NewRegistry builds a registry from the given configs. Later entries with the
// same code replace earlier ones.
func NewRegistry(configs ...ProcessTypeConfig) Registry {
	r := Registry{configs: make(map[entities.ProcessType]ProcessTypeConfig, len(configs))}
	for _, cfg := range configs {
		if _, ok := r.configs[cfg.Code]; !ok {
			r.order = append(r.order, cfg.Code)
		}
		r.configs[cfg.Code] = cfg
	}
	return r
}

// DefaultRegistry returns the six standard process types.
func DefaultRegistry() Registry {
	return NewRegistry(
		ProcessTypeConfig{
			Code:          entities.ProcessTypeNew,
			Label:         "New",
			Description:   "Replace with a new part",
			PartPrice:     true,
			StripAssemble: true,
			Labour:        true,
			Paint:         true,
			Category:      CategoryParts,
		},
		ProcessTypeConfig{
			Code:          entities.ProcessTypeRepair,
			Label:         "Repair",
			Description:   "Repair the existing part",
			StripAssemble: true,
			Labour:        true,
			Paint:         true,
			Category:      CategoryLabour,
		},
		ProcessTypeConfig{
			Code:          entities.ProcessTypePaint,
			Label:         "Paint",
			Description:   "Paint only",
			StripAssemble: true,
			Paint:         true,
			Category:      CategoryPaint,
		},
		ProcessTypeConfig{
			Code:          entities.ProcessTypeBlend,
			Label:         "Blend",
			Description:   "Blend paint into adjacent panel",
			StripAssemble: true,
			Paint:         true,
			Category:      CategoryPaint,
		},
		ProcessTypeConfig{
			Code:        entities.ProcessTypeAlign,
			Label:       "Align",
			Description: "Alignment labour only",
			Labour:      true,
			Category:    CategoryLabour,
		},
		ProcessTypeConfig{
			Code:        entities.ProcessTypeOutwork,
			Label:       "Outwork",
			Description: "Sublet work charged by a third party",
			Outwork:     true,
			Category:    CategoryOutwork,
		},
	)
}

// Lookup returns the config for code.
func (r Registry) Lookup(code entities.ProcessType) (ProcessTypeConfig, error) {
	cfg, ok := r.configs[code]
	if !ok {
		return ProcessTypeConfig{}, &UnknownProcessTypeError{Code: code}
	}
	return cfg, nil
}

// All returns every config in registration order.
func (r Registry) All() []ProcessTypeConfig {
	out := make([]ProcessTypeConfig, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.configs[code])
	}
	return out
}
