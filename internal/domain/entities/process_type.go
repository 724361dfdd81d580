package entities

// ProcessType classifies how a line item's cost is computed.
//
// The codes are persisted on every line item and printed on reports; they must
// never be renamed.

type ProcessType string

const (
	ProcessTypeNew     ProcessType = "N"
	ProcessTypeRepair  ProcessType = "R"
	ProcessTypePaint   ProcessType = "P"
	ProcessTypeBlend   ProcessType = "B"
	ProcessTypeAlign   ProcessType = "A"
	ProcessTypeOutwork ProcessType = "O"
)

// ProcessTypes lists every supported code in display order.
var ProcessTypes = []ProcessType{
	ProcessTypeNew,
	ProcessTypeRepair,
	ProcessTypePaint,
	ProcessTypeBlend,
	ProcessTypeAlign,
	ProcessTypeOutwork,
}

func (p ProcessType) String() string {
	return string(p)
}

// PartType identifies the origin of a part. Only meaningful for ProcessTypeNew.
type PartType string

const (
	PartTypeOEM        PartType = "OEM"
	PartTypeAlternate  PartType = "ALT"
	PartTypeSecondHand PartType = "2ND"
)

func (p PartType) IsValid() bool {
	switch p {
	case "", PartTypeOEM, PartTypeAlternate, PartTypeSecondHand:
		return true
	}
	return false
}
