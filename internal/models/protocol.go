package models

type ProtocolCategory string

const (
	Vertical   ProtocolCategory = "Vertical"
	Horizontal ProtocolCategory = "Horizontal"
)

type ProtocolTarget string

const (
	TargetAllah    ProtocolTarget = "Allah"
	TargetParents  ProtocolTarget = "Parents"
	TargetScholars ProtocolTarget = "Scholars"
	TargetGeneral  ProtocolTarget = "General"
	TargetIgnorant ProtocolTarget = "Ignorant"
)

// NetworkProtocol is an adab toward Allah (vertical) or toward people (horizontal)
type NetworkProtocol struct {
	ID          string           `json:"id"`
	Category    ProtocolCategory `json:"category"`
	Target      ProtocolTarget   `json:"target"`
	Title       string           `json:"title"`
	Arabic      string           `json:"arabic"`
	Description string           `json:"description"`
	Completed   bool             `json:"completed"`
}
