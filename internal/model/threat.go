package model

import "fmt"

// ThreatLevel — единый тег уровня угрозы. Из него выводятся оба строковых
// представления, которые живут в записях скана (status и threatLevel),
// чтобы они не могли разъехаться на локальном пути.
type ThreatLevel int

const (
	ThreatSafe ThreatLevel = iota
	ThreatMedium
	ThreatHigh
)

// Levels returns all threat levels in ascending severity order.
func Levels() []ThreatLevel {
	return []ThreatLevel{ThreatSafe, ThreatMedium, ThreatHigh}
}

// Status returns the lowercase wire form: "safe" | "medium" | "high".
func (l ThreatLevel) Status() string {
	switch l {
	case ThreatMedium:
		return "medium"
	case ThreatHigh:
		return "high"
	default:
		return "safe"
	}
}

// Display returns the capitalized form shown to the user: "Safe" | "Medium" | "High".
func (l ThreatLevel) Display() string {
	switch l {
	case ThreatMedium:
		return "Medium"
	case ThreatHigh:
		return "High"
	default:
		return "Safe"
	}
}

// Notes returns the canned assessment line for the level.
func (l ThreatLevel) Notes() string {
	switch l {
	case ThreatHigh:
		return "Potential security threats detected"
	case ThreatMedium:
		return "Some suspicious activity found"
	default:
		return "No threats detected"
	}
}

// ParseThreatStatus maps the wire form back to a tag.
func ParseThreatStatus(s string) (ThreatLevel, error) {
	switch s {
	case "safe":
		return ThreatSafe, nil
	case "medium":
		return ThreatMedium, nil
	case "high":
		return ThreatHigh, nil
	}
	return ThreatSafe, fmt.Errorf("unknown threat status: %q", s)
}
