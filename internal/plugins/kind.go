package plugins

import "strings"

// Kind identifies one family of pluggable checks. Each family has its own
// name space in the registry.
type Kind int

const (
	KindParameter Kind = iota
	KindRequirement
	KindBehaviour
)

// String returns the lower-case family name, as used in pack block names.
func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "parameter"
	case KindRequirement:
		return "requirement"
	case KindBehaviour:
		return "behaviour"
	default:
		return "unknown"
	}
}

// Suffix returns the canonical Go type-name suffix for the kind. Discovered
// type names carrying this suffix register under the shortened name.
func (k Kind) Suffix() string {
	switch k {
	case KindParameter:
		return "Parameter"
	case KindRequirement:
		return "Requirement"
	case KindBehaviour:
		return "Behaviour"
	default:
		return ""
	}
}

// DeriveName derives the registration name for a plugin type from its Go
// type name. The kind's suffix is stripped on an exact, case-sensitive
// match; any other name is kept whole. Pack authors rely on this rule, so
// it must stay stable: "ThresholdParameter" registers as "Threshold",
// plain "Threshold" registers unchanged.
func DeriveName(typeName string, kind Kind) string {
	suffix := kind.Suffix()
	if suffix == "" || typeName == suffix {
		return typeName
	}
	if strings.HasSuffix(typeName, suffix) {
		return strings.TrimSuffix(typeName, suffix)
	}
	return typeName
}
