package entity

// MetricKind selects which telemetry counter an increment targets.
type MetricKind string

const (
	// MetricView counts profile page views.
	MetricView MetricKind = "view"
	// MetricContact counts phone, email and website clicks.
	MetricContact MetricKind = "contact"
	// MetricImpression counts appearances in search results and lists.
	MetricImpression MetricKind = "impression"
)

// String returns the string representation of the MetricKind.
func (k MetricKind) String() string {
	return string(k)
}

// IsValid checks if the MetricKind is a valid value.
func (k MetricKind) IsValid() bool {
	switch k {
	case MetricView, MetricContact, MetricImpression:
		return true
	default:
		return false
	}
}
