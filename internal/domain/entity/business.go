package entity

// Business is a single directory listing. A business belongs to exactly one
// (Category, SubCategory) pair at any time; its ID is globally unique and
// stable across re-categorization.
type Business struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Address          string   `json:"address"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Website          string   `json:"website"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"reviewCount"`
	Reviews          []Review `json:"reviews"`
	Verified         bool     `json:"verified"`
	ImageURL         string   `json:"imageUrl"`
	Gallery          []string `json:"gallery"`
	Services         []string `json:"services"`
	YearsInBusiness  int      `json:"yearsInBusiness"`
	BioVideoURL      string   `json:"bioVideoUrl,omitempty"`
	BioText          string   `json:"bioText,omitempty"`
	Metrics          *Metrics `json:"metrics,omitempty"`
}

// Review is a single customer review attached to a business.
type Review struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// Metrics holds per-business telemetry counters. Counters only move
// forward; there is no decrement or reset operation.
type Metrics struct {
	Views          int             `json:"views"`
	ContactClicks  int             `json:"contactClicks"`
	Impressions    int             `json:"impressions"`
	MonthlyHistory []MonthlyMetric `json:"monthlyHistory"`
}

// MonthlyMetric is one period snapshot in the metrics history, used by the
// partner dashboard charts.
type MonthlyMetric struct {
	Period   string `json:"name"`
	Views    int    `json:"views"`
	Contacts int    `json:"contacts"`
}

// Clone returns a deep copy of the business.
func (b Business) Clone() Business {
	out := b
	out.Reviews = append([]Review(nil), b.Reviews...)
	out.Gallery = append([]string(nil), b.Gallery...)
	out.Services = append([]string(nil), b.Services...)
	if b.Metrics != nil {
		m := *b.Metrics
		m.MonthlyHistory = append([]MonthlyMetric(nil), b.Metrics.MonthlyHistory...)
		out.Metrics = &m
	}

	return out
}

// EnsureMetrics initializes a zero-valued metrics record for listings that
// predate metrics collection.
func (b *Business) EnsureMetrics() *Metrics {
	if b.Metrics == nil {
		b.Metrics = &Metrics{MonthlyHistory: []MonthlyMetric{}}
	}

	return b.Metrics
}
