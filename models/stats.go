package models

// MonthlyBookings is one point of the bookings-per-month chart series.
type MonthlyBookings struct {
	Month    string `json:"month"` // "YYYY-MM"
	Bookings int    `json:"bookings"`
}

// MonthlyRevenue is one point of the revenue-per-month chart series.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ServiceBookings is one point of the bookings-per-service chart series.
type ServiceBookings struct {
	ServiceName string `json:"serviceName"`
	Bookings    int    `json:"bookings"`
}

// ProviderStats is the derived statistics report for a provider. It is
// recomputed on every request and never persisted. The chart series are always
// present, serializing as empty arrays when the provider has no bookings.
type ProviderStats struct {
	TotalServices            int               `json:"totalServices"`
	TotalBookings            int               `json:"totalBookings"`
	TotalRevenue             string            `json:"totalRevenue"` // Formatted with two decimal places, e.g. "150.00".
	AverageRating            float64           `json:"averageRating"`
	BookingsChartData        []MonthlyBookings `json:"bookingsChartData"`
	RevenueChartData         []MonthlyRevenue  `json:"revenueChartData"`
	ServiceBookingsChartData []ServiceBookings `json:"serviceBookingsChartData"`
}
