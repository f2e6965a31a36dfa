package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"homehero/database"
	"homehero/database/repository/booking"
	"homehero/database/repository/service"
	"homehero/models"
	"homehero/services"
)

// StatsService computes the derived statistics report for a provider.
// Compute is read-only and idempotent; the report is rebuilt on every call.
type StatsService interface {
	Compute(providerEmail string) (*models.ProviderStats, error)
}

// DefaultStatsService aggregates over the service and booking repositories.
type DefaultStatsService struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}

// Compute builds the provider report: counts, revenue, average rating, and
// three month-keyed chart series. The two reads run sequentially; a store
// failure yields no partial report.
func (s *DefaultStatsService) Compute(providerEmail string) (*models.ProviderStats, error) {
	providerServices, err := s.Services.GetByProvider(providerEmail)
	if err != nil {
		return nil, storeErr(err)
	}

	serviceIDs := make([]string, 0, len(providerServices))
	for _, svc := range providerServices {
		serviceIDs = append(serviceIDs, svc.ID)
	}

	bookings, err := s.Bookings.GetByServiceIDs(serviceIDs)
	if err != nil {
		return nil, storeErr(err)
	}

	var totalRevenue float64
	for _, b := range bookings {
		totalRevenue += b.Price
	}

	report := &models.ProviderStats{
		TotalServices: len(providerServices),
		TotalBookings: len(bookings),
		TotalRevenue:  fmt.Sprintf("%.2f", totalRevenue),
		AverageRating: averageRating(providerServices),
	}
	report.BookingsChartData, report.RevenueChartData = monthlySeries(bookings)
	report.ServiceBookingsChartData = serviceSeries(providerServices, bookings)
	return report, nil
}

// averageRating flattens every review across the provider's services. The
// result is rounded to two decimals and is 0 when no reviews exist anywhere.
func averageRating(svcs []models.Service) float64 {
	var totalRating, reviewCount int
	for _, svc := range svcs {
		for _, r := range svc.Reviews {
			totalRating += r.Rating
			reviewCount++
		}
	}
	if reviewCount == 0 {
		return 0
	}
	return round2(float64(totalRating) / float64(reviewCount))
}

// monthlySeries buckets bookings and revenue by "YYYY-MM", sorted ascending.
// Lexicographic order on the month key is chronological.
func monthlySeries(bookings []models.Booking) ([]models.MonthlyBookings, []models.MonthlyRevenue) {
	counts := make(map[string]int)
	revenue := make(map[string]float64)
	for _, b := range bookings {
		month, ok := monthKey(b)
		if !ok {
			continue
		}
		counts[month]++
		revenue[month] += b.Price
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	bookingSeries := make([]models.MonthlyBookings, 0, len(months))
	revenueSeries := make([]models.MonthlyRevenue, 0, len(months))
	for _, m := range months {
		bookingSeries = append(bookingSeries, models.MonthlyBookings{Month: m, Bookings: counts[m]})
		revenueSeries = append(revenueSeries, models.MonthlyRevenue{Month: m, Revenue: round2(revenue[m])})
	}
	return bookingSeries, revenueSeries
}

// serviceSeries counts bookings per service name, descending by count, capped
// at the top ten. Bookings whose serviceId matches no fetched service are
// ignored. Names are pre-sorted so ties break deterministically under the
// stable sort.
func serviceSeries(svcs []models.Service, bookings []models.Booking) []models.ServiceBookings {
	nameByID := make(map[string]string, len(svcs))
	for _, svc := range svcs {
		nameByID[svc.ID] = svc.ServiceName
	}

	counts := make(map[string]int)
	for _, b := range bookings {
		name, ok := nameByID[b.ServiceID]
		if !ok {
			continue
		}
		counts[name]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	series := make([]models.ServiceBookings, 0, len(names))
	for _, name := range names {
		series = append(series, models.ServiceBookings{ServiceName: name, Bookings: counts[name]})
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Bookings > series[j].Bookings
	})
	if len(series) > 10 {
		series = series[:10]
	}
	return series
}

// monthKey derives the "YYYY-MM" bucket from createdAt when set, falling back
// to the requested booking date. Bookings with no parsable date are skipped.
func monthKey(b models.Booking) (string, bool) {
	if !b.CreatedAt.IsZero() {
		return b.CreatedAt.Format("2006-01"), true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, b.BookingDate); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func storeErr(err error) error {
	if database.IsUnavailable(err) {
		return services.StoreUnavailableError{Err: err}
	}
	return err
}
