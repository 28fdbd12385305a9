package dashboard

import (
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/crmkit/custimport/internal/store"
)

// customers reads the store fresh for this request. Missing or corrupt
// stores are a server error here, unlike the importer's degraded load:
// the dashboard has nothing useful to say without data.
func (s *Server) customers() ([]store.Customer, error) {
	doc, err := store.Read(s.storePath)
	if err != nil {
		return nil, err
	}
	return doc.Customers, nil
}

// OverviewResponse holds the aggregate metrics of the whole store.
// The two average fields are fixed to two decimals, matching the shape
// the dashboard frontend has always consumed.
type OverviewResponse struct {
	TotalCustomers           int     `json:"totalCustomers"`
	AverageAge               int     `json:"averageAge"`
	MostFrequentCategory     string  `json:"mostFrequentCategory"`
	TotalPurchaseValue       float64 `json:"totalPurchaseValue"`
	AverageOrderValue        string  `json:"averageOrderValue"`
	AveragePurchaseFrequency string  `json:"averagePurchaseFrequency"`
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers()
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	total := len(customers)

	ageSum, ageCount := 0, 0
	categoryCount := make(map[string]int)
	totalSpending := 0.0
	frequencySum := 0.0
	for _, c := range customers {
		if c.Age.Valid {
			ageSum += c.Age.Value
			ageCount++
		}
		if c.PreferredCategory != "" {
			categoryCount[c.PreferredCategory]++
		}
		totalSpending += c.TotalSpending
		frequencySum += c.Frequency
	}

	resp := OverviewResponse{
		TotalCustomers:           total,
		MostFrequentCategory:     topCategory(categoryCount),
		TotalPurchaseValue:       totalSpending,
		AverageOrderValue:        "0.00",
		AveragePurchaseFrequency: "0.00",
	}
	if ageCount > 0 {
		resp.AverageAge = int(math.Round(float64(ageSum) / float64(ageCount)))
	}
	if total > 0 {
		resp.AverageOrderValue = fmt.Sprintf("%.2f", totalSpending/float64(total))
		resp.AveragePurchaseFrequency = fmt.Sprintf("%.2f", frequencySum/float64(total))
	}

	s.respondJSON(w, r, resp)
}

// topCategory returns the most frequent category, breaking ties by
// name so the answer is stable across runs.
func topCategory(counts map[string]int) string {
	best, bestCount := "", 0
	for cat, n := range counts {
		if n > bestCount || (n == bestCount && best != "" && cat < best) {
			best, bestCount = cat, n
		}
	}
	return best
}

// DemographicsResponse holds the gender and membership distributions.
type DemographicsResponse struct {
	GenderCount     map[string]int `json:"genderCount"`
	MembershipCount map[string]int `json:"membershipCount"`
}

func (s *Server) handleDemographics(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers()
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := DemographicsResponse{
		GenderCount:     map[string]int{"M": 0, "F": 0, "Unknown": 0},
		MembershipCount: map[string]int{"bronze": 0, "silver": 0, "gold": 0},
	}
	for _, c := range customers {
		key := c.Gender
		if key == "" {
			key = "Unknown"
		}
		resp.GenderCount[key]++

		// records without a valid membership tier are left out
		if _, ok := resp.MembershipCount[c.Membership]; ok {
			resp.MembershipCount[c.Membership]++
		}
	}

	s.respondJSON(w, r, resp)
}

// TopSpender is one entry of the top-10 spender list.
type TopSpender struct {
	Name          string  `json:"name"`
	TotalSpending float64 `json:"totalSpending"`
}

// PurchaseBehaviorResponse holds category counts and the top spenders.
type PurchaseBehaviorResponse struct {
	CategoryCount map[string]int `json:"categoryCount"`
	TopSpenders   []TopSpender   `json:"topSpenders"`
}

func (s *Server) handlePurchaseBehavior(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers()
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	categoryCount := make(map[string]int)
	for _, c := range customers {
		if c.PreferredCategory != "" {
			categoryCount[c.PreferredCategory]++
		}
	}

	ranked := append([]store.Customer(nil), customers...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpending > ranked[j].TotalSpending
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	spenders := make([]TopSpender, 0, len(ranked))
	for _, c := range ranked {
		spenders = append(spenders, TopSpender{
			Name:          c.FirstName + " " + c.LastName,
			TotalSpending: c.TotalSpending,
		})
	}

	s.respondJSON(w, r, PurchaseBehaviorResponse{
		CategoryCount: categoryCount,
		TopSpenders:   spenders,
	})
}

// TrendPoint is the customer count for one join year.
type TrendPoint struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers()
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	yearly := make(map[int]int)
	for _, c := range customers {
		year, ok := joinYear(c.JoinedAt)
		if !ok {
			continue
		}
		yearly[year]++
	}

	points := make([]TrendPoint, 0, len(yearly))
	for year, count := range yearly {
		points = append(points, TrendPoint{Year: year, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })

	s.respondJSON(w, r, points)
}

// joinYear extracts the year component of a stored YYYY-MM-DD join
// date, restricted to the valid window. Empty-marker dates do not
// contribute to the trend.
func joinYear(joinedAt string) (int, bool) {
	if len(joinedAt) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(joinedAt[:4])
	if err != nil || year < 2000 || year > 2025 {
		return 0, false
	}
	return year, true
}
