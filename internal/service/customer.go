package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/orderly-eats/gateway/internal/profile"
	"github.com/orderly-eats/gateway/internal/upstream"
)

// ErrProfileIncomplete rejects a recommendation request when no customer can
// be derived from the stored profile.
var ErrProfileIncomplete = errors.New("please create a profile first by going to Profile page, or select an existing profile")

// Placeholder coordinates attached to derived customers; real positioning
// happens in the location view, not here.
const (
	placeholderLatitude  = 12.9716
	placeholderLongitude = 77.5946
)

// formStateCities constrains the customer form's location fields. Selecting
// a state resets the city to the first entry of its list.
var formStates = []string{"Delhi", "Maharashtra", "Karnataka", "Tamil Nadu", "Uttarakhand", "Uttar Pradesh"}

var formStateCities = map[string][]string{
	"Delhi":         {"New Delhi", "Central Delhi"},
	"Maharashtra":   {"Mumbai", "Pune"},
	"Karnataka":     {"Bangalore", "Mysore"},
	"Tamil Nadu":    {"Chennai", "Coimbatore"},
	"Uttarakhand":   {"Dehradun", "Haridwar"},
	"Uttar Pradesh": {"Lucknow", "Agra"},
}

// profileStates and profileStateCities back the profile editing form, which
// offers a wider selection than the recommendation form.
var profileStates = []string{
	"Uttarakhand", "Delhi", "Maharashtra", "Karnataka", "Tamil Nadu",
	"Gujarat", "Rajasthan", "West Bengal", "Uttar Pradesh", "Kerala",
	"Telangana", "Andhra Pradesh", "Punjab", "Haryana", "Madhya Pradesh",
}

var profileStateCities = map[string][]string{
	"Uttarakhand":    {"Dehradun", "Haridwar", "Rishikesh", "Nainital", "Mussoorie", "Roorkee"},
	"Delhi":          {"New Delhi", "Gurgaon", "Noida", "Faridabad", "Ghaziabad"},
	"Maharashtra":    {"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad", "Solapur"},
	"Karnataka":      {"Bangalore", "Mysore", "Hubli", "Mangalore", "Belgaum"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"},
	"Gujarat":        {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar"},
	"Rajasthan":      {"Jaipur", "Jodhpur", "Udaipur", "Kota", "Ajmer"},
	"West Bengal":    {"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri"},
	"Uttar Pradesh":  {"Lucknow", "Kanpur", "Agra", "Varanasi", "Meerut", "Allahabad"},
	"Kerala":         {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam"},
	"Telangana":      {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar"},
	"Andhra Pradesh": {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Kurnool"},
	"Punjab":         {"Chandigarh", "Ludhiana", "Amritsar", "Jalandhar", "Patiala"},
	"Haryana":        {"Faridabad", "Gurgaon", "Panipat", "Ambala", "Yamunanagar"},
	"Madhya Pradesh": {"Bhopal", "Indore", "Gwalior", "Jabalpur", "Ujjain"},
}

// RecommendationsClient is the slice of the upstream API the customer flow
// needs.
type RecommendationsClient interface {
	Recommendations(ctx context.Context, customer upstream.Customer) (*upstream.Recommendations, error)
}

// CustomerService derives the transient customer from the stored profile and
// runs the recommendation flow.
type CustomerService struct {
	store  *profile.Store
	client RecommendationsClient
}

// NewCustomerService creates a new CustomerService instance.
func NewCustomerService(store *profile.Store, client RecommendationsClient) *CustomerService {
	return &CustomerService{store: store, client: client}
}

// CustomerOption is a selectable customer derived from the profile.
type CustomerOption struct {
	CustomerID int               `json:"customer_id"`
	Label      string            `json:"label"`
	Customer   upstream.Customer `json:"customer"`
}

// Customers rereads the profile and derives the selectable customers: exactly
// one when the profile is complete, none otherwise.
func (s *CustomerService) Customers(ctx context.Context) []CustomerOption {
	p := s.store.Load(ctx)
	if !p.Complete() {
		return []CustomerOption{}
	}

	customer := upstream.Customer{
		Age:          p.Age,
		Gender:       GenderCode(p.Gender),
		Language:     p.Language,
		State:        p.State,
		City:         p.City,
		LoyaltyScore: 0.8,
		Latitude:     placeholderLatitude,
		Longitude:    placeholderLongitude,
	}

	return []CustomerOption{{
		CustomerID: 1,
		Label:      CustomerLabel(customer),
		Customer:   customer,
	}}
}

// GenderCode maps the profile's display gender to the model's single-letter
// code. Anything unrecognized maps to "M".
func GenderCode(gender string) string {
	switch gender {
	case "Male":
		return "M"
	case "Female":
		return "F"
	default:
		return "M"
	}
}

// CustomerLabel formats the dropdown label for a derived customer.
func CustomerLabel(c upstream.Customer) string {
	display := "Female"
	if c.Gender == "M" {
		display = "Male"
	}
	return fmt.Sprintf("%dy %s from %s, %s (%s)", c.Age, display, c.City, c.State, c.Language)
}

// RecommendResult carries the recommendations plus the location they were
// requested for, which the location view needs even when the list is empty.
type RecommendResult struct {
	Recommendations []upstream.Restaurant `json:"recommendations"`
	TotalFound      int                   `json:"total_found"`
	City            string                `json:"city"`
	State           string                `json:"state"`
}

// Recommend validates that a customer is derivable from the current profile,
// then submits the given payload upstream. An upstream failure yields an
// empty list for the submitted location, never an error.
func (s *CustomerService) Recommend(ctx context.Context, customer upstream.Customer) (*RecommendResult, error) {
	if len(s.Customers(ctx)) == 0 {
		return nil, ErrProfileIncomplete
	}

	result := &RecommendResult{
		Recommendations: []upstream.Restaurant{},
		City:            customer.City,
		State:           customer.State,
	}

	recs, err := s.client.Recommendations(ctx, customer)
	if err != nil {
		log.Printf("[customer] recommendations request failed, returning empty list: %v", err)
		return result, nil
	}

	if recs.Recommendations != nil {
		result.Recommendations = recs.Recommendations
	}
	result.TotalFound = recs.TotalFound
	return result, nil
}

// FormStates lists the states offered by the customer form, in display order.
func FormStates() []string {
	return formStates
}

// FormCities returns the customer form's cities for a state; unknown states
// have none.
func FormCities(state string) []string {
	return formStateCities[state]
}

// FirstFormCity returns the city a state change resets the form to.
func FirstFormCity(state string) string {
	if cities := formStateCities[state]; len(cities) > 0 {
		return cities[0]
	}
	return ""
}

// ProfileStates lists the states offered by the profile form, in display
// order.
func ProfileStates() []string {
	return profileStates
}

// ProfileCities returns the profile form's cities for a state.
func ProfileCities(state string) []string {
	return profileStateCities[state]
}
