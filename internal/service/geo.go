package service

import (
	"github.com/orderly-eats/gateway/internal/upstream"
)

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// defaultCoordinate centers the map on Haridwar when no city matches.
var defaultCoordinate = Coordinate{Latitude: 29.9457, Longitude: 78.1642}

// cityCoordinates is the fixed city lookup table for the location view.
var cityCoordinates = map[string]Coordinate{
	"Haridwar":      {29.9457, 78.1642},
	"Dehradun":      {30.3165, 78.0322},
	"Mumbai":        {19.0760, 72.8777},
	"Delhi":         {28.7041, 77.1025},
	"New Delhi":     {28.6139, 77.2090},
	"Central Delhi": {28.6562, 77.2410},
	"South Delhi":   {28.5355, 77.2490},
	"North Delhi":   {28.7041, 77.1025},
	"East Delhi":    {28.6508, 77.3152},
	"West Delhi":    {28.6692, 77.1100},
	"Bangalore":     {12.9716, 77.5946},
	"Chennai":       {13.0827, 80.2707},
	"Kolkata":       {22.5726, 88.3639},
	"Hyderabad":     {17.3850, 78.4867},
	"Pune":          {18.5204, 73.8567},
	"Jaipur":        {26.9124, 75.7873},
	"Lucknow":       {26.8467, 80.9462},
	"Agra":          {27.1767, 78.0081},
	"Mysore":        {12.2958, 76.6394},
	"Coimbatore":    {11.0168, 76.9558},
	"Ahmedabad":     {23.0225, 72.5714},
	"Kochi":         {9.9312, 76.2673},
	"Patna":         {25.5941, 85.1376},
}

// rankOffsets spreads the first five recommendations around the map center;
// later ranks share one offset.
var rankOffsets = []Coordinate{
	{0.0045, 0.0085},
	{0.0136, -0.0026},
	{0.0022, 0.0085},
	{-0.0021, 0.0011},
	{0.0095, 0.0071},
}

var overflowOffset = Coordinate{0.005, 0.005}

// LocationView is the derived map state: a center plus recommendations
// placed around it by rank.
type LocationView struct {
	City        string                `json:"city"`
	Center      Coordinate            `json:"center"`
	Restaurants []upstream.Restaurant `json:"restaurants"`
}

// CityCoordinate resolves a city to its base coordinate, reporting whether
// the city is known.
func CityCoordinate(city string) (Coordinate, bool) {
	coord, ok := cityCoordinates[city]
	return coord, ok
}

// Locate derives the map view. The center is the selected city if known,
// else the profile city if known, else Haridwar. Each recommendation's shown
// coordinate is center plus its rank offset; distances still come from the
// recommendation payload.
func Locate(selectedCity, profileCity string, recommendations []upstream.Restaurant) LocationView {
	city := selectedCity
	center, ok := CityCoordinate(city)
	if !ok {
		city = profileCity
		center, ok = CityCoordinate(city)
	}
	if !ok {
		city = "Haridwar"
		center = defaultCoordinate
	}

	placed := make([]upstream.Restaurant, len(recommendations))
	for i, r := range recommendations {
		offset := overflowOffset
		if i < len(rankOffsets) {
			offset = rankOffsets[i]
		}
		r.Latitude = center.Latitude + offset.Latitude
		r.Longitude = center.Longitude + offset.Longitude
		placed[i] = r
	}

	return LocationView{City: city, Center: center, Restaurants: placed}
}
