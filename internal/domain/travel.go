// Package domain contains the travel-sample entities, sentinel errors and the
// ports through which the service reaches its document store.
package domain

// Collection names inside the configured scope.
const (
	CollectionAirport = "airport"
	CollectionAirline = "airline"
	CollectionRoute   = "route"
	CollectionHotel   = "hotel"
)

// Airport is a document in the airport collection.
// Optional fields are pointers so a document read back equals what was stored.
type Airport struct {
	// AirportName is the airport's name (e.g., "Charles de Gaulle")
	AirportName string `json:"airportname"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the country the airport is located in
	Country string `json:"country"`

	// FAA is the FAA code (e.g., "CDG")
	FAA string `json:"faa"`

	// ICAO is the ICAO code (e.g., "LFPG")
	ICAO *string `json:"icao,omitempty"`

	// TZ is the IANA timezone (e.g., "Europe/Paris")
	TZ *string `json:"tz,omitempty"`

	// Geo holds the airport coordinates
	Geo *Geo `json:"geo,omitempty"`
}

// Geo holds geographic coordinates.
type Geo struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
	Alt *float64 `json:"alt,omitempty"`
}

// Airline is a document in the airline collection.
type Airline struct {
	// Name is the airline's name
	Name string `json:"name"`

	// IATA is the two-letter IATA code
	IATA *string `json:"iata,omitempty"`

	// ICAO is the three-letter ICAO code
	ICAO *string `json:"icao,omitempty"`

	// Callsign is the radio callsign
	Callsign string `json:"callsign"`

	// Country is the country of registration
	Country string `json:"country"`
}

// Route is a document in the route collection.
type Route struct {
	// Airline is the operating airline's code
	Airline string `json:"airline"`

	// AirlineID is the key of the airline document (e.g., "airline_10")
	AirlineID string `json:"airlineid"`

	// SourceAirport is the departure FAA code
	SourceAirport string `json:"sourceairport"`

	// DestinationAirport is the arrival FAA code
	DestinationAirport string `json:"destinationairport"`

	// Stops is the number of stops (0 = non-stop)
	Stops *int `json:"stops,omitempty"`

	// Equipment lists aircraft types
	Equipment *string `json:"equipment,omitempty"`

	// Schedule lists the weekly flights on this route. A pointer keeps an
	// empty list distinct from an absent one.
	Schedule *[]Schedule `json:"schedule,omitempty"`

	// Distance is the route distance in km
	Distance *float64 `json:"distance,omitempty"`
}

// Schedule is a single scheduled flight on a route.
type Schedule struct {
	Day    *int    `json:"day,omitempty"`
	Flight *string `json:"flight,omitempty"`
	UTC    *string `json:"utc,omitempty"`
}

// Hotel is a hotel as returned by the search index.
type Hotel struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
}

// HotelName is a single autocomplete suggestion.
type HotelName struct {
	Name string `json:"name"`
}

// Destination is an airport reachable by a direct flight.
type Destination struct {
	DestinationAirport string `json:"destinationairport"`
}
