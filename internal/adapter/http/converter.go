package http

import (
	"github.com/travel-sample/travel-sample-api/internal/domain"
)

// ToDomain converts the request body to a domain.Airport.
func (r *AirportRequest) ToDomain() domain.Airport {
	return domain.Airport{
		AirportName: r.AirportName,
		City:        r.City,
		Country:     r.Country,
		FAA:         r.FAA,
		ICAO:        r.ICAO,
		TZ:          r.TZ,
		Geo:         toDomainGeo(r.Geo),
	}
}

func toDomainGeo(g *GeoDTO) *domain.Geo {
	if g == nil {
		return nil
	}
	return &domain.Geo{Lat: g.Lat, Lon: g.Lon, Alt: g.Alt}
}

// ToDomain converts the request body to a domain.Airline.
func (r *AirlineRequest) ToDomain() domain.Airline {
	return domain.Airline{
		Name:     r.Name,
		IATA:     r.IATA,
		ICAO:     r.ICAO,
		Callsign: r.Callsign,
		Country:  r.Country,
	}
}

// ToDomain converts the request body to a domain.Route.
func (r *RouteRequest) ToDomain() domain.Route {
	return domain.Route{
		Airline:            r.Airline,
		AirlineID:          r.AirlineID,
		SourceAirport:      r.SourceAirport,
		DestinationAirport: r.DestinationAirport,
		Stops:              r.Stops,
		Equipment:          r.Equipment,
		Schedule:           toDomainSchedule(r.Schedule),
		Distance:           r.Distance,
	}
}

// toDomainSchedule keeps an absent schedule absent and an empty one empty.
func toDomainSchedule(dtos *[]ScheduleDTO) *[]domain.Schedule {
	if dtos == nil {
		return nil
	}
	schedule := make([]domain.Schedule, len(*dtos))
	for i, s := range *dtos {
		schedule[i] = domain.Schedule{Day: s.Day, Flight: s.Flight, UTC: s.UTC}
	}
	return &schedule
}

// ToDomain converts the request body to a domain.HotelFilter.
func (r *HotelFilterRequest) ToDomain() domain.HotelFilter {
	return domain.HotelFilter{
		Name:        r.Name,
		Title:       r.Title,
		Description: r.Description,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
	}
}
