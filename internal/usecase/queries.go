package usecase

// SQL++ statements. They run against the configured scope, so collection
// names resolve without bucket qualification. Every paged statement orders
// on a stable key so LIMIT/OFFSET windows do not overlap.
const (
	listAirportsQuery = `
		SELECT airport.airportname,
			airport.city,
			airport.country,
			airport.faa,
			airport.geo,
			airport.icao,
			airport.tz
		FROM airport AS airport
		ORDER BY airport.airportname
		LIMIT $limit
		OFFSET $offset`

	listAirportsByCountryQuery = `
		SELECT airport.airportname,
			airport.city,
			airport.country,
			airport.faa,
			airport.geo,
			airport.icao,
			airport.tz
		FROM airport AS airport
		WHERE airport.country = $country
		ORDER BY airport.airportname
		LIMIT $limit
		OFFSET $offset`

	directConnectionsQuery = `
		SELECT DISTINCT route.destinationairport
		FROM airport AS airport
		JOIN route AS route ON route.sourceairport = airport.faa
		WHERE airport.faa = $airport AND route.stops = 0
		ORDER BY route.destinationairport
		LIMIT $limit
		OFFSET $offset`

	listAirlinesQuery = `
		SELECT airline.callsign,
			airline.country,
			airline.iata,
			airline.icao,
			airline.name
		FROM airline AS airline
		ORDER BY airline.name
		LIMIT $limit
		OFFSET $offset`

	listAirlinesByCountryQuery = `
		SELECT airline.callsign,
			airline.country,
			airline.iata,
			airline.icao,
			airline.name
		FROM airline AS airline
		WHERE airline.country = $country
		ORDER BY airline.name
		LIMIT $limit
		OFFSET $offset`

	airlinesToAirportQuery = `
		SELECT air.callsign,
			air.country,
			air.iata,
			air.icao,
			air.name
		FROM (
			SELECT DISTINCT META(airline).id AS airlineId
			FROM route
			JOIN airline ON route.airlineid = META(airline).id
			WHERE route.destinationairport = $airport
		) AS subquery
		JOIN airline AS air ON META(air).id = subquery.airlineId
		ORDER BY air.name
		LIMIT $limit
		OFFSET $offset`
)
