// Package journey turns a provider's journeys document into typed records.
//
// The provider answers with a JSON object holding a "journeys" array. Each
// element carries a duration in seconds and two local timestamps in the fixed
// layout yyyyMMdd'T'HHmmss:
//
//	{
//	  "journeys": [
//	    {
//	      "duration": 120,
//	      "departure_date_time": "20230101T080000",
//	      "arrival_date_time": "20230101T080200"
//	    }
//	  ]
//	}
//
// # Parsing
//
// Parse is total: it either returns one Journey per array element, in
// document order, or an error wrapping ErrInvalidDocument. A partially
// decoded list is never returned. Keys other than the three required fields
// are ignored and no range checks are applied to durations.
//
// # Timestamps
//
// A Journey keeps the raw timestamp strings. Departure and Arrival re-parse
// them in the local time zone on every call; nothing is cached.
package journey
