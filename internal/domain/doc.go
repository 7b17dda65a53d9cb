// Package domain models daily surface weather observations from a single
// INMET (Instituto Nacional de Meteorologia) station export.
//
// # Data Source
//
// Observations arrive as a semicolon-free, comma-separated CSV export with
// one row per day and a single header row. The station series used in
// development covers Porto Alegre from 1961 through 2016, but nothing in
// the package assumes those exact bounds except the validation window
// below.
//
// # Column Conventions
//
// Rows carry at least six columns, in fixed positions:
//
//	0  date           "dd/mm/yyyy", two-digit day and month, four-digit year
//	1  precipitation  millimetres accumulated over the day
//	2  max temp       degrees Celsius
//	3  min temp       degrees Celsius
//	4  humidity       relative humidity, percent
//	5  wind speed     metres per second
//
// Columns beyond the sixth occasionally appear in station exports and are
// ignored. Numeric fields may carry surrounding whitespace; decimal values
// use "." as the separator.
//
// # Malformed Rows
//
// Real station exports contain gaps: truncated rows, blank numeric cells,
// and the occasional unparseable date. A row that cannot be parsed yields a
// [RowError] carrying a [SkipReason] so callers can drop the row, log it,
// and keep going. A bad row never aborts the file.
//
// # Validation Window
//
// Date ranges accepted for queries are month/year pairs bounded by the
// station series: months 1..12, years [MinYear, MaxYear]. Range checks
// compare whole months; see [DateRange].
//
// # Aggregation Keys
//
// Monthly aggregations group by [MonthKey], a (year, month) pair ordered
// chronologically. Display labels use English month names from the Go
// time package ("January/2010").
package domain
