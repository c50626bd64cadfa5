package dateparse

// ISODateFormat is the wire format for resolved dates.
const ISODateFormat = "2006-01-02"

// Result holds a resolved calendar date plus the substring that produced it.
type Result struct {
	Date     string // ISO date, e.g. "2026-09-04"
	Original string // the matched phrase as it appeared in the input
}
