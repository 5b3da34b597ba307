package period

import "time"

// AssociationYear is the fiscal/membership year running 1 July to 30 June.
// The value is the calendar year in which it starts.
type AssociationYear int

// AssociationYearOf returns the association year containing t (in t's location).
func AssociationYearOf(t time.Time) AssociationYear {
	if t.Month() >= time.July {
		return AssociationYear(t.Year())
	}
	return AssociationYear(t.Year() - 1)
}

// Window returns [1 July Y, 1 July Y+1) in loc.
func (y AssociationYear) Window(loc *time.Location) Window {
	start := time.Date(int(y), time.July, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(1, 0, 0)}
}
