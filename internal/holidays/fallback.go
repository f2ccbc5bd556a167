package holidays

import "fmt"

// Fallback is the static Egyptian holiday list used whenever the API
// cannot be reached or returns nothing. Movable feasts are estimates.
func Fallback(year int) []Holiday {
	day := func(md, name string) Holiday {
		return Holiday{Date: fmt.Sprintf("%d-%s", year, md), Name: name}
	}

	return []Holiday{
		day("01-07", "Coptic Christmas"),
		day("01-25", "Revolution Day"),
		day("03-31", "Eid al-Fitr (Estimated)"),
		day("04-21", "Sham Ennessim"),
		day("04-25", "Sinai Liberation Day"),
		day("05-01", "Labour Day"),
		day("06-06", "Eid al-Adha (Estimated)"),
		day("06-30", "June 30 Revolution Day"),
		day("07-08", "Islamic New Year"),
		day("07-23", "Revolution Day"),
		day("09-15", "Prophet's Birthday"),
		day("10-06", "Armed Forces Day"),
	}
}
