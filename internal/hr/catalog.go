// Package hr generates the HR employee-snapshot dataset: a pool of
// stable employees, a manager hierarchy over ranked designations, and a
// 70-column point-in-time snapshot per output row.
package hr

// Designations is the company ladder, most senior first. The slice
// index is the rank: a lower index outranks a higher one.
var Designations = []string{
	"Chief Executive Officer",
	"Chief Operating Officer",
	"Chief Technology Officer",
	"Senior Vice President",
	"Vice President",
	"Associate Vice President",
	"Senior Director",
	"Director",
	"Senior Manager",
	"Manager",
	"Assistant Manager",
	"Team Lead",
	"Senior Associate",
	"Associate",
	"Trainee",
}

const (
	// leaderMaxRank is the highest rank index still counted as leadership.
	leaderMaxRank = 3

	// defaultBandMinRank is where the default hiring band starts; new
	// employees without an explicit designation land in ranks
	// defaultBandMinRank..len(Designations)-1.
	defaultBandMinRank = 6

	// seniorBandMaxRank caps the occasional senior hire made to keep
	// the manager pool replenished.
	seniorBandMaxRank = 5
)

var designationRanks = func() map[string]int {
	m := make(map[string]int, len(Designations))
	for i, d := range Designations {
		m[d] = i
	}
	return m
}()

// RankOf returns the rank index of a designation, or -1 when unknown
func RankOf(designation string) int {
	if r, ok := designationRanks[designation]; ok {
		return r
	}
	return -1
}

var departments = []string{
	"Engineering",
	"Human Resources",
	"Finance",
	"Sales",
	"Marketing",
	"Operations",
	"Legal",
	"Customer Support",
	"IT Support",
	"Research",
}

var genders = []string{"Male", "Female"}

var maritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var nationalities = []string{"Indian", "American", "British", "German", "Singaporean", "Australian"}

var employmentTypes = []string{"Full Time", "Part Time", "Contract", "Intern"}

var shiftTypes = []string{"Day", "Night", "Rotational"}

var workLocations = []string{"Bengaluru", "Mumbai", "Pune", "Hyderabad", "Chennai", "Gurugram", "Remote"}

var bankNames = []string{"HDFC Bank", "ICICI Bank", "State Bank of India", "Axis Bank", "Kotak Mahindra Bank"}

var terminationReasons = []string{
	"Resigned",
	"Performance",
	"Layoff",
	"Retired",
	"Contract Ended",
	"Absconded",
}
