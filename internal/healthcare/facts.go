package healthcare

import (
	"math"
	"strconv"

	"github.com/medflow/medflow-datagen/internal/randgen"
)

// FactHeader is the fact-table schema: the 15 foreign keys in Kinds
// order followed by the date and monetary measures.
var FactHeader = func() []string {
	cols := make([]string, 0, 22)
	for _, kind := range Kinds {
		cols = append(cols, kind+"_id")
	}
	return append(cols,
		"admission_date",
		"discharge_date",
		"length_of_stay",
		"billed_amount",
		"paid_amount",
		"claim_amount",
		"payment_method",
	)
}()

var paymentMethods = []string{"Insurance", "Credit Card", "Cash", "Debit Card", "Online Transfer"}

// FactGenerator streams fact rows. A fixed subset of patient keys is
// drawn up front as repeat candidates to simulate repeat visits.
type FactGenerator struct {
	src       *randgen.Source
	sizes     map[string]int
	repeatPct float64
	repeats   []int
}

// NewFactGenerator precomputes the repeat-candidate patient subset:
// ceil(rows * repeatPct) keys drawn uniformly from the patient range.
func NewFactGenerator(src *randgen.Source, rows int, repeatPct float64, sizes map[string]int) *FactGenerator {
	g := &FactGenerator{
		src:       src,
		sizes:     sizes,
		repeatPct: repeatPct,
	}

	n := int(math.Ceil(float64(rows) * repeatPct))
	for i := 0; i < n; i++ {
		g.repeats = append(g.repeats, src.Number(1, sizes["patient"]))
	}
	return g
}

// RepeatCandidates returns the precomputed repeat patient keys
func (g *FactGenerator) RepeatCandidates() []int {
	return g.repeats
}

// Row produces one fact row. The patient key favors the repeat subset
// with probability repeatPct; the other 14 foreign keys are uniform
// over their dimension ranges, independent of the patient choice.
func (g *FactGenerator) Row() []string {
	s := g.src

	row := make([]string, 0, len(FactHeader))
	for _, kind := range Kinds {
		var key int
		if kind == "patient" {
			key = g.pickPatient()
		} else {
			key = s.Number(1, g.sizes[kind])
		}
		row = append(row, strconv.Itoa(key))
	}

	now := s.Now()
	admission := s.DateBetween(now.AddDate(-5, 0, 0), now)
	stayDays := s.Number(0, 14)
	discharge := admission.AddDate(0, 0, stayDays)

	billed := s.Float64Range(500, 500000)
	paid := s.Float64Range(0, billed)
	claim := s.Float64Range(0, billed)

	return append(row,
		admission.Format("2006-01-02"),
		discharge.Format("2006-01-02"),
		strconv.Itoa(stayDays),
		formatAmount(billed),
		formatAmount(paid),
		formatAmount(claim),
		s.RandomString(paymentMethods),
	)
}

func (g *FactGenerator) pickPatient() int {
	if len(g.repeats) > 0 && g.src.Chance(g.repeatPct) {
		return g.repeats[g.src.Number(0, len(g.repeats)-1)]
	}
	return g.src.Number(1, g.sizes["patient"])
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
