// Package healthcare generates a star-schema healthcare dataset: 15
// dimension tables plus a central fact table whose rows reference the
// dimensions by surrogate key.
package healthcare

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/medflow/medflow-datagen/internal/randgen"
)

// Kinds lists the dimension kinds in fact-table foreign-key order
var Kinds = []string{
	"patient",
	"doctor",
	"nurse",
	"department",
	"hospital",
	"diagnosis",
	"procedure",
	"medication",
	"lab_test",
	"insurance_provider",
	"room",
	"admission_type",
	"discharge_status",
	"specialty",
	"pharmacy",
}

// DefaultSizes holds the configured row count per dimension
var DefaultSizes = map[string]int{
	"patient":            450000,
	"doctor":             500,
	"nurse":              800,
	"department":         50,
	"hospital":           25,
	"diagnosis":          2000,
	"procedure":          1500,
	"medication":         3000,
	"lab_test":           600,
	"insurance_provider": 150,
	"room":               1200,
	"admission_type":     6,
	"discharge_status":   10,
	"specialty":          40,
	"pharmacy":           120,
}

// Table is one fully generated dimension
type Table struct {
	Kind   string
	Header []string
	Rows   [][]string
}

// FileName returns the CSV file name for the dimension
func (t *Table) FileName() string {
	return "dim_" + t.Kind + ".csv"
}

type dimSpec struct {
	header []string
	row    func(s *randgen.Source, id int) []string
}

var departmentNames = []string{
	"Cardiology", "Oncology", "Neurology", "Pediatrics", "Orthopedics",
	"Radiology", "Emergency", "Internal Medicine", "Surgery", "Psychiatry",
	"Dermatology", "Urology", "Nephrology", "Gastroenterology", "Pulmonology",
}

var specialtyNames = []string{
	"Cardiology", "Oncology", "Neurology", "Pediatrics", "Orthopedics",
	"Radiology", "Emergency Medicine", "Internal Medicine", "General Surgery",
	"Psychiatry", "Dermatology", "Urology", "Nephrology", "Gastroenterology",
	"Pulmonology", "Endocrinology", "Rheumatology", "Hematology",
	"Anesthesiology", "Ophthalmology",
}

var admissionTypes = []string{"Emergency", "Elective", "Urgent", "Newborn", "Trauma", "Transfer"}

var dischargeStatuses = []string{
	"Routine", "Transferred", "Left Against Medical Advice", "Home Health Care",
	"Skilled Nursing Facility", "Rehabilitation", "Hospice", "Expired",
	"Still Patient", "Other",
}

var conditions = []string{
	"Hypertension", "Type 2 Diabetes", "Asthma", "Pneumonia", "Appendicitis",
	"Atrial Fibrillation", "Chronic Kidney Disease", "Migraine", "Fracture",
	"Anemia", "Sepsis", "Stroke", "COPD", "Gastritis", "Coronary Artery Disease",
}

var severities = []string{"Low", "Moderate", "High", "Critical"}

var procedureCategories = []string{"Diagnostic", "Surgical", "Therapeutic", "Preventive"}

var medicationNames = []string{
	"Atorvastatin", "Metformin", "Lisinopril", "Amlodipine", "Omeprazole",
	"Levothyroxine", "Albuterol", "Metoprolol", "Losartan", "Gabapentin",
	"Sertraline", "Amoxicillin", "Pantoprazole", "Prednisone", "Insulin Glargine",
}

var medicationForms = []string{"Tablet", "Capsule", "Injection", "Syrup", "Inhaler"}

var labTestNames = []string{
	"Complete Blood Count", "Basic Metabolic Panel", "Lipid Panel",
	"Hemoglobin A1c", "Thyroid Panel", "Liver Function Panel", "Urinalysis",
	"Troponin", "D-Dimer", "Blood Culture", "C-Reactive Protein", "Coagulation Panel",
}

var specimenTypes = []string{"Blood", "Urine", "Serum", "Plasma", "Swab"}

var planTypes = []string{"HMO", "PPO", "EPO", "POS", "Medicare", "Medicaid"}

var roomTypes = []string{"General Ward", "Semi-Private", "Private", "ICU", "Isolation"}

var nurseShifts = []string{"Day", "Evening", "Night"}

var dimSpecs = map[string]dimSpec{
	"patient": {
		header: []string{"patient_id", "mrn", "first_name", "last_name", "gender", "date_of_birth", "city"},
		row: func(s *randgen.Source, id int) []string {
			dob := s.DateBetween(s.Now().AddDate(-95, 0, 0), s.Now())
			return []string{
				strconv.Itoa(id),
				uuid.NewString(),
				s.FirstName(),
				s.LastName(),
				s.RandomString([]string{"M", "F"}),
				dob.Format("2006-01-02"),
				s.City(),
			}
		},
	},
	"doctor": {
		header: []string{"doctor_id", "first_name", "last_name", "specialty", "license_number", "years_experience"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				s.FirstName(),
				s.LastName(),
				s.RandomString(specialtyNames),
				"MD" + s.DigitN(7),
				strconv.Itoa(s.Number(1, 40)),
			}
		},
	},
	"nurse": {
		header: []string{"nurse_id", "first_name", "last_name", "shift", "ward"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				s.FirstName(),
				s.LastName(),
				s.RandomString(nurseShifts),
				s.RandomString(departmentNames),
			}
		},
	},
	"department": {
		header: []string{"department_id", "name", "floor"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				departmentNames[(id-1)%len(departmentNames)],
				strconv.Itoa(s.Number(1, 12)),
			}
		},
	},
	"hospital": {
		header: []string{"hospital_id", "name", "city", "bed_count"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				s.Company() + " Medical Center",
				s.City(),
				strconv.Itoa(s.Number(50, 1200)),
			}
		},
	},
	"diagnosis": {
		header: []string{"diagnosis_id", "icd_code", "description", "severity"},
		row: func(s *randgen.Source, id int) []string {
			icd := fmt.Sprintf("%c%02d.%d", byte('A')+byte(s.Number(0, 25)), s.Number(0, 99), s.Number(0, 9))
			return []string{
				strconv.Itoa(id),
				icd,
				s.RandomString(conditions),
				s.RandomString(severities),
			}
		},
	},
	"procedure": {
		header: []string{"procedure_id", "cpt_code", "name", "category"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				s.DigitN(5),
				s.RandomString(conditions) + " " + s.RandomString(procedureCategories),
				s.RandomString(procedureCategories),
			}
		},
	},
	"medication": {
		header: []string{"medication_id", "name", "form", "strength_mg"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				s.RandomString(medicationNames),
				s.RandomString(medicationForms),
				strconv.Itoa(s.Number(5, 1000)),
			}
		},
	},
	"lab_test": {
		header: []string{"lab_test_id", "name", "specimen_type", "unit"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				s.RandomString(labTestNames),
				s.RandomString(specimenTypes),
				s.RandomString([]string{"mg/dL", "mmol/L", "g/dL", "U/L", "%"}),
			}
		},
	},
	"insurance_provider": {
		header: []string{"insurance_provider_id", "name", "plan_type", "policy_prefix"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				s.Company() + " Health",
				s.RandomString(planTypes),
				uuid.NewString()[:8],
			}
		},
	},
	"room": {
		header: []string{"room_id", "room_number", "room_type", "floor"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				fmt.Sprintf("%d-%03d", s.Number(1, 12), s.Number(1, 60)),
				s.RandomString(roomTypes),
				strconv.Itoa(s.Number(1, 12)),
			}
		},
	},
	"admission_type": {
		header: []string{"admission_type_id", "name"},
		row: func(s *randgen.Source, id int) []string {
			return []string{strconv.Itoa(id), admissionTypes[(id-1)%len(admissionTypes)]}
		},
	},
	"discharge_status": {
		header: []string{"discharge_status_id", "name"},
		row: func(s *randgen.Source, id int) []string {
			return []string{strconv.Itoa(id), dischargeStatuses[(id-1)%len(dischargeStatuses)]}
		},
	},
	"specialty": {
		header: []string{"specialty_id", "name"},
		row: func(s *randgen.Source, id int) []string {
			return []string{strconv.Itoa(id), specialtyNames[(id-1)%len(specialtyNames)]}
		},
	},
	"pharmacy": {
		header: []string{"pharmacy_id", "name", "city"},
		row: func(s *randgen.Source, id int) []string {
			return []string{
				strconv.Itoa(id),
				s.Company() + " Pharmacy",
				s.City(),
			}
		},
	},
}

// GenerateDimension produces one dimension with surrogate keys 1..size.
// It is a pure function of kind and size; no dimension depends on
// another.
func GenerateDimension(src *randgen.Source, kind string, size int) (*Table, error) {
	spec, ok := dimSpecs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown dimension kind: %s", kind)
	}
	if size <= 0 {
		return nil, fmt.Errorf("dimension %s: size must be positive, got %d", kind, size)
	}

	rows := make([][]string, 0, size)
	for id := 1; id <= size; id++ {
		rows = append(rows, spec.row(src, id))
	}
	return &Table{Kind: kind, Header: spec.header, Rows: rows}, nil
}

// Sizes merges configured overrides over the defaults
func Sizes(overrides map[string]int) map[string]int {
	sizes := make(map[string]int, len(DefaultSizes))
	for kind, n := range DefaultSizes {
		sizes[kind] = n
	}
	for kind, n := range overrides {
		if _, ok := sizes[kind]; ok && n > 0 {
			sizes[kind] = n
		}
	}
	return sizes
}
