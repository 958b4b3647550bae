package hr

import (
	"fmt"
	"strings"
	"time"

	"github.com/medflow/medflow-datagen/internal/randgen"
)

// Employee is a stable master record. All fields are sampled once at
// creation and never change; snapshots layer transient fields on top.
type Employee struct {
	EmpID       int
	FirstName   string
	LastName    string
	Gender      string
	DateOfBirth time.Time

	Email      string
	Phone      string
	Mobile     string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string

	Nationality           string
	MaritalStatus         string
	BloodGroup            string
	EmergencyContactName  string
	EmergencyContactPhone string

	Department     string
	Designation    string
	EmploymentType string
	JoiningDate    time.Time

	BankName          string
	BankAccountNumber string
	IFSCCode          string
	PFNumber          string
	UANNumber         string
	TaxID             string

	ShiftType    string
	WorkLocation string

	IsLeader bool
}

// Rank returns the employee's rank index (lower is more senior)
func (e *Employee) Rank() int {
	return RankOf(e.Designation)
}

// FullName returns "First Last"
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// CreateSpec controls designation selection when creating an employee.
// Designation forces an exact level; otherwise MaxRank > 0 samples
// uniformly among ranks 0..MaxRank, and the zero value samples from the
// default mid/low hiring band.
type CreateSpec struct {
	Designation string
	MaxRank     int
}

// Pool is the in-memory collection of stable employees for one
// generation run. It is explicitly constructed, owned by a single run,
// and mutated only by that run's goroutine.
type Pool struct {
	src       *randgen.Source
	employees []*Employee
	nextID    int
}

// NewPool returns an empty pool drawing from src
func NewPool(src *randgen.Source) *Pool {
	return &Pool{src: src, nextID: 1001}
}

// Len returns the number of employees in the pool
func (p *Pool) Len() int {
	return len(p.employees)
}

// Create allocates the next sequential employee ID, samples all stable
// fields, and appends the new employee to the pool.
func (p *Pool) Create(spec CreateSpec) *Employee {
	s := p.src

	rank := p.pickRank(spec)
	gender := s.RandomString(genders)
	first, last := s.FirstName(), s.LastName()

	now := s.Now()
	dob := s.DateBetween(now.AddDate(-58, 0, 0), now.AddDate(-22, 0, 0))
	// Joining can never precede adulthood.
	joining := s.DateBetween(dob.AddDate(18, 0, 0), now)

	emp := &Employee{
		EmpID:       p.nextID,
		FirstName:   first,
		LastName:    last,
		Gender:      gender,
		DateOfBirth: dob,

		Email:      fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), p.nextID),
		Phone:      s.Phone(),
		Mobile:     s.Phone(),
		Street:     s.Street(),
		City:       s.City(),
		State:      s.State(),
		PostalCode: s.Zip(),
		Country:    "India",

		Nationality:           s.RandomString(nationalities),
		MaritalStatus:         s.RandomString(maritalStatuses),
		BloodGroup:            s.RandomString(bloodGroups),
		EmergencyContactName:  s.Name(),
		EmergencyContactPhone: s.Phone(),

		Department:     s.RandomString(departments),
		Designation:    Designations[rank],
		EmploymentType: s.RandomString(employmentTypes),
		JoiningDate:    joining,

		BankName:          s.RandomString(bankNames),
		BankAccountNumber: s.DigitN(12),
		IFSCCode:          strings.ToUpper(s.LetterN(4)) + "0" + s.DigitN(6),
		PFNumber:          "PF" + s.DigitN(10),
		UANNumber:         s.DigitN(12),
		TaxID:             strings.ToUpper(s.LetterN(5)) + s.DigitN(4) + strings.ToUpper(s.LetterN(1)),

		ShiftType:    s.RandomString(shiftTypes),
		WorkLocation: s.RandomString(workLocations),

		IsLeader: rank <= leaderMaxRank,
	}

	p.nextID++
	p.employees = append(p.employees, emp)
	return emp
}

func (p *Pool) pickRank(spec CreateSpec) int {
	if spec.Designation != "" {
		if r := RankOf(spec.Designation); r >= 0 {
			return r
		}
	}
	if spec.MaxRank > 0 {
		max := spec.MaxRank
		if max >= len(Designations) {
			max = len(Designations) - 1
		}
		return p.src.Number(0, max)
	}
	return p.src.Number(defaultBandMinRank, len(Designations)-1)
}

// PickExisting returns a uniformly sampled pool member, or false when
// the pool is empty.
func (p *Pool) PickExisting() (*Employee, bool) {
	if len(p.employees) == 0 {
		return nil, false
	}
	return p.employees[p.src.Number(0, len(p.employees)-1)], true
}

// ResolveManager selects a manager for the given designation: a uniform
// pick among pool members with a strictly lower rank index. The top
// rank has no manager and gets nil.
//
// When no eligible member exists this is NOT a pure lookup: it creates
// a fallback leader forced at least three ranks above the requester
// (clamped to the top), growing the pool as a side effect.
func (p *Pool) ResolveManager(designation string) *Employee {
	rank := RankOf(designation)
	if rank <= 0 {
		return nil
	}

	var candidates []*Employee
	for _, e := range p.employees {
		if e.Rank() < rank {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		forced := rank - 3
		if forced < 0 {
			forced = 0
		}
		return p.Create(CreateSpec{Designation: Designations[forced]})
	}
	return candidates[p.src.Number(0, len(candidates)-1)]
}
