package hr

import (
	"strconv"
	"time"

	"github.com/medflow/medflow-datagen/internal/randgen"
)

// SnapshotHeader is the fixed output schema. Every emitted row has
// exactly these columns in this order; the writer enforces the width.
var SnapshotHeader = []string{
	"emp_id",
	"first_name",
	"last_name",
	"gender",
	"date_of_birth",
	"email",
	"phone",
	"mobile",
	"address_street",
	"address_city",
	"address_state",
	"address_postal_code",
	"address_country",
	"nationality",
	"marital_status",
	"blood_group",
	"emergency_contact_name",
	"emergency_contact_phone",
	"department",
	"designation",
	"employment_type",
	"employee_status",
	"hire_date",
	"probation_end_date",
	"confirmation_date",
	"total_experience_years",
	"manager_emp_id",
	"manager_name",
	"manager_designation",
	"salary",
	"bonus",
	"stock_options",
	"currency",
	"pay_frequency",
	"bank_name",
	"bank_account_number",
	"ifsc_code",
	"pf_number",
	"uan_number",
	"tax_id",
	"promotion_count",
	"last_promotion_date",
	"appraisal_score",
	"performance_rating",
	"review_submission_date",
	"review_approval_date",
	"reviewer_emp_id",
	"reviewer_name",
	"is_leader",
	"leave_balance_annual",
	"leave_balance_sick",
	"leave_balance_casual",
	"leaves_taken_annual",
	"leaves_taken_sick",
	"leaves_taken_casual",
	"maternity_leaves_taken",
	"paternity_leaves_taken",
	"wfh_days_per_week",
	"trainings_completed",
	"training_hours",
	"certifications_count",
	"awards_count",
	"last_working_date",
	"termination_reason",
	"rehire_eligible",
	"notice_date",
	"exit_interview_done",
	"shift_type",
	"work_location",
	"snapshot_date",
}

// Snapshot is one point-in-time view of an employee: the stable fields
// copied verbatim plus freshly sampled transient fields.
type Snapshot struct {
	Employee *Employee

	Designation    string
	EmployeeStatus string
	HireDate       time.Time

	ProbationEndDate     time.Time
	ConfirmationDate     time.Time
	TotalExperienceYears int

	Manager *Employee

	Salary       int
	Bonus        int
	StockOptions int

	PromotionCount    int
	LastPromotionDate time.Time

	AppraisalScore       float64
	PerformanceRating    string
	ReviewSubmissionDate time.Time
	ReviewApprovalDate   time.Time

	LeaveBalanceAnnual   int
	LeaveBalanceSick     int
	LeaveBalanceCasual   int
	LeavesTakenAnnual    int
	LeavesTakenSick      int
	LeavesTakenCasual    int
	MaternityLeavesTaken int
	PaternityLeavesTaken int
	WFHDaysPerWeek       int

	TrainingsCompleted  int
	TrainingHours       int
	CertificationsCount int
	AwardsCount         int

	LastWorkingDate   time.Time
	TerminationReason string
	RehireEligible    string
	NoticeDate        time.Time
	ExitInterviewDone string

	SnapshotDate time.Time
}

// Emitter produces snapshots, resolving manager links through the pool
type Emitter struct {
	src  *randgen.Source
	pool *Pool
}

// NewEmitter returns an emitter drawing transient fields from src and
// managers from pool
func NewEmitter(src *randgen.Source, pool *Pool) *Emitter {
	return &Emitter{src: src, pool: pool}
}

// Emit builds one snapshot for the employee. Manager resolution can
// grow the pool when no senior member exists yet.
func (e *Emitter) Emit(emp *Employee) Snapshot {
	s := e.src
	now := s.Now()

	hire := emp.JoiningDate
	if adult := emp.DateOfBirth.AddDate(18, 0, 0); hire.Before(adult) {
		hire = adult
	}

	// 5% promotion: re-level one or two ranks up from the stable designation.
	designation := emp.Designation
	if rank := emp.Rank(); rank > 0 && s.Chance(0.05) {
		promoted := rank - s.Number(1, 2)
		if promoted < 0 {
			promoted = 0
		}
		designation = Designations[promoted]
	}

	manager := e.pool.ResolveManager(designation)

	salary := s.Number(250000, 3500000)

	stockOptions := 0
	if s.Chance(0.10) {
		stockOptions = s.Number(100, 5000)
	}

	promotionCount := s.Number(0, 5)
	var lastPromotion time.Time
	if promotionCount > 0 {
		lastPromotion = s.DateBetween(hire, now)
	}

	score := s.Float64Range(1.0, 5.0)
	reviewSubmission := s.DateBetween(hire, now)
	reviewApproval := s.DaysAfter(reviewSubmission, 0, 30)

	probationEnd := hire.AddDate(0, s.Number(3, 6), 0)

	snap := Snapshot{
		Employee: emp,

		Designation:    designation,
		EmployeeStatus: "Active",
		HireDate:       hire,

		ProbationEndDate:     probationEnd,
		ConfirmationDate:     probationEnd,
		TotalExperienceYears: s.Number(0, 35),

		Manager: manager,

		Salary:       salary,
		Bonus:        s.Number(0, salary/4),
		StockOptions: stockOptions,

		PromotionCount:    promotionCount,
		LastPromotionDate: lastPromotion,

		AppraisalScore:       score,
		PerformanceRating:    ratingFor(score),
		ReviewSubmissionDate: reviewSubmission,
		ReviewApprovalDate:   reviewApproval,

		LeaveBalanceAnnual: s.Number(0, 20),
		LeaveBalanceSick:   s.Number(0, 12),
		LeaveBalanceCasual: s.Number(0, 10),
		LeavesTakenAnnual:  s.Number(0, 15),
		LeavesTakenSick:    s.Number(0, 10),
		LeavesTakenCasual:  s.Number(0, 8),
		WFHDaysPerWeek:     s.Number(0, 5),

		TrainingsCompleted:  s.Number(0, 12),
		TrainingHours:       s.Number(0, 120),
		CertificationsCount: s.Number(0, 6),
		AwardsCount:         s.Number(0, 5),

		RehireEligible:    "Yes",
		ExitInterviewDone: "No",

		SnapshotDate: now,
	}

	// Maternity and paternity counters are gated by gender.
	switch emp.Gender {
	case "Female":
		snap.MaternityLeavesTaken = s.Number(0, 2)
	case "Male":
		snap.PaternityLeavesTaken = s.Number(0, 2)
	}

	// 8% termination block. All termination fields stay empty otherwise.
	if s.Chance(0.08) {
		lwd := s.DateBetween(hire, now)
		snap.LastWorkingDate = lwd
		snap.TerminationReason = s.RandomString(terminationReasons)
		snap.EmployeeStatus = "Terminated"
		if !s.Chance(0.5) {
			snap.RehireEligible = "No"
		}
		if s.Chance(0.7) {
			notice := lwd.AddDate(0, 0, -s.Number(15, 90))
			if notice.Before(hire) {
				notice = hire
			}
			snap.NoticeDate = notice
		}
		if s.Chance(0.6) {
			snap.ExitInterviewDone = "Yes"
		}
	}

	return snap
}

// ratingFor maps an appraisal score onto the four-tier rating scale
func ratingFor(score float64) string {
	switch {
	case score >= 4.5:
		return "Outstanding"
	case score >= 3.5:
		return "Exceeds Expectations"
	case score >= 2.5:
		return "Meets Expectations"
	default:
		return "Needs Improvement"
	}
}

// Row serializes the snapshot in SnapshotHeader order. Dates render as
// ISO-8601 or the empty string when absent.
func (s Snapshot) Row() []string {
	emp := s.Employee

	managerID, managerName, managerDesignation := "", "", ""
	reviewerID, reviewerName := "", ""
	if s.Manager != nil {
		managerID = strconv.Itoa(s.Manager.EmpID)
		managerName = s.Manager.FullName()
		managerDesignation = s.Manager.Designation
		// Reviewer is always the direct manager.
		reviewerID = managerID
		reviewerName = managerName
	}

	return []string{
		strconv.Itoa(emp.EmpID),
		emp.FirstName,
		emp.LastName,
		emp.Gender,
		fmtDate(emp.DateOfBirth),
		emp.Email,
		emp.Phone,
		emp.Mobile,
		emp.Street,
		emp.City,
		emp.State,
		emp.PostalCode,
		emp.Country,
		emp.Nationality,
		emp.MaritalStatus,
		emp.BloodGroup,
		emp.EmergencyContactName,
		emp.EmergencyContactPhone,
		emp.Department,
		s.Designation,
		emp.EmploymentType,
		s.EmployeeStatus,
		fmtDate(s.HireDate),
		fmtDate(s.ProbationEndDate),
		fmtDate(s.ConfirmationDate),
		strconv.Itoa(s.TotalExperienceYears),
		managerID,
		managerName,
		managerDesignation,
		strconv.Itoa(s.Salary),
		strconv.Itoa(s.Bonus),
		strconv.Itoa(s.StockOptions),
		"INR",
		"Monthly",
		emp.BankName,
		emp.BankAccountNumber,
		emp.IFSCCode,
		emp.PFNumber,
		emp.UANNumber,
		emp.TaxID,
		strconv.Itoa(s.PromotionCount),
		fmtDate(s.LastPromotionDate),
		strconv.FormatFloat(s.AppraisalScore, 'f', 2, 64),
		s.PerformanceRating,
		fmtDate(s.ReviewSubmissionDate),
		fmtDate(s.ReviewApprovalDate),
		reviewerID,
		reviewerName,
		yesNo(emp.IsLeader),
		strconv.Itoa(s.LeaveBalanceAnnual),
		strconv.Itoa(s.LeaveBalanceSick),
		strconv.Itoa(s.LeaveBalanceCasual),
		strconv.Itoa(s.LeavesTakenAnnual),
		strconv.Itoa(s.LeavesTakenSick),
		strconv.Itoa(s.LeavesTakenCasual),
		strconv.Itoa(s.MaternityLeavesTaken),
		strconv.Itoa(s.PaternityLeavesTaken),
		strconv.Itoa(s.WFHDaysPerWeek),
		strconv.Itoa(s.TrainingsCompleted),
		strconv.Itoa(s.TrainingHours),
		strconv.Itoa(s.CertificationsCount),
		strconv.Itoa(s.AwardsCount),
		fmtDate(s.LastWorkingDate),
		s.TerminationReason,
		s.RehireEligible,
		fmtDate(s.NoticeDate),
		s.ExitInterviewDone,
		emp.ShiftType,
		emp.WorkLocation,
		fmtDate(s.SnapshotDate),
	}
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
