package company

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/adobaai/functional/cmpz"
	"github.com/adobaai/functional/predicate"
	"github.com/adobaai/functional/seqz"
)

const (
	DefaultDepartment = "Engineering"
	DefaultMinYears   = 15
)

type Option func(r *Report)

func WithLogger(l *slog.Logger) Option {
	return func(r *Report) {
		r.l = l
	}
}

func WithDepartment(name string) Option {
	return func(r *Report) {
		r.department = name
	}
}

func WithMinYears(n int) Option {
	return func(r *Report) {
		r.minYears = n
	}
}

// Report finds the long-tenured people of a department.
type Report struct {
	l          *slog.Logger
	department string
	minYears   int
}

func NewReport(opts ...Option) *Report {
	r := &Report{
		l:          slog.Default().With("pkg", "company"),
		department: DefaultDepartment,
		minYears:   DefaultMinYears,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// InDepartment matches people working in the department with the given ID.
func InDepartment(id int) predicate.Predicate[Person] {
	return predicate.Field(func(p Person) int { return p.DepartmentID }, predicate.EQ(id))
}

// Tenured matches people who have been at the company for at least years.
func Tenured(years int) predicate.Predicate[Person] {
	return func(p Person) bool { return p.YearsAtCompany >= years }
}

// OldTimers returns the matching people, longest-tenured first.
// People with the same tenure keep their input order.
func (r *Report) OldTimers(depts []Department, people []Person) ([]Person, error) {
	id, err := DepartmentID(depts, r.department)
	if err != nil {
		return nil, err
	}

	matched, err := seqz.Where(predicate.And(Tenured(r.minYears), InDepartment(id)), slices.Values(people))
	if err != nil {
		return nil, err
	}
	sorted, err := seqz.SortFunc(matched, cmpz.Reverse[Person](byTenure))
	if err != nil {
		return nil, err
	}

	res := seqz.Collect(sorted)
	r.l.Debug("found old timers",
		"department", r.department,
		"department_id", id,
		"min_years", r.minYears,
		"count", len(res))
	return res, nil
}

// Longest returns the person with the longest tenure, if any.
// Among equals the last one wins.
func Longest(people []Person) (Person, bool) {
	o, _ := seqz.MaxFunc(slices.Values(people), byTenure)
	return o.Get()
}

func byTenure(a, b Person) int {
	return cmp.Compare(a.YearsAtCompany, b.YearsAtCompany)
}
