// Package company holds the sample departments and people used by the
// oldtimers demo, and the two ways of counting long-tenured staff.
package company

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrNotFound = errors.New("company: not found")

type Department struct {
	ID        int    `json:"id"`
	Headcount int    `json:"headcount"`
	Name      string `json:"name"`
}

type Person struct {
	ID             int    `json:"id"`
	YearsAtCompany int    `json:"years_at_company"`
	Name           string `json:"name"`
	DepartmentID   int    `json:"department_id"`
}

// SampleDepartments returns a fresh copy of the sample departments.
func SampleDepartments() []Department {
	return []Department{
		{ID: 0, Headcount: 40, Name: "Engineering"},
		{ID: 1, Headcount: 35, Name: "Sales"},
		{ID: 2, Headcount: 10, Name: "Marketing"},
	}
}

// SamplePeople returns a fresh copy of the sample people.
func SamplePeople() []Person {
	return []Person{
		{ID: 0, YearsAtCompany: 29, Name: "Joe Engineer", DepartmentID: 0},
		{ID: 1, YearsAtCompany: 29, Name: "Bob Engineer", DepartmentID: 0},
		{ID: 2, YearsAtCompany: 52, Name: "Mohammed", DepartmentID: 1},
		{ID: 3, YearsAtCompany: 10, Name: "McLovin", DepartmentID: 1},
		{ID: 4, YearsAtCompany: 2, Name: "Intern Jane", DepartmentID: 2},
	}
}

// DepartmentID returns the ID of the first department called name.
func DepartmentID(depts []Department, name string) (int, error) {
	d, ok := lo.Find(depts, func(d Department) bool { return d.Name == name })
	if !ok {
		return 0, fmt.Errorf("%w: department %q", ErrNotFound, name)
	}
	return d.ID, nil
}

// CountOldTimersImperative counts the people of the department called dept
// who have been at the company for at least minYears, with plain loops.
//
// If several departments share the name the last one wins, and an unknown
// name falls back to department 0.
func CountOldTimersImperative(depts []Department, people []Person, dept string, minYears int) int {
	departmentID := 0
	for _, d := range depts {
		if d.Name == dept {
			departmentID = d.ID
		}
	}
	n := 0
	for _, p := range people {
		if p.DepartmentID == departmentID && p.YearsAtCompany >= minYears {
			n++
		}
	}
	return n
}
