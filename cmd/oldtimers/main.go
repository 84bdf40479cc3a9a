// Command oldtimers counts the long-tenured people of a department in the
// sample data, once with plain loops and once with composed predicates.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/samber/lo"

	"github.com/adobaai/functional/internal/company"
)

func main() {
	var (
		dept     = flag.String("dept", company.DefaultDepartment, "department name")
		minYears = flag.Int("min-years", company.DefaultMinYears, "minimum years at the company")
		jsonLog  = flag.Bool("json", false, "log in JSON format")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	opts := &slog.HandlerOptions{Level: lo.Ternary(*verbose, slog.LevelDebug, slog.LevelInfo)}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if *jsonLog {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	l := slog.New(h)

	if err := run(l, *dept, *minYears); err != nil {
		l.Error("oldtimers failed", "err", err)
		os.Exit(1)
	}
}

func run(l *slog.Logger, dept string, minYears int) error {
	depts, people := company.SampleDepartments(), company.SamplePeople()

	n := company.CountOldTimersImperative(depts, people, dept, minYears)
	l.Info("old timers (imperative)", "department", dept, "count", n)

	r := company.NewReport(
		company.WithLogger(l.With("pkg", "company")),
		company.WithDepartment(dept),
		company.WithMinYears(minYears),
	)
	found, err := r.OldTimers(depts, people)
	if err != nil {
		return err
	}
	l.Info("old timers (functional)",
		"department", dept,
		"count", len(found),
		"names", lo.Map(found, func(p company.Person, _ int) string { return p.Name }))

	if p, ok := company.Longest(found); ok {
		l.Info("longest tenure", "name", p.Name, "years", p.YearsAtCompany)
	}
	return nil
}
