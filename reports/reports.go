package reports

import (
	"fmt"
	"io"
	"sort"

	"github.com/foomo/motionmodel/vo"
)

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{}), printsep func()) {
	printsep = func() {
		fmt.Fprintln(w, "-----------------------------------------------------------------------------")
	}
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		printsep()
	}
	return
}

// Summary counts over a set of results
type Summary struct {
	Locations int
	Failed    int
	Documents int
	Headers   int
	Unnamed   int
}

func Summarize(results []vo.Result) Summary {
	s := Summary{Locations: len(results)}
	for _, res := range results {
		if !res.OK() {
			s.Failed++
		}
		s.Documents += len(res.Documents)
		for _, h := range res.Headers() {
			s.Headers++
			if h.Name == nil {
				s.Unnamed++
			}
		}
	}
	return s
}

// Print a report for all results
func Print(w io.Writer, results []vo.Result) {
	printh, println, printsep := printers(w)
	s := Summarize(results)
	printh("summary")
	println("locations", s.Locations, "failed", s.Failed)
	println("documents", s.Documents, "headers", s.Headers, "unnamed", s.Unnamed)

	printh("results")
	for _, res := range results {
		status := "ok"
		if !res.OK() {
			status = "error"
		}
		println(res.Location, res.Format, status, res.Duration)
		for _, h := range res.Headers() {
			name := "<no name>"
			if h.Name != nil {
				name = fmt.Sprintf("%q", *h.Name)
			}
			println("	header", name)
		}
		for _, v := range res.Validations {
			println("	", v.Level, v.Location, v.Message)
		}
	}
	printsep()
	if s.Failed > 0 {
		Errors(w, results)
	}
}

// Errors lists failed locations sorted by location
func Errors(w io.Writer, results []vo.Result) {
	printh, println, _ := printers(w)
	printh("errors")
	failed := []vo.Result{}
	for _, res := range results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	sort.Slice(failed, func(i, j int) bool {
		return failed[i].Location < failed[j].Location
	})
	for _, res := range failed {
		kind := string(res.ErrorKind)
		if kind == "" {
			kind = "load"
		}
		if res.Code > 0 {
			println(res.Location, ":", kind, res.Code)
		} else {
			println(res.Location, ":", kind)
		}
		if res.ErrorPath != "" {
			println("	at", res.ErrorPath)
		}
		println("	", res.Error)
	}
}
