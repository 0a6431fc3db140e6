package vo

import (
	"time"

	"github.com/foomo/motionmodel/model"
)

// Result of reading one location
type Result struct {
	Location string
	Format   string
	// Code is the http status code for http sources
	Code     int
	Duration time.Duration
	// Documents found at the location, html pages can embed several
	Documents []*model.Document
	Error     string
	// ErrorKind is set when the error is a model.ParseError
	ErrorKind   model.ErrorKind
	ErrorPath   string
	Validations Validations
}

func (r Result) OK() bool {
	return r.Error == ""
}

// Headers of all documents, documents without a header are left out
func (r Result) Headers() []*model.Header {
	headers := []*model.Header{}
	for _, doc := range r.Documents {
		if h := doc.Header(); h != nil {
			headers = append(headers, h)
		}
	}
	return headers
}
