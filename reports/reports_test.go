package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/foomo/motionmodel/model"
	"github.com/foomo/motionmodel/vo"
	"github.com/stretchr/testify/assert"
)

func getResults() []vo.Result {
	name := "basic"
	return []vo.Result{
		{
			Location:  "z.json",
			Format:    "json",
			Duration:  time.Millisecond,
			Documents: []*model.Document{{Models: []model.Model{&model.Header{Name: &name}}}},
		},
		{
			Location:  "a.json",
			Format:    "json",
			Documents: []*model.Document{{Models: []model.Model{&model.Header{}}}, {}},
			Validations: vo.Validations{
				{Level: vo.ValidationLevelInfo, Location: "a.json", Message: "skipped section Transitions"},
			},
		},
		{
			Location:  "broken.json",
			Format:    "json",
			Error:     `type-mismatch at Header.name: key "name" expected string found number`,
			ErrorKind: model.ErrorKindTypeMismatch,
			ErrorPath: "Header.name",
		},
		{
			Location: "http://example.com/missing.json",
			Code:     404,
			Error:    "unexpected response code: 404",
		},
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{
		Locations: 4,
		Failed:    2,
		Documents: 3,
		Headers:   2,
		Unnamed:   1,
	}, Summarize(getResults()))
}

func TestPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	Print(buf, getResults())
	out := buf.String()
	assert.Contains(t, out, "locations 4 failed 2")
	assert.Contains(t, out, `header "basic"`)
	assert.Contains(t, out, "header <no name>")
	assert.Contains(t, out, "skipped section Transitions")
	assert.Contains(t, out, "errors")
}

func TestErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	Errors(buf, getResults())
	out := buf.String()
	assert.Contains(t, out, "broken.json : type-mismatch")
	assert.Contains(t, out, "at Header.name")
	assert.Contains(t, out, "http://example.com/missing.json : load 404")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("broken.json")), bytes.Index(buf.Bytes(), []byte("http://")))
	assert.NotContains(t, out, "z.json")
}
