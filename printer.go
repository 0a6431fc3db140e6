package motionmodel

import (
	"fmt"
	"io"
	"strings"
)

// printer writes an indented trace, a nil writer silences it
type printer struct {
	w     io.Writer
	indnt int
}

func (p *printer) indent(inc int) {
	p.indnt += inc
}

func (p *printer) println(values ...interface{}) {
	if p.w == nil {
		return
	}
	values = append([]interface{}{strings.Repeat("	", p.indnt)}, values...)
	fmt.Fprintln(p.w, values...)
}
