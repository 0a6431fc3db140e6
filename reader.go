// Package motionmodel reads motion scene documents from files and http
// sources and builds their models.
package motionmodel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/foomo/motionmodel/config"
	"github.com/foomo/motionmodel/element"
	"github.com/foomo/motionmodel/model"
	"github.com/foomo/motionmodel/vo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/temoto/robotstxt"
	"golang.org/x/sync/singleflight"
)

type Reader struct {
	conf        *config.Config
	client      *http.Client
	metrics     *metrics
	robotsLock  sync.Mutex
	robots      map[string]*robotstxt.RobotsData
	robotsGroup singleflight.Group
}

// NewReader with metrics registered on reg, reg may be nil
func NewReader(conf *config.Config, reg prometheus.Registerer) (*Reader, error) {
	if conf == nil {
		conf = config.Default()
	}
	errValidate := conf.Validate()
	if errValidate != nil {
		return nil, errValidate
	}
	m, errMetrics := newMetrics(reg)
	if errMetrics != nil {
		return nil, errMetrics
	}
	return &Reader{
		conf: conf,
		client: &http.Client{
			Timeout: conf.TimeoutDuration(),
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
		metrics: m,
		robots:  map[string]*robotstxt.RobotsData{},
	}, nil
}

// Read a location, a file path, file:// or http(s):// url. Failures are
// reported in the result.
func (r *Reader) Read(ctx context.Context, location string, w io.Writer) (result vo.Result) {
	p := &printer{w: w}
	start := time.Now()
	result = vo.Result{
		Location:    location,
		Documents:   []*model.Document{},
		Validations: vo.Validations{},
	}
	defer func() {
		result.Duration = time.Since(start)
		r.metrics.track(result)
		p.println("done", location, result.Duration, result.Error)
	}()
	p.println("reading", location)
	if errCtx := ctx.Err(); errCtx != nil {
		fail(&result, location, errCtx)
		return
	}
	src, errLoad := r.load(ctx, location)
	if src != nil {
		result.Code = src.code
	}
	if errLoad != nil {
		fail(&result, location, errLoad)
		return
	}
	result.Format = r.conf.Format
	if result.Format == config.FormatAuto {
		result.Format = detectFormat(src)
	}
	p.indent(1)
	defer p.indent(-1)
	p.println("format", result.Format, "bytes", len(src.data))

	if result.Format != config.FormatHTML {
		doc, errDoc := r.parse(result.Format, src.data)
		if errDoc != nil {
			fail(&result, location, errDoc)
			return
		}
		addDocument(&result, location, doc, p)
		return
	}

	scripts, errExtract := extractScripts(src.data)
	if errExtract != nil {
		fail(&result, location, errExtract)
		return
	}
	if len(scripts) == 0 {
		result.Validations.Warning(location, "no "+ScriptType+" scripts found")
	}
	for i, script := range scripts {
		scriptLocation := fmt.Sprint(location, "#", i)
		p.println("script", scriptLocation)
		doc, errDoc := r.parse(config.FormatJSON, script)
		if errDoc != nil {
			fail(&result, scriptLocation, errDoc)
			return
		}
		addDocument(&result, scriptLocation, doc, p)
	}
	return
}

func (r *Reader) parse(format string, data []byte) (*model.Document, error) {
	var root element.Element
	var errParse error
	switch {
	case format == config.FormatYAML:
		root, errParse = element.ParseYAML(data)
	case format == config.FormatJSON5 || r.conf.Lenient:
		root, errParse = element.ParseLenient(data)
	default:
		root, errParse = element.ParseJSON(data)
	}
	if errParse != nil {
		return nil, errParse
	}
	return model.ParseDocument(root)
}

func addDocument(result *vo.Result, location string, doc *model.Document, p *printer) {
	result.Documents = append(result.Documents, doc)
	_, _, info := result.Validations.Location(location)
	for _, section := range doc.Skipped {
		info("skipped section " + section)
	}
	if h := doc.Header(); h != nil {
		p.println("header", h.GetName())
	} else {
		info("no header")
	}
}

func fail(result *vo.Result, location string, err error) {
	result.Error = err.Error()
	var parseErr *model.ParseError
	if errors.As(err, &parseErr) {
		result.ErrorKind = parseErr.Kind
		result.ErrorPath = parseErr.Path
	}
	result.Validations.Error(location, err.Error())
}

// ReadAll reads locations with the configured concurrency, results are in
// the order of locations. Traces of single reads are not interleaved.
func (r *Reader) ReadAll(ctx context.Context, locations []string, w io.Writer) []vo.Result {
	results := make([]vo.Result, len(locations))
	chanSlots := make(chan struct{}, r.conf.Concurrency)
	wg := sync.WaitGroup{}
	writeLock := sync.Mutex{}
	for i, location := range locations {
		chanSlots <- struct{}{}
		wg.Add(1)
		go func(i int, location string) {
			defer wg.Done()
			defer func() { <-chanSlots }()
			var trace *bytes.Buffer
			var traceWriter io.Writer
			if w != nil {
				trace = &bytes.Buffer{}
				traceWriter = trace
			}
			results[i] = r.Read(ctx, location, traceWriter)
			if trace != nil {
				writeLock.Lock()
				_, _ = trace.WriteTo(w)
				writeLock.Unlock()
			}
		}(i, location)
	}
	wg.Wait()
	return results
}
