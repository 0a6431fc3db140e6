package motionmodel

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ScriptType marks script elements that embed a motion scene in a html page
const ScriptType = "application/motion+json"

// extractScripts returns the bodies of all embedded motion scenes in document order
func extractScripts(htmlBytes []byte) (scripts [][]byte, err error) {
	root, errParse := html.Parse(bytes.NewReader(htmlBytes))
	if errParse != nil {
		return nil, errParse
	}
	scripts = [][]byte{}
	goquery.NewDocumentFromNode(root).Find(`script[type="` + ScriptType + `"]`).Each(func(i int, sel *goquery.Selection) {
		scripts = append(scripts, []byte(strings.TrimSpace(sel.Text())))
	})
	return scripts, nil
}
