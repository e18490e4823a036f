// Package export paginates rendered card faces into the output document.
package export

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"cardgen/common"
	"cardgen/config"
)

// nameContext is what the output_name_template is expanded against.
type nameContext struct {
	SourceFile string // deck file name without extension
	Mode       string // single or grid
	Date       string
}

// OutputName expands the configured name template for a deck. The ".pdf"
// extension is always appended.
func OutputName(tmpl, sourceFile string, mode common.ExportMode) (string, error) {
	funcs := sprig.FuncMap()
	funcs["slugify"] = slug.Make

	t, err := template.New(string(config.OutputNameTemplateFieldName)).Funcs(funcs).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("bad output name template: %w", err)
	}

	var buf strings.Builder
	err = t.Execute(&buf, nameContext{
		SourceFile: sourceFile,
		Mode:       mode.String(),
		Date:       time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to expand output name template: %w", err)
	}
	name := strings.TrimSpace(buf.String())
	if len(name) == 0 {
		name = sourceFile
	}
	return name + ".pdf", nil
}
