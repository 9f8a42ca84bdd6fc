package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/addressbook/internal/config"
	"github.com/mesh-intelligence/addressbook/internal/session"
)

// printer renders session results in the configured output format.
// JSON output is one object per line; YAML output is one document per
// result.
type printer struct {
	w      io.Writer
	format string

	ok, miss, failed *color.Color

	jsonEnc *json.Encoder
	yamlEnc *yaml.Encoder
}

func newPrinter(w io.Writer, cfg config.Config) *printer {
	p := &printer{
		w:      w,
		format: cfg.Output,
		ok:     color.New(color.FgGreen),
		miss:   color.New(color.FgYellow),
		failed: color.New(color.FgRed),
	}
	if !cfg.Color {
		p.ok.DisableColor()
		p.miss.DisableColor()
		p.failed.DisableColor()
	}
	switch cfg.Output {
	case config.OutputJSON:
		p.jsonEnc = json.NewEncoder(w)
	case config.OutputYAML:
		p.yamlEnc = yaml.NewEncoder(w)
		p.yamlEnc.SetIndent(2)
	}
	return p
}

// print writes one result.
func (p *printer) print(r session.Result) error {
	switch p.format {
	case config.OutputJSON:
		return p.jsonEnc.Encode(r)
	case config.OutputYAML:
		return p.yamlEnc.Encode(r)
	}

	msg := r.Message()
	switch {
	case r.Failed():
		msg = p.failed.Sprint(msg)
	case r.Miss():
		msg = p.miss.Sprint(msg)
	case r.Outcome.Changed():
		msg = p.ok.Sprint(msg)
	}
	_, err := fmt.Fprintln(p.w, msg)
	return err
}

// close flushes buffered output.
func (p *printer) close() error {
	if p.yamlEnc != nil {
		return p.yamlEnc.Close()
	}
	return nil
}
