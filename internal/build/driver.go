// Package build implements the build driver: it derives the target list
// from the master document and produces the output files.
package build

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evtpages/evtpages/internal/catalog"
	"github.com/evtpages/evtpages/internal/dbx"
	"github.com/evtpages/evtpages/internal/manual"
	"github.com/evtpages/evtpages/internal/master"
	"github.com/evtpages/evtpages/internal/render"
)

// ManualFile is the rendered manual's target name.
const ManualFile = "manual.html"

// closeStem names the combined closing-tags page between prefix and ext.
const closeStem = "close"

// Options configures a Driver.
type Options struct {
	// MasterPath is the master document location.
	MasterPath string

	// Dir receives the generated files.
	Dir string

	// Prefix and Ext name the per-tag page files: <prefix><tag><ext>.
	Prefix string
	Ext    string

	// Script is the shared script file's name.
	Script string

	// Catalog overrides the built-in tag categories when non-nil.
	Catalog *catalog.Catalog

	// Trace receives diagnostic trace lines.
	Trace dbx.Tracer
}

// Driver derives targets from one master document snapshot and builds them.
// Outputs never overlap, so independent drivers are safe to run in parallel;
// this one runs its targets sequentially.
type Driver struct {
	opts Options
	doc  *master.Document
	cat  *catalog.Catalog
	r    *render.Renderer
}

// New loads the master document and computes the derived lists.
func New(opts Options) (*Driver, error) {
	doc, err := master.Load(opts.MasterPath)
	if err != nil {
		return nil, err
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	if opts.Trace == nil {
		opts.Trace = dbx.Nop
	}
	return &Driver{
		opts: opts,
		doc:  doc,
		cat:  cat,
		r:    render.New(doc.Events, cat, opts.Trace),
	}, nil
}

// Doc returns the extraction result the driver was built from.
func (d *Driver) Doc() *master.Document {
	return d.doc
}

// PageTags returns the tags that get their own output file, in extraction
// order.
func (d *Driver) PageTags() []string {
	var out []string
	for _, tag := range d.doc.Tags {
		if d.cat.Separate.Has(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// PageFile returns the output file name for one tag's page.
func (d *Driver) PageFile(tag string) string {
	return d.opts.Prefix + tag + d.opts.Ext
}

// CloseFile returns the combined closing-tags page's file name.
func (d *Driver) CloseFile() string {
	return d.PageFile(closeStem)
}

// ClosingTags returns the extracted tags that require explicit closing
// markup. Frameset tags are left out: they replace the whole body and
// cannot share a page.
func (d *Driver) ClosingTags() []string {
	var out []string
	for _, tag := range d.doc.Tags {
		if d.cat.Empty.Has(tag) || strings.HasPrefix(tag, render.FramesetPrefix) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// Targets returns every buildable file target.
func (d *Driver) Targets() []string {
	targets := []string{d.opts.Script, d.CloseFile(), ManualFile}
	for _, tag := range d.PageTags() {
		targets = append(targets, d.PageFile(tag))
	}
	return targets
}

// BuildAll builds every target.
func (d *Driver) BuildAll() error {
	for _, target := range d.Targets() {
		if err := d.Build(target); err != nil {
			return err
		}
	}
	return nil
}

// Build produces one target, skipping it when its output file is already
// newer than the master document. "manual" is accepted as shorthand for the
// manual's file name.
func (d *Driver) Build(target string) error {
	if target == "manual" {
		target = ManualFile
	}
	out := filepath.Join(d.opts.Dir, target)
	if !d.stale(out) {
		d.opts.Trace.Tracef("%s is up to date", target)
		return nil
	}

	content, err := d.content(target)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.opts.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	d.opts.Trace.Tracef("built %s (%d bytes)", target, len(content))
	return nil
}

// content renders the bytes for one target. Unknown tag names are accepted
// as long as the target is shaped like a page file.
func (d *Driver) content(target string) ([]byte, error) {
	switch target {
	case d.opts.Script:
		return []byte(d.doc.Script), nil
	case ManualFile:
		return manual.HTML()
	case d.CloseFile():
		return d.renderPage(d.ClosingTags())
	}

	if strings.HasPrefix(target, d.opts.Prefix) && strings.HasSuffix(target, d.opts.Ext) {
		tag := strings.TrimSuffix(strings.TrimPrefix(target, d.opts.Prefix), d.opts.Ext)
		if tag != "" {
			return d.renderPage(d.pageArgs(tag))
		}
	}
	return nil, fmt.Errorf("unknown target: %s", target)
}

// pageArgs maps a page's tag to the generator arguments producing it. The
// frameset page also demonstrates the frame tag, which has no page of its
// own.
func (d *Driver) pageArgs(tag string) []string {
	if strings.HasPrefix(tag, render.FramesetPrefix) {
		return []string{tag, "frame"}
	}
	return []string{tag}
}

func (d *Driver) renderPage(tags []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.r.Page(&buf, d.doc.Markup, tags); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// stale reports whether the output file needs rebuilding, by modification
// time against the master document.
func (d *Driver) stale(out string) bool {
	outInfo, err := os.Stat(out)
	if err != nil {
		return true
	}
	srcInfo, err := os.Stat(d.opts.MasterPath)
	if err != nil {
		return true
	}
	return !outInfo.ModTime().After(srcInfo.ModTime())
}
