package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/KimNorgaard/go-sjson"
)

// app carries the state shared by the command steps.
type app struct {
	cfg      *Config
	log      *slog.Logger
	stdout   io.Writer
	doc      *sjson.Document
	colorize bool
}

func (a *app) load(path string) error {
	if err := a.doc.Load(path, a.cfg.options()...); err != nil {
		return errors.Wrapf(err, "cannot load %s", path)
	}
	a.log.Info("loaded", "file", path, "kind", a.doc.Kind())
	return nil
}

// get prints the value at a dot separated path. A segment that is an
// integer indexes into an array; any other segment is an object key.
func (a *app) get(path string) error {
	// Navigation creates missing members, so look up on a copy.
	node := sjson.NewDocument(a.doc.Value().Clone()).WithLogger(a.log)
	for _, seg := range strings.Split(path, ".") {
		var err error
		if i, convErr := strconv.Atoi(seg); convErr == nil && node.Kind() == sjson.ArrayKind {
			node, err = node.Index(i)
		} else {
			node, err = node.Key(seg)
		}
		if err != nil {
			return errors.Wrapf(err, "cannot get %s", path)
		}
	}
	return a.write(node.Value())
}

// check compares the file at path with its canonical layout and prints a
// line diff when they differ.
func (a *app) check(path string) error {
	if path == "" {
		return errors.New("no file to check, use --file")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "cannot check")
	}
	v, err := sjson.Parse(raw, a.cfg.options()...)
	if err != nil {
		return errors.Wrapf(err, "cannot check %s", path)
	}
	canonical, err := sjson.Marshal(v, a.cfg.options()...)
	if err != nil {
		return errors.Wrapf(err, "cannot check %s", path)
	}

	current := strings.TrimSuffix(string(raw), "\n")
	if current == string(canonical) {
		a.log.Info("canonical", "file", path)
		return nil
	}
	fmt.Fprintf(a.stdout, "--- %s\n+++ %s (canonical)\n", path, path)
	fmt.Fprint(a.stdout, lineDiff(current, string(canonical)))
	return errors.Errorf("%s is not in canonical layout", path)
}

func (a *app) print() error {
	return a.write(a.doc.Value())
}

func (a *app) save(path string) error {
	if err := a.doc.Save(path, a.cfg.options()...); err != nil {
		return errors.Wrapf(err, "cannot write %s", path)
	}
	a.log.Info("saved", "file", path)
	return nil
}

func (a *app) write(v *sjson.Value) error {
	opts := a.cfg.options()
	if a.colorize {
		opts = append(opts, sjson.Colorize(sjson.NewColors()))
	}
	out, err := sjson.Marshal(v, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, string(out))
	return err
}

// lineDiff renders a line-oriented diff with one prefix character per line.
func lineDiff(from, to string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from+"\n", to+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line != "" {
				sb.WriteString(prefix + line)
			}
		}
	}
	return sb.String()
}

// useColor resolves a color mode against the output writer. In auto mode
// only terminals get colors.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
