package tables

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"particle-audit/core/particle"

	"github.com/cockroachdb/errors"
)

// DefaultCommentPrefixes are the line prefixes ignored by Parse unless overridden.
var DefaultCommentPrefixes = []string{"#", "*"}

// Options controls how Parse treats malformed input.
type Options struct {
	// Strict aborts on the first malformed line instead of skipping it.
	Strict bool
	// CommentPrefixes overrides DefaultCommentPrefixes when non-nil.
	CommentPrefixes []string
}

// Result is a parsed table together with the lines that were skipped.
type Result struct {
	// Source names the input the table was read from.
	Source string
	// Table is the parsed table.
	Table particle.Table
	// Rows counts the lines that produced a particle.
	Rows int
	// Skipped lists malformed lines dropped in non-strict mode.
	Skipped []*ParseError
}

// Parse reads a particle table in the given format.
// Later lines with an already-seen identifier overwrite earlier ones.
func Parse(r io.Reader, source string, f Format, opts Options) (*Result, error) {
	prefixes := opts.CommentPrefixes
	if prefixes == nil {
		prefixes = DefaultCommentPrefixes
	}

	res := &Result{
		Source: source,
		Table:  make(particle.Table),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || hasAnyPrefix(trimmed, prefixes) {
			continue
		}

		parts, perr := parseLine(strings.Fields(trimmed), f)
		if perr != nil {
			perr.Source = source
			perr.Line = lineNo
			perr.Text = line
			if opts.Strict {
				return nil, perr
			}
			res.Skipped = append(res.Skipped, perr)
			continue
		}

		for _, p := range parts {
			res.Table[p.ID] = p
		}
		res.Rows++
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", source), ErrIO)
	}

	return res, nil
}

// parseLine converts the fields of one line into a particle and, if the format
// carries an antiparticle name, its conjugate.
func parseLine(fields []string, f Format) ([]particle.Particle, *ParseError) {
	if len(fields) < f.MinColumns() {
		return nil, &ParseError{
			Column: -1,
			Err:    errors.Newf("expected at least %d columns, got %d", f.MinColumns(), len(fields)),
		}
	}

	id, err := strconv.Atoi(fields[f.IDColumn])
	if err != nil {
		return nil, &ParseError{Column: f.IDColumn, Err: err}
	}

	values := make(map[int]float64, 4)
	for _, col := range []int{f.MassColumn, f.WidthColumn, f.ChargeColumn, f.SpinColumn} {
		v, err := strconv.ParseFloat(fields[col], 64)
		if err != nil {
			return nil, &ParseError{Column: col, Err: err}
		}
		values[col] = v
	}

	p := particle.Particle{
		ID:     id,
		Name:   fields[f.NameColumn],
		Mass:   values[f.MassColumn],
		Width:  values[f.WidthColumn],
		Charge: values[f.ChargeColumn] / f.ChargeDivisor,
		Spin:   values[f.SpinColumn] / f.SpinDivisor,
	}

	if f.AntiNameColumn < 0 {
		return []particle.Particle{p}, nil
	}

	anti := fields[f.AntiNameColumn]
	if anti == particle.NoAntiparticle {
		return []particle.Particle{p}, nil
	}
	return []particle.Particle{p, p.Conjugate(anti)}, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
