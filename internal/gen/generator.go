package gen

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"har-to-k6/internal/archive"
	"har-to-k6/internal/codegen"
	"har-to-k6/internal/config"
	"har-to-k6/internal/diagnostic"
	"har-to-k6/internal/logging"
	"har-to-k6/internal/match"
	"har-to-k6/internal/render"
	"har-to-k6/internal/validate"
)

// CodeUndefinedVariable is the diagnostic code for a reference to a
// variable no earlier entry defines.
const CodeUndefinedVariable = "UndefinedVariable"

// GeneratorConfig holds configuration for script generation.
type GeneratorConfig struct {
	// Filename is the name given to the generated script.
	Filename string
	// OnInvalid decides between aborting and skipping invalid entries.
	OnInvalid config.OnInvalid
	// Workers bounds parallel entry processing. Zero means GOMAXPROCS.
	Workers int
	// Sleep is the pause in seconds at the end of each iteration. Zero
	// leaves it out.
	Sleep float64
	// Verify compiles the generated code before returning it.
	Verify bool
	// Options is exported as the k6 options object.
	Options map[string]any
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:  "script.js",
		OnInvalid: config.Abort,
		Sleep:     1,
	}
}

// FromConfig builds a generator configuration from loaded settings.
func FromConfig(c config.Config) GeneratorConfig {
	gc := DefaultGeneratorConfig()
	gc.OnInvalid = c.OnInvalid
	gc.Workers = c.Workers
	gc.Sleep = c.Sleep
	gc.Verify = c.Verify
	gc.Options = c.Options

	return gc
}

// Generator converts archive documents into k6 scripts. It holds no
// per-document state and may be reused.
type Generator struct {
	config    GeneratorConfig
	logger    *slog.Logger
	validator *validate.Validator
}

// NewGenerator creates a Generator. A nil logger discards output.
func NewGenerator(cfg GeneratorConfig, logger *slog.Logger) *Generator {
	return &Generator{
		config:    cfg,
		logger:    logging.OrNop(logger),
		validator: validate.New(),
	}
}

// GeneratedScript is a generated k6 script.
type GeneratedScript struct {
	// Filename is the configured script name.
	Filename string
	// Content is the script source.
	Content []byte
	// Entries is the number of entries rendered into the script.
	Entries int
	// Diagnostics holds skipped entries and other non-fatal findings.
	Diagnostics diagnostic.Diagnostics
}

// entryResult is the outcome of processing one entry. Exactly one of
// invalid and failed is set when processing did not succeed.
type entryResult struct {
	entry    archive.Entry
	fragment codegen.Fragment
	invalid  error
	failed   error
}

// Generate converts doc into a script.
//
// With the abort policy the first invalid entry in document order is
// returned as an error. With the skip policy invalid entries are left out
// and recorded as warnings.
func (g *Generator) Generate(ctx context.Context, doc *archive.Document) (*GeneratedScript, error) {
	results, err := g.process(ctx, doc, true)
	if err != nil {
		return nil, err
	}

	script := &GeneratedScript{Filename: g.config.Filename}

	var entries []archive.Entry
	var fragments []codegen.Fragment

	for i, res := range results {
		switch {
		case res.invalid != nil:
			if g.config.OnInvalid != config.Skip {
				return nil, fmt.Errorf("validating archive: %w", res.invalid)
			}

			script.Diagnostics.Report(diagnostic.DiagnosticWarning, res.invalid)
			g.logger.Warn("skipping invalid entry", "entry", doc.Entries[i].Index, "error", res.invalid)
		case res.failed != nil:
			return nil, fmt.Errorf("rendering entry %d: %w", doc.Entries[i].Index, res.failed)
		default:
			entries = append(entries, res.entry)
			fragments = append(fragments, res.fragment)
		}
	}

	checkReferences(entries, &script.Diagnostics)

	for _, w := range script.Diagnostics.Warnings {
		if w.Code == CodeUndefinedVariable {
			g.logger.Warn("undefined variable", "entry", w.Entry, "detail", w.Message)
		}
	}

	content, err := g.assemble(entries, fragments)
	if err != nil {
		return nil, err
	}

	script.Content = content
	script.Entries = len(entries)

	g.logger.Info("generated script",
		"entries", script.Entries,
		"skipped", len(doc.Entries)-script.Entries,
		"bytes", len(content),
	)

	return script, nil
}

// Validate checks every entry of doc and reports each invalid one as an
// error diagnostic. It renders nothing.
func (g *Generator) Validate(ctx context.Context, doc *archive.Document) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	results, err := g.process(ctx, doc, false)
	if err != nil {
		return diags, err
	}

	for _, res := range results {
		if res.invalid != nil {
			diags.Report(diagnostic.DiagnosticError, res.invalid)
		}
	}

	return diags, nil
}

// process validates every entry and, when renderEntries is set, decodes
// and renders the valid ones. Each worker writes only its own slot.
func (g *Generator) process(ctx context.Context, doc *archive.Document, renderEntries bool) ([]entryResult, error) {
	results := make([]entryResult, len(doc.Entries))

	workers := g.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range doc.Entries {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			results[i] = g.processEntry(doc.Entries[i], renderEntries)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (g *Generator) processEntry(raw archive.RawEntry, renderEntry bool) entryResult {
	if err := g.validator.Entry(raw); err != nil {
		return entryResult{invalid: err}
	}

	if !renderEntry {
		return entryResult{}
	}

	entry, err := archive.Decode(raw)
	if err != nil {
		return entryResult{failed: err}
	}

	frag, err := render.Request(entry)
	if err != nil {
		return entryResult{failed: err}
	}

	g.logger.Debug("rendered entry", "entry", raw.Index, "method", entry.Method, "url", entry.URL)

	return entryResult{entry: entry, fragment: frag}
}

// checkReferences warns about references to variables that no earlier
// entry defines. An entry's own variables are extracted after its
// request, so they do not count for it.
func checkReferences(entries []archive.Entry, diags *diagnostic.Diagnostics) {
	defined := map[string]struct{}{}

	var names []string

	for _, e := range entries {
		for _, name := range render.References(e) {
			if _, ok := defined[name]; ok {
				continue
			}

			msg := fmt.Sprintf("variable %q is used before any entry defines it", name)
			if hint, ok := match.Closest(name, names); ok {
				msg += fmt.Sprintf(", did you mean %q?", hint)
			}

			diags.AddWarning(CodeUndefinedVariable, msg, e.Index, "")
		}

		for _, v := range e.Variables {
			if _, ok := defined[v.Name]; !ok {
				defined[v.Name] = struct{}{}
				names = append(names, v.Name)
			}
		}
	}
}
