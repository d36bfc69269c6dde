package check

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"typemap-resolver/internal/diagnostic"
	"typemap-resolver/internal/finder"
	"typemap-resolver/internal/mapping"
	"typemap-resolver/internal/match"
	"typemap-resolver/internal/schemainfo"
)

// Options configures a check run.
type Options struct {
	// Logger receives progress and ambiguity logs. Defaults to slog.Default().
	Logger *slog.Logger
	// Concurrency limits the scopes checked in parallel. Defaults to GOMAXPROCS.
	Concurrency int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}

// Run validates mf and reports ambiguous rules. The returned diagnostics are
// sorted. An error is returned only if ctx is done.
func Run(ctx context.Context, mf *mapping.MappingFile, opts Options) (*diagnostic.Diagnostics, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	diags := mapping.Validate(mf)
	if mf == nil {
		return diags, nil
	}

	ms, err := mf.Mappings()
	if err != nil {
		// Validate reports the broken rule; without a rule list there is
		// nothing to resolve.
		if diags.IsValid() {
			diags.AddError("invalid_rule", err.Error(), diagnostic.GlobalScope, "")
		}

		diags.Sort()

		return diags, nil
	}

	f := finder.New(ms)
	scopes := append([]string{diagnostic.GlobalScope}, f.EndpointPaths()...)
	results := make([]diagnostic.Diagnostics, len(scopes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, scope := range scopes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c := &checker{finder: f, log: log, diags: &results[i]}
			if scope == diagnostic.GlobalScope {
				c.global()
			} else {
				c.endpoint(scope)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		diags.Merge(r)
	}

	diags.Sort()

	log.Debug("check.done",
		slog.Int("scopes", len(scopes)),
		slog.Int("errors", len(diags.Errors)),
		slog.Int("warnings", len(diags.Warnings)))

	return diags, nil
}

// checker checks a single scope.
type checker struct {
	finder *finder.Finder
	log    *slog.Logger
	diags  *diagnostic.Diagnostics
}

func (c *checker) global() {
	c.log.Debug("check.scope", slog.String("scope", diagnostic.GlobalScope))

	none := schemainfo.New()
	c.report("result", c.finder.FindResultMapping(none).Err())
	c.report(mapping.SourceTypeSingle, c.finder.FindSingleMapping(none).Err())
	c.report(mapping.SourceTypeMulti, c.finder.FindMultiMapping(none).Err())

	c.ask(diagnostic.GlobalScope, "", c.finder.Mappings())
}

func (c *checker) endpoint(path string) {
	c.log.Debug("check.scope", slog.String("scope", path))

	excluded, err := c.finder.IsExcludedEndpoint(path)
	if err != nil {
		// Every other question of the endpoint has the same answer.
		c.report("endpoint", err)
		return
	}

	if excluded {
		return
	}

	schema := schemainfo.Endpoint(path)
	c.report("result", c.finder.FindEndpointResultMapping(schema).Err())
	c.report(mapping.SourceTypeSingle, c.finder.FindEndpointSingleMapping(schema).Err())
	c.report(mapping.SourceTypeMulti, c.finder.FindEndpointMultiMapping(schema).Err())
	c.report("add", c.finder.FindAdditionalEndpointParameter(path).Err())

	c.ask(path, path, c.finder.EndpointScope(schema).Mappings)
}

// ask reports each question derived from rules that more than one rule of
// the question's kind answers. Rules of other kinds never reach the
// predicate, so a question defines only the facts its kind reads.
func (c *checker) ask(scope, path string, rules []mapping.Mapping) {
	for _, q := range questions(path, rules) {
		var pred mapping.Predicate = match.NewType(q.schema)
		if q.kind != mapping.KindType {
			pred = match.NewIO(q.schema)
		}

		candidates := finder.Select(ofKind(q.kind), rules)

		if matches := finder.Select(pred, candidates); len(matches) > 1 {
			c.report(q.subject, &finder.AmbiguousMappingError{Scope: scope, Mappings: matches})
		}
	}
}

// ofKind selects the rules of one variant.
type ofKind mapping.Kind

func (k ofKind) Match(m mapping.Mapping) bool { return m.Kind() == mapping.Kind(k) }

// report adds a diagnostic for an ambiguity error. nil is ignored.
func (c *checker) report(question string, err error) {
	if err == nil {
		return
	}

	var ambiguous *finder.AmbiguousMappingError
	if !errors.As(err, &ambiguous) {
		c.diags.AddError("resolve_failed", err.Error(), diagnostic.GlobalScope, question)
		return
	}

	c.log.Warn("check.ambiguous",
		slog.String("scope", ambiguous.Scope),
		slog.String("question", question),
		slog.Int("rules", len(ambiguous.Mappings)))

	c.diags.Add(ambiguous.Diagnostic(question))
}
