package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"typemap-resolver/internal/datatype"
	"typemap-resolver/internal/finder"
	"typemap-resolver/internal/mapping"
	"typemap-resolver/internal/match"
	"typemap-resolver/internal/schemainfo"
	"typemap-resolver/internal/wrapper"
)

// maxSuggestDistance limits endpoint path suggestions to near misses.
const maxSuggestDistance = 3

// dumpConfig dumps rule fields instead of their String form.
var dumpConfig = spew.ConfigState{Indent: " ", DisableMethods: true, DisablePointerAddresses: true}

type resolveOptions struct {
	path        string
	name        string
	contentType string
	typ         string
	format      *string
	item        string
	dump        bool
}

type resolveRow struct {
	query  string
	result finder.Result
}

func registerResolveCmd(parent *cobra.Command, a *app) {
	opts := &resolveOptions{}

	var format string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show which rules apply to a schema occurrence",
		Long: `Resolve runs every query for the given endpoint path. With --type it also
resolves the schema itself and prints the wrapped data type.`,
		Example: `  # Endpoint level rules of /items
  typemap-resolver resolve --path /items

  # Response body of /items
  typemap-resolver resolve --path /items --name Items --content-type application/json --type array --item Item`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("format") {
				opts.format = &format
			}

			ms, err := mapping.LoadMappings(a.cfg.MappingFile)
			if err != nil {
				return err
			}

			return runResolve(cmd.OutOrStdout(), finder.New(ms), opts)
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "endpoint path, e.g. /items/{id}")
	cmd.Flags().StringVar(&opts.name, "name", "", "schema or parameter name")
	cmd.Flags().StringVar(&opts.contentType, "content-type", "", "content type of a request or response body")
	cmd.Flags().StringVar(&opts.typ, "type", "", "schema type, e.g. object, array, string")
	cmd.Flags().StringVar(&format, "format", "", "schema format, e.g. binary")
	cmd.Flags().StringVar(&opts.item, "item", "any", "item type name of an array schema")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the matching rules")
	_ = cmd.MarkFlagRequired("path")

	parent.AddCommand(cmd)
}

func runResolve(out io.Writer, f *finder.Finder, opts *resolveOptions) error {
	endpoint := schemainfo.Endpoint(opts.path)

	if len(f.EndpointScope(endpoint).Endpoints) == 0 {
		msg := "no endpoint rule for " + opts.path
		if s := match.Suggest(opts.path, f.EndpointPaths(), maxSuggestDistance); len(s) > 0 {
			msg += "; did you mean " + strings.Join(s, ", ") + "?"
		}

		_, _ = fmt.Fprintln(out, msg)
	}

	excluded, err := f.IsExcludedEndpoint(opts.path)
	if err != nil {
		return err
	}

	if excluded {
		_, _ = fmt.Fprintf(out, "endpoint %s is excluded\n", opts.path)
		return nil
	}

	rows := []resolveRow{
		{"add parameter", f.FindAdditionalEndpointParameter(opts.path)},
		{"result", f.FindEndpointResultMapping(endpoint)},
		{"result", f.FindResultMapping(endpoint)},
		{"single", f.FindEndpointSingleMapping(endpoint)},
		{"single", f.FindSingleMapping(endpoint)},
		{"multi", f.FindEndpointMultiMapping(endpoint)},
		{"multi", f.FindMultiMapping(endpoint)},
	}

	var schema *schemainfo.Info
	if opts.typ != "" {
		schema = schemainfo.Schema(opts.path, opts.name, opts.contentType, opts.typ, opts.format)
		rows = append(rows,
			resolveRow{"mapping", f.FindEndpointMappings(schema)},
			resolveRow{"io", f.FindIoMappings(schema)},
			resolveRow{"type", f.FindTypeMappings(schema)},
		)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "QUERY\tSCOPE\tOUTCOME\tRULES")

	for _, r := range rows {
		rules := "-"
		if !r.result.IsEmpty() {
			rules = mapping.Describe(r.result.Matches())
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.query, r.result.Scope(), r.result.Outcome(), rules)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if opts.dump {
		for _, r := range rows {
			if !r.result.IsEmpty() {
				_, _ = fmt.Fprintf(out, "\n%s [%s]:\n", r.query, r.result.Scope())
				dumpConfig.Fdump(out, r.result.Matches())
			}
		}
	}

	if schema == nil {
		return nil
	}

	dt, err := resolveDataType(f, schema, opts.item)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "\ndata type: %s\n", dt.TypeName())
	if imports := dt.Imports(); len(imports) > 0 {
		_, _ = fmt.Fprintf(out, "imports: %s\n", strings.Join(imports, ", "))
	}

	return nil
}

// resolveDataType maps schema to its data type and applies the wrappers. The
// endpoint rules win over the global parameter and response rules, which win
// over the global type rules.
func resolveDataType(f *finder.Finder, schema *schemainfo.Info, item string) (datatype.DataType, error) {
	var target *mapping.TargetType

	for _, find := range []func(schemainfo.SchemaInfo) finder.Result{
		f.FindEndpointMappings,
		f.FindIoMappings,
		f.FindTypeMappings,
	} {
		var err error

		target, err = find(schema).TargetType()
		if err != nil {
			return nil, err
		}

		if target != nil {
			break
		}
	}

	var (
		dt  datatype.DataType
		err error
	)

	switch {
	case target != nil:
		dt = &datatype.Mapped{Target: *target}
	case schema.IsArray():
		dt = &datatype.Array{Item: &datatype.Object{ID: datatype.TypeID{Name: item}}}
	default:
		dt = &datatype.Object{ID: datatype.TypeID{Name: schema.Name()}}
	}

	if dt.Kind() == datatype.KindArray {
		if dt, err = wrapper.NewMulti(f).Wrap(dt, schema); err != nil {
			return nil, err
		}
	}

	if dt, err = wrapper.NewSingle(f).Wrap(dt, schema); err != nil {
		return nil, err
	}

	// Only bodies have a content type; only bodies get the result envelope.
	if schema.ContentType() == "" {
		return dt, nil
	}

	return wrapper.NewResult(f).Wrap(dt, schema)
}
