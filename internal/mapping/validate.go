package mapping

import (
	"fmt"
	"strings"

	"github.com/elnormous/contenttype"

	"typemap-resolver/internal/diagnostic"
)

// Validate validates a mapping file structurally. It does not look for
// ambiguous rules; those depend on the query and are reported by package check.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if mf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported mapping version %q (expected %q)", mf.Version, CurrentVersion),
			"", "")
	}

	validateRules(res, diagnostic.GlobalScope, &mf.Map.Rules)

	for _, p := range mf.Map.Parameters {
		if p.Add != "" {
			res.AddWarning("add_parameter_ignored",
				"additional parameters are only used on endpoints", diagnostic.GlobalScope, p.Add)
		}
	}

	seen := map[string]int{}

	for _, item := range mf.Map.Paths {
		seen[item.Path]++

		if !strings.HasPrefix(item.Path, "/") {
			res.AddWarning("invalid_path", "endpoint path should start with '/'", item.Path, "")
		}

		if seen[item.Path] == 2 {
			res.AddError("duplicate_endpoint",
				"endpoint path is configured more than once", item.Path, "")
		}

		if item.Exclude && !item.Rules.IsEmpty() {
			res.AddInfo("excluded_endpoint_rules",
				"rules of an excluded endpoint are never used", item.Path, "")
		}

		validateRules(res, item.Path, &item.Rules)
	}

	return res
}

// validateRules validates the rules of one scope.
func validateRules(res *diagnostic.Diagnostics, scope string, r *Rules) {
	for _, w := range []struct{ name, target string }{
		{"result", r.Result},
		{SourceTypeSingle, r.Single},
		{SourceTypeMulti, r.Multi},
	} {
		if w.target == "" {
			continue
		}

		if _, err := ParseTargetType(w.target, nil); err != nil {
			res.AddError("invalid_target", err.Error(), scope, w.name)
		}
	}

	for _, e := range r.Types {
		tm, err := ParseTypeRule(e.Type, e.Generics)
		if err != nil {
			res.AddError("invalid_rule", err.Error(), scope, e.Type)
			continue
		}

		if tm.Target.IsPlain() && len(tm.Target.Generics) > 0 {
			res.AddWarning("plain_generics", "generics of a plain target are ignored", scope, e.Type)
		}

		isWrapper := tm.SourceTypeName == SourceTypeSingle || tm.SourceTypeName == SourceTypeMulti
		if tm.Target.IsPlain() && !isWrapper {
			res.AddError("invalid_target", "only single and multi accept a plain target", scope, e.Type)
		}
	}

	for _, e := range r.Parameters {
		if _, err := e.mapping(); err != nil {
			res.AddError("invalid_rule", err.Error(), scope, e.Name+e.Add)
		}
	}

	for _, e := range r.Responses {
		contentType, target, err := splitRule(e.Content)
		if err != nil {
			res.AddError("invalid_rule", err.Error(), scope, e.Content)
			continue
		}

		if !isMediaType(contentType) {
			res.AddError("invalid_content_type",
				fmt.Sprintf("%q is not a valid media type", contentType), scope, e.Content)
		}

		if _, err := ParseTargetType(target, e.Generics); err != nil {
			res.AddError("invalid_target", err.Error(), scope, e.Content)
		}
	}
}

// isMediaType reports whether s parses as "type/subtype[; params]".
func isMediaType(s string) bool {
	mt := contenttype.NewMediaType(s)
	return mt.Type != "" && mt.Subtype != ""
}
