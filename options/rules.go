package options

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/jaxgl/jax/jaxerr"
)

// Rule is a named constraint over a normalized options tree, written as a CEL
// expression against the variable opts.
//
//	Rule{Name: "positive-size", Expr: "opts.width > 0 && opts.height > 0"}
type Rule struct {
	Name string
	Expr string
}

type compiledRule struct {
	rule    Rule
	program cel.Program
}

// RuleSet is a compiled group of rules. It is safe for concurrent use.
type RuleSet struct {
	rules  []compiledRule
	logger *slog.Logger
}

// RuleSetOption configures a RuleSet.
type RuleSetOption func(*RuleSet)

// WithRuleLogger sets the logger used to report failed rules at debug level.
func WithRuleLogger(logger *slog.Logger) RuleSetOption {
	return func(rs *RuleSet) {
		rs.logger = logger
	}
}

// CompileRules type-checks every rule and returns the compiled set. The
// returned error names the first rule that does not compile.
func CompileRules(rules []Rule, opts ...RuleSetOption) (*RuleSet, error) {
	rs := &RuleSet{}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.logger == nil {
		rs.logger = slog.Default()
	}

	env, err := cel.NewEnv(cel.Variable("opts", cel.MapType(cel.StringType, cel.DynType)))
	if err != nil {
		return nil, fmt.Errorf("failed to create rule environment: %w", err)
	}

	for _, r := range rules {
		ast, iss := env.Compile(r.Expr)
		if iss.Err() != nil {
			return nil, jaxerr.Newf("options", "CompileRules", jaxerr.CodeParseError, "rule %q", r.Name).
				WithCause(iss.Err())
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, jaxerr.Newf("options", "CompileRules", jaxerr.CodeParseError, "rule %q", r.Name).
				WithCause(err)
		}
		rs.rules = append(rs.rules, compiledRule{rule: r, program: prg})
	}

	return rs, nil
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Check evaluates every rule against t. It returns nil when all rules hold,
// otherwise an error matching jaxerr.ErrRuleFailed whose message names each
// failed rule. A rule that errors during evaluation, for example by reading
// a missing key, counts as failed.
func (rs *RuleSet) Check(t Tree) error {
	activation := map[string]any{"opts": t.native(false)}

	var failed []string
	for _, cr := range rs.rules {
		out, _, err := cr.program.Eval(activation)
		if err != nil {
			rs.logger.Debug("options rule errored", "rule", cr.rule.Name, "error", err)
			failed = append(failed, cr.rule.Name)
			continue
		}
		ok, isBool := out.Value().(bool)
		if !isBool || !ok {
			rs.logger.Debug("options rule failed", "rule", cr.rule.Name, "result", out.Value())
			failed = append(failed, cr.rule.Name)
		}
	}

	if len(failed) == 0 {
		return nil
	}
	return jaxerr.Newf("options", "Check", jaxerr.CodeRuleFailed, "failed rules: %s", strings.Join(failed, ", ")).
		WithDetails(map[string]any{"rules": failed})
}
