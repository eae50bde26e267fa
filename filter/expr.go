package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	custom     map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds helper functions available to every expression
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.custom, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		custom: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	custom map[string]any
	cache  *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter. Identifiers are
// checked against the Number fields and helpers, so a misspelt field fails
// here rather than silently never matching.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.environment(Number{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		custom:     c.custom,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

func (c *exprCompiler) environment(number Number) map[string]any {
	env := createRuntimeEnvironment(number)
	maps.Copy(env, c.custom)
	return env
}

// Evaluate evaluates the filter against a number. A runtime failure counts
// as no match.
func (f *exprFilter) Evaluate(number Number) bool {
	ok, err := f.Run(number)
	return err == nil && ok
}

// Run evaluates the filter against a number
func (f *exprFilter) Run(number Number) (bool, error) {
	env := createRuntimeEnvironment(number)
	maps.Copy(env, f.custom)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Number:     number.Number,
			Err:        err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the helpers that do not depend on the number
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the environment a filter is evaluated in
func createRuntimeEnvironment(number Number) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	env["Record"] = number
	env["hasCapability"] = createHasCapabilityFunc(number.Capabilities)
	env["areaCode"] = createAreaCodeFunc(number.AreaCode())
	env["isOwned"] = func() bool { return number.Source == SourceOwned }

	env["Source"] = string(number.Source)
	env["ID"] = number.ID
	env["Number"] = number.Number
	env["Name"] = number.Name
	env["Region"] = number.Region
	env["RateCenter"] = number.RateCenter
	env["Lata"] = number.Lata
	env["PostalCode"] = number.PostalCode
	env["IsoCountry"] = number.IsoCountry
	env["NumberType"] = number.NumberType
	env["Capabilities"] = number.Capabilities
	env["Beta"] = number.Beta
	env["CreatedAt"] = number.CreatedAt

	return env
}

func createHasCapabilityFunc(capabilities []string) func(string) bool {
	return func(name string) bool {
		return slices.Contains(capabilities, strings.ToLower(name))
	}
}

func createAreaCodeFunc(areaCode string) func() string {
	return func() string {
		return areaCode
	}
}
