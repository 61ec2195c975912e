// Package calc evaluates the calculator tools' expressions.
package calc

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// advancedEnv exposes the math functions and constants available to
// the advanced calculator. The basic calculator gets an empty
// environment, so any identifier there is a compile error.
var advancedEnv = map[string]any{
	"abs":   math.Abs,
	"round": math.Round,
	"min":   math.Min,
	"max":   math.Max,
	"pow":   math.Pow,
	"sqrt":  math.Sqrt,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"log":   math.Log,
	"log10": math.Log10,
	"exp":   math.Exp,
	"pi":    math.Pi,
	"e":     math.E,
}

// Evaluate computes a plain arithmetic expression: numbers, the usual
// operators, and parentheses. Functions and names are rejected.
func Evaluate(expression string) (float64, error) {
	return run(expression, map[string]any{})
}

// EvaluateAdvanced computes an expression with math functions and
// constants available, e.g. "sqrt(16) + sin(pi/2)".
func EvaluateAdvanced(expression string) (float64, error) {
	return run(expression, advancedEnv)
}

func run(expression string, env map[string]any) (float64, error) {
	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate expression: %w", err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate expression: %w", err)
	}
	return toFloat(out)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expression did not produce a number (got %T)", value)
	}
}
