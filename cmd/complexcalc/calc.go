package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graeme-hill/complexcalc-go/lib"
)

type binaryOp func(a lib.Complex, b lib.Complex) (lib.Complex, error)

var binaryOps = map[string]binaryOp{
	"sum": func(a, b lib.Complex) (lib.Complex, error) { return a.Sum(b), nil },
	"sub": func(a, b lib.Complex) (lib.Complex, error) { return a.Subtract(b), nil },
	"mul": func(a, b lib.Complex) (lib.Complex, error) { return a.Multiply(b), nil },
	"div": func(a, b lib.Complex) (lib.Complex, error) { return a.Divide(b) },
}

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <op> <a> [b]",
		Short: "Apply one complex operation",
		Long: `Operations:
  sum|sub|mul|div <a> <b>   arithmetic on two literals
  conj <a>                  conjugate
  mag <a>                   magnitude
  phase <a>                 phase in radians
  pow <a> <exponent>        a raised to a real exponent
  root <a> <n>              principal n-th root

Operands are single literals such as 5, .5, 7i, -i or 3+4i. Put "--" before
operands that start with '-'.`,
		Example: `  complexcalc calc div 3+4i 1-2i
  complexcalc calc root 3+4i 2
  complexcalc calc -- mul -i 2`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := calc(args[0], args[1:])
			if err != nil {
				return err
			}
			a.log.Debug("calc", zap.Strings("args", args), zap.String("result", result))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}

func calc(op string, operands []string) (string, error) {
	x, err := parseOperand(operands[0])
	if err != nil {
		return "", err
	}

	if fn, ok := binaryOps[op]; ok {
		if len(operands) != 2 {
			return "", fmt.Errorf("%s needs two operands", op)
		}
		y, err := parseOperand(operands[1])
		if err != nil {
			return "", err
		}
		result, err := fn(x, y)
		if err != nil {
			return "", err
		}
		return result.String(), nil
	}

	switch op {
	case "conj", "mag", "phase":
		if len(operands) != 1 {
			return "", fmt.Errorf("%s takes one operand", op)
		}
	case "pow", "root":
		if len(operands) != 2 {
			return "", fmt.Errorf("%s needs an operand and an exponent", op)
		}
	}

	switch op {
	case "conj":
		return x.Conjugate().String(), nil
	case "mag":
		return lib.Real(x.Magnitude()).String(), nil
	case "phase":
		return lib.Real(x.Phase()).String(), nil
	case "pow":
		exponent, err := strconv.ParseFloat(operands[1], 64)
		if err != nil {
			return "", fmt.Errorf("invalid exponent %q", operands[1])
		}
		return x.Power(exponent).String(), nil
	case "root":
		n, err := strconv.Atoi(operands[1])
		if err != nil {
			return "", fmt.Errorf("invalid root index %q", operands[1])
		}
		result, err := x.NthRoot(n)
		if err != nil {
			return "", err
		}
		return result.String(), nil
	}

	return "", fmt.Errorf("unknown operation %q", op)
}

// parseOperand accepts exactly one number token.
func parseOperand(text string) (lib.Complex, error) {
	tokens, err := lib.Tokenize(text)
	if err != nil {
		return lib.Complex{}, err
	}
	if len(tokens) != 2 || tokens[0].Type != lib.TokenTypeComplexNumber {
		return lib.Complex{}, fmt.Errorf("operand %q is not a single complex literal", text)
	}
	return tokens[0].Value()
}
