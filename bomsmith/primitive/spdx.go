package primitive

import (
	"fmt"
	"strings"

	"github.com/github/go-spdx/v2/spdxexp"
)

// InvalidSpdxExpressionError is returned when a license identifier or expression does not satisfy the
// SPDX license expression grammar.
type InvalidSpdxExpressionError struct {
	Expression string
	Reason     string
}

func (e *InvalidSpdxExpressionError) Error() string {
	return fmt.Sprintf("invalid SPDX expression %q: %s", e.Expression, e.Reason)
}

// SpdxIdentifier is a single SPDX license identifier (e.g. "MIT" or "LicenseRef-Proprietary").
type SpdxIdentifier string

func ParseSpdxIdentifier(s string) (SpdxIdentifier, error) {
	id := SpdxIdentifier(s)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (i SpdxIdentifier) Validate() error {
	if len(spdxTokens(string(i))) > 1 {
		return &InvalidSpdxExpressionError{
			Expression: string(i),
			Reason:     "expected a single license identifier",
		}
	}
	return validateSpdx(string(i))
}

func (i SpdxIdentifier) String() string {
	return string(i)
}

// SpdxExpression is an SPDX license expression (e.g. "MIT OR Apache-2.0"). Values are kept exactly as given.
type SpdxExpression string

func ParseSpdxExpression(s string) (SpdxExpression, error) {
	expr := SpdxExpression(s)
	if err := expr.Validate(); err != nil {
		return "", err
	}
	return expr, nil
}

func (e SpdxExpression) Validate() error {
	return validateSpdx(string(e))
}

func (e SpdxExpression) String() string {
	return string(e)
}

func validateSpdx(expression string) error {
	if strings.TrimSpace(expression) == "" {
		return &InvalidSpdxExpressionError{Expression: expression, Reason: "empty license expression"}
	}

	if valid, _ := spdxexp.ValidateLicenses([]string{expression}); valid {
		return nil
	}

	return &InvalidSpdxExpressionError{Expression: expression, Reason: diagnoseSpdx(expression)}
}

// diagnoseSpdx finds the first term of an expression that is neither an operator, an exception nor a
// known license.
func diagnoseSpdx(expression string) string {
	afterWith := false
	for _, token := range spdxTokens(expression) {
		switch strings.ToUpper(token) {
		case "AND", "OR":
			continue
		case "WITH":
			afterWith = true
			continue
		}
		if afterWith {
			afterWith = false
			continue
		}
		term := strings.TrimSuffix(token, "+")
		if valid, _ := spdxexp.ValidateLicenses([]string{term}); !valid {
			return fmt.Sprintf("unknown license or other term: %s", token)
		}
	}
	return "malformed license expression"
}

func spdxTokens(expression string) []string {
	return strings.FieldsFunc(expression, func(r rune) bool {
		return r == ' ' || r == '(' || r == ')' || r == '\t' || r == '\n' || r == '\r'
	})
}
