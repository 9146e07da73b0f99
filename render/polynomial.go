// SPDX-License-Identifier: MIT
// Package: polygen/render
//
// polynomial.go — symbolic view of P(x) = Σ cᵢ · Π xⱼ^Kᵢⱼ.
//
// Text conventions (plain form):
//   - variables are x1..xn;
//   - a factor with exponent 0 is omitted, exponent 1 prints as the bare variable,
//     larger exponents as x1**3;
//   - a coefficient of ±1 in front of a non-constant monomial is omitted;
//   - terms keep monomial order and are joined as " + c" / " - |c|";
//   - the polynomial with no terms renders as "0".
//
// Numbers use the shortest representation that round-trips (strconv 'g', -1).

package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/polygen/matrix"
)

const varPrefix = "x"

// Term is one monomial cᵢ · Π xⱼ^Exponents[j].
type Term struct {
	Coefficient float64 `json:"coefficient"`
	Exponents   []int   `json:"exponents"`
}

// Degree returns the total degree of the term.
func (t Term) Degree() int {
	d := 0
	for _, e := range t.Exponents {
		d += e
	}

	return d
}

// Polynomial is an immutable sum of terms over the variables x1..xn.
type Polynomial struct {
	vars  []string
	terms []Term
}

// NewPolynomial pairs every row of k with its coefficient.
// Errors: matrix.ErrNilMatrix, ErrLengthMismatch (len(coeffs) != k.Rows()).
func NewPolynomial(k *matrix.Dense, coeffs []float64) (*Polynomial, error) {
	if err := matrix.ValidateNotNil(k); err != nil {
		return nil, fmt.Errorf("NewPolynomial: %w", err)
	}
	if len(coeffs) != k.Rows() {
		return nil, fmt.Errorf("NewPolynomial: %d coefficients for %d monomials: %w",
			len(coeffs), k.Rows(), ErrLengthMismatch)
	}

	rows := k.ToRows()
	terms := make([]Term, len(rows))
	for i, row := range rows {
		terms[i] = Term{Coefficient: coeffs[i], Exponents: row}
	}

	return &Polynomial{vars: Variables(k.Cols()), terms: terms}, nil
}

// Variables returns the names x1..xn.
func Variables(n int) []string {
	out := make([]string, n)
	for j := range out {
		out[j] = varPrefix + strconv.Itoa(j+1)
	}

	return out
}

// Variables returns a copy of the variable names.
func (p *Polynomial) Variables() []string {
	out := make([]string, len(p.vars))
	copy(out, p.vars)

	return out
}

// Terms returns a deep copy of the terms in monomial order.
func (p *Polynomial) Terms() []Term {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		exps := make([]int, len(t.Exponents))
		copy(exps, t.Exponents)
		out[i] = Term{Coefficient: t.Coefficient, Exponents: exps}
	}

	return out
}

// Len returns the number of terms.
func (p *Polynomial) Len() int { return len(p.terms) }

// Degree returns the largest total degree over all terms (0 for no terms).
func (p *Polynomial) Degree() int {
	d := 0
	for _, t := range p.terms {
		d = max(d, t.Degree())
	}

	return d
}

// Eval computes P(x). len(x) must equal the number of variables.
func (p *Polynomial) Eval(x []float64) (float64, error) {
	if len(x) != len(p.vars) {
		return 0, fmt.Errorf("Polynomial.Eval: point has %d coordinates, want %d: %w",
			len(x), len(p.vars), ErrLengthMismatch)
	}
	sum := 0.0
	for _, t := range p.terms {
		v := t.Coefficient
		for j, e := range t.Exponents {
			if e > 0 {
				v *= math.Pow(x[j], float64(e))
			}
		}
		sum += v
	}

	return sum, nil
}

// String renders the plain form, e.g. "3*x1**2*x2 - x3".
func (p *Polynomial) String() string {
	return p.join(p.plainMonomial, "*")
}

// LaTeX renders the LaTeX form, e.g. "3 x_{1}^{2} x_{2} - x_{3}".
func (p *Polynomial) LaTeX() string {
	return p.join(p.latexMonomial, " ")
}

// join assembles signed terms. monomial returns "" for a constant term;
// sep glues the coefficient to a non-empty monomial.
func (p *Polynomial) join(monomial func(Term) string, sep string) string {
	if len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		c := t.Coefficient
		neg := c < 0 || (c == 0 && math.Signbit(c))
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}

		mono := monomial(t)
		abs := math.Abs(c)
		switch {
		case mono == "":
			sb.WriteString(formatNumber(abs))
		case abs == 1:
			sb.WriteString(mono)
		default:
			sb.WriteString(formatNumber(abs))
			sb.WriteString(sep)
			sb.WriteString(mono)
		}
	}

	return sb.String()
}

func (p *Polynomial) plainMonomial(t Term) string {
	factors := make([]string, 0, len(t.Exponents))
	for j, e := range t.Exponents {
		switch {
		case e == 0:
		case e == 1:
			factors = append(factors, p.vars[j])
		default:
			factors = append(factors, p.vars[j]+"**"+strconv.Itoa(e))
		}
	}

	return strings.Join(factors, "*")
}

func (p *Polynomial) latexMonomial(t Term) string {
	factors := make([]string, 0, len(t.Exponents))
	for j, e := range t.Exponents {
		switch {
		case e == 0:
		case e == 1:
			factors = append(factors, fmt.Sprintf("x_{%d}", j+1))
		default:
			factors = append(factors, fmt.Sprintf("x_{%d}^{%d}", j+1, e))
		}
	}

	return strings.Join(factors, " ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// polynomialJSON is the wire layout of MarshalJSON.
type polynomialJSON struct {
	Variables  []string `json:"variables"`
	Terms      []Term   `json:"terms"`
	Expression string   `json:"expression"`
}

// MarshalJSON encodes variables, terms and the plain expression.
func (p *Polynomial) MarshalJSON() ([]byte, error) {
	return json.Marshal(polynomialJSON{
		Variables:  p.vars,
		Terms:      p.terms,
		Expression: p.String(),
	})
}
