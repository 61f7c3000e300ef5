// Package query compiles product predicates written in the expr language,
// e.g. `category == "whisky" && price < 5000 && name contains "Cask"`.
package query

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/model"
)

// env is the variable set visible to an expression. Price is in rupees.
type env struct {
	Name     string  `expr:"name"`
	Category string  `expr:"category"`
	Origin   string  `expr:"origin"`
	Sub      string  `expr:"sub"`
	Price    float64 `expr:"price"`
	Volume   int     `expr:"volume"`
}

func newEnv(p model.Product) env {
	return env{
		Name:     p.Name,
		Category: p.CategoryID,
		Origin:   p.OriginType,
		Sub:      p.SubCategory,
		Price:    float64(p.PricePaisa) / 100,
		Volume:   p.VolumeML,
	}
}

// Predicate is a compiled product filter.
type Predicate struct {
	program    *vm.Program
	expression string
}

// Compile parses and type-checks expression. An empty expression matches
// every product.
func Compile(expression string) (*Predicate, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &Predicate{}, nil
	}

	program, err := expr.Compile(expression, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", common.ErrInvalidExpression, expression, err)
	}
	return &Predicate{program: program, expression: expression}, nil
}

// String returns the source expression.
func (p *Predicate) String() string {
	return p.expression
}

// Match evaluates the predicate against one product.
func (p *Predicate) Match(product model.Product) (bool, error) {
	if p.program == nil {
		return true, nil
	}

	out, err := expr.Run(p.program, newEnv(product))
	if err != nil {
		return false, fmt.Errorf("%w: %q on product %s: %w", common.ErrInvalidExpression, p.expression, product.ID, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %q returned %T", common.ErrInvalidExpression, p.expression, out)
	}
	return ok, nil
}

// Filter returns the products the predicate matches, preserving order.
func (p *Predicate) Filter(products []model.Product) ([]model.Product, error) {
	if p.program == nil {
		return products, nil
	}

	matched := make([]model.Product, 0, len(products))
	for _, product := range products {
		ok, err := p.Match(product)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, product)
		}
	}
	return matched, nil
}
