package query

import (
	"time"

	"github.com/pkg/errors"
	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Identifiers available in every filter expression.
const (
	IdentID        = "id"
	IdentCreatedAt = "createdAt"
)

// ErrInvalidFilter is returned when a filter expression cannot be parsed or evaluated.
var ErrInvalidFilter = errors.New("invalid filter expression")

// filterRequest carries a raw expression into filtering.ParseFilter.
type filterRequest string

func (r filterRequest) GetFilter() string { return string(r) }

// Declarations returns the AIP-160 identifiers the set understands.
func (fs *FilterSet[T]) Declarations() (*filtering.Declarations, error) {
	opts := []filtering.DeclarationOption{
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent(IdentID, filtering.TypeString),
		filtering.DeclareIdent(IdentCreatedAt, filtering.TypeTimestamp),
	}
	for _, field := range fs.fields {
		switch field.kind {
		case kindString:
			opts = append(opts, filtering.DeclareIdent(field.Name, filtering.TypeString))
		case kindInt:
			opts = append(opts, filtering.DeclareIdent(field.Name, filtering.TypeInt))
		}
	}

	decls, err := filtering.NewDeclarations(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "filter declarations")
	}

	return decls, nil
}

// CompileExpression parses an AIP-160 expression such as
// `userId = "user-1" AND createdAt >= "2024-01-01T00:00:00Z"` into a predicate.
func (fs *FilterSet[T]) CompileExpression(raw string) (Predicate[T], error) {
	decls, err := fs.Declarations()
	if err != nil {
		return nil, err
	}

	filter, err := filtering.ParseFilter(filterRequest(raw), decls)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFilter, "%s", err)
	}
	if filter.CheckedExpr == nil {
		return MatchAll[T], nil
	}

	return fs.compile(filter.CheckedExpr.GetExpr())
}

func (fs *FilterSet[T]) compile(e *expr.Expr) (Predicate[T], error) {
	call := e.GetCallExpr()
	if call == nil {
		return nil, errors.Wrapf(ErrInvalidFilter, "unsupported expression %T", e.GetExprKind())
	}

	switch call.GetFunction() {
	case filtering.FunctionAnd, filtering.FunctionFuzzyAnd:
		return fs.compileLogical(call.GetArgs(), true)
	case filtering.FunctionOr:
		return fs.compileLogical(call.GetArgs(), false)
	case filtering.FunctionNot:
		if len(call.GetArgs()) != 1 {
			return nil, errors.Wrap(ErrInvalidFilter, "NOT requires 1 argument")
		}
		inner, err := fs.compile(call.GetArgs()[0])
		if err != nil {
			return nil, err
		}

		return func(item T) bool { return !inner(item) }, nil
	case filtering.FunctionEquals, filtering.FunctionNotEquals,
		filtering.FunctionLessThan, filtering.FunctionLessEquals,
		filtering.FunctionGreaterThan, filtering.FunctionGreaterEquals:
		return fs.compileComparison(call.GetFunction(), call.GetArgs())
	default:
		return nil, errors.Wrapf(ErrInvalidFilter, "unsupported function %q", call.GetFunction())
	}
}

func (fs *FilterSet[T]) compileLogical(args []*expr.Expr, and bool) (Predicate[T], error) {
	preds := make([]Predicate[T], 0, len(args))
	for _, arg := range args {
		p, err := fs.compile(arg)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	if and {
		return And(preds...), nil
	}

	return func(item T) bool {
		for _, p := range preds {
			if p(item) {
				return true
			}
		}

		return false
	}, nil
}

func (fs *FilterSet[T]) compileComparison(op string, args []*expr.Expr) (Predicate[T], error) {
	if len(args) != 2 {
		return nil, errors.Wrapf(ErrInvalidFilter, "%s requires 2 arguments", op)
	}

	ident := args[0].GetIdentExpr()
	if ident == nil {
		return nil, errors.Wrap(ErrInvalidFilter, "left side of a comparison must be a field")
	}
	name := ident.GetName()

	switch name {
	case IdentCreatedAt:
		want, err := timestampValue(args[1])
		if err != nil {
			return nil, err
		}

		return func(item T) bool {
			return compareOrdered(op, item.RecordCreatedAt().Compare(want))
		}, nil
	case IdentID:
		want, err := stringValue(args[1])
		if err != nil {
			return nil, err
		}

		return func(item T) bool {
			return compareStrings(op, item.RecordID(), want)
		}, nil
	}

	field, ok := fs.lookup(name)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidFilter, "unknown field %q", name)
	}

	switch field.kind {
	case kindInt:
		want, err := intValue(args[1])
		if err != nil {
			return nil, err
		}
		value := field.num

		return func(item T) bool {
			got := value(item)
			switch {
			case got < want:
				return compareOrdered(op, -1)
			case got > want:
				return compareOrdered(op, 1)
			default:
				return compareOrdered(op, 0)
			}
		}, nil
	default:
		want, err := stringValue(args[1])
		if err != nil {
			return nil, err
		}
		value := field.str

		return func(item T) bool {
			return compareStrings(op, value(item), want)
		}, nil
	}
}

func (fs *FilterSet[T]) lookup(name string) (Field[T], bool) {
	for _, field := range fs.fields {
		if field.Name == name {
			return field, true
		}
	}

	return Field[T]{}, false
}

func compareStrings(op, got, want string) bool {
	switch {
	case got < want:
		return compareOrdered(op, -1)
	case got > want:
		return compareOrdered(op, 1)
	default:
		return compareOrdered(op, 0)
	}
}

// compareOrdered interprets cmp (-1, 0, 1) under the comparison operator op.
func compareOrdered(op string, cmp int) bool {
	switch op {
	case filtering.FunctionEquals:
		return cmp == 0
	case filtering.FunctionNotEquals:
		return cmp != 0
	case filtering.FunctionLessThan:
		return cmp < 0
	case filtering.FunctionLessEquals:
		return cmp <= 0
	case filtering.FunctionGreaterThan:
		return cmp > 0
	case filtering.FunctionGreaterEquals:
		return cmp >= 0
	default:
		return false
	}
}

func stringValue(e *expr.Expr) (string, error) {
	c := e.GetConstExpr()
	if c == nil {
		return "", errors.Wrap(ErrInvalidFilter, "expected a constant")
	}
	if s, ok := c.GetConstantKind().(*expr.Constant_StringValue); ok {
		return s.StringValue, nil
	}

	return "", errors.Wrapf(ErrInvalidFilter, "expected a string, got %T", c.GetConstantKind())
}

func intValue(e *expr.Expr) (int64, error) {
	c := e.GetConstExpr()
	if c == nil {
		return 0, errors.Wrap(ErrInvalidFilter, "expected a constant")
	}
	if v, ok := c.GetConstantKind().(*expr.Constant_Int64Value); ok {
		return v.Int64Value, nil
	}

	return 0, errors.Wrapf(ErrInvalidFilter, "expected an integer, got %T", c.GetConstantKind())
}

// timestampValue accepts both timestamp("...") and a bare string constant.
func timestampValue(e *expr.Expr) (time.Time, error) {
	if call := e.GetCallExpr(); call != nil {
		if call.GetFunction() != filtering.FunctionTimestamp || len(call.GetArgs()) != 1 {
			return time.Time{}, errors.Wrapf(ErrInvalidFilter, "unsupported function %q in value position", call.GetFunction())
		}
		e = call.GetArgs()[0]
	}

	raw, err := stringValue(e)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidFilter, "%s", err)
	}

	return t, nil
}
