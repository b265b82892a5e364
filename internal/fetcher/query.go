package fetcher

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// parseOperation parses a query document holding exactly one named operation.
func parseOperation(query string) (*ast.OperationDefinition, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "query", Input: query})
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	if len(doc.Operations) != 1 {
		return nil, fmt.Errorf("expected one operation, got %d", len(doc.Operations))
	}
	op := doc.Operations[0]
	if op.Name == "" {
		return nil, errors.New("operation must be named")
	}
	return op, nil
}

// parsePaginatedOperation additionally requires the $first and $after variables.
func parsePaginatedOperation(query string) (*ast.OperationDefinition, error) {
	op, err := parseOperation(query)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"first", "after"} {
		if op.VariableDefinitions.ForName(name) == nil {
			return nil, fmt.Errorf("operation %s: missing $%s variable", op.Name, name)
		}
	}
	return op, nil
}
