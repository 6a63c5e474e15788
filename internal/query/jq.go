// Package query evaluates jq expressions against console documents.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

var ErrNoResult = errors.New("no result from jq evaluation")

// Compile parses and compiles expression. Variable names must start with $.
func Compile(expression string, variables ...string) (*gojq.Code, error) {
	expression = strings.TrimSpace(expression)

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq expression: %s, error: %w", expression, err)
	}

	code, err := gojq.Compile(query, gojq.WithVariables(variables))
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %s, error: %w", expression, err)
	}

	return code, nil
}

// Evaluate runs expression against input and returns every result. Input
// is normalised through JSON so structs can be queried by their json tags.
func Evaluate(expression string, input any, variables map[string]any) ([]any, error) {
	names, values := getVariableNamesAndValues(variables)

	code, err := Compile(expression, names...)
	if err != nil {
		return nil, err
	}

	document, err := normalise(input)
	if err != nil {
		return nil, err
	}

	return run(code, document, values...)
}

// Filter keeps the items for which expression yields a truthy first
// result. Only false and null are falsy, as in jq.
func Filter[T any](expression string, items []T) ([]T, error) {
	if len(strings.TrimSpace(expression)) == 0 {
		return items, nil
	}

	code, err := Compile(expression)
	if err != nil {
		return nil, err
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		document, err := normalise(item)
		if err != nil {
			return nil, err
		}

		results, err := run(code, document)
		if errors.Is(err, ErrNoResult) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if truthy(results[0]) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func run(code *gojq.Code, input any, values ...any) ([]any, error) {
	var results []any

	iter := code.Run(input, values...)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}

		// If there's an error from the jq engine, report it
		if errVal, isErr := result.(error); isErr {
			var halt *gojq.HaltError
			if errors.As(errVal, &halt) && halt.Value() == nil {
				break
			}
			return nil, fmt.Errorf("jq evaluation error: %w", errVal)
		}

		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, ErrNoResult
	}
	return results, nil
}

// normalise converts input to the map, slice and scalar types gojq accepts.
func normalise(input any) (any, error) {
	switch input.(type) {
	case nil, bool, string, int, float64, map[string]any, []any:
		return input, nil
	}

	data, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jq input: %w", err)
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to decode jq input: %w", err)
	}
	return document, nil
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// getVariableNamesAndValues constructs two slices, where 'names[i]' matches 'values[i]'.
func getVariableNamesAndValues(vars map[string]any) ([]string, []any) {
	names := make([]string, 0, len(vars))
	values := make([]any, 0, len(vars))

	for k, v := range vars {
		names = append(names, k)
		values = append(values, v)
	}
	return names, values
}
