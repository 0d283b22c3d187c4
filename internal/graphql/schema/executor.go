package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

type executableSchema struct {
	resolvers ResolverRoot
	schema    *ast.Schema
}

// NewExecutableSchema creates an ExecutableSchema from the resolver root
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{resolvers: cfg.Resolvers, schema: parsedSchema}
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	if opCtx.Operation.Operation != ast.Query {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation: %s", opCtx.Operation.Operation))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data, errs := e.execQuery(ctx, opCtx)
		raw, err := json.Marshal(data)
		if err != nil {
			return graphql.ErrorResponse(ctx, "failed to encode response")
		}
		return &graphql.Response{Data: raw, Errors: errs}
	}
}

func (e *executableSchema) execQuery(ctx context.Context, opCtx *graphql.OperationContext) (*object, gqlerror.List) {
	queryType := e.schema.Query
	fields := graphql.CollectFields(opCtx, opCtx.Operation.SelectionSet, []string{queryType.Name})

	out := &object{}
	var errs gqlerror.List
	for _, field := range fields {
		if field.Name == "__typename" {
			out.set(field.Alias, queryType.Name)
			continue
		}

		value, err := e.resolveQueryField(ctx, field.Name, field.ArgumentMap(opCtx.Variables))
		if err != nil {
			errs = append(errs, fieldError(field.Alias, err))
			out.set(field.Alias, nil)
			continue
		}

		generic, err := toGeneric(value)
		if err != nil {
			errs = append(errs, fieldError(field.Alias, err))
			out.set(field.Alias, nil)
			continue
		}

		def := queryType.Fields.ForName(field.Name)
		out.set(field.Alias, e.complete(opCtx, generic, def.Type, field.Selections))
	}
	return out, errs
}

func (e *executableSchema) resolveQueryField(ctx context.Context, name string, args map[string]any) (any, error) {
	q := e.resolvers.Query()
	switch name {
	case "event":
		return q.Event(ctx, stringArg(args, "id"))
	case "interests":
		return q.Interests(ctx)
	case "feed":
		page, err := intArg(args, "page", 1)
		if err != nil {
			return nil, err
		}
		return q.Feed(ctx, stringArg(args, "userId"), page)
	case "explain":
		return q.Explain(ctx, stringArg(args, "userId"), stringArg(args, "eventId"))
	case "savedEvents":
		return q.SavedEvents(ctx, stringArg(args, "userId"))
	case "applications":
		return q.Applications(ctx, stringArg(args, "userId"))
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("field %q is not supported", name))
	}
}

// complete shapes a decoded JSON value to the selection set of typ
func (e *executableSchema) complete(opCtx *graphql.OperationContext, value any, typ *ast.Type, sel ast.SelectionSet) any {
	if value == nil {
		if typ.Elem != nil && typ.NonNull {
			return []any{}
		}
		return nil
	}

	if typ.Elem != nil {
		list, _ := value.([]any)
		out := make([]any, len(list))
		for i, item := range list {
			out[i] = e.complete(opCtx, item, typ.Elem, sel)
		}
		return out
	}

	def := e.schema.Types[typ.Name()]
	if def == nil || def.Kind != ast.Object {
		return value
	}

	fields, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	out := &object{}
	for _, field := range graphql.CollectFields(opCtx, sel, []string{def.Name}) {
		if field.Name == "__typename" {
			out.set(field.Alias, def.Name)
			continue
		}
		fieldDef := def.Fields.ForName(field.Name)
		if fieldDef == nil {
			out.set(field.Alias, nil)
			continue
		}
		out.set(field.Alias, e.complete(opCtx, fields[jsonKey(field.Name)], fieldDef.Type, field.Selections))
	}
	return out
}

func fieldError(alias string, err error) *gqlerror.Error {
	return &gqlerror.Error{
		Err:        err,
		Message:    apperrors.PublicMessage(err),
		Path:       ast.Path{ast.PathName(alias)},
		Extensions: map[string]interface{}{"code": string(apperrors.TypeOf(err))},
	}
}

// toGeneric converts a resolver result to maps, slices and scalars
func toGeneric(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode field", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, apperrors.NewInternalError("failed to decode field", err)
	}
	return out, nil
}

// jsonKey maps a camelCase field name to the snake_case json tag
func jsonKey(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func intArg(args map[string]any, name string, fallback int) (int, error) {
	switch v := args[name].(type) {
	case nil:
		return fallback, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, apperrors.NewValidationError(name + " must be an integer")
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, apperrors.NewValidationError(name + " must be an integer")
		}
		return n, nil
	default:
		return 0, apperrors.NewValidationError(name + " must be an integer")
	}
}

// object is a JSON object that keeps the selection order of its keys
type object struct {
	keys   []string
	values []any
}

func (o *object) set(key string, value any) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
