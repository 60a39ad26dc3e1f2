package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var (
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// decodeArg decodes args[name] into out and runs the binding validator over it
func decodeArg(args map[string]any, name string, out any) error {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(scalarHook),
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return shared.NewFieldError(name, "Invalid "+name+": "+err.Error())
	}

	if reflect.Indirect(reflect.ValueOf(out)).Kind() != reflect.Struct {
		return nil
	}
	if err := binding.Validator.ValidateStruct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return shared.NewFieldError(fe.Field(), fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
		}
		return shared.NewFieldError(name, err.Error())
	}
	return nil
}

// scalarHook converts ID and Decimal scalars from their wire forms
func scalarHook(from, to reflect.Type, data any) (any, error) {
	switch to {
	case uuidType:
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid ID %q", s)
		}
		return id, nil
	case decimalType:
		switch v := data.(type) {
		case string:
			return decimal.NewFromString(v)
		case json.Number:
			return decimal.NewFromString(v.String())
		case float64:
			return decimal.NewFromFloat(v), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		}
	}
	return data, nil
}

// idArg parses a required ID argument
func idArg(args map[string]any, name string) (uuid.UUID, error) {
	s, _ := args[name].(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, shared.NewFieldError(name, "Invalid ID format")
	}
	return id, nil
}

// idsArg parses an optional list of IDs
func idsArg(args map[string]any, name string) ([]uuid.UUID, error) {
	raw, _ := args[name].([]any)
	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		s, _ := v.(string)
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, shared.NewFieldError(name, fmt.Sprintf("Invalid ID in %s: %v", name, v))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// stringsArg reads an optional list of strings
func stringsArg(args map[string]any, name string) []string {
	raw, _ := args[name].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

type paginationInput struct {
	Page      *int   `json:"page"`
	Limit     *int   `json:"limit"`
	Search    string `json:"search"`
	SortOrder string `json:"sortOrder"`
}

// listingArg reads paginationInput, defaulting absent page and limit
func listingArg(args map[string]any, defaultLimit, maxLimit int) (shared.ListingInput, error) {
	var p paginationInput
	if err := decodeArg(args, "paginationInput", &p); err != nil {
		return shared.ListingInput{}, err
	}

	in := shared.ListingInput{Page: 1, Limit: defaultLimit, Search: p.Search, SortOrder: p.SortOrder}
	if p.Page != nil {
		in.Page = *p.Page
	}
	if p.Limit != nil {
		in.Limit = *p.Limit
	}
	if maxLimit > 0 && in.Limit > maxLimit {
		in.Limit = maxLimit
	}
	return in, nil
}
