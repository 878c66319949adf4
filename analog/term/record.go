package term

import (
	"errors"
	"fmt"
)

// Record is the self-describing serialized form of a term: a string-keyed
// mapping with the variant name under the "type" key and the constructor
// parameters under the remaining keys. Term-valued parameters are nested
// Records, recursively. The structure is plain enough to embed in any
// string-keyed persistence format; it survives an encoding/json round
// trip.
//
// Complex scalars with a non-zero imaginary part are encoded as
// {"real": ..., "imaginary": ...} mappings; purely real scalars are
// encoded as plain numbers.
type Record map[string]any

// ErrUnknownType is returned by [Deserialize] when a record's "type"
// field names no known term variant.
var ErrUnknownType = errors.New("term: unknown term type")

// Serialize converts a term tree into its Record form. Sub-terms are
// serialized recursively.
func Serialize(t Term) Record {
	switch v := t.(type) {
	case Constant:
		return Record{"type": "Constant", "value": encodeScalar(v.Value)}
	case Polynomial:
		coefficients := make([]any, len(v.Coefficients))
		for i, c := range v.Coefficients {
			coefficients[i] = encodeScalar(c)
		}
		return Record{"type": "Polynomial", "coefficients": coefficients}
	case Exp:
		return Record{"type": "Exp", "exponent": Serialize(v.Exponent)}
	case Absolute:
		return Record{"type": "Absolute", "value": Serialize(v.Value)}
	case Negative:
		return Record{"type": "Negative", "value": Serialize(v.Value)}
	case Sum:
		return Record{"type": "Sum", "terms": encodeTerms(v.Terms)}
	case Difference:
		return Record{"type": "Difference", "terms": encodeTerms(v.Terms)}
	case Product:
		return Record{"type": "Product", "terms": encodeTerms(v.Terms), "transform": v.Transform}
	case Quotient:
		return Record{
			"type":        "Quotient",
			"numerator":   Serialize(v.Numerator),
			"denominator": Serialize(v.Denominator),
		}
	default:
		// unreachable: the variant set is sealed
		panic("term: unknown term variant")
	}
}

// Deserialize reconstructs a term tree from its Record form. Nested
// records (detected by the presence of the "type" field) are resolved
// recursively. An unrecognized variant name fails with [ErrUnknownType].
func Deserialize(record Record) (Term, error) {
	tag, ok := record["type"].(string)
	if !ok {
		return nil, errors.New("term: record has no type field")
	}

	switch tag {
	case "Constant":
		value, err := decodeScalar(record["value"])
		if err != nil {
			return nil, fmt.Errorf("term: Constant value: %w", err)
		}
		return Constant{Value: value}, nil

	case "Polynomial":
		coefficients, err := decodeScalars(record["coefficients"])
		if err != nil {
			return nil, fmt.Errorf("term: Polynomial coefficients: %w", err)
		}
		return Polynomial{Coefficients: coefficients}, nil

	case "Exp":
		exponent, err := decodeTerm(record["exponent"])
		if err != nil {
			return nil, fmt.Errorf("term: Exp exponent: %w", err)
		}
		return Exp{Exponent: exponent}, nil

	case "Absolute":
		value, err := decodeTerm(record["value"])
		if err != nil {
			return nil, fmt.Errorf("term: Absolute value: %w", err)
		}
		return Absolute{Value: value}, nil

	case "Negative":
		value, err := decodeTerm(record["value"])
		if err != nil {
			return nil, fmt.Errorf("term: Negative value: %w", err)
		}
		return Negative{Value: value}, nil

	case "Sum":
		terms, err := decodeTerms(record["terms"])
		if err != nil {
			return nil, fmt.Errorf("term: Sum terms: %w", err)
		}
		return Sum{Terms: terms}, nil

	case "Difference":
		terms, err := decodeTerms(record["terms"])
		if err != nil {
			return nil, fmt.Errorf("term: Difference terms: %w", err)
		}
		return Difference{Terms: terms}, nil

	case "Product":
		terms, err := decodeTerms(record["terms"])
		if err != nil {
			return nil, fmt.Errorf("term: Product terms: %w", err)
		}
		transform, _ := record["transform"].(bool)
		return Product{Terms: terms, Transform: transform}, nil

	case "Quotient":
		numerator, err := decodeTerm(record["numerator"])
		if err != nil {
			return nil, fmt.Errorf("term: Quotient numerator: %w", err)
		}
		denominator, err := decodeTerm(record["denominator"])
		if err != nil {
			return nil, fmt.Errorf("term: Quotient denominator: %w", err)
		}
		return Quotient{Numerator: numerator, Denominator: denominator}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
}

func encodeScalar(v complex128) any {
	if imag(v) == 0 {
		return real(v)
	}
	return Record{"real": real(v), "imaginary": imag(v)}
}

func encodeTerms(terms []Term) []any {
	out := make([]any, len(terms))
	for i, t := range terms {
		out[i] = Serialize(t)
	}
	return out
}

func decodeScalar(v any) (complex128, error) {
	switch x := v.(type) {
	case float64:
		return complex(x, 0), nil
	case int:
		return complex(float64(x), 0), nil
	case complex128:
		return x, nil
	default:
		record, ok := asRecord(v)
		if !ok {
			return 0, fmt.Errorf("cannot decode %T as a scalar", v)
		}
		re, okRe := record["real"].(float64)
		im, okIm := record["imaginary"].(float64)
		if !okRe || !okIm {
			return 0, fmt.Errorf("cannot decode %v as a complex scalar", record)
		}
		return complex(re, im), nil
	}
}

func decodeScalars(v any) ([]complex128, error) {
	switch x := v.(type) {
	case []complex128:
		return x, nil
	case []float64:
		out := make([]complex128, len(x))
		for i, f := range x {
			out[i] = complex(f, 0)
		}
		return out, nil
	case []any:
		out := make([]complex128, len(x))
		for i, e := range x {
			scalar, err := decodeScalar(e)
			if err != nil {
				return nil, err
			}
			out[i] = scalar
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot decode %T as a scalar sequence", v)
	}
}

func decodeTerm(v any) (Term, error) {
	record, ok := asRecord(v)
	if !ok {
		return nil, fmt.Errorf("cannot decode %T as a term record", v)
	}
	return Deserialize(record)
}

func decodeTerms(v any) ([]Term, error) {
	elements, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot decode %T as a term sequence", v)
	}
	out := make([]Term, len(elements))
	for i, e := range elements {
		t, err := decodeTerm(e)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func asRecord(v any) (Record, bool) {
	switch x := v.(type) {
	case Record:
		return x, true
	case map[string]any:
		return Record(x), true
	default:
		return nil, false
	}
}
