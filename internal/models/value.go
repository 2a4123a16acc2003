package models

// ValueKind identifies the variant stored in a Value.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindNumber
	KindString
)

// Value is a small tagged variant over the three field value types that occur
// in questionnaire records and disease profiles (bool, number, string).
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	Str    string
}

func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Equal reports exact equality. Values of different kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool == other.Bool
	case KindNumber:
		return v.Number == other.Number
	case KindString:
		return v.Str == other.Str
	}
	return false
}
