package template

// Kind enumerates template node kinds.
type Kind uint8

const (
	// KindUnknown covers every upstream kind this package does not model.
	KindUnknown Kind = iota
	KindTag
	KindBlock
	KindCode
	KindText
	KindCase
	KindWhen
	KindConditional
	KindEach
)

// Type discriminants as written by the upstream parser.
const (
	TypeTag         = "Tag"
	TypeBlock       = "Block"
	TypeCode        = "Code"
	TypeText        = "Text"
	TypeCase        = "Case"
	TypeWhen        = "When"
	TypeConditional = "Conditional"
	TypeEach        = "Each"
)

// String returns the upstream type discriminant of the kind.
func (k Kind) String() string {
	switch k {
	case KindTag:
		return TypeTag
	case KindBlock:
		return TypeBlock
	case KindCode:
		return TypeCode
	case KindText:
		return TypeText
	case KindCase:
		return TypeCase
	case KindWhen:
		return TypeWhen
	case KindConditional:
		return TypeConditional
	case KindEach:
		return TypeEach
	default:
		return "unknown"
	}
}

// KindOf maps a type discriminant to its Kind.
func KindOf(typ string) Kind {
	switch typ {
	case TypeTag:
		return KindTag
	case TypeBlock:
		return KindBlock
	case TypeCode:
		return KindCode
	case TypeText:
		return KindText
	case TypeCase:
		return KindCase
	case TypeWhen:
		return KindWhen
	case TypeConditional:
		return KindConditional
	case TypeEach:
		return KindEach
	default:
		return KindUnknown
	}
}
