package schema

// Kind enumerates the kinds of schema members.
type Kind int

const (
	LeafKind Kind = iota
	LeafListKind
	ContainerKind
	ListKind
	ChoiceKind
	CaseKind
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "leaf"
	case LeafListKind:
		return "leaf-list"
	case ContainerKind:
		return "container"
	case ListKind:
		return "list"
	case ChoiceKind:
		return "choice"
	case CaseKind:
		return "case"
	}
	return "<unknown kind>"
}
