package domain

type ResponseKind int

const (
	ResponseOK ResponseKind = iota + 1
	ResponseError
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseOK:
		return "ok"
	case ResponseError:
		return "error"
	default:
		return "unknown"
	}
}

// Field is one result entry. Key is empty for bare tokens.
type Field struct {
	Key   string
	Value string
}

type Response struct {
	Kind      ResponseKind
	Status    string
	Command   string
	Message   string
	Fields    []Field
	Timestamp string
	// Token is the session credential a codec found in the response, if any.
	Token string
	// Raw is the representation written to the response log.
	Raw string
}

func (r Response) OK() bool {
	return r.Kind == ResponseOK
}

func (r Response) Lookup(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}
