package domain

import "time"

type RequestKind int

const (
	RequestAuth RequestKind = iota + 1
	RequestOperation
	RequestInfo
	RequestLogout
)

func (k RequestKind) String() string {
	switch k {
	case RequestAuth:
		return "auth"
	case RequestOperation:
		return "operation"
	case RequestInfo:
		return "info"
	case RequestLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// ClientTimestampLayout matches the ISO-8601 local timestamps the servers expect.
const ClientTimestampLayout = "2006-01-02T15:04:05.000000"

func FormatClientTimestamp(t time.Time) string {
	return t.Format(ClientTimestampLayout)
}

type Param struct {
	Name  string
	Value string
}

// SumArgument keeps the caller's raw number list next to its parsed form so a
// codec can choose which one goes on the wire.
type SumArgument struct {
	Raw     string
	Numbers []float64
}

// Parsed returns Numbers when the caller supplied them, otherwise it parses Raw.
func (s SumArgument) Parsed() ([]float64, error) {
	if s.Numbers != nil {
		return s.Numbers, nil
	}
	return ParseNumbers(s.Raw)
}

// Request is a tagged union: Kind selects which fields are meaningful.
type Request struct {
	Kind RequestKind

	// Auth
	ClientID        string
	ClientTimestamp string

	// Operation, Info and Logout
	Token     string
	Operation OperationName
	Params    []Param
	Sum       *SumArgument
	InfoType  string

	// Timestamp is the session timestamp taken at connect time.
	Timestamp string
}

func NewAuthRequest(clientID, timestamp string) Request {
	return Request{Kind: RequestAuth, ClientID: clientID, ClientTimestamp: timestamp, Timestamp: timestamp}
}

func NewOperationRequest(token string, operation OperationName, timestamp string, params ...Param) Request {
	return Request{Kind: RequestOperation, Token: token, Operation: operation, Params: params, Timestamp: timestamp}
}

func NewSumRequest(token string, raw string, timestamp string) Request {
	req := NewOperationRequest(token, OperationNameSum, timestamp)
	req.Sum = &SumArgument{Raw: raw}
	return req
}

func NewInfoRequest(token, infoType, timestamp string) Request {
	if infoType == "" {
		infoType = DefaultInfoType
	}
	return Request{Kind: RequestInfo, Token: token, InfoType: infoType, Timestamp: timestamp}
}

func NewLogoutRequest(token, timestamp string) Request {
	return Request{Kind: RequestLogout, Token: token, Timestamp: timestamp}
}

// Param looks up a named operation parameter.
func (r Request) Param(name string) (string, bool) {
	for _, p := range r.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
