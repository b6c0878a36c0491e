package domain

import (
	"fmt"
	"strings"
)

type ProtocolName string

const (
	ProtocolStrings  ProtocolName = "strings"
	ProtocolJSON     ProtocolName = "json"
	ProtocolProtobuf ProtocolName = "protobuf"
)

// Protocol describes how a codec presents itself in output and logs.
type Protocol struct {
	Name  ProtocolName
	Label string
	// AuthLogKey is the log key used for the authentication exchange.
	AuthLogKey string
}

// Protocols lists every protocol in menu order.
func Protocols() []ProtocolName {
	return []ProtocolName{ProtocolStrings, ProtocolJSON, ProtocolProtobuf}
}

func (p ProtocolName) Valid() bool {
	switch p {
	case ProtocolStrings, ProtocolJSON, ProtocolProtobuf:
		return true
	default:
		return false
	}
}

// ParseProtocolNames parses a comma-separated protocol list. An empty list
// selects every protocol; duplicates are dropped.
func ParseProtocolNames(raw string) ([]ProtocolName, error) {
	if strings.TrimSpace(raw) == "" || strings.TrimSpace(raw) == "all" {
		return Protocols(), nil
	}

	names := make([]ProtocolName, 0, 3)
	seen := make(map[ProtocolName]struct{}, 3)
	for _, part := range strings.Split(raw, ",") {
		name := ProtocolName(strings.ToLower(strings.TrimSpace(part)))
		if name == "" {
			continue
		}
		if !name.Valid() {
			return nil, fmt.Errorf("unsupported protocol %q", part)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no protocol selected")
	}
	return names, nil
}
