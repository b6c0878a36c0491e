package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type OperationCode int

const (
	OperationSum OperationCode = iota + 1
	OperationEcho
	OperationTimestamp
	OperationStatus
	OperationHistory
	OperationInfo
)

// OperationName is the wire name of a business operation.
type OperationName string

const (
	OperationNameSum       OperationName = "soma"
	OperationNameEcho      OperationName = "echo"
	OperationNameTimestamp OperationName = "timestamp"
	OperationNameStatus    OperationName = "status"
	OperationNameHistory   OperationName = "historico"
)

const (
	DefaultEchoMessage = "Hello"
	DefaultInfoType    = "basico"
)

var operationCodeNames = map[OperationCode]string{
	OperationSum:       "sum",
	OperationEcho:      "echo",
	OperationTimestamp: "timestamp",
	OperationStatus:    "status",
	OperationHistory:   "history",
	OperationInfo:      "info",
}

var operationAliases = map[string]OperationCode{
	"sum":       OperationSum,
	"soma":      OperationSum,
	"echo":      OperationEcho,
	"timestamp": OperationTimestamp,
	"status":    OperationStatus,
	"history":   OperationHistory,
	"historico": OperationHistory,
	"info":      OperationInfo,
}

func (c OperationCode) Valid() bool {
	_, ok := operationCodeNames[c]
	return ok
}

func (c OperationCode) String() string {
	if name, ok := operationCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(c))
}

// WireName maps a business operation code to the name carried by OP requests.
// Info is not an OP request and has no wire name.
func (c OperationCode) WireName() (OperationName, bool) {
	switch c {
	case OperationSum:
		return OperationNameSum, true
	case OperationEcho:
		return OperationNameEcho, true
	case OperationTimestamp:
		return OperationNameTimestamp, true
	case OperationStatus:
		return OperationNameStatus, true
	case OperationHistory:
		return OperationNameHistory, true
	default:
		return "", false
	}
}

// ParseOperationCode accepts a menu code ("1".."6") or an operation name.
func ParseOperationCode(raw string) (OperationCode, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return 0, fmt.Errorf("operation is required")
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		code := OperationCode(n)
		if !code.Valid() {
			return 0, fmt.Errorf("%w: code %d", ErrUnknownOperation, n)
		}
		return code, nil
	}

	code, ok := operationAliases[trimmed]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, raw)
	}
	return code, nil
}

// ParseNumbers splits a comma-separated list, skipping blank entries. Only
// finite numbers are accepted.
func ParseNumbers(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	numbers := make([]float64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, trimmed)
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}

// FormatNumber renders a float the way the demonstration servers print them:
// integral values keep a trailing ".0".
func FormatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if math.IsInf(n, 0) || math.IsNaN(n) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func JoinNumbers(numbers []float64) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, FormatNumber(n))
	}
	return strings.Join(parts, ",")
}
