// Package mensagens holds the generated Go types for mensagens.proto.
package mensagens

//go:generate protoc --go_out=. --go_opt=paths=source_relative mensagens.proto
