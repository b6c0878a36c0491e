package ports

// ResponseLog is an append-only sink of "<key>=<representation>" lines.
type ResponseLog interface {
	Append(key string, representation string) error
}
