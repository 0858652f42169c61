package config

import _ "embed"

//go:embed folio.example.yaml
var example []byte

// Example returns a commented configuration file holding the built-in values.
func Example() []byte {
	out := make([]byte, len(example))
	copy(out, example)
	return out
}
