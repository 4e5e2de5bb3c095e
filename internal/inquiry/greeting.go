package inquiry

import (
	"fmt"
	"strings"
)

// DefaultGreetingName is used when no name is given.
const DefaultGreetingName = "World"

// Greet returns "Hello, <name>!".
func Greet(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultGreetingName
	}
	return fmt.Sprintf("Hello, %s!", name)
}
