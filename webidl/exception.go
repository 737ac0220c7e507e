package webidl

import "fmt"

// DOMException is https://heycam.github.io/webidl/#idl-DOMException
type DOMException struct {
	Name    string
	Message string
	Code    uint16
}

func (e *DOMException) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// https://heycam.github.io/webidl/#syntaxerror
var ErrSyntax = &DOMException{
	Name:    "SyntaxError",
	Message: "the string did not match the expected pattern",
	Code:    12,
}
