// Package args turns a positional command-line token stream into typed,
// validated network-configuration values.
package args

import "fmt"

type IpVer int

const (
	IPv4 IpVer = 4
	IPv6 IpVer = 6
)

func (v IpVer) String() string {
	return fmt.Sprintf("IPv%d", int(v))
}

type Action int

const (
	ActionAdd Action = iota
	ActionDel
)

type Toggle int

const (
	ToggleEnable Toggle = iota
	ToggleDisable
)

// Cursor scans an argument list left to right. Tokens are never mutated,
// the position only moves forward.
type Cursor struct {
	tokens []string
	pos    int
}

func New(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// PeekNext returns the token one position past the current one.
func (c *Cursor) PeekNext() (string, bool) {
	if c.pos+1 >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos+1], true
}

func (c *Cursor) Advance() error {
	if c.pos >= len(c.tokens) {
		return fmt.Errorf("not enough arguments")
	}
	c.pos++
	return nil
}

// ConsumeText returns the current token and moves past it.
func (c *Cursor) ConsumeText() (string, error) {
	arg, ok := c.Peek()
	if !ok {
		return "", fmt.Errorf("not enough arguments")
	}
	c.pos++
	return arg, nil
}

// ExpectEnd fails if any token is still unconsumed.
func (c *Cursor) ExpectEnd() error {
	if arg, ok := c.Peek(); ok {
		return fmt.Errorf("unexpected arguments: %s", arg)
	}
	return nil
}
