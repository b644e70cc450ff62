package app

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
	sysclip "golang.design/x/clipboard"

	"fieldbox/pkg/textinput"
)

// systemClipboard prefers the golang.design backend, which talks to the
// display server directly, and falls back to the atotto shell-out backend
// when the former cannot initialize (headless X, missing cgo deps).
type systemClipboard struct {
	native bool
}

func newSystemClipboard() *systemClipboard {
	c := &systemClipboard{}
	if err := sysclip.Init(); err == nil {
		c.native = true
	}
	return c
}

func (c *systemClipboard) Copy(s string) error {
	if c.native {
		sysclip.Write(sysclip.FmtText, []byte(s))
		return nil
	}
	if err := atotto.WriteAll(s); err != nil {
		return fmt.Errorf("%w: %v", textinput.ErrClipboard, err)
	}
	return nil
}

func (c *systemClipboard) Paste() (string, error) {
	if c.native {
		return string(sysclip.Read(sysclip.FmtText)), nil
	}
	s, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", textinput.ErrClipboard, err)
	}
	return s, nil
}
