// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clipboard writes text to the system clipboard of the terminal the
// CLI runs in, using the OSC 52 escape sequence understood by most terminal
// emulators and multiplexers.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
)

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	WriteText(text string) error
}

// OSC52 sends text to the terminal clipboard by writing an escape sequence
// to W (normally os.Stdout).
type OSC52 struct {
	W io.Writer
}

// WriteText emits ESC ] 52 ; c ; <base64> BEL.
func (o OSC52) WriteText(text string) error {
	if o.W == nil {
		return fmt.Errorf("osc52: no terminal writer")
	}
	enc := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := fmt.Fprintf(o.W, "\x1b]52;c;%s\a", enc); err != nil {
		return fmt.Errorf("osc52: writing escape sequence: %w", err)
	}
	return nil
}
