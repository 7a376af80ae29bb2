// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/pdiddy/base-converter/internal/clipboard"
	"github.com/pdiddy/base-converter/internal/state"
	"github.com/pdiddy/base-converter/pkg/types"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Edit any base in a terminal session and watch the others follow",
	Long: `Interactive keeps one conversion session open. Pick a base, type a value,
and all four fields are printed again. Input that does not parse clears every
field. Copy sends a field's prefixed literal to the terminal clipboard
(OSC 52); Clear all resets the session.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

type actionKind int

const (
	actionEdit actionKind = iota
	actionCopy
	actionClear
	actionQuit
)

type action struct {
	kind  actionKind
	base  types.Base
	label string
}

func sessionActions() []action {
	var actions []action
	for _, b := range types.Bases {
		actions = append(actions, action{kind: actionEdit, base: b, label: "Edit " + b.Name()})
	}
	return append(actions,
		action{kind: actionCopy, label: "Copy"},
		action{kind: actionClear, label: "Clear all"},
		action{kind: actionQuit, label: "Quit"},
	)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	st := state.New()
	cb := clipboard.OSC52{W: os.Stdout}
	actions := sessionActions()

	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.label
	}

	for {
		sel := promptui.Select{Label: "Action", Items: labels, Size: len(labels)}
		idx, _, err := sel.Run()
		if err != nil {
			return promptDone(err)
		}

		a := actions[idx]
		switch a.kind {
		case actionEdit:
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("%s (base %d)", a.base.Name(), int(a.base)),
				Default:   st.Values()[a.base],
				AllowEdit: true,
			}
			text, err := prompt.Run()
			if err != nil {
				return promptDone(err)
			}
			st.Edit(a.base, text)
		case actionCopy:
			b, err := pickBase(st)
			if err != nil {
				return promptDone(err)
			}
			if !st.Copy(b, cb) {
				fmt.Fprintf(os.Stderr, "nothing to copy in %s\n", b.Name())
			}
		case actionClear:
			st.ClearAll()
		case actionQuit:
			return nil
		}

		writeFields(os.Stdout, st.Snapshot())
	}
}

func pickBase(st *state.State) (types.Base, error) {
	values := st.Values()
	items := make([]string, len(types.Bases))
	for i, b := range types.Bases {
		items[i] = fmt.Sprintf("%-12s %s", b.Name(), values.Literal(b))
	}
	sel := promptui.Select{Label: "Copy which base", Items: items, Size: len(items)}
	idx, _, err := sel.Run()
	if err != nil {
		return 0, err
	}
	return types.Bases[idx], nil
}

// promptDone ends the session quietly on Ctrl-C or Ctrl-D.
func promptDone(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("prompt: %w", err)
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
