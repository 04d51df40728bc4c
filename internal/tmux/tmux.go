// Package tmux opens quickpanel in a tmux popup via exec.
// Popup only works inside tmux (TMUX env set); the popup attaches to the
// current client automatically.
package tmux

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// InTmux reports whether the process runs inside a tmux client.
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// PopupArgs builds the tmux argument list for a popup of width x height cells
// running argv. -E closes the popup when the command exits.
func PopupArgs(width, height int, argv []string) []string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = Quote(a)
	}
	return []string{
		"display-popup", "-E",
		"-w", strconv.Itoa(width),
		"-h", strconv.Itoa(height),
		strings.Join(quoted, " "),
	}
}

// Popup runs argv inside a tmux popup and blocks until it closes.
func Popup(ctx context.Context, width, height int, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("tmux display-popup: empty command")
	}
	cmd := exec.CommandContext(ctx, "tmux", PopupArgs(width, height, argv)...)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux display-popup: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return nil
}

// Quote returns s as a single POSIX shell word. tmux hands the popup command
// to the default shell, so every argument is quoted.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./=:,+@%", r)
}
