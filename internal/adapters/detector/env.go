// Package detector selects styled or plain output for the current environment.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/fergus/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode represents how command output is rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeStyled renders icons and colors.
	ModeStyled
	// ModePlain renders plain text for pipes and CI logs.
	ModePlain
)

// DetectEnvironment returns the recommended output mode for stdout.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

func detect(isTTY bool, getenv func(string) string) OutputMode {
	ci := getenv("CI")
	if !isTTY || ci == "true" || ci == "1" {
		return ModePlain
	}
	return ModeStyled
}

// ResolveMode applies the --output flag to the detected mode.
// userFlag is one of "auto", "styled", "plain", "ci" or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "styled":
		return ModeStyled
	case "plain", "ci":
		return ModePlain
	default:
		return autoDetected
	}
}

// Profile returns the color profile selector for mode.
func Profile(mode OutputMode) func() termenv.Profile {
	if mode == ModeStyled {
		return output.ColorProfile
	}
	return output.ColorProfilePlain
}
