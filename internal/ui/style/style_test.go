package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fergus/internal/ui/style"
)

func TestFreshness(t *testing.T) {
	tests := []struct {
		state     string
		wantIcon  string
		wantColor any
	}{
		{state: "fresh", wantIcon: style.Check, wantColor: style.Green},
		{state: "stale", wantIcon: style.Tilde, wantColor: style.Yellow},
		{state: "missing", wantIcon: style.Circle, wantColor: style.Slate},
		{state: "bogus", wantIcon: style.Circle, wantColor: style.Slate},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			icon, color := style.Freshness(tt.state)
			assert.Equal(t, tt.wantIcon, icon)
			assert.Equal(t, tt.wantColor, color)
		})
	}
}
