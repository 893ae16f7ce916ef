package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr, prevNoColor := Out, Err, color.NoColor
	Out, Err, color.NoColor = &out, &errOut, true
	t.Cleanup(func() {
		Out, Err, color.NoColor = prevOut, prevErr, prevNoColor
	})
	return &out, &errOut
}

func TestSuccessAddsCheckmarkOnce(t *testing.T) {
	out, _ := capture(t)
	Success("detected %s\n", "v2")
	Success("✓ already marked\n")
	assert.Equal(t, "✓ detected v2\n✓ already marked\n", out.String())
}

func TestWarningGoesToErr(t *testing.T) {
	out, errOut := capture(t)
	Warning("no prefixes added\n")
	assert.Empty(t, out.String())
	assert.Equal(t, "⚠️  no prefixes added\n", errOut.String())
}
