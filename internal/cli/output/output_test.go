package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyles_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, ColorsEnabled())
	assert.Equal(t, "text", Bold("text"))
	assert.Equal(t, "text", Dim("text"))
	assert.Equal(t, "text", Success("text"))
	assert.Equal(t, "text", Error("text"))
	assert.Equal(t, "text", Warning("text"))
}

func TestPrintStep(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer

	PrintStep(&buf, "Running roundtrip")

	assert.Equal(t, "  -> Running roundtrip\n", buf.String())
}

func TestPrintSuccess(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer

	PrintSuccess(&buf, "Wrote 1 record")

	assert.Equal(t, "+ Wrote 1 record\n", buf.String())
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "record", Plural(1, "record", "records"))
	assert.Equal(t, "records", Plural(0, "record", "records"))
	assert.Equal(t, "records", Plural(2, "record", "records"))
}
