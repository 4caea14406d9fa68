package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/customizer"
)

func TestPrintError_Text(t *testing.T) {
	jsonOutput = false

	var buf bytes.Buffer
	printError(&buf, "invalid answers file", errors.New("unknown field"))
	assert.Equal(t, "Error: invalid answers file: unknown field\n", buf.String())

	buf.Reset()
	printError(&buf, "something broke", nil)
	assert.Equal(t, "Error: something broke\n", buf.String())
}

func TestPrintError_JSON(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	printError(&buf, "invalid answers file", errors.New("unknown field"))

	var obj map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &obj))
	assert.Equal(t, "invalid answers file", obj["error"]["message"])
	assert.Equal(t, "unknown field", obj["error"]["detail"])
}

func TestThemeFor_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, customizer.PlainTheme{}, themeFor(&buf))
}

func TestTerminalTheme_KeepsText(t *testing.T) {
	th := terminalTheme{}
	for _, s := range []string{th.Heading("Next steps:"), th.Success("ok"), th.Failure("bad"), th.Hint("tip")} {
		assert.NotEmpty(t, s)
	}
	assert.Contains(t, th.Success("✅ Setup complete!"), "✅ Setup complete!")
}

func TestNewRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"dir", "answers", "strict"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
	for _, name := range []string{"json", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag --%s", name)
	}
	assert.Contains(t, cmd.Version, "commit:")
}
