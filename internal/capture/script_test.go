package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceScript(t *testing.T) {
	s := presenceScript(".invoice-canvas")
	assert.Contains(t, s, `".invoice-canvas"`)
	assert.Contains(t, s, "querySelector")
}

func TestStabilizeScript(t *testing.T) {
	s := stabilizeScript(".invoice-canvas")

	assert.Contains(t, s, `".invoice-canvas"`)
	assert.Contains(t, s, savedStylesSlot)
	// Every overridden property must be recorded before the override
	for _, p := range styleProps {
		assert.Contains(t, s, `"`+p+`"`)
	}
	assert.Contains(t, s, `setProperty("position", "absolute")`)
	assert.Contains(t, s, `setProperty("z-index", "9999")`)
	assert.Contains(t, s, "scrollTo(0, 0)")
}

func TestMeasureScript(t *testing.T) {
	s := measureScript(".invoice-canvas")
	assert.Contains(t, s, "scrollWidth")
	assert.Contains(t, s, "scrollHeight")
}

func TestRestoreScript(t *testing.T) {
	s := restoreScript(".invoice-canvas")

	assert.Contains(t, s, savedStylesSlot)
	// Unset properties come back as unset, not empty strings
	assert.Contains(t, s, "removeProperty")
	assert.Contains(t, s, "setProperty")
	assert.Contains(t, s, "delete window."+savedStylesSlot)
}

func TestJSStringArray(t *testing.T) {
	assert.Equal(t, `[]`, jsStringArray(nil))
	assert.Equal(t, `["a"]`, jsStringArray([]string{"a"}))
	assert.Equal(t, `["a", "b-c"]`, jsStringArray([]string{"a", "b-c"}))
}
