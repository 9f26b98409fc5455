package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugfRespectsLevel(t *testing.T) {
	var b strings.Builder
	log := New(&b, 2)

	log.Debugf(1, "one")
	log.Debugf(2, "two")
	log.Debugf(3, "three")

	assert.Equal(t, "DBG_1 one\nDBG_2 two\n", b.String())
}

func TestWarnfAlwaysWrites(t *testing.T) {
	var b strings.Builder
	log := New(&b, 0)

	log.Debugf(1, "hidden")
	log.Warnf("kept %d", 7)

	assert.Equal(t, "WARNING kept 7\n", b.String())
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Debugf(1, "x")
	log.Warnf("y")
	assert.False(t, log.Enabled(1))
}

func TestRunIDStable(t *testing.T) {
	log := New(&strings.Builder{}, 0)
	assert.NotEmpty(t, log.RunID())
	assert.Equal(t, log.RunID(), log.RunID())
}
