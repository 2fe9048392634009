package xdg_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/imgconv/internal/xdg"
)

func TestConfigFile(t *testing.T) {
	p := xdg.ConfigFile(`imgconv`, `imgconv.conf`)
	assert.True(t, strings.HasSuffix(p, filepath.Join(`imgconv`, `imgconv.conf`)))

	_, ok := xdg.FindConfigFile(`imgconv-test-does-not-exist`, `none.conf`)
	assert.False(t, ok)
}
