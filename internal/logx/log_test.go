package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgconv/internal/logx"
)

func newBufLogger(lvl slog.Level) (*bytes.Buffer, logx.LoggerProvider) {
	buf := &bytes.Buffer{}
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: lvl})
	return buf, logx.Prov(slog.New(h))
}

func TestLevels(t *testing.T) {
	buf, prov := newBufLogger(slog.LevelInfo)
	logx.Debug(`hidden`, prov)
	logx.Info(`shown`, prov, `key`, 42)
	out := buf.String()
	assert.NotContains(t, out, `hidden`)
	assert.Contains(t, out, `shown`)
	assert.Contains(t, out, `key=42`)
}

func TestIsErr(t *testing.T) {
	buf, prov := newBufLogger(slog.LevelDebug)
	assert.False(t, logx.IsErr(nil, prov, slog.LevelError))
	assert.True(t, logx.IsErr(errors.Join(errors.New(`one`), errors.New(`two`)), prov, slog.LevelError))
	assert.Contains(t, buf.String(), `one`)
	assert.Contains(t, buf.String(), `two`)
	// nil provider must not panic
	assert.True(t, logx.IsErr(errors.New(`x`), nil, slog.LevelError))
}

func TestTimeIt2(t *testing.T) {
	buf, prov := newBufLogger(slog.LevelInfo)
	v, err := logx.TimeIt2(func() (int, error) { return 7, nil }, `measured`, prov)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Contains(t, buf.String(), `duration=`)

	_, err = logx.TimeIt2[int](nil, ``, prov)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logx.ParseLevel(`DEBUG`))
	assert.Equal(t, slog.LevelWarn, logx.ParseLevel(`warning`))
	assert.Equal(t, slog.LevelError, logx.ParseLevel(`error`))
	assert.Equal(t, slog.LevelInfo, logx.ParseLevel(`bogus`))
}
