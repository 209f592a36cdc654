package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MixinNetwork/ratnum/logger"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	custom, err := Initialize("./config.example.toml")
	require.Nil(err)
	require.Equal(true, custom.Format.FractionOnly)
	require.Equal(int32(12), custom.Format.DecimalPlaces)
	require.Equal(logger.VERBOSE, custom.Log.Level)
	require.Equal("(?i)^div", custom.Log.Filter)
	require.Equal(5, custom.Log.Limiter)

	custom = Default()
	require.Equal(false, custom.Format.FractionOnly)
	require.Equal(int32(DefaultDecimalPlaces), custom.Format.DecimalPlaces)
	require.Equal(logger.INFO, custom.Log.Level)
	require.Equal("", custom.Log.Filter)

	dir := t.TempDir()
	file := filepath.Join(dir, "partial.toml")
	err = os.WriteFile(file, []byte("[format]\ndecimal-places = 0\n"), 0644)
	require.Nil(err)
	custom, err = Initialize(file)
	require.Nil(err)
	require.Equal(int32(0), custom.Format.DecimalPlaces)
	require.Equal(logger.INFO, custom.Log.Level)

	err = os.WriteFile(file, []byte("[log]\nlimiter = 2\n"), 0644)
	require.Nil(err)
	custom, err = Initialize(file)
	require.Nil(err)
	require.Equal(int32(DefaultDecimalPlaces), custom.Format.DecimalPlaces)
	require.Equal(2, custom.Log.Limiter)

	for _, p := range []string{"-1", "1000"} {
		err = os.WriteFile(file, []byte("[format]\ndecimal-places = "+p+"\n"), 0644)
		require.Nil(err)
		_, err = Initialize(file)
		require.NotNil(err, p)
	}

	err = os.WriteFile(file, []byte("[format\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)

	_, err = Initialize(filepath.Join(dir, "missing.toml"))
	require.NotNil(err)
}
