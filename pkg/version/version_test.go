package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	require := require.New(t)
	info := Get()
	require.Equal(gitVersion, info.GitVersion)
	require.Equal(runtime.Version(), info.GoVersion)
	require.Equal(runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestString(t *testing.T) {
	require.Equal(t, "v1.2.3", Info{GitVersion: "v1.2.3"}.String())
	require.Equal(t, "v1.2.3 (abc123)", Info{GitVersion: "v1.2.3", GitCommit: "abc123"}.String())
}
