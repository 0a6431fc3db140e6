package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	confComplete = `
---
concurrency: 4
agent: motionmodel-test
ignorerobots: true
lenient: true
format: json5
timeout: 3
addr: ":9200"
...
`
	confMinimal = `
---
lenient: true
...
`
)

func TestLoad(t *testing.T) {
	cnf, errCnf := Load([]byte(confComplete))
	require.NoError(t, errCnf)
	assert.Equal(t, &Config{
		Concurrency:  4,
		Agent:        "motionmodel-test",
		IgnoreRobots: true,
		Lenient:      true,
		Format:       FormatJSON5,
		Timeout:      3,
		Addr:         ":9200",
	}, cnf)

	cnf, errCnf = Load([]byte(confMinimal))
	require.NoError(t, errCnf)
	assert.Equal(t, 2, cnf.Concurrency)
	assert.Equal(t, "motionmodel", cnf.Agent)
	assert.Equal(t, FormatAuto, cnf.Format)
	assert.Equal(t, "10s", cnf.TimeoutDuration().String())
	assert.True(t, cnf.Lenient)
}

func TestLoadInvalid(t *testing.T) {
	for _, yamlString := range []string{
		"concurrency: 0",
		"timeout: -1",
		"format: xml",
		"concurrency: [",
	} {
		_, errCnf := Load([]byte(yamlString))
		assert.Error(t, errCnf, yamlString)
	}
}

func TestGet(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(confComplete), 0o644))
	cnf, errCnf := Get(filename)
	require.NoError(t, errCnf)
	assert.Equal(t, 4, cnf.Concurrency)

	_, errCnf = Get(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, errCnf)
}
