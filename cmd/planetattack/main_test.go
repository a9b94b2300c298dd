package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchPrintsOneRowPerRun(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), options{ticks: 20, runs: 2, seed: 9, seedSet: true}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "RUN"))
	assert.Equal(t, []string{"0", "9", "20"}, strings.Fields(lines[1])[:3])
	assert.Equal(t, []string{"1", "10", "20"}, strings.Fields(lines[2])[:3])
}

func TestRunRejectsMissingConfig(t *testing.T) {
	err := run(context.Background(), options{config: "does-not-exist.yaml", ticks: 1, runs: 1}, &bytes.Buffer{})
	assert.Error(t, err)
}
