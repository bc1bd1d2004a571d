package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hashkit/quadmap/quadratic"
	"github.com/hashkit/quadmap/shared"
)

func TestDefaultScenario(t *testing.T) {
	cfg, err := parseConfigFromFile("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, float32(shared.DefaultMaxLoad), cfg.MaxLoad)
	require.Len(t, cfg.Ops, 10)

	m, err := newTable(cfg)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	outcomes := run(zap.New(core), m, cfg.Ops)
	require.Len(t, outcomes, 10)

	for _, out := range outcomes[:5] {
		assert.Equal(t, quadratic.Inserted, out.Status)
	}
	assert.True(t, outcomes[5].Found)
	assert.Equal(t, 100, outcomes[5].Value)
	assert.True(t, outcomes[6].Found)
	assert.Equal(t, 50, outcomes[6].Value)
	assert.Equal(t, quadratic.Removed, outcomes[7].Status)
	assert.False(t, outcomes[8].Found)

	assert.Equal(t, 10, logs.Len())
	printed := logs.FilterMessage(opPrint).All()
	require.Len(t, printed, 1)
	assert.Equal(t, "_ _ _ 3 _ 5 _ _ _ 20 10", printed[0].ContextMap()["slots"])
}

func TestKeyOnlyDuplicateIsWarned(t *testing.T) {
	cfg, err := parseConfig(`
key-only = true

[[op]]
kind = "insert"
key = 15

[[op]]
kind = "insert"
key = 15

[[op]]
kind = "remove"
key = 100
`)
	require.NoError(t, err)

	m, err := newTable(cfg)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	outcomes := run(zap.New(core), m, cfg.Ops)

	assert.Equal(t, quadratic.Inserted, outcomes[0].Status)
	assert.Equal(t, quadratic.DuplicateKey, outcomes[1].Status)
	assert.Equal(t, quadratic.NotFound, outcomes[2].Status)
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 2, logs.FilterField(zap.Stringer("status", quadratic.DuplicateKey)).Len()+
		logs.FilterField(zap.Stringer("status", quadratic.NotFound)).Len())
}

func TestStrictProbing(t *testing.T) {
	cfg, err := parseConfig(`
capacity = 5
strict-probing = true

[[op]]
kind = "insert"
key = 10

[[op]]
kind = "insert"
key = 20

[[op]]
kind = "insert"
key = 15

[[op]]
kind = "insert"
key = 5
`)
	require.NoError(t, err)

	m, err := newTable(cfg)
	require.NoError(t, err)

	outcomes := run(zap.NewNop(), m, cfg.Ops)
	assert.Equal(t, quadratic.ProbeLimitExceeded, outcomes[3].Status)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 5, m.Capacity())
}

func TestInvalidConfig(t *testing.T) {
	_, err := parseConfig(`
[[op]]
kind = "upsert"
`)
	assert.ErrorIs(t, err, errUnknownOp)

	_, err = parseConfig(`max-load = 1.5`)
	assert.ErrorIs(t, err, shared.ErrOutOfRange)

	_, err = parseConfig(`capacity = "five"`)
	assert.Error(t, err)

	_, err = buildLogger(LogConfig{Level: "loud", Format: "console"})
	assert.Error(t, err)
}
