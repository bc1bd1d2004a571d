package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/hashkit/quadmap"
	"github.com/hashkit/quadmap/quadratic"
)

var (
	configFile = flag.String("cfg", "", "toml operation script, the worked example runs if empty")
)

func main() {
	flag.Parse()

	cfg, err := parseConfigFromFile(*configFile)
	if err != nil {
		panic(fmt.Sprintf("failed to parse config from %q, error: %s", *configFile, err.Error()))
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	m, err := newTable(cfg)
	if err != nil {
		logger.Fatal("failed to create table", zap.Error(err))
	}
	run(logger, m, cfg.Ops)
}

func buildLogger(cfg LogConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	loggerConfig := zap.Config{
		Level:            level,
		Encoding:         cfg.Format,
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return loggerConfig.Build()
}

func newTable(cfg *Config) (quadmap.IHashMap[int], error) {
	if cfg.KeyOnly {
		s := quadratic.NewSet(cfg.Capacity)
		if err := s.MaxLoad(cfg.MaxLoad); err != nil {
			return quadmap.IHashMap[int]{}, err
		}
		s.GrowOnProbeFailure(!cfg.StrictProbing)
		return quadmap.FromSet[int](s), nil
	}

	m := quadratic.New[int](cfg.Capacity)
	if err := m.MaxLoad(cfg.MaxLoad); err != nil {
		return quadmap.IHashMap[int]{}, err
	}
	m.GrowOnProbeFailure(!cfg.StrictProbing)
	return quadmap.FromQuadratic(m), nil
}

type outcome struct {
	Op     Op
	Status quadratic.Status
	Value  int
	Found  bool
}

// run applies the operations in order and logs each outcome.
func run(logger *zap.Logger, m quadmap.IHashMap[int], ops []Op) []outcome {
	outcomes := make([]outcome, 0, len(ops))

	for _, op := range ops {
		out := outcome{Op: op}

		switch op.Kind {
		case opInsert:
			out.Status = m.Put(op.Key, op.Value)
			logStatus(logger, op, out.Status,
				zap.Int("value", op.Value),
				zap.Int("capacity", m.Capacity()),
				zap.Float32("load", m.Load()))
		case opRemove:
			out.Status = m.Remove(op.Key)
			logStatus(logger, op, out.Status, zap.Int("size", m.Size()))
		case opSearch:
			out.Value, out.Found = m.Get(op.Key)
			if out.Found {
				logger.Info(op.Kind, zap.Int("key", op.Key), zap.Int("value", out.Value))
			} else {
				logger.Info(op.Kind, zap.Int("key", op.Key), zap.String("status", quadratic.NotFound.String()))
			}
		case opPrint:
			logger.Info(op.Kind,
				zap.String("slots", m.String()),
				zap.Int("size", m.Size()),
				zap.Int("capacity", m.Capacity()))
		}

		outcomes = append(outcomes, out)
	}

	return outcomes
}

func logStatus(logger *zap.Logger, op Op, status quadratic.Status, fields ...zap.Field) {
	fields = append([]zap.Field{zap.Int("key", op.Key), zap.Stringer("status", status)}, fields...)
	if status.OK() {
		logger.Info(op.Kind, fields...)
		return
	}
	logger.Warn(op.Kind, fields...)
}
