// Package bpml implements the semantic validation and process analysis
// engine of the BPML toolchain. It consumes the typed model tree produced by
// the parser front end, enforces the structural, referential, cycle and
// topology rules of the language and computes analytics over validated
// processes for the code generators and reporting tools.
package bpml

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/banzg00/bpml/pkg/storage"
)

// DefaultMaxPathDepth bounds path enumeration in the analyzer.
const DefaultMaxPathDepth = 50

type Engine struct {
	name         string
	logger       hclog.Logger
	persistence  storage.Storage
	snowflake    *snowflake.Node
	maxPathDepth int

	// analysis reports cached per document checksum and process name
	reportCache *expirable.LRU[string, *AnalysisReport]
}

type EngineOption = func(*Engine)

// NewEngine creates a new instance of the BPML engine.
func NewEngine(options ...EngineOption) *Engine {
	engine := Engine{
		name:         fmt.Sprintf("bpml-engine-%d", getGlobalSnowflakeIdGenerator().Generate().Int64()),
		logger:       hclog.Default().Named("bpml-engine"),
		snowflake:    getGlobalSnowflakeIdGenerator(),
		maxPathDepth: DefaultMaxPathDepth,
	}
	for _, option := range options {
		option(&engine)
	}
	if engine.reportCache == nil {
		engine.reportCache = expirable.NewLRU[string, *AnalysisReport](128, nil, 10*time.Minute)
	}
	return &engine
}

// EngineWithStorage makes the engine record validation runs in the given
// store.
func EngineWithStorage(persistence storage.Storage) EngineOption {
	return func(engine *Engine) {
		engine.persistence = persistence
	}
}

func EngineWithName(name string) EngineOption {
	return func(engine *Engine) {
		engine.name = name
	}
}

func EngineWithLogger(logger hclog.Logger) EngineOption {
	return func(engine *Engine) {
		engine.logger = logger
	}
}

// EngineWithMaxPathDepth overrides the path enumeration depth bound.
func EngineWithMaxPathDepth(depth int) EngineOption {
	return func(engine *Engine) {
		if depth > 0 {
			engine.maxPathDepth = depth
		}
	}
}

// EngineWithReportCache sizes the analysis report cache.
func EngineWithReportCache(size int, ttl time.Duration) EngineOption {
	return func(engine *Engine) {
		engine.reportCache = expirable.NewLRU[string, *AnalysisReport](size, nil, ttl)
	}
}

func (engine *Engine) Name() string {
	return engine.name
}

func (engine *Engine) generateKey() int64 {
	return engine.snowflake.Generate().Int64()
}
