package vocab

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-lexbool/koanf/solvers"
	"github.com/goliatone/go-lexbool/lexbool"
	"github.com/goliatone/go-lexbool/logger"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/copystructure"
)

var (
	DefaultDelimiter          = "."
	DefaultDefinitionFilepath = "config/vocabulary.json"
	DefaultLoadTimeout        = 30 * time.Second
)

// Container loads a vocabulary Definition from one or more providers and
// fixes it onto a lexbool.Vocabulary. Providers are ordered by priority, the
// loaded tree runs through the configured solvers, and the result is decoded
// and validated before it can be applied.
type Container struct {
	K              *koanf.Koanf
	def            *Definition
	providers      []Provider
	mustValidate   bool
	strictMerge    bool
	loadTimeout    time.Duration
	delimiter      string
	definitionPath string
	solvers        []solvers.ConfigSolver
	solverPasses   int
	logger         logger.Logger

	loaders []ProviderBuilder
}

func New(opts ...Option) *Container {
	c := &Container{
		mustValidate:   true,
		strictMerge:    true,
		def:            &Definition{},
		delimiter:      DefaultDelimiter,
		loadTimeout:    DefaultLoadTimeout,
		definitionPath: DefaultDefinitionFilepath,
		logger:         logger.NewDefaultLogger("vocab"),
		solverPasses:   1,
		solvers: []solvers.ConfigSolver{
			solvers.NewVariablesSolver("${", "}"),
			solvers.NewExpressionSolver("{{", "}}"),
		},
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}

	c.newConfig()

	return c
}

func (c *Container) newConfig() {
	c.K = koanf.NewWithConf(koanf.Conf{
		Delim:       c.delimiter,
		StrictMerge: c.strictMerge,
	})
}

func (c *Container) WithValidation(v bool) *Container {
	c.mustValidate = v
	return c
}

func (c *Container) WithTimeout(timeout time.Duration) *Container {
	c.loadTimeout = timeout
	return c
}

func (c *Container) WithDefinitionPath(p string) *Container {
	c.definitionPath = p
	return c
}

func (c *Container) WithSolver(slvrs ...solvers.ConfigSolver) *Container {
	c.solvers = append(c.solvers, slvrs...)
	return c
}

// WithSolvers replaces the solver list, allowing explicit ordering.
func (c *Container) WithSolvers(slvrs ...solvers.ConfigSolver) *Container {
	c.solvers = append([]solvers.ConfigSolver{}, slvrs...)
	return c
}

// WithSolverPasses sets the maximum number of solver passes (minimum 1).
func (c *Container) WithSolverPasses(passes int) *Container {
	if passes < 1 {
		passes = 1
	}
	c.solverPasses = passes
	return c
}

func (c *Container) WithLogger(l logger.Logger) *Container {
	c.logger = l
	return c
}

func (c *Container) WithProvider(factories ...ProviderBuilder) *Container {
	for _, factory := range factories {
		if factory != nil {
			c.loaders = append(c.loaders, factory)
		}
	}
	return c
}

func (c *Container) Validate() error {
	if err := c.def.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "vocabulary validation failed").
			WithTextCode("VOCAB_VALIDATION_FAILED")
	}
	return nil
}

func (c *Container) MustLoadWithDefaults() {
	c.MustLoad(context.Background())
}

func (c *Container) LoadWithDefaults() error {
	return c.Load(context.Background())
}

func (c *Container) MustLoad(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		panic(fmt.Sprintf("Failed to load vocabulary: %v", err))
	}
}

func (c *Container) Load(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.loadTimeout)
	defer cancel()

	// reset tree state i.e. so if we remove keys they are gone
	c.newConfig()

	if len(c.loaders) > 0 {
		c.providers = nil
		for i, factory := range c.loaders {
			provider, err := factory(c)
			if err != nil {
				return errors.Wrap(err, errors.CategoryOperation, "failed to create provider").
					WithTextCode("PROVIDER_CREATION_FAILED").
					WithMetadata(map[string]any{
						"factory_index":   i,
						"total_factories": len(c.loaders),
					})
			}
			c.providers = append(c.providers, provider)
		}
	}

	// providers could have been set via options
	if len(c.providers) == 0 && len(c.loaders) == 0 && c.definitionPath != "" {
		c.logger.Debug("no providers specified, loading default file provider...")
		f := OptionalProvider(FileProvider(c.definitionPath))
		p, err := f(c)
		if err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to create default file provider").
				WithTextCode("DEFAULT_PROVIDER_FAILED").
				WithMetadata(map[string]any{
					"definition_path": c.definitionPath,
				})
		}
		c.providers = append(c.providers, p)
	}

	// validate our providers
	for i, src := range c.providers {
		if err := src.Validate(); err != nil {
			return errors.Wrap(err, errors.CategoryValidation, "invalid provider source type").
				WithTextCode("INVALID_PROVIDER_TYPE").
				WithMetadata(map[string]any{
					"source_type":    string(src.Type()),
					"provider_index": i,
				})
		}
	}

	sort.Slice(c.providers, func(i, j int) bool {
		return c.providers[i].Priority() < c.providers[j].Priority()
	})

	// load providers
	for i, source := range c.providers {
		c.logger.Debug("= loading source: %s", source.Type())
		if err := source.Load(ctx, c.K); err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to load vocabulary from source").
				WithTextCode("VOCAB_LOAD_FAILED").
				WithMetadata(map[string]any{
					"source_type":   string(source.Type()),
					"source_index":  i,
					"total_sources": len(c.providers),
				})
		}
	}

	// run all solvers
	if len(c.solvers) > 0 {
		maxPasses := c.solverPasses
		if maxPasses < 1 {
			maxPasses = 1
		}
		for pass := 0; pass < maxPasses; pass++ {
			before, ok := snapshotConfig(c.K)
			for _, solver := range c.solvers {
				solver.Solve(c.K)
			}
			if !ok {
				continue
			}
			after := c.K.Raw()
			if reflect.DeepEqual(before, after) {
				break
			}
		}
	}

	decoded, err := c.decodeDefinition()
	if err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "failed to decode vocabulary data").
			WithTextCode("VOCAB_DECODE_FAILED").
			WithMetadata(map[string]any{
				"delimiter":    c.delimiter,
				"strict_merge": c.strictMerge,
			})
	}
	c.def = decoded

	if c.mustValidate {
		if err := c.Validate(); err != nil {
			return err // already wrapped in Validate() method
		}
	}

	return nil
}

// Definition returns a deep copy of the loaded definition so callers cannot
// mutate the container state.
func (c *Container) Definition() *Definition {
	cloned, err := copystructure.Copy(c.def)
	if err != nil {
		// Definition holds only string slices; Copy cannot fail on it
		out := *c.def
		return &out
	}
	return cloned.(*Definition)
}

// Apply fixes the loaded token lists onto v. See Definition.Apply for the
// once-only semantics of the returned pair.
func (c *Container) Apply(v *lexbool.Vocabulary) (truthyFixed, falseyFixed bool) {
	return c.def.Apply(v)
}

func snapshotConfig(k *koanf.Koanf) (any, bool) {
	if k == nil {
		return nil, false
	}
	raw := k.Raw()
	cloned, err := copystructure.Copy(raw)
	if err != nil {
		return raw, false
	}
	return cloned, true
}
