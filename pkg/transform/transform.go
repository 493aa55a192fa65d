package transform

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/augmentlab/augment/pkg/errors"
	"github.com/augmentlab/augment/pkg/observability"
	"github.com/augmentlab/augment/pkg/pixel"
	"github.com/augmentlab/augment/pkg/replay"
)

// DefaultProbability is the fire probability used when WithProbability is
// not given.
const DefaultProbability = 0.5

// Transform wraps a concrete operation with the fire/params/dispatch/replay
// machinery. Create instances with New; the zero value is not usable.
type Transform struct {
	op Op

	id          string
	p           float64
	alwaysApply bool

	// replay state
	deterministic   bool
	saveKey         string
	params          Params
	replayMode      bool
	appliedInReplay bool

	additionalTargets map[string]string
	logger            *log.Logger
}

// Option configures a Transform at construction.
type Option func(*Transform)

// WithProbability sets the fire probability. Must be in [0, 1].
func WithProbability(p float64) Option {
	return func(t *Transform) { t.p = p }
}

// WithAlwaysApply makes the transform fire on every call regardless of
// probability.
func WithAlwaysApply(always bool) Option {
	return func(t *Transform) { t.alwaysApply = always }
}

// WithID assigns a stable instance ID used as the replay-store key. A
// pipeline should assign explicit IDs when it needs recordings to survive
// process boundaries; the default is a fresh UUID.
func WithID(id string) Option {
	return func(t *Transform) { t.id = id }
}

// WithLogger sets the logger used for warnings and debug traces. The
// default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(t *Transform) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New wraps op in a Transform. Fails with INVALID_ARGUMENT when op is nil
// or the configured probability is outside [0, 1].
func New(op Op, opts ...Option) (*Transform, error) {
	if op == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "operation must not be nil")
	}
	t := &Transform{
		op:                op,
		p:                 DefaultProbability,
		saveKey:           DefaultSaveKey,
		params:            Params{},
		additionalTargets: make(map[string]string),
		logger:            log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.p < 0 || t.p > 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"probability must be in [0, 1], got %v", t.p)
	}
	if t.id == "" {
		t.id = uuid.NewString()
	}
	return t, nil
}

// ID returns the stable instance identifier.
func (t *Transform) ID() string { return t.id }

// Name returns the wrapped operation's canonical identifier.
func (t *Transform) Name() string { return t.op.Name() }

// Probability returns the configured fire probability.
func (t *Transform) Probability() float64 { return t.p }

// AlwaysApply reports whether the transform fires unconditionally.
func (t *Transform) AlwaysApply() bool { return t.alwaysApply }

// SaveKey returns the call-data key under which a deterministic pass
// expects the replay store.
func (t *Transform) SaveKey() string { return t.saveKey }

// Deterministic reports whether the transform records its parameters.
func (t *Transform) Deterministic() bool { return t.deterministic }

// ReplayMode reports whether the transform reapplies recorded parameters.
func (t *Transform) ReplayMode() bool { return t.replayMode }

// AppliedInReplay reports whether this instance fired during the recorded
// pass and therefore reapplies its parameters in replay mode.
func (t *Transform) AppliedInReplay() bool { return t.appliedInReplay }

// LastParams returns a snapshot of the most recently generated parameters.
func (t *Transform) LastParams() Params { return t.params.Clone() }

// AddTargets merges caller-declared aliases into the additional-target
// table: each new key dispatches exactly like the canonical key it maps to,
// enabling multiple same-kind items in one call (e.g. {"image2": "image"}).
// Later registrations of the same key win. The canonical name must exist;
// note that a dual transform still needs at least one key resolving to
// "image" for row/column context - that precondition is the caller's.
func (t *Transform) AddTargets(aliases map[string]string) error {
	for key, canonical := range aliases {
		if key == "" {
			return errors.New(errors.ErrCodeInvalidArgument, "alias key must not be empty")
		}
		if _, ok := canonicalKinds[canonical]; !ok {
			return errors.New(errors.ErrCodeInvalidArgument,
				"unknown canonical target %q for alias %q", canonical, key)
		}
	}
	for key, canonical := range aliases {
		t.additionalTargets[key] = canonical
	}
	return nil
}

// SetDeterministic toggles parameter recording. saveKey selects the
// call-data key holding the replay store; empty keeps the current key, and
// "params" is reserved and fails with INVALID_ARGUMENT. Returns the
// transform for chaining.
func (t *Transform) SetDeterministic(flag bool, saveKey string) (*Transform, error) {
	if saveKey == ReservedParamsKey {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"%q save key is reserved", ReservedParamsKey)
	}
	t.deterministic = flag
	if saveKey != "" {
		t.saveKey = saveKey
	}
	return t, nil
}

// SetReplayMode toggles playback mode without touching recorded state.
// Driven by a controlling pipeline, never by the transform itself.
func (t *Transform) SetReplayMode(on bool) { t.replayMode = on }

// EnterReplay puts the transform in replay mode with the given recorded
// parameters; subsequent calls reapply exactly that draw.
func (t *Transform) EnterReplay(params Params) {
	t.replayMode = true
	t.appliedInReplay = true
	t.params = params.Clone()
}

// EnterReplaySkipped puts the transform in replay mode as "not applied
// originally": subsequent calls pass all data through untouched.
func (t *Transform) EnterReplaySkipped() {
	t.replayMode = true
	t.appliedInReplay = false
}

// Apply invokes the transform on a set of named targets and returns the
// transformed mapping, preserving every input key. Data must be supplied
// under non-empty names; nil values pass through as nil. rng is the
// explicit random source for this call and may be nil only when no draw
// can occur (replay mode).
//
// force bypasses the probability check for this call only, exactly like
// the always-apply flag.
func (t *Transform) Apply(rng *rand.Rand, force bool, data Data) (Data, error) {
	if data == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"data must be supplied as named targets, e.g. {\"image\": img}")
	}
	if _, ok := data[""]; ok {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"target names must not be empty")
	}

	if t.replayMode {
		observability.Transforms().OnReplay(t.op.Name(), t.id, t.appliedInReplay)
		if t.appliedInReplay {
			return t.applyWithParams(t.params, data)
		}
		// Skipped in the recorded pass: completely untouched, not even
		// shape validation.
		return data, nil
	}

	if rng == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"a random source is required outside replay mode")
	}

	fire := force || t.alwaysApply || rng.Float64() < t.p
	if !fire {
		t.logger.Debug("transform skipped", "transform", t.op.Name(), "p", t.p)
		observability.Transforms().OnSkip(t.op.Name(), t.id)
		return data, nil
	}
	observability.Transforms().OnFire(t.op.Name(), t.id)

	params, err := t.generateParams(rng, data)
	if err != nil {
		return nil, err
	}

	if t.deterministic {
		if err := t.record(params, data); err != nil {
			return nil, err
		}
	}
	t.params = params.Clone()

	return t.applyWithParams(params, data)
}

// generateParams produces the shared parameter mapping for one firing:
// target-independent parameters first, then target-dependent ones merged
// on top.
func (t *Transform) generateParams(rng *rand.Rand, data Data) (Params, error) {
	params := Params{}
	if op, ok := t.op.(ParamsOp); ok {
		generated, err := op.Params(rng)
		if err != nil {
			return nil, err
		}
		if generated != nil {
			params = generated.Clone()
		}
	}

	op, ok := t.op.(TargetDependentOp)
	if !ok {
		return params, nil
	}
	required := op.TargetsAsParams()
	if len(required) == 0 {
		return params, nil
	}
	targets := make(Data, len(required))
	for _, key := range required {
		value, ok := data[key]
		if !ok {
			return nil, errors.New(errors.ErrCodeMissingTarget,
				"%s requires target %q among the call data", t.op.Name(), key)
		}
		targets[key] = value
	}
	dependent, err := op.ParamsDependentOnTargets(rng, targets)
	if err != nil {
		return nil, err
	}
	for key, value := range dependent {
		params[key] = value
	}
	return params, nil
}

// record snapshots the generated parameters into the caller-owned replay
// store travelling under the save key, keyed by this instance's ID.
func (t *Transform) record(params Params, data Data) error {
	if op, ok := t.op.(TargetDependentOp); ok && len(op.TargetsAsParams()) > 0 {
		// Legal but risky: recorded parameters may not match future
		// differing target data.
		t.logger.Warn("deterministic transform depends on targets; replay against other data may be incorrect",
			"transform", t.op.Name())
	}
	store, ok := data[t.saveKey].(*replay.Store)
	if !ok {
		return errors.New(errors.ErrCodeInvalidArgument,
			"deterministic mode requires a *replay.Store under the %q key", t.saveKey)
	}
	store.Record(t.id, params.Clone())
	t.appliedInReplay = true
	observability.Transforms().OnRecord(t.op.Name(), t.id, t.saveKey)
	return nil
}

// applyWithParams finalizes the parameter mapping and dispatches every
// non-nil data item to its apply function. Every input key appears in the
// output; keys the operation does not recognize pass through unmodified.
func (t *Transform) applyWithParams(params Params, data Data) (Data, error) {
	merged, err := t.updateParams(params.Clone(), data)
	if err != nil {
		return nil, err
	}

	var dependence map[string][]string
	if op, ok := t.op.(TargetDependenceOp); ok {
		dependence = op.TargetDependence()
	}

	out := make(Data, len(data))
	for key, value := range data {
		if value == nil {
			out[key] = nil
			continue
		}
		// Fresh mapping per target: a kernel mutating its params must not
		// leak the mutation into sibling targets.
		p := merged.Clone()
		for _, dep := range dependence[key] {
			p[dep] = data[dep]
		}
		result, err := t.applyTarget(t.resolveKind(key), key, value, p)
		if err != nil {
			return nil, err
		}
		out[key] = result
	}
	return out, nil
}

// updateParams augments the mapping with the operation's declared
// interpolation and fill values, plus the mandatory row/column context
// taken from the image target.
func (t *Transform) updateParams(params Params, data Data) (Params, error) {
	if op, ok := t.op.(Interpolated); ok {
		params[ParamInterpolation] = op.Interpolation()
	}
	if op, ok := t.op.(FillValued); ok {
		params[ParamFillValue] = op.FillValue()
	}
	if op, ok := t.op.(MaskFillValued); ok {
		params[ParamMaskFillValue] = op.MaskFillValue()
	}

	value, ok := data[KeyImage]
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingTarget,
			"%q target is required to establish row/column context", KeyImage)
	}
	img, ok := value.(*pixel.Buffer)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"target %q must be *pixel.Buffer, got %T", KeyImage, value)
	}
	params[ParamRows] = img.Rows
	params[ParamCols] = img.Cols
	return params, nil
}

// Definition describes a transform for the external serialization
// collaborator: the canonical operation identifier, the base arguments
// common to all transforms, and the operation's declared init arguments.
type Definition struct {
	Name     string
	BaseArgs map[string]any
	InitArgs map[string]any
}

// BaseInitArgs returns the base arguments common to all transforms.
func (t *Transform) BaseInitArgs() map[string]any {
	return map[string]any{
		"always_apply": t.alwaysApply,
		"p":            t.p,
	}
}

// Definition exports the transform's construction-time configuration.
// Fails with NOT_SERIALIZABLE when the operation does not declare its init
// argument names.
func (t *Transform) Definition() (*Definition, error) {
	op, ok := t.op.(Serializable)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotSerializable,
			"%s is not serializable because it does not declare init argument names", t.op.Name())
	}
	names := op.InitArgNames()
	initArgs := make(map[string]any, len(names))
	for _, name := range names {
		initArgs[name] = op.InitArg(name)
	}
	return &Definition{
		Name:     t.op.Name(),
		BaseArgs: t.BaseInitArgs(),
		InitArgs: initArgs,
	}, nil
}
