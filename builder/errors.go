package builder

import "errors"

// Sentinel errors for constructor validation. Branch with errors.Is; the
// impl files attach parameter context via %w wrapping.

// ErrTooFewNodes reports a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability reports an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidRadius reports a non-positive or non-finite connection radius.
var ErrInvalidRadius = errors.New("builder: radius must be positive and finite")

// ErrNeedRandSource reports a stochastic constructor invoked without an RNG;
// supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBuildFailed reports an orchestration failure such as a nil constructor.
var ErrBuildFailed = errors.New("builder: construction failed")
