package fishing

import "math"

// Tuning holds the playtested encounter constants. DefaultTuning reproduces
// the shipped balance; config can override any field.
type Tuning struct {
	InitialTension float64 `yaml:"initial_tension"`
	TensionCeiling float64 `yaml:"tension_ceiling"` // internal clamp
	SnapTension    float64 `yaml:"snap_tension"`    // tension >= this snaps the line
	SlackTension   float64 `yaml:"slack_tension"`   // tension below this accumulates slack

	// Progress per second while reeling: max(floor, base - (d-1)*step).
	ProgressRateBase  float64 `yaml:"progress_rate_base"`
	ProgressRateStep  float64 `yaml:"progress_rate_step"`
	ProgressRateFloor float64 `yaml:"progress_rate_floor"`
	ProgressCeiling   float64 `yaml:"progress_ceiling"`

	// Progress lost per second while not reeling: base + d*step.
	ProgressDecayBase float64 `yaml:"progress_decay_base"`
	ProgressDecayStep float64 `yaml:"progress_decay_step"`

	// Tension gained per second while reeling: base + d*step.
	ReelGainBase float64 `yaml:"reel_gain_base"`
	ReelGainStep float64 `yaml:"reel_gain_step"`

	// Tension bled per second while not reeling: max(floor, base - d*step).
	ReleaseLossBase  float64 `yaml:"release_loss_base"`
	ReleaseLossStep  float64 `yaml:"release_loss_step"`
	ReleaseLossFloor float64 `yaml:"release_loss_floor"`

	// Jerks: first interval drawn from [InitialJerkMin, InitialJerkMax],
	// later ones from [JerkMin, JerkMax].
	InitialJerkMin   float64 `yaml:"initial_jerk_min"`
	InitialJerkMax   float64 `yaml:"initial_jerk_max"`
	JerkMin          float64 `yaml:"jerk_min"`
	JerkMax          float64 `yaml:"jerk_max"`
	JerkTensionBase  float64 `yaml:"jerk_tension_base"`
	JerkTensionStep  float64 `yaml:"jerk_tension_step"`
	JerkProgressStep float64 `yaml:"jerk_progress_step"` // penalty = d*step

	// Slack window: base - min(maxCut, (d-1)*step) seconds.
	SlackWindowBase   float64 `yaml:"slack_window_base"`
	SlackWindowStep   float64 `yaml:"slack_window_step"`
	SlackWindowMaxCut float64 `yaml:"slack_window_max_cut"`
	SlackRecoveryRate float64 `yaml:"slack_recovery_rate"` // fraction of dt removed while taut

	// Pull toward the boat.
	PullDepth       float64 `yaml:"pull_depth"`
	PullRateBase    float64 `yaml:"pull_rate_base"`
	PullRateStep    float64 `yaml:"pull_rate_step"`
	PullMaxFraction float64 `yaml:"pull_max_fraction"`
}

// DefaultTuning returns the shipped balance.
func DefaultTuning() Tuning {
	return Tuning{
		InitialTension: 35,
		TensionCeiling: 120,
		SnapTension:    100,
		SlackTension:   9,

		ProgressRateBase:  0.14,
		ProgressRateStep:  0.02,
		ProgressRateFloor: 0.05,
		ProgressCeiling:   1.1,

		ProgressDecayBase: 0.025,
		ProgressDecayStep: 0.02,

		ReelGainBase: 22,
		ReelGainStep: 8,

		ReleaseLossBase:  18,
		ReleaseLossStep:  2,
		ReleaseLossFloor: 8,

		InitialJerkMin:   1.8,
		InitialJerkMax:   3.6,
		JerkMin:          1.4,
		JerkMax:          3.2,
		JerkTensionBase:  10,
		JerkTensionStep:  6,
		JerkProgressStep: 0.06,

		SlackWindowBase:   1.6,
		SlackWindowStep:   0.22,
		SlackWindowMaxCut: 0.9,
		SlackRecoveryRate: 0.5,

		PullDepth:       -4,
		PullRateBase:    0.25,
		PullRateStep:    0.08,
		PullMaxFraction: 0.4,
	}
}

// ProgressRate is progress per second while reeling.
func (t Tuning) ProgressRate(d float64) float64 {
	return math.Max(t.ProgressRateFloor, t.ProgressRateBase-(d-1)*t.ProgressRateStep)
}

// ProgressDecay is progress lost per second while not reeling.
func (t Tuning) ProgressDecay(d float64) float64 {
	return t.ProgressDecayBase + d*t.ProgressDecayStep
}

// ReelGain is tension gained per second while reeling.
func (t Tuning) ReelGain(d float64) float64 {
	return t.ReelGainBase + d*t.ReelGainStep
}

// ReleaseLoss is tension bled per second while not reeling.
func (t Tuning) ReleaseLoss(d float64) float64 {
	return math.Max(t.ReleaseLossFloor, t.ReleaseLossBase-d*t.ReleaseLossStep)
}

// JerkTension is the tension spike of one jerk.
func (t Tuning) JerkTension(d float64) float64 {
	return t.JerkTensionBase + d*t.JerkTensionStep
}

// JerkPenalty is the progress lost to one jerk.
func (t Tuning) JerkPenalty(d float64) float64 {
	return t.JerkProgressStep * d
}

// SlackThreshold is how long the line may stay slack before the fish
// escapes. Harder fish forgive less.
func (t Tuning) SlackThreshold(d float64) float64 {
	return t.SlackWindowBase - math.Min(t.SlackWindowMaxCut, (d-1)*t.SlackWindowStep)
}

// PullRate is the per-second interpolation rate toward the boat.
func (t Tuning) PullRate(d float64) float64 {
	return t.PullRateBase + (d-1)*t.PullRateStep
}
