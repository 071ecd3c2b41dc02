package difficulty

// Preset bundles every tunable physics and game-rule constant for one
// difficulty level. A Preset is immutable after construction; changing
// difficulty rebuilds the physics world rather than re-tuning live bodies.
type Preset struct {
	Name string

	// Gravity
	GravityX float64
	GravityY float64

	// Ball physics
	BallElasticity float64
	BallFriction   float64

	// Flipper physics
	FlipperElasticity      float64
	FlipperImpulse         float64
	FlipperSpringStiffness float64
	FlipperSpringDamping   float64
	FlipperRestAngle       float64

	// Bumper physics
	BumperElasticity float64
	BumperImpulse    float64

	// Plunger
	PlungerMaxPower   float64
	PlungerChargeRate float64

	// Game settings
	StartingBalls     int
	BallSaverDuration float64

	// Scoring
	ScoreMultiplier float64
}

var Easy = Preset{
	Name:                   "EASY",
	GravityX:               0,
	GravityY:               3200,
	BallElasticity:         0.8,
	BallFriction:           0.2,
	FlipperElasticity:      0.95,
	FlipperImpulse:         100000,
	FlipperSpringStiffness: 20000000, // softer return
	FlipperSpringDamping:   800000,
	FlipperRestAngle:       0.22, // wider flipper angle
	BumperElasticity:       1.8,
	BumperImpulse:          600,
	PlungerMaxPower:        2800,
	PlungerChargeRate:      4000, // slower charge, more control
	StartingBalls:          5,
	BallSaverDuration:      8.0,
	ScoreMultiplier:        0.8,
}

var Normal = Preset{
	Name:                   "NORMAL",
	GravityX:               0,
	GravityY:               4000,
	BallElasticity:         0.7,
	BallFriction:           0.3,
	FlipperElasticity:      0.85,
	FlipperImpulse:         90000,
	FlipperSpringStiffness: 25000000,
	FlipperSpringDamping:   1000000,
	FlipperRestAngle:       0.18,
	BumperElasticity:       1.5,
	BumperImpulse:          500,
	PlungerMaxPower:        2500,
	PlungerChargeRate:      5000,
	StartingBalls:          3,
	BallSaverDuration:      5.0,
	ScoreMultiplier:        1.0,
}

var Hard = Preset{
	Name:                   "HARD",
	GravityX:               0,
	GravityY:               5600,
	BallElasticity:         0.6,
	BallFriction:           0.4,
	FlipperElasticity:      0.75,
	FlipperImpulse:         80000,
	FlipperSpringStiffness: 30000000,
	FlipperSpringDamping:   1200000,
	FlipperRestAngle:       0.15,
	BumperElasticity:       1.3,
	BumperImpulse:          400,
	PlungerMaxPower:        2200,
	PlungerChargeRate:      6000,
	StartingBalls:          3,
	BallSaverDuration:      3.0,
	ScoreMultiplier:        1.5,
}

// Presets returns the selectable presets in cycling order.
func Presets() []Preset {
	return []Preset{Easy, Normal, Hard}
}
