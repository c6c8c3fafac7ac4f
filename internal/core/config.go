package core

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is handed to games on every reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving Step
	Seed     int64 // RNG seed; 0 lets the platform pick one

	// Difficulty is the preset a game starts with ("easy", "normal",
	// "hard"). Games read it on their first Reset only, where empty or
	// unknown names mean normal; later Resets keep the player's choice.
	Difficulty string

	// ConfigPath points at a YAML file overriding the game's defaults.
	ConfigPath string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// GameState is the summary every game reports to the platform.
type GameState struct {
	Score      int
	HighScore  int
	GameOver   bool
	Paused     bool
	Difficulty string
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}
