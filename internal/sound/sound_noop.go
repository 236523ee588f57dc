//go:build ci

package sound

// Cue names looked up by the UI.
const (
	CueJoin     = "join"
	CueStart    = "start"
	CueQuestion = "question"
	CueMove     = "move"
)

type SoundManager struct{}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(name string) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
