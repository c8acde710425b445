// Package audio synthesizes the game's sound effects and background music.
// Sounds are generated on the fly with beep streamers, so no asset files
// are needed.
package audio

// Track is a looping background theme.
type Track int

const (
	TrackNone Track = iota
	TrackMenu
	TrackGame
)

// String returns the track name.
func (t Track) String() string {
	switch t {
	case TrackMenu:
		return "menu"
	case TrackGame:
		return "game"
	default:
		return "none"
	}
}

// Player is the fire-and-forget interface the platform drives.
// Calls must return immediately.
type Player interface {
	Shoot()
	Explosion()
	Music(t Track)
	Close()
}

// Nop is a silent Player, used for --mute and SSH sessions.
type Nop struct{}

func (Nop) Shoot()      {}
func (Nop) Explosion()  {}
func (Nop) Music(Track) {}
func (Nop) Close()      {}

var _ Player = Nop{}
