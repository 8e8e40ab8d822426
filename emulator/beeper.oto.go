package emulator

import (
	"time"

	"github.com/ebitengine/oto/v3"
)

// Streams a Beeper to the host audio device through oto
type OtoBeeper struct {
	ctx    *oto.Context
	player *oto.Player
	Beeper *Beeper
}

// Creates a new OtoBeeper instance. Blocks until the audio device is
// ready, then starts playback (the stream is silent until the tone
// gate opens)
func NewOtoBeeper() (*OtoBeeper, error) {
	beeper := NewBeeper()

	op := &oto.NewContextOptions{
		SampleRate:   BEEPER_SAMPLE_RATE,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	player := ctx.NewPlayer(beeper)
	player.Play()

	return &OtoBeeper{
		ctx:    ctx,
		player: player,
		Beeper: beeper,
	}, nil
}

// Opens or closes the tone gate
func (ob *OtoBeeper) Gate(on bool) {
	ob.Beeper.Gate(on)
}

func (ob *OtoBeeper) Close() error {
	return ob.player.Close()
}
