package app

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// beeper synthesizes short UI cues instead of shipping sample assets.
// Each cue is pre-rendered once as 16-bit stereo PCM.
type beeper struct {
	ctx     *audio.Context
	enabled bool
	insert  []byte
	del     []byte
	errTone []byte
	confirm []byte
}

func newBeeper(enabled bool) *beeper {
	b := &beeper{enabled: enabled}
	if !enabled {
		return b
	}
	b.ctx = audio.NewContext(sampleRate)
	b.insert = renderTone(880, 30, 0.18)
	b.del = renderTone(520, 30, 0.18)
	b.errTone = renderTone(180, 90, 0.25)
	b.confirm = renderTone(1240, 60, 0.2)
	return b
}

func renderTone(freq float64, durMs int, vol float64) []byte {
	n := sampleRate * durMs / 1000
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		// Linear fade-out avoids the click at the end of the tone.
		env := vol * (1 - float64(i)/float64(n))
		v := int16(env * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		buf[i*4+0] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

func (b *beeper) play(pcm []byte) {
	if !b.enabled || b.ctx == nil || len(pcm) == 0 {
		return
	}
	p := b.ctx.NewPlayerFromBytes(pcm)
	p.Play()
}

func (b *beeper) PlayInsert()  { b.play(b.insert) }
func (b *beeper) PlayDelete()  { b.play(b.del) }
func (b *beeper) PlayError()   { b.play(b.errTone) }
func (b *beeper) PlayConfirm() { b.play(b.confirm) }
