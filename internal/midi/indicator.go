package midi

// Indicator adapts a Player to the indicator interface so the blink train
// can be mirrored one-for-one as note events: On is note-on, Off is the
// matching note-off. Write failures are dropped; the serial line is a
// best-effort presentation channel and must never stall the blinker.
type Indicator struct {
	p        *Player
	channel  int
	key      int
	velocity int
}

// NewIndicator mirrors blinks as notes on the given channel and key.
func NewIndicator(p *Player, channel, key, velocity int) *Indicator {
	return &Indicator{p: p, channel: channel, key: key, velocity: velocity}
}

// On sends the note-on frame.
func (i *Indicator) On() {
	_ = i.p.NoteOn(i.channel, i.key, i.velocity)
}

// Off sends the note-off frame.
func (i *Indicator) Off() {
	_ = i.p.NoteOff(i.channel, i.key)
}
