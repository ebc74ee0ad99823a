package battle

import "github.com/kasuganosora/pkmnsim/game/data"

// payDayCoins is the amount one Pay Day hit scatters.
func payDayCoins(level uint8) uint32 {
	return 2 * uint32(level)
}

// scatterCoins adds Pay Day's coins to p's purse. They are collected by
// whoever reads Side.Coins after the battle.
func (b *Battle) scatterCoins(p Player) {
	b.side(p).Coins += payDayCoins(b.active(p).Level)
	b.emit(&EventActivate{Player: p, Condition: "Pay Day", Move: data.MovePayDay})
}
