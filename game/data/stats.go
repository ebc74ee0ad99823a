package data

// MaxStatExp is the largest stat experience value.
const MaxStatExp = 65535

// MaxStat caps every computed stat.
const MaxStat = 999

// DVs are the determinant values (0–15) of the four non-HP stats. The HP DV is
// derived from their low bits.
type DVs struct {
	Atk, Def, Spe, Spc uint8
}

// MaxDVs is the all-15 spread.
var MaxDVs = DVs{15, 15, 15, 15}

// HP returns the derived HP DV.
func (d DVs) HP() uint8 {
	return (d.Atk&1)<<3 | (d.Def&1)<<2 | (d.Spe&1)<<1 | d.Spc&1
}

// StatExp holds stat experience for all five stats.
type StatExp struct {
	HP, Atk, Def, Spe, Spc uint16
}

// MaxStatExpAll is the maximum stat experience in every stat.
var MaxStatExpAll = StatExp{MaxStatExp, MaxStatExp, MaxStatExp, MaxStatExp, MaxStatExp}

// Stats are computed stats.
type Stats struct {
	HP, Atk, Def, Spe, Spc uint16
}

// Get returns the stat indexed by s; accuracy and evasion have no stored value.
func (st *Stats) Get(s Stat) uint16 {
	switch s {
	case StatAttack:
		return st.Atk
	case StatDefense:
		return st.Def
	case StatSpeed:
		return st.Spe
	case StatSpecial:
		return st.Spc
	}
	return 0
}

// Set stores v as the stat indexed by s.
func (st *Stats) Set(s Stat, v uint16) {
	switch s {
	case StatAttack:
		st.Atk = v
	case StatDefense:
		st.Def = v
	case StatSpeed:
		st.Spe = v
	case StatSpecial:
		st.Spc = v
	}
}

func expBonus(exp uint16) int {
	if exp == 0 {
		return 0
	}
	root := isqrt(int(exp)-1) + 1
	if root > 255 {
		root = 255
	}
	return root / 4
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// CalcHP computes maximum HP.
func CalcHP(base, dv uint8, exp uint16, level uint8) uint16 {
	core := ((int(base)+int(dv))*2 + expBonus(exp)) * int(level) / 100
	return uint16(core + int(level) + 10)
}

// CalcStat computes a non-HP stat.
func CalcStat(base, dv uint8, exp uint16, level uint8) uint16 {
	core := ((int(base)+int(dv))*2 + expBonus(exp)) * int(level) / 100
	return uint16(core + 5)
}

// CalcStats computes all five stats of a species.
func CalcStats(b BaseStats, dvs DVs, exp StatExp, level uint8) Stats {
	return Stats{
		HP:  CalcHP(b.HP, dvs.HP(), exp.HP, level),
		Atk: CalcStat(b.Atk, dvs.Atk, exp.Atk, level),
		Def: CalcStat(b.Def, dvs.Def, exp.Def, level),
		Spe: CalcStat(b.Spe, dvs.Spe, exp.Spe, level),
		Spc: CalcStat(b.Spc, dvs.Spc, exp.Spc, level),
	}
}
