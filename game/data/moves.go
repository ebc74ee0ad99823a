package data

// MoveID identifies a generation I move. Zero is "no move".
type MoveID uint8

const (
	MoveNone MoveID = iota
	MovePound
	MoveKarateChop
	MoveDoubleSlap
	MoveCometPunch
	MoveMegaPunch
	MovePayDay
	MoveFirePunch
	MoveIcePunch
	MoveThunderPunch
	MoveScratch
	MoveViceGrip
	MoveGuillotine
	MoveRazorWind
	MoveSwordsDance
	MoveCut
	MoveGust
	MoveWingAttack
	MoveWhirlwind
	MoveFly
	MoveBind
	MoveSlam
	MoveVineWhip
	MoveStomp
	MoveDoubleKick
	MoveMegaKick
	MoveJumpKick
	MoveRollingKick
	MoveSandAttack
	MoveHeadbutt
	MoveHornAttack
	MoveFuryAttack
	MoveHornDrill
	MoveTackle
	MoveBodySlam
	MoveWrap
	MoveTakeDown
	MoveThrash
	MoveDoubleEdge
	MoveTailWhip
	MovePoisonSting
	MoveTwineedle
	MovePinMissile
	MoveLeer
	MoveBite
	MoveGrowl
	MoveRoar
	MoveSing
	MoveSupersonic
	MoveSonicBoom
	MoveDisable
	MoveAcid
	MoveEmber
	MoveFlamethrower
	MoveMist
	MoveWaterGun
	MoveHydroPump
	MoveSurf
	MoveIceBeam
	MoveBlizzard
	MovePsybeam
	MoveBubbleBeam
	MoveAuroraBeam
	MoveHyperBeam
	MovePeck
	MoveDrillPeck
	MoveSubmission
	MoveLowKick
	MoveCounter
	MoveSeismicToss
	MoveStrength
	MoveAbsorb
	MoveMegaDrain
	MoveLeechSeed
	MoveGrowth
	MoveRazorLeaf
	MoveSolarBeam
	MovePoisonPowder
	MoveStunSpore
	MoveSleepPowder
	MovePetalDance
	MoveStringShot
	MoveDragonRage
	MoveFireSpin
	MoveThunderShock
	MoveThunderbolt
	MoveThunderWave
	MoveThunder
	MoveRockThrow
	MoveEarthquake
	MoveFissure
	MoveDig
	MoveToxic
	MoveConfusion
	MovePsychic
	MoveHypnosis
	MoveMeditate
	MoveAgility
	MoveQuickAttack
	MoveRage
	MoveTeleport
	MoveNightShade
	MoveMimic
	MoveScreech
	MoveDoubleTeam
	MoveRecover
	MoveHarden
	MoveMinimize
	MoveSmokescreen
	MoveConfuseRay
	MoveWithdraw
	MoveDefenseCurl
	MoveBarrier
	MoveLightScreen
	MoveHaze
	MoveReflect
	MoveFocusEnergy
	MoveBide
	MoveMetronome
	MoveMirrorMove
	MoveSelfDestruct
	MoveEggBomb
	MoveLick
	MoveSmog
	MoveSludge
	MoveBoneClub
	MoveFireBlast
	MoveWaterfall
	MoveClamp
	MoveSwift
	MoveSkullBash
	MoveSpikeCannon
	MoveConstrict
	MoveAmnesia
	MoveKinesis
	MoveSoftBoiled
	MoveHighJumpKick
	MoveGlare
	MoveDreamEater
	MovePoisonGas
	MoveBarrage
	MoveLeechLife
	MoveLovelyKiss
	MoveSkyAttack
	MoveTransform
	MoveBubble
	MoveDizzyPunch
	MoveSpore
	MoveFlash
	MovePsywave
	MoveSplash
	MoveAcidArmor
	MoveCrabhammer
	MoveExplosion
	MoveFurySwipes
	MoveBonemerang
	MoveRest
	MoveRockSlide
	MoveHyperFang
	MoveSharpen
	MoveConversion
	MoveTriAttack
	MoveSuperFang
	MoveSlash
	MoveSubstitute
	MoveStruggle
)

// Effect is the move class that decides how the engine resolves a move.
type Effect uint8

const (
	EffectNone Effect = iota

	// Secondary effects rolled after damage against Move.Chance.
	EffectBurnChance
	EffectFreezeChance
	EffectParalyzeChance
	EffectPoisonChance
	EffectConfusionChance
	EffectFlinchChance
	EffectStatDownChance
	EffectTwineedle

	// Multi-hit and locking damage.
	EffectDoubleHit
	EffectMultiHit
	EffectTrapping
	EffectThrashing
	EffectRage
	EffectCharge
	EffectFlyDig
	EffectHyperBeam

	// Damage that bypasses the formula or modifies it.
	EffectFixedDamage
	EffectLevelDamage
	EffectPsywave
	EffectSuperFang
	EffectOHKO
	EffectCounter
	EffectBide
	EffectSwift
	EffectRecoil
	EffectStruggle
	EffectJumpKick
	EffectDrainHP
	EffectDreamEater
	EffectExplode
	EffectPayDay

	// Status and stat moves.
	EffectSleep
	EffectPoison
	EffectParalyze
	EffectConfusion
	EffectStatUp
	EffectStatDown
	EffectLeechSeed
	EffectDisable

	// Self and field moves.
	EffectFocusEnergy
	EffectMist
	EffectLightScreen
	EffectReflect
	EffectHaze
	EffectHeal
	EffectRest
	EffectSubstitute
	EffectTransform
	EffectConversion
	EffectMimic
	EffectMetronome
	EffectMirrorMove
	EffectSwitchAndTeleport
	EffectSplash
)

// Stat indexes a stat stage.
type Stat uint8

const (
	StatAttack Stat = iota
	StatDefense
	StatSpeed
	StatSpecial
	StatAccuracy
	StatEvasion
)

var statNames = [...]string{"atk", "def", "spe", "spc", "accuracy", "evasion"}

func (s Stat) String() string {
	if int(s) < len(statNames) {
		return statNames[s]
	}
	return "???"
}

// Move is an entry of the move table.
type Move struct {
	ID       MoveID
	Name     string
	Effect   Effect
	Power    uint8
	Type     Type
	Accuracy uint8 // percent; 0 means no accuracy check
	PP       uint8
	Priority int8
	Chance   uint8 // secondary chance out of 256, or a fixed damage amount
	Stat     Stat  // stat changed by EffectStatUp/Down/DownChance
	Stages   int8
	HighCrit bool
}

// Damaging reports whether the move goes through the damage formula or a
// fixed damage rule.
func (m *Move) Damaging() bool {
	switch m.Effect {
	case EffectFixedDamage, EffectLevelDamage, EffectPsywave, EffectSuperFang,
		EffectOHKO, EffectCounter, EffectBide:
		return true
	}
	return m.Power > 0
}

// SelfTargeting reports whether the move acts only on its user or the field.
func (m *Move) SelfTargeting() bool {
	switch m.Effect {
	case EffectStatUp, EffectFocusEnergy, EffectMist, EffectLightScreen,
		EffectReflect, EffectHaze, EffectHeal, EffectRest, EffectSubstitute,
		EffectMetronome, EffectMirrorMove, EffectSwitchAndTeleport, EffectSplash,
		EffectBide, EffectConversion:
		return true
	}
	return false
}

// AccuracyByte converts the percent accuracy to the 0–255 scale.
func (m *Move) AccuracyByte() int {
	return int(m.Accuracy) * 255 / 100
}

const (
	c10 = 26  // 10%
	c20 = 52  // 20%
	c30 = 77  // 30%
	c33 = 85  // 33.2%
	c40 = 103 // 40%
)

var moves = [...]Move{
	{MoveNone, "(none)", EffectNone, 0, Normal, 0, 0, 0, 0, 0, 0, false},
	{MovePound, "Pound", EffectNone, 40, Normal, 100, 35, 0, 0, 0, 0, false},
	{MoveKarateChop, "Karate Chop", EffectNone, 50, Normal, 100, 25, 0, 0, 0, 0, true},
	{MoveDoubleSlap, "Double Slap", EffectMultiHit, 15, Normal, 85, 10, 0, 0, 0, 0, false},
	{MoveCometPunch, "Comet Punch", EffectMultiHit, 18, Normal, 85, 15, 0, 0, 0, 0, false},
	{MoveMegaPunch, "Mega Punch", EffectNone, 80, Normal, 85, 20, 0, 0, 0, 0, false},
	{MovePayDay, "Pay Day", EffectPayDay, 40, Normal, 100, 20, 0, 0, 0, 0, false},
	{MoveFirePunch, "Fire Punch", EffectBurnChance, 75, Fire, 100, 15, 0, c10, 0, 0, false},
	{MoveIcePunch, "Ice Punch", EffectFreezeChance, 75, Ice, 100, 15, 0, c10, 0, 0, false},
	{MoveThunderPunch, "Thunder Punch", EffectParalyzeChance, 75, Electric, 100, 15, 0, c10, 0, 0, false},
	{MoveScratch, "Scratch", EffectNone, 40, Normal, 100, 35, 0, 0, 0, 0, false},
	{MoveViceGrip, "Vise Grip", EffectNone, 55, Normal, 100, 30, 0, 0, 0, 0, false},
	{MoveGuillotine, "Guillotine", EffectOHKO, 0, Normal, 30, 5, 0, 0, 0, 0, false},
	{MoveRazorWind, "Razor Wind", EffectCharge, 80, Normal, 75, 10, 0, 0, 0, 0, false},
	{MoveSwordsDance, "Swords Dance", EffectStatUp, 0, Normal, 0, 30, 0, 0, StatAttack, 2, false},
	{MoveCut, "Cut", EffectNone, 50, Normal, 95, 30, 0, 0, 0, 0, false},
	{MoveGust, "Gust", EffectNone, 40, Normal, 100, 35, 0, 0, 0, 0, false},
	{MoveWingAttack, "Wing Attack", EffectNone, 35, Flying, 100, 35, 0, 0, 0, 0, false},
	{MoveWhirlwind, "Whirlwind", EffectSwitchAndTeleport, 0, Normal, 85, 20, 0, 0, 0, 0, false},
	{MoveFly, "Fly", EffectFlyDig, 90, Flying, 95, 15, 0, 0, 0, 0, false},
	{MoveBind, "Bind", EffectTrapping, 15, Normal, 75, 20, 0, 0, 0, 0, false},
	{MoveSlam, "Slam", EffectNone, 80, Normal, 75, 20, 0, 0, 0, 0, false},
	{MoveVineWhip, "Vine Whip", EffectNone, 35, Grass, 100, 10, 0, 0, 0, 0, false},
	{MoveStomp, "Stomp", EffectFlinchChance, 65, Normal, 100, 20, 0, c30, 0, 0, false},
	{MoveDoubleKick, "Double Kick", EffectDoubleHit, 30, Fighting, 100, 30, 0, 0, 0, 0, false},
	{MoveMegaKick, "Mega Kick", EffectNone, 120, Normal, 75, 5, 0, 0, 0, 0, false},
	{MoveJumpKick, "Jump Kick", EffectJumpKick, 70, Fighting, 95, 25, 0, 0, 0, 0, false},
	{MoveRollingKick, "Rolling Kick", EffectFlinchChance, 60, Fighting, 85, 15, 0, c30, 0, 0, false},
	{MoveSandAttack, "Sand Attack", EffectStatDown, 0, Normal, 100, 15, 0, 0, StatAccuracy, 1, false},
	{MoveHeadbutt, "Headbutt", EffectFlinchChance, 70, Normal, 100, 15, 0, c30, 0, 0, false},
	{MoveHornAttack, "Horn Attack", EffectNone, 65, Normal, 100, 25, 0, 0, 0, 0, false},
	{MoveFuryAttack, "Fury Attack", EffectMultiHit, 15, Normal, 85, 20, 0, 0, 0, 0, false},
	{MoveHornDrill, "Horn Drill", EffectOHKO, 0, Normal, 30, 5, 0, 0, 0, 0, false},
	{MoveTackle, "Tackle", EffectNone, 35, Normal, 95, 35, 0, 0, 0, 0, false},
	{MoveBodySlam, "Body Slam", EffectParalyzeChance, 85, Normal, 100, 15, 0, c30, 0, 0, false},
	{MoveWrap, "Wrap", EffectTrapping, 15, Normal, 85, 20, 0, 0, 0, 0, false},
	{MoveTakeDown, "Take Down", EffectRecoil, 90, Normal, 85, 20, 0, 0, 0, 0, false},
	{MoveThrash, "Thrash", EffectThrashing, 90, Normal, 100, 20, 0, 0, 0, 0, false},
	{MoveDoubleEdge, "Double-Edge", EffectRecoil, 100, Normal, 100, 15, 0, 0, 0, 0, false},
	{MoveTailWhip, "Tail Whip", EffectStatDown, 0, Normal, 100, 30, 0, 0, StatDefense, 1, false},
	{MovePoisonSting, "Poison Sting", EffectPoisonChance, 15, Poison, 100, 35, 0, c20, 0, 0, false},
	{MoveTwineedle, "Twineedle", EffectTwineedle, 25, Bug, 100, 20, 0, c20, 0, 0, false},
	{MovePinMissile, "Pin Missile", EffectMultiHit, 14, Bug, 85, 20, 0, 0, 0, 0, false},
	{MoveLeer, "Leer", EffectStatDown, 0, Normal, 100, 30, 0, 0, StatDefense, 1, false},
	{MoveBite, "Bite", EffectFlinchChance, 60, Normal, 100, 25, 0, c10, 0, 0, false},
	{MoveGrowl, "Growl", EffectStatDown, 0, Normal, 100, 40, 0, 0, StatAttack, 1, false},
	{MoveRoar, "Roar", EffectSwitchAndTeleport, 0, Normal, 100, 20, 0, 0, 0, 0, false},
	{MoveSing, "Sing", EffectSleep, 0, Normal, 55, 15, 0, 0, 0, 0, false},
	{MoveSupersonic, "Supersonic", EffectConfusion, 0, Normal, 55, 20, 0, 0, 0, 0, false},
	{MoveSonicBoom, "Sonic Boom", EffectFixedDamage, 0, Normal, 90, 20, 0, 20, 0, 0, false},
	{MoveDisable, "Disable", EffectDisable, 0, Normal, 55, 20, 0, 0, 0, 0, false},
	{MoveAcid, "Acid", EffectStatDownChance, 40, Poison, 100, 30, 0, c33, StatDefense, 1, false},
	{MoveEmber, "Ember", EffectBurnChance, 40, Fire, 100, 25, 0, c10, 0, 0, false},
	{MoveFlamethrower, "Flamethrower", EffectBurnChance, 95, Fire, 100, 15, 0, c10, 0, 0, false},
	{MoveMist, "Mist", EffectMist, 0, Ice, 0, 30, 0, 0, 0, 0, false},
	{MoveWaterGun, "Water Gun", EffectNone, 40, Water, 100, 25, 0, 0, 0, 0, false},
	{MoveHydroPump, "Hydro Pump", EffectNone, 120, Water, 80, 5, 0, 0, 0, 0, false},
	{MoveSurf, "Surf", EffectNone, 95, Water, 100, 15, 0, 0, 0, 0, false},
	{MoveIceBeam, "Ice Beam", EffectFreezeChance, 95, Ice, 100, 10, 0, c10, 0, 0, false},
	{MoveBlizzard, "Blizzard", EffectFreezeChance, 120, Ice, 90, 5, 0, c10, 0, 0, false},
	{MovePsybeam, "Psybeam", EffectConfusionChance, 65, Psychic, 100, 20, 0, c10, 0, 0, false},
	{MoveBubbleBeam, "Bubble Beam", EffectStatDownChance, 65, Water, 100, 20, 0, c33, StatSpeed, 1, false},
	{MoveAuroraBeam, "Aurora Beam", EffectStatDownChance, 65, Ice, 100, 20, 0, c33, StatAttack, 1, false},
	{MoveHyperBeam, "Hyper Beam", EffectHyperBeam, 150, Normal, 90, 5, 0, 0, 0, 0, false},
	{MovePeck, "Peck", EffectNone, 35, Flying, 100, 35, 0, 0, 0, 0, false},
	{MoveDrillPeck, "Drill Peck", EffectNone, 80, Flying, 100, 20, 0, 0, 0, 0, false},
	{MoveSubmission, "Submission", EffectRecoil, 80, Fighting, 80, 25, 0, 0, 0, 0, false},
	{MoveLowKick, "Low Kick", EffectFlinchChance, 50, Fighting, 90, 20, 0, c30, 0, 0, false},
	{MoveCounter, "Counter", EffectCounter, 0, Fighting, 100, 20, -1, 0, 0, 0, false},
	{MoveSeismicToss, "Seismic Toss", EffectLevelDamage, 0, Fighting, 100, 20, 0, 0, 0, 0, false},
	{MoveStrength, "Strength", EffectNone, 80, Normal, 100, 15, 0, 0, 0, 0, false},
	{MoveAbsorb, "Absorb", EffectDrainHP, 20, Grass, 100, 20, 0, 0, 0, 0, false},
	{MoveMegaDrain, "Mega Drain", EffectDrainHP, 40, Grass, 100, 10, 0, 0, 0, 0, false},
	{MoveLeechSeed, "Leech Seed", EffectLeechSeed, 0, Grass, 90, 10, 0, 0, 0, 0, false},
	{MoveGrowth, "Growth", EffectStatUp, 0, Normal, 0, 40, 0, 0, StatSpecial, 1, false},
	{MoveRazorLeaf, "Razor Leaf", EffectNone, 55, Grass, 95, 25, 0, 0, 0, 0, true},
	{MoveSolarBeam, "Solar Beam", EffectCharge, 120, Grass, 100, 10, 0, 0, 0, 0, false},
	{MovePoisonPowder, "Poison Powder", EffectPoison, 0, Poison, 75, 35, 0, 0, 0, 0, false},
	{MoveStunSpore, "Stun Spore", EffectParalyze, 0, Grass, 75, 30, 0, 0, 0, 0, false},
	{MoveSleepPowder, "Sleep Powder", EffectSleep, 0, Grass, 75, 15, 0, 0, 0, 0, false},
	{MovePetalDance, "Petal Dance", EffectThrashing, 70, Grass, 100, 20, 0, 0, 0, 0, false},
	{MoveStringShot, "String Shot", EffectStatDown, 0, Bug, 95, 40, 0, 0, StatSpeed, 1, false},
	{MoveDragonRage, "Dragon Rage", EffectFixedDamage, 0, Dragon, 100, 10, 0, 40, 0, 0, false},
	{MoveFireSpin, "Fire Spin", EffectTrapping, 15, Fire, 70, 15, 0, 0, 0, 0, false},
	{MoveThunderShock, "Thunder Shock", EffectParalyzeChance, 40, Electric, 100, 30, 0, c10, 0, 0, false},
	{MoveThunderbolt, "Thunderbolt", EffectParalyzeChance, 95, Electric, 100, 15, 0, c10, 0, 0, false},
	{MoveThunderWave, "Thunder Wave", EffectParalyze, 0, Electric, 100, 20, 0, 0, 0, 0, false},
	{MoveThunder, "Thunder", EffectParalyzeChance, 120, Electric, 70, 10, 0, c10, 0, 0, false},
	{MoveRockThrow, "Rock Throw", EffectNone, 50, Rock, 65, 15, 0, 0, 0, 0, false},
	{MoveEarthquake, "Earthquake", EffectNone, 100, Ground, 100, 10, 0, 0, 0, 0, false},
	{MoveFissure, "Fissure", EffectOHKO, 0, Ground, 30, 5, 0, 0, 0, 0, false},
	{MoveDig, "Dig", EffectFlyDig, 100, Ground, 100, 10, 0, 0, 0, 0, false},
	{MoveToxic, "Toxic", EffectPoison, 0, Poison, 85, 10, 0, 0, 0, 0, false},
	{MoveConfusion, "Confusion", EffectConfusionChance, 50, Psychic, 100, 25, 0, c10, 0, 0, false},
	{MovePsychic, "Psychic", EffectStatDownChance, 90, Psychic, 100, 10, 0, c33, StatSpecial, 1, false},
	{MoveHypnosis, "Hypnosis", EffectSleep, 0, Psychic, 60, 20, 0, 0, 0, 0, false},
	{MoveMeditate, "Meditate", EffectStatUp, 0, Psychic, 0, 40, 0, 0, StatAttack, 1, false},
	{MoveAgility, "Agility", EffectStatUp, 0, Psychic, 0, 30, 0, 0, StatSpeed, 2, false},
	{MoveQuickAttack, "Quick Attack", EffectNone, 40, Normal, 100, 30, 1, 0, 0, 0, false},
	{MoveRage, "Rage", EffectRage, 20, Normal, 100, 20, 0, 0, 0, 0, false},
	{MoveTeleport, "Teleport", EffectSwitchAndTeleport, 0, Psychic, 0, 20, 0, 0, 0, 0, false},
	{MoveNightShade, "Night Shade", EffectLevelDamage, 0, Ghost, 100, 15, 0, 0, 0, 0, false},
	{MoveMimic, "Mimic", EffectMimic, 0, Normal, 100, 10, 0, 0, 0, 0, false},
	{MoveScreech, "Screech", EffectStatDown, 0, Normal, 85, 40, 0, 0, StatDefense, 2, false},
	{MoveDoubleTeam, "Double Team", EffectStatUp, 0, Normal, 0, 15, 0, 0, StatEvasion, 1, false},
	{MoveRecover, "Recover", EffectHeal, 0, Normal, 0, 20, 0, 0, 0, 0, false},
	{MoveHarden, "Harden", EffectStatUp, 0, Normal, 0, 30, 0, 0, StatDefense, 1, false},
	{MoveMinimize, "Minimize", EffectStatUp, 0, Normal, 0, 20, 0, 0, StatEvasion, 1, false},
	{MoveSmokescreen, "Smokescreen", EffectStatDown, 0, Normal, 100, 20, 0, 0, StatAccuracy, 1, false},
	{MoveConfuseRay, "Confuse Ray", EffectConfusion, 0, Ghost, 100, 10, 0, 0, 0, 0, false},
	{MoveWithdraw, "Withdraw", EffectStatUp, 0, Water, 0, 40, 0, 0, StatDefense, 1, false},
	{MoveDefenseCurl, "Defense Curl", EffectStatUp, 0, Normal, 0, 40, 0, 0, StatDefense, 1, false},
	{MoveBarrier, "Barrier", EffectStatUp, 0, Psychic, 0, 30, 0, 0, StatDefense, 2, false},
	{MoveLightScreen, "Light Screen", EffectLightScreen, 0, Psychic, 0, 30, 0, 0, 0, 0, false},
	{MoveHaze, "Haze", EffectHaze, 0, Ice, 0, 30, 0, 0, 0, 0, false},
	{MoveReflect, "Reflect", EffectReflect, 0, Psychic, 0, 20, 0, 0, 0, 0, false},
	{MoveFocusEnergy, "Focus Energy", EffectFocusEnergy, 0, Normal, 0, 30, 0, 0, 0, 0, false},
	{MoveBide, "Bide", EffectBide, 0, Normal, 0, 10, 0, 0, 0, 0, false},
	{MoveMetronome, "Metronome", EffectMetronome, 0, Normal, 0, 10, 0, 0, 0, 0, false},
	{MoveMirrorMove, "Mirror Move", EffectMirrorMove, 0, Flying, 0, 20, 0, 0, 0, 0, false},
	{MoveSelfDestruct, "Self-Destruct", EffectExplode, 130, Normal, 100, 5, 0, 0, 0, 0, false},
	{MoveEggBomb, "Egg Bomb", EffectNone, 100, Normal, 75, 10, 0, 0, 0, 0, false},
	{MoveLick, "Lick", EffectParalyzeChance, 20, Ghost, 100, 30, 0, c30, 0, 0, false},
	{MoveSmog, "Smog", EffectPoisonChance, 20, Poison, 70, 20, 0, c40, 0, 0, false},
	{MoveSludge, "Sludge", EffectPoisonChance, 65, Poison, 100, 20, 0, c40, 0, 0, false},
	{MoveBoneClub, "Bone Club", EffectFlinchChance, 65, Ground, 85, 20, 0, c10, 0, 0, false},
	{MoveFireBlast, "Fire Blast", EffectBurnChance, 120, Fire, 85, 5, 0, c30, 0, 0, false},
	{MoveWaterfall, "Waterfall", EffectNone, 80, Water, 100, 15, 0, 0, 0, 0, false},
	{MoveClamp, "Clamp", EffectTrapping, 35, Water, 75, 10, 0, 0, 0, 0, false},
	{MoveSwift, "Swift", EffectSwift, 60, Normal, 0, 20, 0, 0, 0, 0, false},
	{MoveSkullBash, "Skull Bash", EffectCharge, 100, Normal, 100, 15, 0, 0, 0, 0, false},
	{MoveSpikeCannon, "Spike Cannon", EffectMultiHit, 20, Normal, 100, 15, 0, 0, 0, 0, false},
	{MoveConstrict, "Constrict", EffectStatDownChance, 10, Normal, 100, 35, 0, c33, StatSpeed, 1, false},
	{MoveAmnesia, "Amnesia", EffectStatUp, 0, Psychic, 0, 20, 0, 0, StatSpecial, 2, false},
	{MoveKinesis, "Kinesis", EffectStatDown, 0, Psychic, 80, 15, 0, 0, StatAccuracy, 1, false},
	{MoveSoftBoiled, "Soft-Boiled", EffectHeal, 0, Normal, 0, 10, 0, 0, 0, 0, false},
	{MoveHighJumpKick, "High Jump Kick", EffectJumpKick, 85, Fighting, 90, 20, 0, 0, 0, 0, false},
	{MoveGlare, "Glare", EffectParalyze, 0, Normal, 75, 30, 0, 0, 0, 0, false},
	{MoveDreamEater, "Dream Eater", EffectDreamEater, 100, Psychic, 100, 15, 0, 0, 0, 0, false},
	{MovePoisonGas, "Poison Gas", EffectPoison, 0, Poison, 55, 40, 0, 0, 0, 0, false},
	{MoveBarrage, "Barrage", EffectMultiHit, 15, Normal, 85, 20, 0, 0, 0, 0, false},
	{MoveLeechLife, "Leech Life", EffectDrainHP, 20, Bug, 100, 15, 0, 0, 0, 0, false},
	{MoveLovelyKiss, "Lovely Kiss", EffectSleep, 0, Normal, 75, 10, 0, 0, 0, 0, false},
	{MoveSkyAttack, "Sky Attack", EffectCharge, 140, Flying, 90, 5, 0, 0, 0, 0, false},
	{MoveTransform, "Transform", EffectTransform, 0, Normal, 0, 10, 0, 0, 0, 0, false},
	{MoveBubble, "Bubble", EffectStatDownChance, 20, Water, 100, 30, 0, c33, StatSpeed, 1, false},
	{MoveDizzyPunch, "Dizzy Punch", EffectNone, 70, Normal, 100, 10, 0, 0, 0, 0, false},
	{MoveSpore, "Spore", EffectSleep, 0, Grass, 100, 15, 0, 0, 0, 0, false},
	{MoveFlash, "Flash", EffectStatDown, 0, Normal, 70, 20, 0, 0, StatAccuracy, 1, false},
	{MovePsywave, "Psywave", EffectPsywave, 0, Psychic, 80, 15, 0, 0, 0, 0, false},
	{MoveSplash, "Splash", EffectSplash, 0, Normal, 0, 40, 0, 0, 0, 0, false},
	{MoveAcidArmor, "Acid Armor", EffectStatUp, 0, Poison, 0, 40, 0, 0, StatDefense, 2, false},
	{MoveCrabhammer, "Crabhammer", EffectNone, 90, Water, 85, 10, 0, 0, 0, 0, true},
	{MoveExplosion, "Explosion", EffectExplode, 170, Normal, 100, 5, 0, 0, 0, 0, false},
	{MoveFurySwipes, "Fury Swipes", EffectMultiHit, 18, Normal, 80, 15, 0, 0, 0, 0, false},
	{MoveBonemerang, "Bonemerang", EffectDoubleHit, 50, Ground, 90, 10, 0, 0, 0, 0, false},
	{MoveRest, "Rest", EffectRest, 0, Psychic, 0, 10, 0, 0, 0, 0, false},
	{MoveRockSlide, "Rock Slide", EffectNone, 75, Rock, 90, 10, 0, 0, 0, 0, false},
	{MoveHyperFang, "Hyper Fang", EffectFlinchChance, 80, Normal, 90, 15, 0, c10, 0, 0, false},
	{MoveSharpen, "Sharpen", EffectStatUp, 0, Normal, 0, 30, 0, 0, StatAttack, 1, false},
	{MoveConversion, "Conversion", EffectConversion, 0, Normal, 0, 30, 0, 0, 0, 0, false},
	{MoveTriAttack, "Tri Attack", EffectNone, 80, Normal, 100, 10, 0, 0, 0, 0, false},
	{MoveSuperFang, "Super Fang", EffectSuperFang, 0, Normal, 90, 10, 0, 0, 0, 0, false},
	{MoveSlash, "Slash", EffectNone, 70, Normal, 100, 20, 0, 0, 0, 0, true},
	{MoveSubstitute, "Substitute", EffectSubstitute, 0, Normal, 0, 10, 0, 0, 0, 0, false},
	{MoveStruggle, "Struggle", EffectStruggle, 50, Normal, 100, 10, 0, 0, 0, 0, false},
}

// MoveCount is the number of real moves, Struggle included.
const MoveCount = int(MoveStruggle)

// GetMove returns the table entry for id, or nil when id is out of range.
func GetMove(id MoveID) *Move {
	if id == MoveNone || int(id) >= len(moves) {
		return nil
	}
	return &moves[id]
}

func (id MoveID) String() string {
	if m := GetMove(id); m != nil {
		return m.Name
	}
	return "(none)"
}
