package config

import (
	"errors"
	"fmt"

	"github.com/kasuganosora/pkmnsim/game/battle"
	"github.com/spf13/viper"
)

// ErrNoTeams is returned when a team file defines fewer than two teams.
var ErrNoTeams = errors.New("team file needs at least two teams")

// TeamFile is the layout of a team file:
//
//	teams:
//	  - name: normal
//	    members:
//	      - species: Tauros
//	        moves: [Body Slam, Hyper Beam, Blizzard, Earthquake]
type TeamFile struct {
	Teams []NamedTeam `mapstructure:"teams"`
}

type NamedTeam struct {
	Name    string               `mapstructure:"name"`
	Members []battle.PokemonSpec `mapstructure:"members"`
}

// Team returns the members as a battle team.
func (t NamedTeam) Team() battle.Team { return battle.Team(t.Members) }

// LoadTeams reads a YAML team file.
func LoadTeams(path string) (*TeamFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	tf := &TeamFile{}
	if err := v.Unmarshal(tf); err != nil {
		return nil, err
	}
	if len(tf.Teams) < 2 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTeams)
	}
	for i := range tf.Teams {
		if tf.Teams[i].Name == "" {
			tf.Teams[i].Name = fmt.Sprintf("team%d", i+1)
		}
	}
	return tf, nil
}
