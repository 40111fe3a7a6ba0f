package relationship

import (
	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/player"
)

var maleNames = []string{
	"Lukas", "Finn", "Jonas", "Leon", "Paul", "Max", "Felix", "Noah",
	"Elias", "Ben", "Jan", "Tim", "Moritz", "David", "Niklas", "Tobias",
}

var femaleNames = []string{
	"Mia", "Emma", "Hannah", "Lena", "Anna", "Leonie", "Lea", "Marie",
	"Sophie", "Laura", "Julia", "Clara", "Lisa", "Sarah", "Nele", "Maja",
}

// RandomName draws a given name for the gender.
func RandomName(rng entropy.Source, g player.Gender) string {
	if g == player.GenderFemale {
		return femaleNames[rng.Intn(len(femaleNames))]
	}
	return maleNames[rng.Intn(len(maleNames))]
}

// RandomGender flips a fair coin.
func RandomGender(rng entropy.Source) player.Gender {
	if rng.Intn(2) == 0 {
		return player.GenderMale
	}
	return player.GenderFemale
}
