package wellness

import "math/rand"

// Slogans rotate under the home-page title.
var Slogans = []string{
	"Eat Well, Live Well",
	"Fuel Your Body Right",
	"Healthy Mind, Healthy Life",
	"Small Habits, Big Change",
}

// Tips are the candidates for the tip of the day.
var Tips = []string{
	"Drink a glass of water first thing in the morning.",
	"Aim for 7–9 hours of sleep tonight.",
	"Add a serving of greens to your next meal.",
	"Take a 10-minute walk after meals.",
	"Do a 5-minute stretch break each hour.",
	"Plan tomorrow’s workout today.",
}

// SloganRotator walks Slogans in order, wrapping around.
type SloganRotator struct {
	idx int
}

func (s SloganRotator) Current() string {
	return Slogans[s.idx]
}

// Next advances to the following slogan and returns it.
func (s *SloganRotator) Next() string {
	s.idx = (s.idx + 1) % len(Slogans)
	return Slogans[s.idx]
}

// TipOfTheDay picks a random tip. A nil source uses the global generator.
func TipOfTheDay(r *rand.Rand) string {
	if r == nil {
		return Tips[rand.Intn(len(Tips))]
	}
	return Tips[r.Intn(len(Tips))]
}
