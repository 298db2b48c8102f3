package calendar

// Season is a meteorological season of the northern hemisphere.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
)

// ValidSeasons returns all seasons in calendar order starting from Spring.
func ValidSeasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}
}

// SeasonOf classifies a date by meteorological season: March through May is
// Spring, June through August Summer, September through November Fall, and
// December through February Winter.
func SeasonOf(d Date) Season {
	switch m0 := d.monthIndex(); {
	case m0 >= 2 && m0 <= 4:
		return SeasonSpring
	case m0 >= 5 && m0 <= 7:
		return SeasonSummer
	case m0 >= 8 && m0 <= 10:
		return SeasonFall
	default:
		return SeasonWinter
	}
}
