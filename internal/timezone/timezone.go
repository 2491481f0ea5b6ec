package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseSlot monta o instante de um horário (data YYYY-MM-DD + hora HH:MM)
// no fuso da barbearia.
func ParseSlot(date, hhmm string) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		date+" "+hhmm,
		Location(),
	)
}

func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

func ValidTime(hhmm string) bool {
	_, err := time.Parse(TimeLayout, hhmm)
	return err == nil
}
