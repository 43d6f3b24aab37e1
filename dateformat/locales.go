package dateformat

// localeData holds the name tables and style patterns for one supported
// locale. Patterns use the token grammar of Options.Pattern.
type localeData struct {
	name        string
	monthsLong  [12]string
	monthsShort [12]string
	weekdays    [7]string // indexed by time.Weekday (Sunday = 0)
	short       string
	medium      string
	long        string
	full        string
	time24      bool
}

func (d *localeData) datePattern(s Style) string {
	switch s {
	case StyleShort:
		return d.short
	case StyleLong:
		return d.long
	case StyleFull:
		return d.full
	}
	return d.medium
}

// locales is the supported set. The first entry is the matcher's fallback
// for parseable but unsupported locales.
var locales = []localeData{
	{
		name:        "en-US",
		monthsLong:  [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		monthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays:    [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		short:       "M/D/YY",
		medium:      "MMM D, YYYY",
		long:        "MMMM D, YYYY",
		full:        "WWWW, MMMM D, YYYY",
	},
	{
		name:        "en-GB",
		monthsLong:  [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		monthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays:    [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		short:       "DD/MM/YYYY",
		medium:      "D MMM YYYY",
		long:        "D MMMM YYYY",
		full:        "WWWW, D MMMM YYYY",
		time24:      true,
	},
	{
		name:        "fr",
		monthsLong:  [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		monthsShort: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		weekdays:    [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		short:       "DD/MM/YYYY",
		medium:      "D MMM YYYY",
		long:        "D MMMM YYYY",
		full:        "WWWW D MMMM YYYY",
		time24:      true,
	},
	{
		name:        "fr-CA",
		monthsLong:  [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		monthsShort: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		weekdays:    [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		short:       "YYYY-MM-DD",
		medium:      "D MMM YYYY",
		long:        "D MMMM YYYY",
		full:        "WWWW D MMMM YYYY",
		time24:      true,
	},
	{
		name:        "de",
		monthsLong:  [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		monthsShort: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		weekdays:    [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		short:       "DD.MM.YY",
		medium:      "DD.MM.YYYY",
		long:        "D. MMMM YYYY",
		full:        "WWWW, D. MMMM YYYY",
		time24:      true,
	},
	{
		name:        "es",
		monthsLong:  [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		monthsShort: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		weekdays:    [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		short:       "D/M/YY",
		medium:      "D MMM YYYY",
		long:        "D [de] MMMM [de] YYYY",
		full:        "WWWW, D [de] MMMM [de] YYYY",
		time24:      true,
	},
	{
		name:        "pt-BR",
		monthsLong:  [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		monthsShort: [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		weekdays:    [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		short:       "DD/MM/YYYY",
		medium:      "D [de] MMM [de] YYYY",
		long:        "D [de] MMMM [de] YYYY",
		full:        "WWWW, D [de] MMMM [de] YYYY",
		time24:      true,
	},
	{
		name:        "ja",
		monthsLong:  [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		monthsShort: [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		weekdays:    [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		short:       "YYYY/MM/DD",
		medium:      "YYYY/MM/DD",
		long:        "YYYY[年]M[月]D[日]",
		full:        "YYYY[年]M[月]D[日]WWWW",
		time24:      true,
	},
}
