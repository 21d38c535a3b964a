package catalog

// DayHours holds one weekday's opening window in 24-hour HH:MM strings.
type DayHours struct {
	Open        string `json:"open"`
	Close       string `json:"close"`
	DriveThru24 bool   `json:"driveThru24h,omitempty"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StoreLocation describes a single restaurant.
type StoreLocation struct {
	City        string              `json:"city"`
	Address     string              `json:"address"`
	Phone       string              `json:"phone"`
	Timezone    string              `json:"timezone"`
	Coordinates Coordinates         `json:"coordinates"`
	Services    []string            `json:"services"`
	Hours       map[string]DayHours `json:"hours"`
}

// Weekdays fixes the rendering order for hour tables.
var Weekdays = []struct {
	Key   string
	Label string
}{
	{"monday", "Mon"},
	{"tuesday", "Tue"},
	{"wednesday", "Wed"},
	{"thursday", "Thu"},
	{"friday", "Fri"},
	{"saturday", "Sat"},
	{"sunday", "Sun"},
}

// SeedStores provides the default restaurant directory.
func SeedStores() []StoreLocation {
	return []StoreLocation{
		{
			City:        "Chicago, IL - River North",
			Address:     "600 N Clark St, Chicago, IL 60654",
			Phone:       "(312) 555-0199",
			Timezone:    "America/Chicago",
			Coordinates: Coordinates{Lat: 41.8923, Lng: -87.6312},
			Services: []string{
				"Mobile order pickup shelves",
				"McDelivery",
				"Late-night drive-thru",
				"McCafé Bakery counter",
			},
			Hours: map[string]DayHours{
				"monday":    {Open: "05:00", Close: "23:00"},
				"tuesday":   {Open: "05:00", Close: "23:00"},
				"wednesday": {Open: "05:00", Close: "23:00"},
				"thursday":  {Open: "05:00", Close: "23:00"},
				"friday":    {Open: "05:00", Close: "01:00"},
				"saturday":  {Open: "05:00", Close: "01:00"},
				"sunday":    {Open: "06:00", Close: "23:00"},
			},
		},
		{
			City:        "Los Angeles, CA - Sunset & Vine",
			Address:     "1951 N Highland Ave, Los Angeles, CA 90068",
			Phone:       "(213) 555-0145",
			Timezone:    "America/Los_Angeles",
			Coordinates: Coordinates{Lat: 34.1063, Lng: -118.3287},
			Services:    []string{"Front-counter pickup", "Self-order kiosks", "PlayPlace", "Curbside pickup"},
			Hours: map[string]DayHours{
				"monday":    {Open: "06:00", Close: "23:00"},
				"tuesday":   {Open: "06:00", Close: "23:00"},
				"wednesday": {Open: "06:00", Close: "23:00"},
				"thursday":  {Open: "06:00", Close: "00:00"},
				"friday":    {Open: "06:00", Close: "01:00"},
				"saturday":  {Open: "06:00", Close: "01:00"},
				"sunday":    {Open: "06:00", Close: "23:00"},
			},
		},
		{
			City:        "New York, NY - Times Square",
			Address:     "1528 Broadway, New York, NY 10036",
			Phone:       "(212) 555-0172",
			Timezone:    "America/New_York",
			Coordinates: Coordinates{Lat: 40.758, Lng: -73.9855},
			Services: []string{
				"24-hour dining",
				"Mobile order express pickup",
				"Tourist-friendly menu boards",
				"Digital ordering",
			},
			Hours: map[string]DayHours{
				"monday":    {Open: "00:00", Close: "23:59", DriveThru24: true},
				"tuesday":   {Open: "00:00", Close: "23:59", DriveThru24: true},
				"wednesday": {Open: "00:00", Close: "23:59", DriveThru24: true},
				"thursday":  {Open: "00:00", Close: "23:59", DriveThru24: true},
				"friday":    {Open: "00:00", Close: "23:59", DriveThru24: true},
				"saturday":  {Open: "00:00", Close: "23:59", DriveThru24: true},
				"sunday":    {Open: "00:00", Close: "23:59", DriveThru24: true},
			},
		},
		{
			City:        "Austin, TX - South Congress",
			Address:     "2320 S Congress Ave, Austin, TX 78704",
			Phone:       "(512) 555-0111",
			Timezone:    "America/Chicago",
			Coordinates: Coordinates{Lat: 30.2414, Lng: -97.758},
			Services:    []string{"Dual-lane drive-thru", "Curbside pickup", "PlayPlace"},
			Hours: map[string]DayHours{
				"monday":    {Open: "05:00", Close: "23:00"},
				"tuesday":   {Open: "05:00", Close: "23:00"},
				"wednesday": {Open: "05:00", Close: "23:00"},
				"thursday":  {Open: "05:00", Close: "23:00"},
				"friday":    {Open: "05:00", Close: "01:00"},
				"saturday":  {Open: "05:00", Close: "01:00"},
				"sunday":    {Open: "06:00", Close: "23:00"},
			},
		},
	}
}
