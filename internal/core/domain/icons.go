package domain

// Icon identifies one of the site's SVG icons
type Icon string

const (
	IconDrop     Icon = "drop"
	IconSearch   Icon = "search"
	IconHeart    Icon = "heart"
	IconHospital Icon = "hospital"
	IconLocation Icon = "location"
	IconCalendar Icon = "calendar"
	IconClock    Icon = "clock"
	IconMail     Icon = "mail"
	IconPhone    Icon = "phone"
	IconSun      Icon = "sun"
	IconMoon     Icon = "moon"
)

// iconPaths holds 24x24 stroke path data per icon
var iconPaths = map[Icon]string{
	IconDrop:     "M12 2.7C9 7 6 10.4 6 14a6 6 0 0 0 12 0c0-3.6-3-7-6-11.3z",
	IconSearch:   "M11 4a7 7 0 1 0 0 14 7 7 0 0 0 0-14zm9 16-4.3-4.3",
	IconHeart:    "M20.8 4.6a5.5 5.5 0 0 0-7.8 0L12 5.7l-1-1.1a5.5 5.5 0 0 0-7.8 7.8L12 21.2l8.8-8.8a5.5 5.5 0 0 0 0-7.8z",
	IconHospital: "M3 21h18M5 21V7l7-4 7 4v14M10 9h4M12 7v4M9 21v-4h6v4",
	IconLocation: "M12 21s-7-6.2-7-11a7 7 0 0 1 14 0c0 4.8-7 11-7 11zm0-8.5a2.5 2.5 0 1 0 0-5 2.5 2.5 0 0 0 0 5z",
	IconCalendar: "M4 5h16v16H4zM16 3v4M8 3v4M4 11h16",
	IconClock:    "M12 3a9 9 0 1 0 0 18 9 9 0 0 0 0-18zm0 4v5l3 3",
	IconMail:     "M3 5h18v14H3zm0 0 9 7 9-7",
	IconPhone:    "M22 16.9v3a2 2 0 0 1-2.2 2 19.8 19.8 0 0 1-8.6-3.1 19.5 19.5 0 0 1-6-6A19.8 19.8 0 0 1 2.1 4.2 2 2 0 0 1 4.1 2h3a2 2 0 0 1 2 1.7c.1.9.4 1.8.7 2.7a2 2 0 0 1-.5 2.1L8 9.8a16 16 0 0 0 6 6l1.3-1.3a2 2 0 0 1 2.1-.4c.9.3 1.8.6 2.7.7a2 2 0 0 1 1.7 2z",
	IconSun:      "M12 8a4 4 0 1 0 0 8 4 4 0 0 0 0-8zm0-6v2m0 16v2M4.9 4.9l1.4 1.4m11.4 11.4 1.4 1.4M2 12h2m16 0h2M4.9 19.1l1.4-1.4M17.7 6.3l1.4-1.4",
	IconMoon:     "M21 12.8A9 9 0 1 1 11.2 3a7 7 0 0 0 9.8 9.8z",
}

// Path returns the SVG path data of the icon and whether it is known
func (i Icon) Path() (string, bool) {
	p, ok := iconPaths[i]
	return p, ok
}
