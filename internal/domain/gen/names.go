package gen

// Name pools for generated athletes and managers.
var firstNames = []string{
	"Marcus", "Jalen", "Devin", "Andre", "Trey", "Malik", "Jordan", "Darius",
	"Kobe", "Isaiah", "Tyrese", "Cameron", "Zion", "Elias", "Luka", "Nikola",
	"Theo", "Rudy", "Omari", "Khris", "Desmond", "Jaylen", "Evan", "Grant",
	"Cole", "Miles", "Aaron", "Victor", "Paolo", "Shai",
}

var lastNames = []string{
	"Carter", "Holloway", "Brooks", "Washington", "Reeves", "Thompson",
	"Okafor", "Banks", "Dawson", "Ellis", "Fontaine", "Grady", "Hayes",
	"Ingram", "Jarvis", "Kellerman", "Lofton", "Mercer", "Navarro", "Osei",
	"Porter", "Quinn", "Ramsey", "Sampson", "Tillman", "Underwood", "Vance",
	"Whitfield", "Youngblood", "Zeller",
}
