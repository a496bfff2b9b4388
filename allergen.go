package mensafeed

// allergenNames is the Austrian allergen legend (Allergeninformationsverordnung).
var allergenNames = map[string]string{
	"A": "Glutenhaltiges Getreide",
	"B": "Krebstiere",
	"C": "Eier",
	"D": "Fisch",
	"E": "Erdnüsse",
	"F": "Soja",
	"G": "Milch oder Laktose",
	"H": "Schalenfrüchte",
	"L": "Sellerie",
	"M": "Senf",
	"N": "Sesam",
	"O": "Sulfite",
	"P": "Lupinen",
	"R": "Weichtiere",
}

// AllergenNote returns the note text for an allergen code, e.g.
// "A: Glutenhaltiges Getreide". Unknown codes are returned unchanged.
func AllergenNote(code string) string {
	if name, ok := allergenNames[code]; ok {
		return code + ": " + name
	}
	return code
}
