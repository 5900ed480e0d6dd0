package constant

// Theme is a named visual palette. Only the identifier is stored on the
// family row; the catalog itself lives here.
type Theme struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

const DefaultThemeId = "cotton-candy"

var Themes = []Theme{
	{Id: "cotton-candy", Name: "Cotton Candy", Description: "Pink/lavender — classic baby girl"},
	{Id: "jungle", Name: "Jungle", Description: "Green/gold — earthy and warm"},
	{Id: "ocean", Name: "Ocean", Description: "Teal/coral — bright and cheerful"},
	{Id: "autumn-leaves", Name: "Autumn Leaves", Description: "Orange/red — cozy and warm"},
	{Id: "night-sky", Name: "Night Sky", Description: "Purple/gold — dark mode elegance"},
}

func ValidThemeId(id string) bool {
	for _, t := range Themes {
		if t.Id == id {
			return true
		}
	}
	return false
}
