package domain

type CategoryInfo struct {
	Key   Category
	Icon  string
	Label string
}

var Categories = []CategoryInfo{
	{Key: CategoryPlumbing, Icon: "🔧", Label: "Plumbing"},
	{Key: CategoryElectrical, Icon: "⚡", Label: "Electrical"},
	{Key: CategoryAC, Icon: "❄️", Label: "AC / HVAC"},
	{Key: CategoryPainting, Icon: "🎨", Label: "Painting"},
	{Key: CategoryCarpentry, Icon: "🪚", Label: "Carpentry"},
	{Key: CategoryCleaning, Icon: "🧹", Label: "Cleaning"},
	{Key: CategoryGeneral, Icon: "🔨", Label: "General"},
}

// CategoryInfoFor looks up the catalogue entry; unknown keys get the general entry with the raw key as label.
func CategoryInfoFor(c Category) CategoryInfo {
	for _, info := range Categories {
		if info.Key == c {
			return info
		}
	}
	return CategoryInfo{Key: c, Icon: "🔨", Label: string(c)}
}
