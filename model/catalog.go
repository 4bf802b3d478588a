package model

// GOOD_ITEMS is the catalog index below which items count as good.
const GOOD_ITEMS = 10

var catalog = [...]struct{ name, description string }{
	{"Solar Panel", "Turns sunlight into clean electricity for the neighbourhood."},
	{"Recycling Bin", "Sorted waste gets a second life instead of filling a landfill."},
	{"Tree Sapling", "A young tree that will shade the street and clean the air."},
	{"Bicycle", "Zero emission transport for short trips around the city."},
	{"Compost Bucket", "Food scraps become rich soil for urban gardens."},
	{"Rain Barrel", "Collected rainwater waters the plants and saves tap water."},
	{"LED Bulb", "Uses a fraction of the energy of an old incandescent bulb."},
	{"Reusable Bottle", "Refilled hundreds of times, replacing single use plastic."},
	{"Wind Turbine", "A small turbine feeding the grid with renewable power."},
	{"Cloth Bag", "Carries the groceries home without a plastic bag."},
	{"Plastic Bag", "Used for minutes, lasts in the ocean for centuries."},
	{"Oil Barrel", "Leaking fuel poisons the soil and the groundwater."},
	{"Cigarette Butt", "Small, toxic and the most littered item on the planet."},
	{"Aerosol Can", "Propellant gases that harm the atmosphere."},
	{"Old Battery", "Heavy metals seep out when thrown in the regular trash."},
	{"Styrofoam Cup", "Cannot be recycled and breaks into tiny pieces."},
	{"Car Tyre", "Dumped tyres collect water and breed mosquitoes."},
	{"Chemical Drum", "Industrial waste dumped far from any treatment plant."},
	{"Smoke Stack", "Burning coal fills the city air with soot."},
	{"Broken Phone", "E-waste with toxic parts that should have been collected."},
}

// CatalogSize is the number of items placed in every city.
func CatalogSize() int {
	return len(catalog)
}

// CatalogItem returns the catalog entry at index. Indexes below GOOD_ITEMS are good.
func CatalogItem(index int) Item {
	e := catalog[index]
	return Item{
		Index:       index,
		Good:        index < GOOD_ITEMS,
		Name:        e.name,
		Description: e.description,
	}
}
